package preview

import (
	"fmt"
	"os"
	"path/filepath"

	"podservice/internal/entities"
	"podservice/internal/workflow/capture"
)

// Factory пишет снятый blob во временный файл и отдает его как предпросмотр.
// Release удаляет файл; повторный Release безопасен.
type Factory struct {
	dir string
}

func NewFactory(dir string) *Factory {
	return &Factory{
		dir: dir,
	}
}

func (f *Factory) Create(blob entities.MediaBlob) (capture.Preview, error) {
	dir := f.dir
	if dir == "" {
		dir = os.TempDir()
	}

	file, err := os.CreateTemp(dir, "preview-*"+filepath.Ext(blob.Name))
	if err != nil {
		return nil, fmt.Errorf("create preview file: %w", err)
	}

	if _, err = file.Write(blob.Data); err != nil {
		file.Close()
		os.Remove(file.Name())
		return nil, fmt.Errorf("write preview file: %w", err)
	}
	if err = file.Close(); err != nil {
		os.Remove(file.Name())
		return nil, fmt.Errorf("close preview file: %w", err)
	}

	return &filePreview{path: file.Name()}, nil
}

type filePreview struct {
	path     string
	released bool
}

func (p *filePreview) Path() string {
	return p.path
}

func (p *filePreview) Release() error {
	if p.released {
		return nil
	}
	p.released = true

	if err := os.Remove(p.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove preview file: %w", err)
	}
	return nil
}
