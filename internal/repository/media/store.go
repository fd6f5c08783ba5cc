package media

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

var ErrInvalidKey = errors.New("invalid media key")

// Store - файловое хранилище медиа-вложений. Ключ превращается в путь
// внутри корневого каталога, публичный URL собирается от базового адреса.
type Store struct {
	root    string
	baseURL string
}

func New(root, baseURL string) *Store {
	return &Store{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("media store put: %w", err)
	}

	if !validKey(key) {
		return fmt.Errorf("media store put %q: %w", key, ErrInvalidKey)
	}

	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("media store create root: %w", err)
	}

	// Пишем во временный файл и переименовываем, чтобы по ключу
	// никогда не был виден частично записанный блоб.
	tmp, err := os.CreateTemp(s.root, ".upload-*")
	if err != nil {
		return fmt.Errorf("media store create temp file: %w", err)
	}

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("media store write: %w", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("media store close temp file: %w", err)
	}

	if err = os.Rename(tmp.Name(), filepath.Join(s.root, key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("media store rename: %w", err)
	}

	return nil
}

func (s *Store) PublicURL(key string) string {
	if !validKey(key) {
		return ""
	}
	return s.baseURL + "/media/" + url.PathEscape(key)
}

func validKey(key string) bool {
	if key == "" {
		return false
	}
	if strings.ContainsAny(key, "/\\") {
		return false
	}
	if key == "." || key == ".." {
		return false
	}
	return true
}
