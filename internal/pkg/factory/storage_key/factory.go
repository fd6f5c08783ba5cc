package storage_key

import (
	"fmt"
	"path/filepath"
	"time"
)

// MediaKeyFactory строит ключ блоба вида {awb}-{epochMillis}{ext}.
// Временная метка делает ключ уникальным между повторными доставками
// одного AWB и между повторными попытками одного сабмита.
type MediaKeyFactory struct {
	now func() time.Time
}

func New() *MediaKeyFactory {
	return &MediaKeyFactory{
		now: time.Now,
	}
}

// NewWithClock используется в тестах для детерминированных ключей.
func NewWithClock(now func() time.Time) *MediaKeyFactory {
	return &MediaKeyFactory{
		now: now,
	}
}

func (f *MediaKeyFactory) MediaKey(awbNumber, filename string) string {
	return fmt.Sprintf("%s-%d%s", awbNumber, f.now().UnixMilli(), filepath.Ext(filename))
}
