package capture

import (
	"fmt"
	"sync"

	"podservice/internal/entities"
	"podservice/internal/workflow"
	"podservice/pkg/logger"
)

// Buffer держит не более одного снятого медиа за раз. Retake заменяет
// содержимое целиком: старый предпросмотр освобождается до установки нового,
// так что повторные пересъемки не копят preview-ссылки.
type Buffer struct {
	log      handlerLogger
	previews PreviewFactory
	notify   workflow.Notifier

	mu      sync.Mutex
	media   *entities.CapturedMedia
	preview Preview
}

func New(log handlerLogger, previews PreviewFactory, notify workflow.Notifier) *Buffer {
	return &Buffer{
		log:      log.With(),
		previews: previews,
		notify:   notify,
	}
}

// Capture классифицирует blob по MIME-типу и замещает текущее медиа.
func (b *Buffer) Capture(blob entities.MediaBlob) (*entities.CapturedMedia, error) {
	if len(blob.Data) == 0 {
		return nil, ErrEmptyBlob
	}

	// Сначала освобождаем предыдущий предпросмотр.
	b.clear()

	var preview Preview
	if b.previews != nil {
		p, err := b.previews.Create(blob)
		if err != nil {
			return nil, fmt.Errorf("create preview: %w", err)
		}
		preview = p
	}

	media := &entities.CapturedMedia{
		Blob: blob,
		Kind: entities.MediaBlobKind(blob.MIME),
	}

	b.mu.Lock()
	b.media = media
	b.preview = preview
	b.mu.Unlock()

	workflow.Notify(b.notify, workflow.Event{
		Kind:    workflow.EventMediaCaptured,
		Message: "Photo captured!",
	})
	return media, nil
}

// Clear убирает текущее медиа и его предпросмотр ("retake").
// Вызов на пустом буфере - это no-op без ошибки и без события.
func (b *Buffer) Clear() {
	if b.clear() {
		workflow.Notify(b.notify, workflow.Event{Kind: workflow.EventMediaCleared})
	}
}

// Current возвращает снятое медиа или nil, если буфер пуст.
func (b *Buffer) Current() *entities.CapturedMedia {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.media
}

// Preview возвращает текущий предпросмотр или nil.
func (b *Buffer) Preview() Preview {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.preview
}

func (b *Buffer) clear() bool {
	b.mu.Lock()
	media := b.media
	preview := b.preview
	b.media = nil
	b.preview = nil
	b.mu.Unlock()

	if preview != nil {
		if err := preview.Release(); err != nil {
			b.log.With(
				logger.NewField("error", err),
			).Error("release media preview")
		}
	}
	return media != nil
}
