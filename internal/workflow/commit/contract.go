//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=commit_test
package commit

import (
	"context"

	"podservice/internal/entities"
	"podservice/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// BlobStore - внешнее хранилище байтов. Ключи непрозрачные и генерируются
// заново на каждую попытку, семантика перезаписи не используется.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte) error

	// PublicURL - локальное вычисление ссылки для только что записанного
	// ключа, отдельной точкой отказа не считается.
	PublicURL(key string) string
}

// RecordStore - хранилище записей о доставках. ID и DeliveredAt назначает
// само хранилище при вставке.
type RecordStore interface {
	Create(ctx context.Context, recordModify entities.DeliveryRecordModify) (*entities.DeliveryRecord, error)
}

// KeyFactory детерминированно строит ключ блоба, уникальный между повторными
// доставками одного AWB и между повторными попытками одного сабмита.
type KeyFactory interface {
	MediaKey(awbNumber, filename string) string
}

// EventPublisher публикует событие об успешно закоммиченной доставке.
// Строго best-effort: ошибка публикации не влияет на исход коммита.
type EventPublisher interface {
	DeliveryCommitted(ctx context.Context, record *entities.DeliveryRecord) error
}
