//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=capture_test
package capture

import (
	"podservice/internal/entities"
	"podservice/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Preview - локальная ссылка на предпросмотр снятого медиа.
// Должна быть освобождена до установки следующего предпросмотра.
type Preview interface {
	Path() string
	Release() error
}

// PreviewFactory строит предпросмотр для снятого blob. Фабрика опциональна:
// nil означает работу без предпросмотра (серверный путь коммита).
type PreviewFactory interface {
	Create(blob entities.MediaBlob) (Preview, error)
}
