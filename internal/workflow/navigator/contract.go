//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=navigator_test
package navigator

import (
	"context"

	"podservice/internal/entities"
	"podservice/internal/workflow"
	"podservice/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// IdentifierSource - шаг получения идентификатора (scanner.Scanner).
type IdentifierSource interface {
	StartScanning(ctx context.Context) error
	SubmitManual(text string) (string, error)
	Close()
}

// MediaBuffer - буфер снятого медиа (capture.Buffer).
type MediaBuffer interface {
	Capture(blob entities.MediaBlob) (*entities.CapturedMedia, error)
	Clear()
	Current() *entities.CapturedMedia
}

// CommitService - коммит доставки (commit.Pipeline).
type CommitService interface {
	Submit(ctx context.Context, session *workflow.Session, media *entities.CapturedMedia) (*entities.DeliveryRecord, error)
}
