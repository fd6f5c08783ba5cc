//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pod_post_test
package pod_post

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

type Service interface {
	Submit(ctx context.Context, session *workflow.Session, media *entities.CapturedMedia) (*entities.DeliveryRecord, error)
}
