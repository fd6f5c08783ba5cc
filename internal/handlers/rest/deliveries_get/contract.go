//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliveries_get_test
package deliveries_get

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

type Service interface {
	Recent(ctx context.Context, limit uint64) ([]entities.DeliveryRecord, error)
}
