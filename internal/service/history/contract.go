//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=history_test
package history

import (
	"context"

	"podservice/internal/entities"
)

type RecordSource interface {
	ListRecent(ctx context.Context, limit uint64) ([]entities.DeliveryRecord, error)
}
