package history

import (
	"context"
	"fmt"

	"podservice/internal/entities"
)

// DefaultLimit - сколько последних доставок отдаём по умолчанию.
const DefaultLimit = 50

type Service struct {
	records RecordSource
}

func New(records RecordSource) *Service {
	return &Service{
		records: records,
	}
}

func (s *Service) Recent(ctx context.Context, limit uint64) ([]entities.DeliveryRecord, error) {
	if limit == 0 || limit > DefaultLimit {
		limit = DefaultLimit
	}

	records, err := s.records.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent deliveries: %w: %v", ErrQuery, err)
	}

	if records == nil {
		records = []entities.DeliveryRecord{}
	}
	return records, nil
}
