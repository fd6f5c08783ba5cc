package delivery

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"podservice/internal/entities"
	"podservice/internal/repository"
)

// Querier - минимальный контракт доступа к БД, которым пользуется репозиторий.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, recordModify entities.DeliveryRecordModify) (*entities.DeliveryRecord, error) {
	recordModifyDB := FromDomainModify(&recordModify)

	query := `
		INSERT INTO deliveries (awb_number, media_url, media_type, driver_notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, awb_number, media_url, media_type, driver_notes, delivered_at
	`

	var recordDB DeliveryRecordDB
	err := r.querier.QueryRow(
		ctx,
		query,
		recordModifyDB.AWBNumber,
		recordModifyDB.MediaURL,
		recordModifyDB.MediaType,
		recordModifyDB.DriverNotes,
	).Scan(
		&recordDB.ID,
		&recordDB.AWBNumber,
		&recordDB.MediaURL,
		&recordDB.MediaType,
		&recordDB.DriverNotes,
		&recordDB.DeliveredAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, fmt.Errorf("delivery repository create: invalid media type: %w", err)
		}
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	recordDomain := ToDomain(&recordDB)
	return recordDomain, nil
}

func (r *Repository) ListRecent(ctx context.Context, limit uint64) ([]entities.DeliveryRecord, error) {
	query, args, err := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select("id", "awb_number", "media_url", "media_type", "driver_notes", "delivered_at").
		From("deliveries").
		OrderBy("delivered_at DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository build list query error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}
	defer rows.Close()

	records := make([]entities.DeliveryRecord, 0, limit)
	for rows.Next() {
		var recordDB DeliveryRecordDB
		err = rows.Scan(
			&recordDB.ID,
			&recordDB.AWBNumber,
			&recordDB.MediaURL,
			&recordDB.MediaType,
			&recordDB.DriverNotes,
			&recordDB.DeliveredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected delivery repository scan error: %w", err)
		}
		records = append(records, *ToDomain(&recordDB))
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository rows error: %w", err)
	}

	return records, nil
}
