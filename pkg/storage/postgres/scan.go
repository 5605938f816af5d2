package postgres

import (
	"context"
	"exposure/pkg/domain"
	"exposure/pkg/storage"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	scansTable = "scans"
)

func (p *PgSQL) StoreScans(ctx context.Context, scans ...domain.Scan) ([]domain.Scan, error) {
	if len(scans) == 0 {
		return nil, nil
	}

	rows := make([]PgScan, len(scans))
	for i := range scans {
		rows[i].FromDomain(scans[i])
	}

	var result []PgScan
	if err := p.Builder.Insert(scansTable).
		Rows(rows).
		Returning(&PgScan{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store scans into pg: %w", err)
	}

	return pgScansToDomain(result), nil
}

// UpdateScanStatus is a compare-and-set on status, so a terminal scan is never
// re-entered.
func (p *PgSQL) UpdateScanStatus(ctx context.Context,
	id domain.ScanID,
	from, to domain.ScanStatus) (*domain.Scan, error) {
	var row PgScan
	found, err := p.Builder.Update(scansTable).
		Set(goqu.Record{
			"status":     string(to),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("status").Eq(string(from)),
		).
		Returning(&PgScan{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update scan status in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	scan := row.ToDomain()

	return &scan, nil
}

func (p *PgSQL) FailStaleScans(ctx context.Context, before time.Time) ([]domain.Scan, error) {
	var rows []PgScan
	if err := p.Builder.Update(scansTable).
		Set(goqu.Record{
			"status":     string(domain.ScanStatusFailed),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("status").Eq(string(domain.ScanStatusRunning)),
			goqu.I("updated_at").Lt(before),
		).
		Returning(&PgScan{}).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fail stale scans in pg: %w", err)
	}

	return pgScansToDomain(rows), nil
}

// UserScans returns scans for a user created before cursor, ordered by
// created_at DESC, id DESC.
func (p *PgSQL) UserScans(ctx context.Context,
	userID domain.UserID,
	status domain.ScanStatus,
	cursor time.Time,
	limit uint) (storage.UserScans, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
	}
	if status != "" {
		w = append(w, goqu.I("status").Eq(string(status)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// one extra row tells whether there is a next page
	ds := p.Builder.From(scansTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1)

	var rows []PgScan
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserScans{}, fmt.Errorf("could not fetch user scans from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		if len(rows) > 0 {
			nextCursor = &rows[len(rows)-1].CreatedAt
		}
	}

	return storage.UserScans{
		Scans:      pgScansToDomain(rows),
		NextCursor: nextCursor,
	}, nil
}

func (p *PgSQL) ScanByID(ctx context.Context, userID domain.UserID, id domain.ScanID) (*domain.Scan, error) {
	var row PgScan
	found, err := p.Builder.From(scansTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch scan by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	scan := row.ToDomain()

	return &scan, nil
}
