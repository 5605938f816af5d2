package postgres

import (
	"context"
	"exposure/pkg/domain"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	findingsTable = "findings"
)

func (p *PgSQL) StoreFindings(ctx context.Context, findings ...domain.Finding) error {
	if len(findings) == 0 {
		return nil
	}

	rows := make([]PgFinding, len(findings))
	for i := range findings {
		rows[i].FromDomain(findings[i])
	}

	if _, err := p.Builder.Insert(findingsTable).
		Rows(rows).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store findings into pg: %w", err)
	}

	return nil
}

func (p *PgSQL) FindingsByScanIDs(ctx context.Context,
	ids ...domain.ScanID) (map[domain.ScanID][]domain.Finding, error) {
	out := make(map[domain.ScanID][]domain.Finding, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = uuid.UUID(id).String()
	}

	var rows []PgFinding
	if err := p.Builder.From(findingsTable).
		Where(goqu.I("scan_id").In(keys)).
		Order(goqu.I("severity_rank").Desc(), goqu.I("url").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch findings from pg: %w", err)
	}

	for i := range rows {
		f := rows[i].ToDomain()
		out[f.ScanID] = append(out[f.ScanID], f)
	}

	return out, nil
}
