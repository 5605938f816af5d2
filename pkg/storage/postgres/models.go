package postgres

import (
	"exposure/pkg/domain"
	"time"

	"github.com/google/uuid"
)

// PgScan is the row shape of the scans table.
type PgScan struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Domain string `db:"domain"`
	Status string `db:"status"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgScan) ToDomain() domain.Scan {
	return domain.Scan{
		ID:        domain.ScanID(p.ID),
		UserID:    domain.UserID(p.UserID),
		Domain:    p.Domain,
		Status:    domain.ScanStatus(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (p *PgScan) FromDomain(scan domain.Scan) {
	*p = PgScan{
		ID:     uuid.UUID(scan.ID),
		UserID: uuid.UUID(scan.UserID),
		Domain: scan.Domain,
		Status: string(scan.Status),
	}
}

func pgScansToDomain(scans []PgScan) []domain.Scan {
	out := make([]domain.Scan, 0, len(scans))
	for i := range scans {
		out = append(out, scans[i].ToDomain())
	}

	return out
}

// PgFinding is the row shape of the findings table. SeverityRank is stored so
// ordering by severity happens in SQL.
type PgFinding struct {
	ID     int64     `db:"id"      goqu:"skipinsert"`
	ScanID uuid.UUID `db:"scan_id"`
	UserID uuid.UUID `db:"user_id"`

	URL          string `db:"url"`
	Path         string `db:"path"`
	Description  string `db:"description"`
	Severity     string `db:"severity"`
	SeverityRank int    `db:"severity_rank"`
	StatusCode   int    `db:"status_code"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgFinding) ToDomain() domain.Finding {
	return domain.Finding{
		URL:         p.URL,
		Path:        p.Path,
		Description: p.Description,
		Severity:    domain.Severity(p.Severity),
		StatusCode:  p.StatusCode,
		ScanID:      domain.ScanID(p.ScanID),
		UserID:      domain.UserID(p.UserID),
	}
}

func (p *PgFinding) FromDomain(f domain.Finding) {
	*p = PgFinding{
		ScanID:       uuid.UUID(f.ScanID),
		UserID:       uuid.UUID(f.UserID),
		URL:          f.URL,
		Path:         f.Path,
		Description:  f.Description,
		Severity:     string(f.Severity),
		SeverityRank: f.Severity.Rank(),
		StatusCode:   f.StatusCode,
	}
}
