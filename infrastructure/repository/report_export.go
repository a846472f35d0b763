package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/vfg2006/harvest-yield-tracker/infrastructure/database/postgres"
	"github.com/vfg2006/harvest-yield-tracker/internal/domain"
)

//go:generate mockgen -source=report_export.go -destination=mocks/report_export.go -package=mocks

const reportExportsTable = "report_exports"

// ReportExportRepository registra as exportações de relatório geradas
type ReportExportRepository interface {
	Insert(ctx context.Context, export domain.ReportExport) error
	ListRecent(ctx context.Context, limit uint64) ([]domain.ReportExport, error)
}

type reportExportRepository struct {
	conn postgres.Queryer
}

func NewReportExportRepository(conn postgres.Queryer) ReportExportRepository {
	return &reportExportRepository{
		conn: conn,
	}
}

func insertReportExportQuery(e domain.ReportExport) squirrel.InsertBuilder {
	return squirrel.
		Insert(reportExportsTable).
		Columns("id", "kind", "format", "file_name", "size_bytes", "trigger", "created_at").
		Values(e.ID, string(e.Kind), string(e.Format), e.FileName, e.SizeBytes, e.Trigger, e.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)
}

func listReportExportsQuery(limit uint64) squirrel.SelectBuilder {
	if limit == 0 {
		limit = 50
	}

	return squirrel.
		Select("id", "kind", "format", "file_name", "size_bytes", "trigger", "created_at").
		From(reportExportsTable).
		OrderBy("created_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *reportExportRepository) Insert(ctx context.Context, export domain.ReportExport) error {
	query, args, err := insertReportExportQuery(export).ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "repository: erro ao registrar exportação %s", export.ID)
	}

	return nil
}

func (r *reportExportRepository) ListRecent(ctx context.Context, limit uint64) ([]domain.ReportExport, error) {
	query, args, err := listReportExportsQuery(limit).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "repository: erro ao listar exportações")
	}
	defer rows.Close()

	exports := []domain.ReportExport{}
	for rows.Next() {
		var (
			e      domain.ReportExport
			kind   string
			format string
		)
		if err := rows.Scan(&e.ID, &kind, &format, &e.FileName, &e.SizeBytes, &e.Trigger, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Kind = domain.ReportKind(kind)
		e.Format = domain.ReportFormat(format)
		exports = append(exports, e)
	}

	return exports, rows.Err()
}
