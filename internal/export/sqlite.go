package export

import (
	"context"
	"database/sql"
	"os"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/USAID-OHA-SI/visiblespectrum/internal/model"
)

const sqliteSchema = `
CREATE TABLE estimates (
	country             TEXT NOT NULL,
	area                TEXT NOT NULL,
	level               INTEGER,
	indicator           TEXT NOT NULL,
	age_group           TEXT NOT NULL,
	sex                 TEXT NOT NULL,
	period              TEXT NOT NULL,
	period_year_quarter TEXT NOT NULL,
	mean                REAL,
	lower               REAL,
	upper               REAL
);

CREATE TABLE failures (
	period         TEXT NOT NULL,
	age_group      TEXT NOT NULL,
	sex            TEXT NOT NULL,
	indicator_code TEXT NOT NULL,
	url            TEXT NOT NULL,
	status         INTEGER NOT NULL,
	reason         TEXT NOT NULL,
	transient      INTEGER NOT NULL
);

CREATE INDEX idx_estimates_area ON estimates(country, area);
`

// WriteSQLite writes data and failures into a fresh database at path.
// An existing file is replaced.
func WriteSQLite(path string, data *model.Table, failures []model.FailureRecord) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return eris.Wrap(err, "sqlite export: remove existing")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return eris.Wrap(err, "sqlite export: open")
	}
	defer db.Close()

	ctx := context.Background()
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return eris.Wrap(err, "sqlite export: create schema")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite export: begin")
	}
	defer tx.Rollback() //nolint:errcheck

	if err := insertRows(ctx, tx, data); err != nil {
		return err
	}
	if err := insertFailures(ctx, tx, failures); err != nil {
		return err
	}
	return eris.Wrap(tx.Commit(), "sqlite export: commit")
}

func insertRows(ctx context.Context, tx *sql.Tx, data *model.Table) error {
	if data.Len() == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO estimates
		(country, area, level, indicator, age_group, sex, period, period_year_quarter, mean, lower, upper)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return eris.Wrap(err, "sqlite export: prepare estimates")
	}
	defer stmt.Close()

	for _, r := range data.Rows {
		_, err := stmt.ExecContext(ctx,
			r.Country, r.Area, nullInt(r.Level), r.Indicator, r.AgeGroup, r.Sex,
			r.Period, r.PeriodYearQuarter, nullFloat(r.Mean), nullFloat(r.Lower), nullFloat(r.Upper),
		)
		if err != nil {
			return eris.Wrap(err, "sqlite export: insert estimate")
		}
	}
	return nil
}

func insertFailures(ctx context.Context, tx *sql.Tx, failures []model.FailureRecord) error {
	for _, f := range failures {
		_, err := tx.ExecContext(ctx, `INSERT INTO failures
			(period, age_group, sex, indicator_code, url, status, reason, transient)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			f.Period, f.AgeGroup, f.Sex, f.IndicatorCode, f.URL, f.Status, f.Reason, f.Transient,
		)
		if err != nil {
			return eris.Wrap(err, "sqlite export: insert failure")
		}
	}
	return nil
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
