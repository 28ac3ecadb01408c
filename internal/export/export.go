// Package export writes pull results to disk in one shot, overwriting any
// existing file.
package export

import (
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/USAID-OHA-SI/visiblespectrum/internal/model"
)

// Format is an output file format.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatXLSX   Format = "xlsx"
	FormatSQLite Format = "sqlite"
)

// Default output paths, relative to the working directory.
const (
	DefaultPath         = "naomi_data.csv"
	DefaultFailuresPath = "naomi_failures.csv"
)

// ParseFormat parses a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX, FormatSQLite:
		return f, nil
	default:
		return "", eris.Errorf("export: unknown format %q", s)
	}
}

// Options configures a Writer.
type Options struct {
	Format Format
	Path   string
	// FailuresPath receives the failure table as CSV. Empty disables it.
	// Ignored for sqlite, which stores failures in the same database.
	FailuresPath string
}

// Writer exports result tables.
type Writer struct {
	opts Options
}

// New validates opts and returns a Writer.
func New(opts Options) (*Writer, error) {
	f, err := ParseFormat(string(opts.Format))
	if err != nil {
		return nil, err
	}
	opts.Format = f
	if opts.Path == "" {
		opts.Path = DefaultPath
	}
	return &Writer{opts: opts}, nil
}

// Options returns the resolved options.
func (w *Writer) Options() Options {
	return w.opts
}

// Export writes data and, when there are any, failures.
func (w *Writer) Export(data *model.Table, failures []model.FailureRecord) error {
	var err error
	switch w.opts.Format {
	case FormatXLSX:
		err = WriteXLSX(w.opts.Path, data, failures)
	case FormatSQLite:
		err = WriteSQLite(w.opts.Path, data, failures)
	default:
		err = WriteCSV(w.opts.Path, model.Columns, data.Records())
	}
	if err != nil {
		return err
	}
	zap.L().Info("export: wrote data",
		zap.String("path", w.opts.Path),
		zap.String("format", string(w.opts.Format)),
		zap.Int("rows", data.Len()),
	)

	if len(failures) == 0 || w.opts.FailuresPath == "" || w.opts.Format == FormatSQLite {
		return nil
	}
	if err := WriteCSV(w.opts.FailuresPath, model.FailureColumns, failureRecords(failures)); err != nil {
		return err
	}
	zap.L().Info("export: wrote failures",
		zap.String("path", w.opts.FailuresPath),
		zap.Int("rows", len(failures)),
	)
	return nil
}

func failureRecords(failures []model.FailureRecord) [][]string {
	out := make([][]string, 0, len(failures))
	for _, f := range failures {
		out = append(out, f.Record())
	}
	return out
}
