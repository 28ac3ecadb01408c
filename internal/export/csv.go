package export

import (
	"encoding/csv"
	"os"

	"github.com/rotisserie/eris"
)

// WriteCSV writes header and records to path.
func WriteCSV(path string, header []string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "csv export: create file")
	}
	defer f.Close() //nolint:errcheck

	w := csv.NewWriter(f)

	if err := w.Write(header); err != nil {
		return eris.Wrap(err, "csv export: write header")
	}
	for _, r := range records {
		if err := w.Write(r); err != nil {
			return eris.Wrap(err, "csv export: write row")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return eris.Wrap(err, "csv export: flush")
	}
	return eris.Wrap(f.Close(), "csv export: close file")
}
