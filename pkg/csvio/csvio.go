// Package csvio handles the tool's two CSV boundaries: the input address
// list and the final normalized table.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tbw875/batch-address-screen/internal/normalize"
)

const addressColumn = "address"

// ReadAddresses loads the input CSV and returns the non-empty values of its
// "address" column (header match is case-insensitive). Rows shorter than
// the header are tolerated; other columns are ignored.
func ReadAddresses(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("input CSV %s is empty", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	col := -1
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), addressColumn) {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("input CSV %s has no %q column", path, addressColumn)
	}

	var out []string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if col >= len(rec) {
			continue
		}
		if a := strings.TrimSpace(rec[col]); a != "" {
			out = append(out, a)
		}
	}
	return out, nil
}

// WriteTable writes the normalized table as CSV with its contracted header,
// creating parent directories as needed.
func WriteTable(path string, t *normalize.Table) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.Write(t.Header()); err != nil {
		_ = f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range t.Rows() {
		if err := w.Write(row); err != nil {
			_ = f.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
