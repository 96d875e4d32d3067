package report

import (
	"encoding/csv"
	"io"
	"os"

	"lpcr-compare/core/compare"
)

// columns is the fixed CSV header, in report order.
var columns = []string{"applicant", "difference_type", "path", "env_a_value", "env_b_value"}

// Write renders the discrepancies as CSV rows preceded by the header.
func Write(w io.Writer, diffs []compare.Discrepancy) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return err
	}
	for _, d := range diffs {
		row := []string{d.Applicant, string(d.Kind), d.Path, d.EnvAValue, d.EnvBValue}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the CSV report to path, truncating any existing file.
func WriteFile(path string, diffs []compare.Discrepancy) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, diffs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
