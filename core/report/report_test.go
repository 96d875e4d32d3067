package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"lpcr-compare/core/compare"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWrite_HeaderAndRows tests the fixed header and verbatim row order.
func TestWrite_HeaderAndRows(t *testing.T) {
	diffs := []compare.Discrepancy{
		{Applicant: "Jane_Doe", Kind: compare.KindValueMismatch, Path: "score", EnvAValue: "700", EnvBValue: "710"},
		{Applicant: "John_Smith", Kind: compare.KindMissingInEnvA, Path: "(applicant)", EnvAValue: "null", EnvBValue: `{"score":650}`},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, diffs))

	want := "applicant,difference_type,path,env_a_value,env_b_value\n" +
		"Jane_Doe,value_mismatch,score,700,710\n" +
		"John_Smith,missing_in_env_a,(applicant),null,\"{\"\"score\"\":650}\"\n"
	assert.Equal(t, want, buf.String())
}

// TestWrite_EmptyReport tests that a clean comparison still gets a header.
func TestWrite_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))
	assert.Equal(t, "applicant,difference_type,path,env_a_value,env_b_value\n", buf.String())
}

// TestWriteFile tests writing to disk and the error on an unwritable path.
func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diff.csv")
	require.NoError(t, WriteFile(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "difference_type")

	err = WriteFile(filepath.Join(t.TempDir(), "missing", "diff.csv"), nil)
	assert.Error(t, err)
}
