package exporter

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVWriter_WriteCSV(t *testing.T) {
	tempDir := t.TempDir()
	writer := NewCSVWriter(tempDir)

	tests := []struct {
		name     string
		filePath string
		options  WriteOptions
		validate func(t *testing.T, content []byte)
	}{
		{
			name:     "basic write with headers",
			filePath: "basic.csv",
			options: WriteOptions{
				Headers: []string{"column", "missing_count", "missing_pct"},
				Records: [][]string{
					{"score", "3", "30.0"},
					{"age", "1", "10.0"},
				},
			},
			validate: func(t *testing.T, content []byte) {
				lines := strings.Split(strings.TrimSpace(string(content)), "\n")
				require.Len(t, lines, 3)
				assert.Equal(t, "column,missing_count,missing_pct", lines[0])
				assert.Equal(t, "score,3,30.0", lines[1])
			},
		},
		{
			name:     "write with BOM prefix",
			filePath: "bom.csv",
			options: WriteOptions{
				Headers:   []string{"column"},
				Records:   [][]string{{"price"}},
				BOMPrefix: true,
			},
			validate: func(t *testing.T, content []byte) {
				assert.True(t, bytes.HasPrefix(content, utf8BOM))
			},
		},
		{
			name:     "fields needing quotes",
			filePath: "quoted.csv",
			options: WriteOptions{
				Headers: []string{"column", "example"},
				Records: [][]string{{"notes", "a, b"}, {"quote", `say "hi"`}},
			},
			validate: func(t *testing.T, content []byte) {
				records, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
				require.NoError(t, err)
				assert.Equal(t, "a, b", records[1][1])
				assert.Equal(t, `say "hi"`, records[2][1])
			},
		},
		{
			name:     "nested directory is created",
			filePath: filepath.Join("nested", "deep", "out.csv"),
			options:  WriteOptions{Headers: []string{"a"}},
			validate: func(t *testing.T, content []byte) {
				assert.Equal(t, "a\n", string(content))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := writer.WriteCSV(tt.filePath, tt.options)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(tempDir, tt.filePath), path)

			content, err := os.ReadFile(path)
			require.NoError(t, err)
			tt.validate(t, content)
		})
	}
}

func TestCSVWriter_Overwrites(t *testing.T) {
	writer := NewCSVWriter(t.TempDir())

	_, err := writer.WriteCSV("out.csv", WriteOptions{Headers: []string{"a"}, Records: [][]string{{"1"}, {"2"}}})
	require.NoError(t, err)
	path, err := writer.WriteCSV("out.csv", WriteOptions{Headers: []string{"b"}})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "b\n", string(content))
}

func TestCSVWriter_ResolvePath(t *testing.T) {
	tests := []struct {
		name     string
		baseDir  string
		filePath string
		expected string
	}{
		{name: "relative joined to base", baseDir: "/reports", filePath: "missingness.csv", expected: filepath.Join("/reports", "missingness.csv")},
		{name: "absolute kept", baseDir: "/reports", filePath: "/tmp/x.csv", expected: "/tmp/x.csv"},
		{name: "no base dir", baseDir: "", filePath: "x.csv", expected: "x.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewCSVWriter(tt.baseDir).resolvePath(tt.filePath))
		})
	}
}
