package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestScanCommand(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "alpha")
	f.SetCellValue(sheetName, "A2", "beta")
	f.SetCellValue(sheetName, "A3", "gamma")
	f.SetCellValue(sheetName, "B2", 42)

	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	outFile := filepath.Join(tmpDir, "chart1.xml")
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{
		"scan", tmpFile,
		"--config", filepath.Join(tmpDir, "missing.yaml"),
		"--chart-id", "7",
		"-o", outFile,
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	out := string(data)

	for _, want := range []string{
		`<c:f>Sheet1!$A$1:$A$3</c:f>`,
		`<c:f>Sheet1!$B$2:$B$2</c:f>`,
		`<c:axId val="50010008"/>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s", want)
		}
	}
	if got := strings.Count(out, "<c:ser>"); got != 2 {
		t.Errorf("output holds %d series, want 2", got)
	}
}

func TestColumnCount(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want int
	}{
		{"empty sheet", nil, 0},
		{"single cell", [][]string{{"a"}}, 1},
		{"ragged rows", [][]string{{"a"}, {"a", "b", "c"}, {"a", "b"}}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := columnCount(tt.rows); got != tt.want {
				t.Errorf("columnCount = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestColumnSpan(t *testing.T) {
	rows := [][]string{
		{"a", "", "x"},
		{"b", "v"},
		{"", "w"},
	}

	tests := []struct {
		name      string
		col       int
		wantFirst int
		wantLast  int
	}{
		{"leading column", 1, 1, 2},
		{"inner gap", 2, 2, 3},
		{"short rows", 3, 1, 1},
		{"beyond widest row", 4, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := columnSpan(rows, tt.col)
			if first != tt.wantFirst || last != tt.wantLast {
				t.Errorf("columnSpan(col %d) = %d, %d, want %d, %d", tt.col, first, last, tt.wantFirst, tt.wantLast)
			}
		})
	}
}
