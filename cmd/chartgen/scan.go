package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/rifat17/libxlsxwriter/pkg/chart"
	"github.com/rifat17/libxlsxwriter/pkg/rangeref"
)

var (
	scanChartID uint32
	scanSheet   string
	scanOutput  string
)

// scanCmd assembles a chart part from the populated columns of a workbook.
var scanCmd = &cobra.Command{
	Use:   "scan [input.xlsx]",
	Short: "Assemble a chart part from the columns of a workbook",
	Long: `scan reads a workbook sheet and builds one series per populated
column, covering the rows between the first and last non-empty cell.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().Uint32Var(&scanChartID, "chart-id", 1, "Chart number within the workbook")
	scanCmd.Flags().StringVar(&scanSheet, "sheet", "", "Sheet to scan (default: active sheet)")
	scanCmd.Flags().StringVarP(&scanOutput, "output", "o", "", "Output file path (default: stdout)")

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	f, err := excelize.OpenFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	sheet := scanSheet
	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
		if sheet == "" {
			return fmt.Errorf("workbook %s has no active sheet", inputPath)
		}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	c := chart.New(scanChartID)
	for col := 1; col <= columnCount(rows); col++ {
		first, last := columnSpan(rows, col)
		if first == 0 {
			log.Debugf("Column %d is empty, skipping", col)
			continue
		}
		ref, err := rangeref.ForColumn(sheet, col, first, last)
		if err != nil {
			return fmt.Errorf("failed to build range for column %d: %w", col, err)
		}
		if err := c.AddSeries(&chart.Series{ValueRange: ref, SheetName: sheet}); err != nil {
			return fmt.Errorf("failed to add series over %q: %w", ref, err)
		}
		if verbose {
			log.Infof("Column %d becomes series %d over %s", col, c.SeriesCount()-1, ref)
		}
	}
	if c.SeriesCount() == 0 {
		log.Warnf("Sheet %q has no populated columns; the chart will plot nothing.", sheet)
	}

	return writePart(c, scanOutput)
}

// columnCount returns the widest row length in rows.
func columnCount(rows [][]string) int {
	count := 0
	for _, row := range rows {
		if len(row) > count {
			count = len(row)
		}
	}
	return count
}

// columnSpan returns the 1-based first and last rows holding a value in the
// 1-based column col, or zeros when the column is empty.
func columnSpan(rows [][]string, col int) (first, last int) {
	for rowIdx, row := range rows {
		if col > len(row) || row[col-1] == "" {
			continue
		}
		if first == 0 {
			first = rowIdx + 1
		}
		last = rowIdx + 1
	}
	return first, last
}
