// Package rangeref builds and validates the sheet-qualified cell range
// references that feed chart series.
package rangeref

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/xuri/efp"
	"github.com/xuri/excelize/v2"
)

// ErrNotRange is returned by Validate for input that is not a plain range
// reference.
var ErrNotRange = errors.New("not a range reference")

// Validate reports whether ref is a single range reference such as
// "Sheet1!$A$1:$A$5". Formulas, numbers and multi-part expressions fail
// with ErrNotRange.
func Validate(ref string) error {
	ps := efp.ExcelParser()
	tokens := ps.Parse(ref)
	if len(tokens) != 1 {
		return fmt.Errorf("%w: %q", ErrNotRange, ref)
	}
	if tokens[0].TType != efp.TokenTypeOperand || tokens[0].TSubType != efp.TokenSubTypeRange {
		return fmt.Errorf("%w: %q", ErrNotRange, ref)
	}
	return nil
}

// ForColumn returns the absolute range reference covering rows firstRow
// through lastRow of the 1-based column col on the named sheet.
func ForColumn(sheet string, col, firstRow, lastRow int) (string, error) {
	if lastRow < firstRow {
		return "", fmt.Errorf("row span %d:%d is inverted", firstRow, lastRow)
	}
	start, err := excelize.CoordinatesToCellName(col, firstRow, true)
	if err != nil {
		return "", fmt.Errorf("range start: %w", err)
	}
	end, err := excelize.CoordinatesToCellName(col, lastRow, true)
	if err != nil {
		return "", fmt.Errorf("range end: %w", err)
	}
	return QuoteSheetName(sheet) + "!" + start + ":" + end, nil
}

// QuoteSheetName wraps a sheet name in single quotes when Excel requires it,
// doubling any embedded quote. Names made of letters, digits, underscores and
// periods that do not start with a digit pass through unchanged.
func QuoteSheetName(name string) string {
	plain := name != ""
	for i, r := range name {
		switch {
		case unicode.IsLetter(r), r == '_', r == '.':
		case unicode.IsDigit(r):
			if i == 0 {
				plain = false
			}
		default:
			plain = false
		}
	}
	if plain {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
