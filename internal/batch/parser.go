package batch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/guttosm/homeloan/internal/form"
)

// expectedHeaders enforces strict column ordering for scenario files.
// If the header doesn't match EXACTLY (order + count), the run fails.
var expectedHeaders = []string{
	form.FieldLoanAmount,
	form.FieldInterestRate,
	form.FieldLoanTermYears,
}

// scenario is one data row of the input file, still unparsed.
type scenario struct {
	line   int
	values form.Values
}

// readScenarios validates the header and collects every data row.
//
// It fails on:
//   - a header not matching expected order/length
//   - a row with the wrong column count
//   - unrecoverable I/O errors
//
// Field contents are NOT validated here; bad values are reported per row later.
func readScenarios(in io.Reader) ([]scenario, error) {
	r := csv.NewReader(in)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1 // checked explicitly for better messages

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("read header: empty input")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(expectedHeaders) {
		return nil, fmt.Errorf("invalid header length: expected %d, got %d", len(expectedHeaders), len(header))
	}
	for i, h := range header {
		// tolerate a UTF-8 BOM written by spreadsheet exports
		h = strings.TrimPrefix(strings.TrimSpace(h), "\ufeff")
		if h != expectedHeaders[i] {
			return nil, fmt.Errorf("invalid header at col %d: expected %q, got %q", i+1, expectedHeaders[i], h)
		}
	}

	var rows []scenario
	line := 1
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line after %d: %w", line, err)
		}
		line++

		if len(rec) != len(expectedHeaders) {
			return nil, fmt.Errorf("invalid column count on line %d: expected %d got %d", line, len(expectedHeaders), len(rec))
		}
		rows = append(rows, scenario{
			line: line,
			values: form.Values{
				LoanAmount:    rec[0],
				InterestRate:  rec[1],
				LoanTermYears: rec[2],
			},
		})
	}
	return rows, nil
}
