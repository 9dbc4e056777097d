package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
)

// row is one parsed CSV record keyed by trimmed header name
type row map[string]string

// field returns the trimmed value of a column; blank or missing values
// come back as the empty string, never as padded text
func (r row) field(name string) string {
	return strings.TrimSpace(r[name])
}

// parseCSV parses the raw text into header-keyed rows. Headers are trimmed
// and checked against the pipeline's allowed set before any row is looked
// at; an unknown header fails the whole batch with InvalidHeadersError.
// Fully blank lines are skipped.
func parseCSV(text string, validHeaders []string) ([]row, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("unparsable CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("CSV contains no header row")
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	allowed := make(map[string]bool, len(validHeaders))
	for _, h := range validHeaders {
		allowed[h] = true
	}
	var invalid []string
	for _, h := range headers {
		if h != "" && !allowed[h] {
			invalid = append(invalid, h)
		}
	}
	if len(invalid) > 0 {
		return nil, &InvalidHeadersError{Headers: invalid}
	}

	rows := make([]row, 0, len(records)-1)
	for _, record := range records[1:] {
		blank := true
		r := row{}
		for i, value := range record {
			if i >= len(headers) {
				break
			}
			if strings.TrimSpace(value) != "" {
				blank = false
			}
			r[headers[i]] = value
		}
		if blank {
			continue
		}
		rows = append(rows, r)
	}
	return rows, nil
}
