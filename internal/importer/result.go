package importer

import (
	"fmt"
	"strings"
)

// Result summarises one import call. Successful rows stay committed even
// when other rows failed; partial success is the normal outcome, not an
// error of the call itself.
type Result struct {
	ImportCount  int      `json:"importCount"`
	ImportErrors []string `json:"importErrors"`
}

// InvalidHeadersError is the whole-batch precondition failure raised before
// any row is processed when the CSV carries columns outside the pipeline's
// allowed set.
type InvalidHeadersError struct {
	Headers []string
}

func (e *InvalidHeadersError) Error() string {
	return fmt.Sprintf("invalid headers: %s", strings.Join(e.Headers, ", "))
}

// rowErrorf formats a row-scoped error with its spreadsheet row number
func rowErrorf(rowNumber int, format string, args ...interface{}) string {
	return fmt.Sprintf("Row %d: %s", rowNumber, fmt.Sprintf(format, args...))
}
