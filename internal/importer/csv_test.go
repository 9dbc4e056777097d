package importer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	text := "description, address ,telephone,email,skills\n" +
		"Acme Maintenance, 1 High Street ,,,\n" +
		"\n" +
		"Birch Electrical,,,,electrics\n"

	rows, err := parseCSV(text, supplierHeaders)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Acme Maintenance", rows[0].field("description"))
	assert.Equal(t, "1 High Street", rows[0].field("address"))
	assert.Equal(t, "Birch Electrical", rows[1].field("description"))
	assert.Equal(t, "electrics", rows[1].field("skills"))
}

func TestParseCSVInvalidHeader(t *testing.T) {
	text := "description,nickname\nAcme,ace\n"

	_, err := parseCSV(text, supplierHeaders)

	var headerErr *InvalidHeadersError
	require.True(t, errors.As(err, &headerErr))
	assert.Equal(t, []string{"nickname"}, headerErr.Headers)
}

func TestParseCSVShortRecords(t *testing.T) {
	// Rows narrower than the header row still parse; missing columns read
	// as empty strings.
	text := "description,address,telephone,email,skills\nAcme Maintenance\n"

	rows, err := parseCSV(text, supplierHeaders)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Acme Maintenance", rows[0].field("description"))
	assert.Equal(t, "", rows[0].field("skills"))
}

func TestParseCSVEmpty(t *testing.T) {
	_, err := parseCSV("", supplierHeaders)
	assert.Error(t, err)
}
