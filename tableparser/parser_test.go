package tableparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTable(t *testing.T) {
	output := `
name        sku   region       state
----------  ----  -----------  ------
fabcap01    F64   West Europe  Active
fabcap02    F2    North Europe  Paused
`

	rows := ParseTable(output)

	require.Len(t, rows, 2)
	assert.Equal(t, "fabcap01", rows[0]["name"])
	assert.Equal(t, "F64", rows[0]["sku"])
	assert.Equal(t, "West Europe", rows[0]["region"])
	assert.Equal(t, "Active", rows[0]["state"])
	assert.Equal(t, "fabcap02", rows[1]["name"])
}

func TestParseTable_ValueWithSpacesStaysInColumn(t *testing.T) {
	output := "name      region\n" +
		"cap one   West Europe\n"

	rows := ParseTable(output)

	require.Len(t, rows, 1)
	assert.Equal(t, "cap one", rows[0]["name"])
	assert.Equal(t, "West Europe", rows[0]["region"])
}

func TestParseTable_ShortRowYieldsEmptyColumns(t *testing.T) {
	output := "name      region\n" +
		"cap1\n"

	rows := ParseTable(output)

	require.Len(t, rows, 1)
	assert.Equal(t, "cap1", rows[0]["name"])
	assert.Equal(t, "", rows[0]["region"])
}

func TestParseTable_AsteriskSeparators(t *testing.T) {
	output := "name   state\n" +
		"*****  *****\n" +
		"cap1   Active\n"

	rows := ParseTable(output)

	require.Len(t, rows, 1)
	assert.Equal(t, "cap1", rows[0]["name"])
}

func TestParseTable_EmptyOutput(t *testing.T) {
	assert.Empty(t, ParseTable(""))
	assert.Empty(t, ParseTable("\n   \n"))
}

func TestParseTable_HeaderOnly(t *testing.T) {
	assert.Empty(t, ParseTable("name   state\n"))
}
