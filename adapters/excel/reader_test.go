package excel

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

func TestReadCSV_TrimsHeadersOnly(t *testing.T) {
	in := "\xef\xbb\xbf id , place_name ,distance_from_pune_km\n1,  Sinhagad Fort ,25 km\n\n2,Lonavala,\n"

	table, err := ReadCSV(strings.NewReader(in), "")
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "place_name", "distance_from_pune_km"}, table.Headers)
	require.Len(t, table.Rows, 2, "blank lines are skipped")
	assert.Equal(t, "  Sinhagad Fort ", table.Rows[0]["place_name"])
	assert.Equal(t, "25 km", table.Rows[0]["distance_from_pune_km"])
	assert.Equal(t, "", table.Rows[1]["distance_from_pune_km"])
}

func TestReadCSV_EmptyCellRowsKeepTheirPlace(t *testing.T) {
	in := "place_name,category\nAlpha,x\n,\n\nBeta,y\n"

	table, err := ReadCSV(strings.NewReader(in), "")
	require.NoError(t, err)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, "Alpha", table.Rows[0]["place_name"])
	assert.Equal(t, RawRowData{"place_name": "", "category": ""}, table.Rows[1])
	assert.Equal(t, "Beta", table.Rows[2]["place_name"])
}

func TestReadCSV_RaggedRows(t *testing.T) {
	in := "a,b,c\n1,2\n3,4,5,6\n"

	table, err := ReadCSV(strings.NewReader(in), "")
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)

	_, ok := table.Rows[0]["c"]
	assert.False(t, ok)
	assert.Equal(t, "5", table.Rows[1]["c"])
	assert.Len(t, table.Rows[1], 3)
}

func TestReadCSV_HeaderOnlyAndEmpty(t *testing.T) {
	table, err := ReadCSV(strings.NewReader("id,place_name\n"), "")
	require.NoError(t, err)
	assert.Empty(t, table.Rows)
	assert.True(t, table.HasColumn("place_name"))

	_, err = ReadCSV(strings.NewReader(""), "")
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestReadCSV_Latin1(t *testing.T) {
	encoded, err := charmap.ISO8859_1.NewEncoder().String("place_name,category\nCafé Goodluck,Urban & Fun\n")
	require.NoError(t, err)

	table, err := ReadCSV(bytes.NewReader([]byte(encoded)), "ISO-8859-1")
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Café Goodluck", table.Rows[0]["place_name"])

	_, err = ReadCSV(strings.NewReader("a\n1\n"), "ebcdic")
	assert.Error(t, err)
}

func TestRawTable_AddColumn(t *testing.T) {
	table := &RawTable{
		Headers: []string{"category"},
		Rows:    []RawRowData{{"category": "Nature & Outdoors"}, {"category": ""}},
	}

	table.AddColumn("subcategory", func(r RawRowData) string { return r["category"] })

	assert.True(t, table.HasColumn("subcategory"))
	assert.Equal(t, "Nature & Outdoors", table.Rows[0]["subcategory"])
	assert.Len(t, table.Records(), 2)
}

func TestDataReader_ReadsCSVAndXLSX(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "places.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("id,place_name\n7,Pawna Lake\n"), 0o644))

	table, err := NewDataReader(DefaultReaderConfig(csvPath)).ReadData()
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Pawna Lake", table.Rows[0]["place_name"])

	xlsxPath := filepath.Join(dir, "places.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"id", " place_name "}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"9", "Tamhini Ghat"}))
	require.NoError(t, f.SaveAs(xlsxPath))
	require.NoError(t, f.Close())

	table, err = NewDataReader(DefaultReaderConfig(xlsxPath)).ReadData()
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "place_name"}, table.Headers)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Tamhini Ghat", table.Rows[0]["place_name"])
}

func TestDataReader_MissingFile(t *testing.T) {
	_, err := NewDataReader(DefaultReaderConfig(filepath.Join(t.TempDir(), "nope.csv"))).ReadData()
	assert.ErrorIs(t, err, os.ErrNotExist)
}
