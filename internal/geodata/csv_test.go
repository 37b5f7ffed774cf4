package geodata

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeCSV(t, "LONGITUDE,LATITUDE,RAIN,WIND\n"+
		"0.5,1.5,10,3\n"+
		"2.0,3.0,,junk\n"+
		"-1.25,0.0,5.5,2\n")

	table, err := LoadCSV(path, "LONGITUDE", "LATITUDE", []string{"RAIN", "WIND"})
	require.NoError(t, err)

	assert.Equal(t, []string{"RAIN", "WIND"}, table.Columns)
	require.Len(t, table.Records, 3)

	assert.Equal(t, 0, table.Records[0].Index)
	assert.Equal(t, 0.5, table.Records[0].Lon)
	assert.Equal(t, 1.5, table.Records[0].Lat)
	assert.Equal(t, []float64{10, 3}, table.Records[0].Values)

	// Blank and unparsable measurements become NaN.
	assert.True(t, math.IsNaN(table.Records[1].Values[0]))
	assert.True(t, math.IsNaN(table.Records[1].Values[1]))

	assert.Equal(t, -1.25, table.Records[2].Lon)
	assert.Equal(t, 5.5, table.Records[2].Values[0])
}

func TestLoadCSVCustomCoordinateColumns(t *testing.T) {
	path := writeCSV(t, "lng,lat,V\n1,2,3\n")

	table, err := LoadCSV(path, "lng", "lat", []string{"V"})
	require.NoError(t, err)
	require.Len(t, table.Records, 1)
	assert.Equal(t, 1.0, table.Records[0].Lon)
	assert.Equal(t, 2.0, table.Records[0].Lat)
}

func TestLoadCSVMissingColumn(t *testing.T) {
	path := writeCSV(t, "LONGITUDE,LATITUDE\n1,2\n")

	_, err := LoadCSV(path, "LONGITUDE", "LATITUDE", []string{"RAIN"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RAIN")
}

func TestLoadCSVBadCoordinate(t *testing.T) {
	path := writeCSV(t, "LONGITUDE,LATITUDE,V\nnope,2,3\n")

	_, err := LoadCSV(path, "LONGITUDE", "LATITUDE", []string{"V"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "absent.csv"), "LONGITUDE", "LATITUDE", []string{"V"})
	assert.Error(t, err)
}
