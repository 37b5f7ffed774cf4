package geodata

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/jengzang/geotrend-go/internal/models"
)

// LoadCSV reads a delimited text file with a header row. Column names are
// case-sensitive. Coordinate fields must parse as numbers; blank or
// unparsable measurement fields become NaN.
func LoadCSV(path string, lonCol, latCol string, yCols []string) (*models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		colIndex[strings.TrimSpace(name)] = i
	}

	lonIdx, err := resolveColumn(colIndex, lonCol)
	if err != nil {
		return nil, err
	}
	latIdx, err := resolveColumn(colIndex, latCol)
	if err != nil {
		return nil, err
	}
	yIdx := make([]int, len(yCols))
	for i, name := range yCols {
		if yIdx[i], err = resolveColumn(colIndex, name); err != nil {
			return nil, err
		}
	}

	table := &models.Table{Columns: yCols}
	line := 1
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		line++

		lon, err := strconv.ParseFloat(strings.TrimSpace(row[lonIdx]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad %s value %q", line, lonCol, row[lonIdx])
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(row[latIdx]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad %s value %q", line, latCol, row[latIdx])
		}

		values := make([]float64, len(yIdx))
		for i, idx := range yIdx {
			values[i] = parseMeasurement(row[idx])
		}

		table.Records = append(table.Records, models.Record{
			Index:  len(table.Records),
			Lon:    lon,
			Lat:    lat,
			Values: values,
		})
	}

	return table, nil
}

func resolveColumn(colIndex map[string]int, name string) (int, error) {
	idx, ok := colIndex[name]
	if !ok {
		return 0, fmt.Errorf("column %q not found in input header", name)
	}
	return idx, nil
}

// parseMeasurement maps blank or non-numeric fields to NaN so the
// aggregation step can treat them as missing.
func parseMeasurement(field string) float64 {
	field = strings.TrimSpace(field)
	if field == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
