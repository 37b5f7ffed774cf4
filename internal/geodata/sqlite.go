package geodata

import (
	"database/sql"
	"fmt"
	"math"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/jengzang/geotrend-go/internal/models"
)

// LoadSQLite reads point geodata from a table in a SQLite database.
// NULL measurement values become NaN.
func LoadSQLite(path, table, lonCol, latCol string, yCols []string) (*models.Table, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	cols := make([]string, 0, 2+len(yCols))
	for _, c := range append([]string{lonCol, latCol}, yCols...) {
		cols = append(cols, quoteIdent(c))
	}
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(cols, ", "), quoteIdent(table))

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	result := &models.Table{Columns: yCols}
	for rows.Next() {
		var lon, lat float64
		measurements := make([]sql.NullFloat64, len(yCols))

		dest := make([]interface{}, 0, 2+len(yCols))
		dest = append(dest, &lon, &lat)
		for i := range measurements {
			dest = append(dest, &measurements[i])
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		values := make([]float64, len(yCols))
		for i, m := range measurements {
			if m.Valid {
				values[i] = m.Float64
			} else {
				values[i] = math.NaN()
			}
		}

		result.Records = append(result.Records, models.Record{
			Index:  len(result.Records),
			Lon:    lon,
			Lat:    lat,
			Values: values,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	return result, nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
