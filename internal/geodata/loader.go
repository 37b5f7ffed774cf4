// Package geodata loads point geodata tables from CSV files or SQLite
// databases.
package geodata

import (
	"path/filepath"
	"strings"

	"github.com/jengzang/geotrend-go/internal/config"
	"github.com/jengzang/geotrend-go/internal/models"
)

// Load reads the configured input into a table. SQLite databases are
// recognized by extension; everything else is parsed as delimited text.
func Load(cfg *config.Config) (*models.Table, error) {
	switch strings.ToLower(filepath.Ext(cfg.InputPath)) {
	case ".db", ".sqlite", ".sqlite3":
		return LoadSQLite(cfg.InputPath, cfg.Table, cfg.LongitudeCol, cfg.LatitudeCol, cfg.YColumns)
	default:
		return LoadCSV(cfg.InputPath, cfg.LongitudeCol, cfg.LatitudeCol, cfg.YColumns)
	}
}
