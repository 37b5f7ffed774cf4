package config

import (
	"os"
)

// Config holds everything one analysis run needs.
type Config struct {
	InputPath    string
	YColumns     []string
	LongitudeCol string
	LatitudeCol  string
	ChunkWidth   int
	ChunkHeight  int
	OutputPath   string

	// SQLite input only
	Table string

	// serve mode only
	Port      string
	JWTSecret string
}

// Load returns a config populated with defaults and environment overrides.
// CLI flags are layered on top by the caller.
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	table := os.Getenv("GEOTREND_TABLE")
	if table == "" {
		table = "geodata"
	}

	return &Config{
		LongitudeCol: "LONGITUDE",
		LatitudeCol:  "LATITUDE",
		ChunkWidth:   32,
		ChunkHeight:  32,
		OutputPath:   "trend.png",
		Table:        table,
		Port:         port,
		JWTSecret:    os.Getenv("JWT_SECRET"),
	}
}
