package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jengzang/geotrend-go/internal/analysis"
	"github.com/jengzang/geotrend-go/internal/api"
	"github.com/jengzang/geotrend-go/internal/config"
	"github.com/jengzang/geotrend-go/internal/render"
)

func main() {
	args := os.Args[1:]
	if len(args) > 0 && args[0] == "serve" {
		runServe(args[1:])
		return
	}
	runAnalyze(args)
}

// dataFlags registers the flags shared by analyze and serve. The two-letter
// short forms (-cw, -ch) alias their long counterparts.
func dataFlags(fs *flag.FlagSet, cfg *config.Config) {
	fs.StringVar(&cfg.LongitudeCol, "longitude-col", cfg.LongitudeCol, "header name of the longitude column")
	fs.StringVar(&cfg.LatitudeCol, "latitude-col", cfg.LatitudeCol, "header name of the latitude column")
	fs.IntVar(&cfg.ChunkWidth, "cw", cfg.ChunkWidth, "number of chunks on the longitude (horizontal)")
	fs.IntVar(&cfg.ChunkWidth, "chunk-width", cfg.ChunkWidth, "number of chunks on the longitude (horizontal)")
	fs.IntVar(&cfg.ChunkHeight, "ch", cfg.ChunkHeight, "number of chunks on the latitude (vertical)")
	fs.IntVar(&cfg.ChunkHeight, "chunk-height", cfg.ChunkHeight, "number of chunks on the latitude (vertical)")
	fs.StringVar(&cfg.Table, "table", cfg.Table, "table name when the input is a SQLite database")
}

// splitPositionals validates the arguments left after flag parsing: an
// input path followed by one or more measurement column names. Flag parsing
// stops at the first positional, so a flag placed after it would otherwise
// be swallowed silently as a column name.
func splitPositionals(rest []string) (string, []string, error) {
	if len(rest) < 2 {
		return "", nil, fmt.Errorf("expected an input path and at least one measurement column")
	}
	for _, arg := range rest[1:] {
		if strings.HasPrefix(arg, "-") {
			return "", nil, fmt.Errorf("flag %s must come before the positional arguments", arg)
		}
	}
	return rest[0], rest[1:], nil
}

// positionals fills the input path and measurement columns from the
// remaining arguments.
func positionals(fs *flag.FlagSet, cfg *config.Config) {
	input, yCols, err := splitPositionals(fs.Args())
	if err != nil {
		fmt.Fprintf(fs.Output(), "%v\nusage: geotrend [serve] [flags] input y_columns...\n", err)
		fs.PrintDefaults()
		os.Exit(2)
	}
	cfg.InputPath = input
	cfg.YColumns = yCols
}

// checkInput exits with code 1 when the input path is not an existing file.
func checkInput(cfg *config.Config) {
	info, err := os.Stat(cfg.InputPath)
	if err != nil || info.IsDir() {
		log.Printf("[main] The specified input is not a file or does not exist: %s", cfg.InputPath)
		os.Exit(1)
	}
}

func runAnalyze(args []string) {
	cfg := config.Load()
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	dataFlags(fs, cfg)
	fs.StringVar(&cfg.OutputPath, "o", cfg.OutputPath, "plot output file (format by extension)")
	fs.StringVar(&cfg.OutputPath, "output", cfg.OutputPath, "plot output file (format by extension)")
	fs.Parse(args)
	positionals(fs, cfg)
	checkInput(cfg)

	result, err := analysis.NewTrendAnalyzer(cfg).Run()
	if err != nil {
		log.Fatalf("[main] Analysis failed: %v", err)
	}

	if err := render.Save(result, cfg.OutputPath); err != nil {
		log.Fatalf("[main] Failed to render plot: %v", err)
	}
	log.Printf("[main] Plot written to %s", cfg.OutputPath)
}

func runServe(args []string) {
	cfg := config.Load()
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	dataFlags(fs, cfg)
	fs.StringVar(&cfg.Port, "port", cfg.Port, "listen address")
	fs.Parse(args)
	positionals(fs, cfg)
	checkInput(cfg)

	result, err := analysis.NewTrendAnalyzer(cfg).Run()
	if err != nil {
		log.Fatalf("[main] Analysis failed: %v", err)
	}

	router := api.SetupRouter(cfg, result)
	log.Printf("[main] Server starting on %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatalf("[main] Failed to start server: %v", err)
	}
}
