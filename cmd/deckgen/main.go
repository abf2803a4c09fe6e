package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kingpin"
	_ "github.com/lib/pq"

	"deckgen.dev/deck"
	"deckgen.dev/deck/pptx"
)

func main() {
	var (
		configFile = kingpin.Arg("config", "Path to the JSON configuration file").Required().ExistingFile()
		output     = kingpin.Flag("output", "Output pptx file").Default("output.pptx").String()
		dataFile   = kingpin.Flag("data", "Sample data file for plot slides").Default("sample.dat").String()
		dataDSN    = kingpin.Flag("data-dsn", "Read plot samples from PostgreSQL instead of --data").String()
		dataQuery  = kingpin.Flag("data-query", "Query returning (x, y) sample rows").Default("SELECT x, y FROM samples ORDER BY x").String()
		logFile    = kingpin.Flag("log", "Log file").Default("deckgen.log").String()
	)
	kingpin.Parse()

	fd, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, "deckgen: opening log file:", err)
		os.Exit(1)
	}
	defer fd.Close()
	slog.SetDefault(slog.New(slog.NewTextHandler(fd, nil)))

	if err := run(*configFile, *output, *dataFile, *dataDSN, *dataQuery); err != nil {
		slog.Error("Generating presentation", "error", err)
		fmt.Fprintln(os.Stderr, "deckgen:", err)
		os.Exit(1)
	}
}

func run(configFile, output, dataFile, dataDSN, dataQuery string) error {
	if !strings.EqualFold(filepath.Ext(configFile), ".json") {
		return fmt.Errorf("configuration file %q must have a .json extension", configFile)
	}

	fd, err := os.Open(configFile)
	if err != nil {
		return err
	}
	d, err := deck.Parse(fd)
	fd.Close()
	if err != nil {
		return err
	}
	slog.Info("Parsed configuration", "file", configFile, "slides", len(d.Slides))

	samples := func() (deck.Series, error) {
		return deck.ReadSamplesFile(dataFile)
	}
	if dataDSN != "" {
		samples = func() (deck.Series, error) {
			db, err := sql.Open("postgres", dataDSN)
			if err != nil {
				return deck.Series{}, err
			}
			defer db.Close()
			return deck.QuerySamples(db, dataQuery)
		}
	}

	bs, err := pptx.Render(d, samples)
	if err != nil {
		return err
	}
	slog.Info("Rendered presentation", "slides", len(d.Slides))

	if err := os.WriteFile(output, bs, 0o644); err != nil {
		return err
	}
	slog.Info("Wrote presentation", "file", output)
	return nil
}
