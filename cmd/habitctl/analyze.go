package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fyrsmithlabs/habitd/internal/analyzer"
	"github.com/fyrsmithlabs/habitd/internal/config"
	"github.com/fyrsmithlabs/habitd/internal/habit"
	"github.com/fyrsmithlabs/habitd/internal/logging"
	"github.com/fyrsmithlabs/habitd/internal/telemetry"
	"github.com/fyrsmithlabs/habitd/internal/textsignal"
)

// loadExport reads and parses a tracker export file.
func loadExport(path string) (*habit.Export, error) {
	if path == "" {
		return nil, fmt.Errorf("--data is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read export %s: %w", path, err)
	}
	var export habit.Export
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("parse export %s: %w", path, err)
	}
	return &export, nil
}

// analysisWindow derives [from, to] from the export's last record date and
// the --days flag. days <= 0 leaves the window open.
func analysisWindow(export *habit.Export, days int) (time.Time, time.Time) {
	if days <= 0 || len(export.Records) == 0 {
		return time.Time{}, time.Time{}
	}
	to := export.Records[0].Date
	for _, r := range export.Records {
		if r.Date.After(to) {
			to = r.Date
		}
	}
	from := to.AddDate(0, 0, -(days - 1))
	return from, to
}

// runAnalysis wires config, logging, and the analyzer service, then runs
// one pass over the export.
func runAnalysis(ctx context.Context) (*analyzer.Report, error) {
	cfg, err := config.LoadWithFile(configPath)
	if err != nil {
		return nil, err
	}

	tel, err := telemetry.New(ctx, &cfg.Telemetry)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tel.Shutdown(context.Background()) }()

	logger, err := logging.NewLogger(&cfg.Log, tel.LoggerProvider())
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	export, err := loadExport(dataPath)
	if err != nil {
		return nil, err
	}

	id := trackerID
	if id == "" {
		id = export.TrackerID
	}

	source := habit.NewSliceSource(export.Records, export.Notes)
	svc, err := analyzer.NewService(source, textsignal.NewLexiconExtractor(), analyzer.Options{
		Engine:  cfg.Engine,
		Horizon: cfg.Forecast.HorizonDays,
		Logger:  logger,
		Tracer:  tel.Tracer("habitd/analyzer"),
	})
	if err != nil {
		return nil, err
	}

	from, to := analysisWindow(export, days)
	return svc.Analyze(ctx, id, from, to, horizon)
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
