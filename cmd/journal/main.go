package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"trade-journal-go/internal/charts"
	"trade-journal-go/internal/coach"
	"trade-journal-go/internal/config"
	"trade-journal-go/internal/i18n"
	"trade-journal-go/internal/journal"
	"trade-journal-go/internal/logger"
	"trade-journal-go/internal/numfmt"
	"trade-journal-go/internal/stats"
)

func main() {
	configPath := flag.String("config", "./configs", "directory holding config.yml")
	importFile := flag.String("import", "", "CSV file to import")
	window := flag.String("window", "all", "statistics window: all, today, week or month")
	exportDir := flag.String("export", "", "directory to export the journal CSV into")
	chartsDir := flag.String("charts", "", "directory to render chart SVGs into")
	askCoach := flag.Bool("coach", false, "request an AI coaching comment for the newest trade")
	flag.Parse()

	// .env keeps the AI key out of config files.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	lang := cfg.Journal.Language
	j := journal.New(lang, log)

	if *importFile != "" {
		f, err := os.Open(*importFile)
		if err != nil {
			log.Fatal("Failed to open import file", zap.Error(err))
		}
		count, _, err := j.ImportCSV(f)
		f.Close()
		if err != nil {
			// Import failures abort atomically; nothing was merged.
			fmt.Fprintf(os.Stderr, "Import failed: %v\n", err)
			os.Exit(1)
		}
		log.Info("Imported records", zap.Int("count", count))
	}

	snap := j.SetFilter(stats.ParseWindow(*window))
	printReport(lang, snap)

	if *chartsDir != "" {
		if err := renderCharts(*chartsDir, lang, snap); err != nil {
			log.Error("Failed to render charts", zap.Error(err))
		}
	}

	if *exportDir != "" {
		path := filepath.Join(*exportDir, j.ExportFilename())
		f, err := os.Create(path)
		if err != nil {
			log.Fatal("Failed to create export file", zap.Error(err))
		}
		if err := j.ExportCSV(f); err != nil {
			f.Close()
			log.Fatal("Export failed", zap.Error(err))
		}
		f.Close()
		log.Info("Journal exported", zap.String("path", path))
	}

	if *askCoach && cfg.AI.Enabled && len(snap.Records) > 0 {
		runCoach(&cfg.AI, log, lang, snap)
	}
}

// printReport writes the localized summary and breakdown tables.
func printReport(lang string, snap journal.Snapshot) {
	tag := i18n.Tag(lang)
	r := snap.Report

	fmt.Printf("\n%s (%s)\n", i18n.T(lang, "summary.title"), i18n.T(lang, "window."+string(r.Window)))
	fmt.Printf("  %-20s %d\n", i18n.T(lang, "summary.trades"), r.TotalTrades)
	fmt.Printf("  %-20s %s\n", i18n.T(lang, "summary.win_rate"), numfmt.FormatPercent(tag, r.WinRate))
	fmt.Printf("  %-20s %s\n", i18n.T(lang, "summary.net_result"), numfmt.FormatCurrency(tag, r.NetResult))
	fmt.Printf("  %-20s %s\n", i18n.T(lang, "summary.points"), numfmt.FormatNumber(tag, r.TotalPoints, 1))
	fmt.Printf("  %-20s %d\n", i18n.T(lang, "summary.lots"), r.TotalLots)

	printBreakdown(lang, tag, "breakdown.trigger", r.ByTrigger)
	printBreakdown(lang, tag, "breakdown.region", r.ByRegion)
	printBreakdown(lang, tag, "breakdown.side", r.BySide)
}

func printBreakdown(lang string, tag language.Tag, titleKey string, data map[string]stats.Bucket) {
	fmt.Printf("\n%s\n", i18n.T(lang, titleKey))
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b := data[k]
		fmt.Printf("  %-20s %3dx  %s\n", k, b.Count, numfmt.FormatCurrency(tag, b.Result))
	}
}

// renderCharts writes the three category bar charts and the cumulative
// area chart as SVG files.
func renderCharts(dir, lang string, snap journal.Snapshot) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	noData := i18n.T(lang, "chart.no_data")
	r := snap.Report

	bars := []struct {
		name  string
		title string
		data  map[string]stats.Bucket
	}{
		{"by_trigger.svg", i18n.T(lang, "breakdown.trigger"), r.ByTrigger},
		{"by_region.svg", i18n.T(lang, "breakdown.region"), r.ByRegion},
		{"by_side.svg", i18n.T(lang, "breakdown.side"), r.BySide},
	}
	for _, b := range bars {
		f, err := os.Create(filepath.Join(dir, b.name))
		if err != nil {
			return err
		}
		charts.RenderCategoryBars(f, b.data, b.title, noData)
		f.Close()
	}

	f, err := os.Create(filepath.Join(dir, "cumulative.svg"))
	if err != nil {
		return err
	}
	defer f.Close()
	if err := charts.RenderCumulativeArea(f, r.Cumulative, i18n.T(lang, "summary.net_result")); err != nil {
		if errors.Is(err, charts.ErrInsufficientData) {
			fmt.Fprintf(os.Stderr, "%s\n", noData)
			return nil
		}
		return err
	}
	return nil
}

// runCoach asks for a comment on the newest trade and waits for it.
func runCoach(cfg *config.AI, log *zap.Logger, lang string, snap journal.Snapshot) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		sigchan := make(chan os.Signal, 1)
		signal.Notify(sigchan, syscall.SIGINT, syscall.SIGTERM)
		<-sigchan
		cancel()
	}()

	newest := snap.Records[0]
	for _, rec := range snap.Records {
		if rec.ID > newest.ID {
			newest = rec
		}
	}

	client := coach.NewClient(cfg, log)
	advisor := coach.NewAdvisor(client, log, lang, func(c coach.Comment) {
		fmt.Printf("\n%s\n", c.Text)
	})
	advisor.Request(ctx, coach.Prompt{Record: newest, WinRate: snap.Report.WinRate})
	advisor.Wait()
}
