package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/discochess/repertoire"
	"github.com/discochess/repertoire/internal/archive"
	"github.com/discochess/repertoire/internal/ingest"
)

var reportCmd = &cobra.Command{
	Use:   "report USERNAME",
	Short: "Build an opening report for a chess.com player",
	Long: `Build an opening report for a chess.com player.

The report classifies every archived game into a curated opening
taxonomy and shows per-opening game counts and win rates for each
color the player held.

Examples:
  # Last three months of blitz and rapid
  repertoire report hikaru --time-classes blitz,rapid

  # Entire archive, win-rate ordered, saved under a key
  repertoire report hikaru --all --sort winRate --save hikaru-2026`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

var (
	reportMonths  int
	reportAll     bool
	reportClasses []string
	reportColor   string
	reportSort    string
	reportJSON    bool
	reportSave    string
)

func init() {
	reportCmd.Flags().IntVar(&reportMonths, "months", 3, "number of trailing months to ingest")
	reportCmd.Flags().BoolVar(&reportAll, "all", false, "ingest the entire archive")
	reportCmd.Flags().StringSliceVar(&reportClasses, "time-classes", nil, "time classes to include (default all)")
	reportCmd.Flags().StringVar(&reportColor, "color", "both", "color to show: white, black, or both")
	reportCmd.Flags().StringVar(&reportSort, "sort", "games", "sort metric: games or winRate")
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "output result as JSON")
	reportCmd.Flags().StringVar(&reportSave, "save", "", "save the result under this key")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	username := args[0]
	if reportColor != "white" && reportColor != "black" && reportColor != "both" {
		return fmt.Errorf("unknown color %q (want white, black, or both)", reportColor)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx := context.Background()

	opts := []repertoire.Option{
		repertoire.WithLogger(logger),
		repertoire.WithBatchCache(cfg.CacheSize),
	}
	if cfg.UserAgent != "" {
		opts = append(opts, repertoire.WithArchiveOptions(archive.WithUserAgent(cfg.UserAgent)))
	}
	if cfg.FetchWorkers > 0 {
		opts = append(opts, repertoire.WithFetchWorkers(cfg.FetchWorkers))
	}
	if cfg.ClassifyWorkers > 0 {
		opts = append(opts, repertoire.WithClassifyWorkers(cfg.ClassifyWorkers))
	}
	if reportSave != "" {
		st, err := cfg.openStore(ctx)
		if err != nil {
			return fmt.Errorf("opening report store: %w", err)
		}
		opts = append(opts, repertoire.WithReportStore(st))
	}
	if !reportJSON {
		opts = append(opts, repertoire.WithProgress(func(p ingest.Progress) {
			fmt.Fprintf(os.Stderr, "\rclassified %d games (batch %d/%d)",
				p.GamesProcessed, p.BatchesFetched, p.BatchesTotal)
		}))
	}

	client, err := repertoire.New(opts...)
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}
	defer client.Close()

	months := reportMonths
	if reportAll {
		months = 0
	}

	res, err := client.BuildReport(ctx, username, months, reportClasses)
	if err != nil {
		if errors.Is(err, repertoire.ErrPlayerNotFound) {
			return fmt.Errorf("player %q not found on chess.com", username)
		}
		return err
	}
	if !reportJSON {
		fmt.Fprintln(os.Stderr)
	}

	if reportSort == string(repertoire.MetricWinRate) {
		if res.White, err = repertoire.Resort(res.White, repertoire.MetricWinRate, true); err != nil {
			return err
		}
		if res.Black, err = repertoire.Resort(res.Black, repertoire.MetricWinRate, true); err != nil {
			return err
		}
	} else if reportSort != string(repertoire.MetricGames) {
		return fmt.Errorf("unknown sort metric %q (want games or winRate)", reportSort)
	}

	if reportSave != "" {
		if err := client.SaveReport(ctx, reportSave, res); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "saved report %q\n", reportSave)
	}

	if reportJSON {
		return printResultJSON(res)
	}
	printResultText(res, reportColor)
	return nil
}

func printResultJSON(res *repertoire.Result) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func printResultText(res *repertoire.Result, color string) {
	fmt.Printf("Player: %s", res.Player.Username)
	if res.Player.Title != "" {
		fmt.Printf(" (%s)", res.Player.Title)
	}
	fmt.Println()
	for _, tc := range []string{"bullet", "blitz", "rapid", "daily"} {
		if r, ok := res.Player.Ratings[tc]; ok {
			fmt.Printf("  %-7s %d (peak %d)\n", tc, r.Current, r.Peak)
		}
	}
	if res.Months > 0 {
		fmt.Printf("Window: last %d months\n", res.Months)
	} else {
		fmt.Println("Window: entire archive")
	}
	if n := len(res.Coverage.BatchErrors); n > 0 {
		fmt.Printf("Warning: %d month batches failed to fetch; coverage is partial\n", n)
	}

	if color == "white" || color == "both" {
		printReport(res.White)
	}
	if color == "black" || color == "both" {
		printReport(res.Black)
	}
}

func printReport(r *repertoire.Report) {
	caser := strings.ToUpper(r.Color[:1]) + r.Color[1:]
	fmt.Printf("\nAs %s: %d games\n", caser, r.Games)
	if len(r.Entries) == 0 {
		fmt.Println("  no classified games")
		return
	}

	s := repertoire.Summarize(r)
	fmt.Printf("  overall %d%% | best %s | worst %s\n", s.WinRate, s.Best, s.Worst)
	for _, e := range r.Entries {
		printEntry(e, 1)
	}
}

func printEntry(e *repertoire.Entry, depth int) {
	fmt.Printf("%s%-40s %5d games  %3d%%\n",
		strings.Repeat("  ", depth), e.Name, e.Games, e.WinRate)
	for _, line := range e.Lines {
		printEntry(line, depth+1)
	}
}
