package main

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/discochess/repertoire"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "List saved reports",
	Args:  cobra.NoArgs,
	RunE:  runReports,
}

var showCmd = &cobra.Command{
	Use:   "show KEY",
	Short: "Show a previously saved report",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var (
	showColor string
	showJSON  bool
)

func init() {
	showCmd.Flags().StringVar(&showColor, "color", "both", "color to show: white, black, or both")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output result as JSON")
	rootCmd.AddCommand(reportsCmd)
	rootCmd.AddCommand(showCmd)
}

func newStoredClient(ctx context.Context) (*repertoire.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger, err := newLogger()
	if err != nil {
		return nil, err
	}
	st, err := cfg.openStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("opening report store: %w", err)
	}
	return repertoire.New(
		repertoire.WithLogger(logger),
		repertoire.WithReportStore(st),
	)
}

func runReports(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	client, err := newStoredClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	keys, err := client.ListReports(ctx)
	if err != nil {
		return fmt.Errorf("listing reports: %w", err)
	}
	if len(keys) == 0 {
		fmt.Println("no saved reports")
		return nil
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Println(key)
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	key := args[0]
	if showColor != "white" && showColor != "black" && showColor != "both" {
		return fmt.Errorf("unknown color %q (want white, black, or both)", showColor)
	}

	ctx := context.Background()
	client, err := newStoredClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	res, err := client.LoadReport(ctx, key)
	if err != nil {
		if errors.Is(err, repertoire.ErrReportNotFound) {
			return fmt.Errorf("no saved report %q; run 'repertoire reports' to list keys", key)
		}
		return err
	}

	if showJSON {
		return printResultJSON(res)
	}
	printResultText(res, showColor)
	return nil
}
