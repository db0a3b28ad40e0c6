package main

import (
	"fmt"
	"os"
	"time"

	"marketboard/cmd"
	"marketboard/internal/config"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "marketboard",
		Short: "Market dashboard backend for quotes, FX and central-bank rates",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to config file")

	root.AddCommand(serveCmd(&configPath))
	root.AddCommand(snapshotCmd(&configPath))

	return root
}

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			apiHandler, err := cmd.InitializeDependencies(cfg)
			if err != nil {
				return err
			}
			return apiHandler.StartApi(cfg.Server.Port)
		},
	}
}

func snapshotCmd(configPath *string) *cobra.Command {
	var start, end string

	out := &cobra.Command{
		Use:   "snapshot [symbol ...]",
		Short: "Print snapshot rows for symbols to stdout",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			apiHandler, err := cmd.InitializeDependencies(cfg)
			if err != nil {
				return err
			}

			startDate, err := time.Parse("2006-01-02", start)
			if err != nil {
				return fmt.Errorf("invalid --start: %w", err)
			}
			endDate, err := time.Parse("2006-01-02", end)
			if err != nil {
				return fmt.Errorf("invalid --end: %w", err)
			}

			decimals := int32(cfg.Display.Decimals)
			for _, symbol := range args {
				snapshot, err := apiHandler.DashboardHandler.SnapshotFor(symbol, startDate, endDate)
				if err != nil {
					fmt.Printf("%-12s N/A\n", symbol)
					continue
				}
				fmt.Printf("%-12s value=%s daily=%s week=%s ytd=%s\n",
					symbol,
					snapshot.Value.Format(decimals),
					snapshot.Daily.FormatPercent(),
					snapshot.Week.FormatPercent(),
					snapshot.YTD.FormatPercent(),
				)
			}
			return nil
		},
	}
	out.Flags().StringVar(&start, "start", time.Now().UTC().AddDate(0, -1, 0).Format("2006-01-02"), "window start (YYYY-MM-DD)")
	out.Flags().StringVar(&end, "end", time.Now().UTC().Format("2006-01-02"), "window end (YYYY-MM-DD)")

	return out
}
