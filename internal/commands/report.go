package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-expense-vault/models"
	"github.com/spf13/cobra"
)

func newReportCommand(opts *options) *cobra.Command {
	var (
		rangeFlag string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show spending by category from the last decryption",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reportRange, err := models.ParseReportRange(rangeFlag)
			if err != nil {
				return fail(cmd, err)
			}

			return opts.withApp(cmd, func(ctx context.Context, a App) error {
				if _, err := refresh(ctx, cmd, a); err != nil {
					return err
				}

				report, err := a.Services().Reports.Build(ctx, reportRange, time.Now())
				if err != nil {
					return fail(cmd, err)
				}

				if asJSON {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(report)
				}
				renderReport(cmd.OutOrStdout(), report)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&rangeFlag, "range", "r", string(models.RangeAll), "report range: all, daily, weekly or monthly")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")

	return cmd
}

func newServeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the read-only report API and watch the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a App) error {
				return a.Run(ctx)
			})
		},
	}
}

func newVersionCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", opts.buildInfo.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", opts.buildInfo.BuildDate())
			fmt.Fprintf(out, "Build commit: %s\n", opts.buildInfo.BuildCommit())
		},
	}
}
