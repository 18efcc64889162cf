package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"executive-assistant/internal/app"
	"executive-assistant/internal/report"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var errSyncDisabled = errors.New("tracker sync is not configured (zoho.* settings)")

func syncCmd() *cobra.Command {
	var compare bool
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Pull projects from the tracker and rewrite the snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				if a.Sync == nil {
					return errSyncDisabled
				}
				out, err := a.Sync.Sync(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "fetched=%d kept=%d skipped=%d path=%s took=%s\n",
					out.Fetched, out.Kept, len(out.Skipped), out.Path, out.Duration.Round(time.Millisecond))

				if !compare {
					return nil
				}
				cmp, err := a.Sync.Compare(ctx)
				if err != nil {
					return err
				}
				tw := table.NewWriter()
				tw.SetOutputMirror(cmd.OutOrStdout())
				tw.AppendHeader(table.Row{"Project", "Before", "After", "Delta"})
				for _, e := range cmp.Evolved {
					tw.AppendRow(table.Row{e.Name, e.Before, e.After, e.Delta})
				}
				for _, s := range cmp.Stagnant {
					tw.AppendRow(table.Row{s.Name, s.Percent, s.Percent, 0})
				}
				tw.Render()
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&compare, "compare", false, "print progress against the recorded history")
	return cmd
}

func reportCmd() *cobra.Command {
	var opt report.RunOptions
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build the weekly follow-up digest",
		Long: `Prints the digest of overdue tasks and progress. With --send the HTML
body is mailed to the report recipient; with --record the current
percentages become the new history baseline.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				if opt.RecordHistory && a.Sync == nil {
					return errSyncDisabled
				}
				out, err := a.Report.Run(ctx, opt)
				if err != nil {
					return err
				}

				w := cmd.OutOrStdout()
				fmt.Fprintln(w, report.Summary(out.Digest))
				if out.Sent {
					fmt.Fprintln(w, out.Result)
				} else {
					fmt.Fprintln(w, out.HTML)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&opt.SendEmail, "send", false, "send the digest by email")
	cmd.Flags().BoolVar(&opt.RecordHistory, "record", false, "record percentages after reporting")
	return cmd
}
