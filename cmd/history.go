package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/bnema/avd-sessions-cli/internal/application"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *app) *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "List past disconnect runs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return writeRunRecord(cmd, app, args[0], asJSON)
			}

			records, err := app.service.RunHistory(cmd.Context(), application.RunHistoryQuery{Limit: limit})
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(records)
			}

			if len(records) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded yet.")
				return err
			}

			for _, record := range records {
				disconnected := record.DisconnectedPrimary + record.DisconnectedFallback
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%d matched, %d disconnected, %d failed\n",
					record.FinishedAt.Format(time.RFC3339),
					record.ID,
					record.Pool,
					record.User,
					record.SessionsMatched,
					disconnected,
					record.Failed,
				)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of runs to show")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func writeRunRecord(cmd *cobra.Command, app *app, id string, asJSON bool) error {
	record, err := app.service.RunByID(cmd.Context(), id)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(record)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "run:          %s\n", record.ID)
	_, _ = fmt.Fprintf(out, "pool:         %s\n", record.Pool)
	_, _ = fmt.Fprintf(out, "user:         %s\n", record.User)
	_, _ = fmt.Fprintf(out, "started:      %s\n", record.StartedAt.Format(time.RFC3339))
	_, _ = fmt.Fprintf(out, "finished:     %s\n", record.FinishedAt.Format(time.RFC3339))
	_, _ = fmt.Fprintf(out, "hosts:        %d visited, %d failed\n", record.HostsVisited, record.HostsFailed)
	_, _ = fmt.Fprintf(out, "sessions:     %d matched\n", record.SessionsMatched)
	_, _ = fmt.Fprintf(out, "disconnected: %d primary, %d fallback, %d failed\n",
		record.DisconnectedPrimary, record.DisconnectedFallback, record.Failed)

	return nil
}
