package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/avd-sessions-cli/internal/application"
	"github.com/bnema/avd-sessions-cli/internal/domain"
	"github.com/spf13/cobra"
)

type disconnectOptions struct {
	user          string
	pool          string
	resourceGroup string
	asJSON        bool
}

// configureDisconnectRun attaches the disconnect flags and run logic to
// the root command. Disconnecting is the primary operation, so it runs
// without a subcommand.
func configureDisconnectRun(rootCmd *cobra.Command, app *app) {
	var opts disconnectOptions

	rootCmd.Args = cobra.NoArgs
	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runDisconnect(cmd, app, opts)
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.user, "user", "u", "", "User principal name whose sessions are disconnected")
	flags.StringVarP(&opts.pool, "pool", "p", "", "Host pool name")
	flags.StringVarP(&opts.resourceGroup, "resource-group", "g", "", "Resource group containing the host pool")
	flags.BoolVar(&opts.asJSON, "json", false, "Render JSON output")

	_ = rootCmd.MarkFlagRequired("user")
	_ = rootCmd.MarkFlagRequired("pool")
	_ = rootCmd.MarkFlagRequired("resource-group")
}

func runDisconnect(cmd *cobra.Command, app *app, opts disconnectOptions) error {
	command := application.DisconnectUserCommand{
		UserPrincipalName: opts.user,
		Pool: domain.Pool{
			ResourceGroup: domain.ResourceGroup(opts.resourceGroup),
			Name:          domain.PoolName(opts.pool),
		},
	}

	var summary domain.RunSummary
	run := func(ctx context.Context) error {
		var err error
		summary, err = app.service.DisconnectUser(ctx, command)
		return err
	}

	if opts.asJSON {
		if err := run(cmd.Context()); err != nil {
			return err
		}
	} else {
		if err := runDisconnectSpinner(cmd.Context(), cmd.ErrOrStderr(), run); err != nil {
			return err
		}
	}

	return writeSummaryOutput(cmd, app, summary, opts.asJSON)
}

func writeSummaryOutput(cmd *cobra.Command, app *app, summary domain.RunSummary, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	rendered, err := app.reportRenderer(summary)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
