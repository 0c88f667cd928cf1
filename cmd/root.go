package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "avds",
		Short:         "Force-disconnect a user's remote desktop sessions across a host pool",
		Long:          "avds walks every session host in a desktop-virtualization host pool, finds the sessions belonging to one user and force-disconnects each of them, then prints a per-host report of what happened.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	configureDisconnectRun(rootCmd, app)

	rootCmd.AddCommand(
		newVersionCmd(),
		newHistoryCmd(app),
	)

	return rootCmd
}
