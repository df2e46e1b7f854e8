package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd создаёт корневую команду roster со всеми подкомандами.
func NewRootCmd(app *App, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "roster",
		Short:         "Fetch the House members roster and run the fetch-then-check pipeline",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.RunDefault(cmd.Context())
		},
	}

	cmd.AddCommand(
		newFetchCmd(app),
		newCheckCmd(app),
		newScheduleCmd(app),
		newLoadCmd(app),
	)

	return cmd
}

func newFetchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Fetch, check and write the members file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := app.Fetch(cmd.Context())
			return err
		},
	}
}

func newCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run the pipeline (fetch is skipped when the file exists)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := app.RunPipeline(cmd.Context())
			return err
		},
	}
}

func newScheduleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Run fetch and pipeline on the ROSTER_SCHEDULE cron expression",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Schedule(cmd.Context())
		},
	}
}

func newLoadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Load the members file into Postgres (DB_URL)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := app.Load(cmd.Context())
			return err
		},
	}
}
