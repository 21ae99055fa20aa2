package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Load and validate the datasets without starting the server",
	RunE:  runCheck,
}

func init() {
	addCommonFlags(checkCmd)
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	flags := flagsFromCommand(ctx, cmd)

	cfg, err := loadConfigurationFile(flags[configPath])
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	app, err := loadApp(ctx, cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "ok: %d people, %d companies\n", len(app.People(ctx)), len(app.Companies(ctx)))

	return nil
}
