// Package main provides the entry point for the Paranuara citizen registry api.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const serviceName string = "paranuara"

var rootCmd = &cobra.Command{
	Use:           serviceName,
	Short:         "Paranuara citizen registry",
	Long:          "Serves read only information about the people and companies of Paranuara over a REST api.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
