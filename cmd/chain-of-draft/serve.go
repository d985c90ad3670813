// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/chain-of-draft/internal/dashboard"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the browser dashboard",
	Long: `Serve starts an HTTP dashboard with a configuration sidebar, both step
lists, metric cards, latency and token bar charts, and a CSV download.
The --steps, --token-limit, --compare, and --seed values become the form
defaults. Stop with Ctrl-C; in-flight requests finish before exit.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", ":8501", "listen address")
	serveCmd.Flags().Bool("debug", false, "run the router in debug mode")
	if err := viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("server.debug", serveCmd.Flags().Lookup("debug")); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	defaults, err := runConfig()
	if err != nil {
		return err
	}
	srv, err := dashboard.New(serverConfig(), defaults, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Serving dashboard on %s\n", srv.Addr())
	return srv.ListenAndServe(ctx)
}
