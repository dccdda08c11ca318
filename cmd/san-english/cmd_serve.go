package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lgbarn/san-english-go/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the translator as a JSON HTTP API",
		Long: `Serve the translator over HTTP.

Endpoints:
  GET  /healthz         liveness check
  POST /api/translate   {"san": "Nf3", "mode": "verbose"}
  POST /api/game        {"movetext": "1. e4 e5 2. Nf3", "mode": "simple"}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if changed(cmd.Flags(), "addr") {
				a.cfg.Server.Addr = addr
			}

			srv := server.New(a.cfg, a.log())

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sig)
			go func() {
				if _, ok := <-sig; ok {
					a.log().Info("shutting down")
					_ = srv.Shutdown()
				}
			}()

			return srv.Listen(a.cfg.Server.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, \":8080\")")

	return cmd
}
