// Package main starts the demo server after configuring it from supplied or standard arguments.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/gspinelli/gskit/server"
)

// main configures and runs the server.
func main() {
	ctx := context.Background()
	log.SetHandler(cli.New(os.Stderr))
	m, err := newMainFlags(os.Args, os.LookupEnv)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return
	case err != nil:
		log.WithError(err).Fatal("parsing flags")
	}
	log.SetLevel(m.logLevel())
	cfg := m.serverConfig()
	staticFS := os.DirFS(m.staticDir)
	s, err := cfg.NewServer(log.Log, staticFS)
	if err != nil {
		log.WithError(err).Fatal("creating server")
	}
	if err := runServer(ctx, s); err != nil {
		log.WithError(err).Fatal("running server")
	}
	log.Info("server run stopped successfully")
}

// runServer runs the server until it is interrupted or terminated.
func runServer(ctx context.Context, s *server.Server) error {
	done := make(chan os.Signal, 2)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)
	errC := s.Run(ctx)
	select { // BLOCKING
	case err := <-errC:
		if err != nil {
			return fmt.Errorf("server stopped unexpectedly: %w", err)
		}
		log.Info("server shutdown triggered")
	case signal := <-done:
		log.Infof("handled signal: %v", signal)
	}
	if err := s.Stop(ctx); err != nil {
		return fmt.Errorf("stopping server: %w", err)
	}
	return nil
}
