// Package main - Entry point for the datacenter-tco scenario server
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"datacenter-tco/api"
	"datacenter-tco/core/engine"
	"datacenter-tco/internal/config"
	"datacenter-tco/internal/logging"
)

const version = "0.1.0"

func main() {
	addr := flag.String("addr", "", "listen address, overrides the configured one")
	cfgPath := flag.String("config", "", "path to the config file")
	flag.Parse()

	if err := run(*addr, *cfgPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(addr, cfgPath string) error {
	path := cfgPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if addr == "" {
		addr = cfg.Server.Address
	}

	e := engine.NewEngine(cfg.Engine)
	server := &http.Server{
		Addr:        addr,
		Handler:     api.NewServer(e, version, logger),
		ReadTimeout: time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.String("addr", addr),
			zap.String("version", version),
		)
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}
