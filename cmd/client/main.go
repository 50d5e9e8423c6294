// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-accounts/internal/adapter"
	"github.com/MKhiriev/go-accounts/internal/client"
	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewConsoleLogger("go-accounts-client", os.Stderr)

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprint(os.Stderr, client.Usage)
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if len(args) == 1 && args[0] == "build-info" {
		printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	app := client.NewApp(serverAdapter, cfg.Credentials, os.Stdout, log)
	if err = app.Run(ctx, args); err != nil {
		if errors.Is(err, client.ErrNoCommand) || errors.Is(err, client.ErrUnknownCommand) || errors.Is(err, client.ErrUsage) {
			fmt.Fprint(os.Stderr, client.Usage)
		}
		log.Fatal().Err(err).Msg("client command failed")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
