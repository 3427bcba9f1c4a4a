// Copyright 2026 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/mx-olulo/scope-service/internal/config"
	"github.com/mx-olulo/scope-service/internal/db"
	"github.com/mx-olulo/scope-service/internal/logging"
	"github.com/mx-olulo/scope-service/internal/monitoring/prometheus"
	"github.com/mx-olulo/scope-service/internal/storage"
	"github.com/mx-olulo/scope-service/internal/tracing"
	"github.com/mx-olulo/scope-service/pkg/permissions"
	"github.com/mx-olulo/scope-service/pkg/seeding"
)

// seedCmd reconciles the permission catalog and role bindings.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the permission catalog and role bindings",
	Long:  `Reconcile permissions and per-role bindings across all scope levels. Safe to run repeatedly.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := seed(cmd); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func seed(cmd *cobra.Command) error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("scope-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbClient, err := db.NewDBClient(db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()

	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	checker, err := permissions.NewChecker(s, specs.PermissionCacheSize, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create permission checker: %v", err)
	}

	seeder := seeding.NewSeeder(s, checker, tracer, monitor, logger)
	return seeder.Run(cmd.Context())
}
