// Copyright 2026 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/mx-olulo/scope-service/internal/config"
	"github.com/mx-olulo/scope-service/internal/db"
	"github.com/mx-olulo/scope-service/internal/logging"
	"github.com/mx-olulo/scope-service/internal/monitoring/prometheus"
	"github.com/mx-olulo/scope-service/internal/sessions"
	"github.com/mx-olulo/scope-service/internal/storage"
	"github.com/mx-olulo/scope-service/internal/tracing"
	"github.com/mx-olulo/scope-service/pkg/access"
	"github.com/mx-olulo/scope-service/pkg/membership"
	"github.com/mx-olulo/scope-service/pkg/permissions"
	"github.com/mx-olulo/scope-service/pkg/tenantinit"
	"github.com/mx-olulo/scope-service/pkg/tenants"
	"github.com/mx-olulo/scope-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("scope-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	sessionStore := sessions.NewStore(
		sessions.Config{
			Addr:     specs.RedisAddr,
			Password: specs.RedisPassword,
			DB:       specs.RedisDB,
			TTL:      specs.SessionTTL,
		},
		tracer,
		monitor,
		logger,
	)

	membershipService := membership.NewService(s, tracer, monitor, logger)

	checker, err := permissions.NewChecker(s, specs.PermissionCacheSize, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create permission checker: %v", err)
	}

	initializer := tenantinit.NewInitializer(s, tracer, monitor, logger)

	accessHandler := access.NewHandler(
		access.NewService(membershipService, sessionStore, tracer, monitor, logger),
		tracer, monitor, logger,
	)
	tenantsHandler := tenants.NewHandler(
		tenants.NewService(s, membershipService, checker, initializer, tracer, monitor, logger),
		tracer, monitor, logger,
	)

	router := web.NewRouter(
		s,
		dbClient,
		sessionStore,
		accessHandler,
		tenantsHandler,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
