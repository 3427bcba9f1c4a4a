// Copyright 2026 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

package sessions

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mx-olulo/scope-service/internal/logging"
	"github.com/mx-olulo/scope-service/internal/monitoring"
	"github.com/mx-olulo/scope-service/internal/scope"
	"github.com/mx-olulo/scope-service/internal/tracing"
	"github.com/mx-olulo/scope-service/internal/types"
)

var _ StoreInterface = (*Store)(nil)

const keyPrefix = "session:scope:"

type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type Store struct {
	client *redis.Client
	ttl    time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// CurrentScope returns the session's current scope, or nil when none has
// been selected.
func (s *Store) CurrentScope(ctx context.Context, sessionID string) (*scope.Ref, error) {
	ctx, span := s.tracer.Start(ctx, "sessions.Store.CurrentScope")
	defer span.End()

	val, err := s.client.Get(ctx, keyPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session scope: %w", err)
	}

	ref, err := parseRef(val)
	if err != nil {
		// A malformed value is treated as no selection; it cannot be
		// allowed to widen access.
		s.logger.Warnf("discarding malformed session scope %q: %v", val, err)
		return nil, nil
	}

	return ref, nil
}

// SetCurrentScope stores the session's current scope for the session TTL.
func (s *Store) SetCurrentScope(ctx context.Context, sessionID string, ref scope.Ref) error {
	ctx, span := s.tracer.Start(ctx, "sessions.Store.SetCurrentScope")
	defer span.End()

	if err := s.client.Set(ctx, keyPrefix+sessionID, ref.String(), s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session scope: %w", err)
	}
	return nil
}

// ClearCurrentScope drops the session's current scope.
func (s *Store) ClearCurrentScope(ctx context.Context, sessionID string) error {
	ctx, span := s.tracer.Start(ctx, "sessions.Store.ClearCurrentScope")
	defer span.End()

	if err := s.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to clear session scope: %w", err)
	}
	return nil
}

func parseRef(val string) (*scope.Ref, error) {
	kindStr, idStr, ok := strings.Cut(val, ":")
	if !ok {
		return nil, fmt.Errorf("missing separator")
	}

	kind := types.ScopeKind(kindStr)
	if _, known := scope.EntityTypeOf(kind); !known {
		return nil, fmt.Errorf("unknown scope kind %q", kindStr)
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid tenant id %q", idStr)
	}

	return &scope.Ref{Kind: kind, ID: id}, nil
}

func NewStore(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Store {
	s := new(Store)

	s.client = redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	s.ttl = cfg.TTL

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

// NewStoreWithClient is used by tests to inject a client pointed at an
// embedded redis.
func NewStoreWithClient(client *redis.Client, ttl time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Store {
	return &Store{
		client:  client,
		ttl:     ttl,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
