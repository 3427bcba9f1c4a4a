// Copyright 2025 Olulo MX
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

// SecurityLogger emits audit events on a dedicated named logger.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "system.startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "system.shutdown"))
}

func (s *SecurityLogger) AuthorizationGranted(userID, scope string) {
	s.l.Info("authorization granted",
		zap.String("event", "authz.granted"),
		zap.String("user_id", userID),
		zap.String("scope", scope),
	)
}

func (s *SecurityLogger) AuthorizationDenied(userID, scope string) {
	s.l.Warn("authorization denied",
		zap.String("event", "authz.denied"),
		zap.String("user_id", userID),
		zap.String("scope", scope),
	)
}

func (s *SecurityLogger) ScopeSwitched(userID, scope string) {
	s.l.Info("scope switched",
		zap.String("event", "scope.switched"),
		zap.String("user_id", userID),
		zap.String("scope", scope),
	)
}

func NewLogger(level string) *Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.ErrorLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return &Logger{
		SugaredLogger: logger.Sugar(),
		security:      &SecurityLogger{l: logger.Named("security")},
	}
}
