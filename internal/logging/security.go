// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger records events an operator must be able to audit.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "sys_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "sys_shutdown"))
}

func (s *SecurityLogger) AdminAction(actor, action, resource string) {
	s.l.Info(
		"admin action",
		zap.String("event", "admin_action"),
		zap.String("actor", actor),
		zap.String("action", action),
		zap.String("resource", resource),
	)
}

func (s *SecurityLogger) AuthenticationFailure(resource, reason string) {
	s.l.Warn(
		"authentication failure",
		zap.String("event", "authn_fail"),
		zap.String("resource", resource),
		zap.String("reason", reason),
	)
}
