// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
)

type fakeProvider struct {
	pending  bool
	version  int64
	statuses []*goose.MigrationStatus
	downTo   int64
}

func (f *fakeProvider) Up(context.Context) ([]*goose.MigrationResult, error) {
	return []*goose.MigrationResult{{
		Source:    &goose.Source{Path: "20260301000002_create_billing.sql", Version: 20260301000002},
		Direction: "up",
		Duration:  time.Millisecond,
	}}, nil
}

func (f *fakeProvider) Down(context.Context) (*goose.MigrationResult, error) {
	return &goose.MigrationResult{Source: &goose.Source{Path: "20260301000002_create_billing.sql"}, Direction: "down"}, nil
}

func (f *fakeProvider) DownTo(_ context.Context, version int64) ([]*goose.MigrationResult, error) {
	f.downTo = version
	return nil, nil
}

func (f *fakeProvider) Status(context.Context) ([]*goose.MigrationStatus, error) {
	return f.statuses, nil
}

func (f *fakeProvider) HasPending(context.Context) (bool, error) {
	return f.pending, nil
}

func (f *fakeProvider) GetDBVersion(context.Context) (int64, error) {
	return f.version, nil
}

func TestMigrator(t *testing.T) {
	applied := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		provider *fakeProvider
		json     bool
		downTo   int64
		run      func(*migrator, context.Context) error
		wantErr  error
		wantOut  string
	}{
		{
			name:     "up lists applied migrations",
			provider: &fakeProvider{},
			run:      (*migrator).up,
			wantOut:  "up 20260301000002_create_billing.sql",
		},
		{
			name:     "down rolls back one migration",
			provider: &fakeProvider{},
			downTo:   -1,
			run:      (*migrator).down,
			wantOut:  "down 20260301000002_create_billing.sql",
		},
		{
			name:     "down to a version with nothing to roll back",
			provider: &fakeProvider{},
			downTo:   0,
			run:      (*migrator).down,
			wantOut:  "no migrations to apply",
		},
		{
			name: "status shows pending migrations",
			provider: &fakeProvider{statuses: []*goose.MigrationStatus{
				{State: goose.StateApplied, AppliedAt: applied, Source: &goose.Source{Path: "20260301000001_create_plans_and_tenants.sql", Version: 20260301000001}},
				{State: goose.StatePending, Source: &goose.Source{Path: "20260301000002_create_billing.sql", Version: 20260301000002}},
			}},
			run:     (*migrator).status,
			wantOut: "pending",
		},
		{
			name:     "check passes when up to date",
			provider: &fakeProvider{version: 20260301000002},
			run:      (*migrator).check,
			wantOut:  "version 20260301000002",
		},
		{
			name:     "check fails while pending",
			provider: &fakeProvider{pending: true, version: 20260301000001},
			json:     true,
			run:      (*migrator).check,
			wantErr:  errPendingMigrations,
			wantOut:  `"status":"pending"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			m := &migrator{provider: tt.provider, json: tt.json, downTo: tt.downTo, out: &out}

			err := tt.run(m, context.Background())

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}

			if !strings.Contains(out.String(), tt.wantOut) {
				t.Errorf("expected output to contain %q, got %q", tt.wantOut, out.String())
			}
		})
	}
}

func TestMigrator_DownTo(t *testing.T) {
	p := &fakeProvider{}
	m := &migrator{provider: p, downTo: 20260301000001, out: &bytes.Buffer{}}

	if err := m.down(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.downTo != 20260301000001 {
		t.Errorf("expected roll back to 20260301000001, got %d", p.downTo)
	}
}
