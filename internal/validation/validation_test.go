// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package validation

import (
	"errors"
	"testing"

	"github.com/canonical/tenant-orchestrator/internal/apperrors"
)

type request struct {
	Subdomain string   `json:"subdomain" validate:"required,subdomain"`
	Modules   []string `json:"modules" validate:"dive,module"`
	Currency  string   `json:"currency" validate:"omitempty,currency"`
	MaxUsers  int      `json:"max_users" validate:"gte=1"`
}

func TestValidator_Struct(t *testing.T) {
	testCases := []struct {
		name          string
		req           request
		expectedField string
	}{
		{
			name: "valid",
			req:  request{Subdomain: "acme-corp", Modules: []string{"sale", "account_edi"}, Currency: "EUR", MaxUsers: 5},
		},
		{
			name:          "missing subdomain",
			req:           request{MaxUsers: 1},
			expectedField: "subdomain",
		},
		{
			name:          "uppercase subdomain",
			req:           request{Subdomain: "Acme", MaxUsers: 1},
			expectedField: "subdomain",
		},
		{
			name:          "trailing hyphen",
			req:           request{Subdomain: "acme-", MaxUsers: 1},
			expectedField: "subdomain",
		},
		{
			name:          "bad module",
			req:           request{Subdomain: "acme", Modules: []string{"sale", "../etc"}, MaxUsers: 1},
			expectedField: "modules[1]",
		},
		{
			name:          "bad currency",
			req:           request{Subdomain: "acme", Currency: "eur", MaxUsers: 1},
			expectedField: "currency",
		},
		{
			name:          "zero users",
			req:           request{Subdomain: "acme"},
			expectedField: "max_users",
		},
	}

	v := NewValidator()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.req)

			if tc.expectedField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var ve *apperrors.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if ve.Field != tc.expectedField {
				t.Errorf("expected field %q, got %q", tc.expectedField, ve.Field)
			}
		})
	}
}

func TestSubdomain(t *testing.T) {
	for _, s := range []string{"abc", "a1-b2", "tenant42"} {
		if !Subdomain(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []string{"ab", "-abc", "abc-", "a_b", "a.b", ""} {
		if Subdomain(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}
