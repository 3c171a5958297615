// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/canonical/tenant-orchestrator/internal/http/types"
	"github.com/canonical/tenant-orchestrator/internal/identity"
)

// apiClient talks to the Command API on behalf of the CLI.
type apiClient struct {
	rest *resty.Client
}

func newAPIClient(baseURL, actor string) *apiClient {
	if !strings.HasPrefix(baseURL, "http") {
		baseURL = "http://" + baseURL
	}

	rest := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetTimeout(2*time.Minute).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if actor != "" {
		rest.SetHeader(identity.HeaderName, actor)
	}

	return &apiClient{rest: rest}
}

// do sends body, if any, and decodes the response into out. Error responses
// are returned with the status and message of the API.
func (c *apiClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	req := c.rest.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}

	var apiErr types.ErrorResponse
	req.SetError(&apiErr)

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	if resp.IsError() {
		if apiErr.Message == "" {
			return fmt.Errorf("api error (status %d): %s", resp.StatusCode(), strings.TrimSpace(resp.String()))
		}
		return fmt.Errorf("api error (status %d): %s", apiErr.Status, apiErr.Message)
	}

	return nil
}

func client() *apiClient {
	return newAPIClient(endpoint, userID)
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
