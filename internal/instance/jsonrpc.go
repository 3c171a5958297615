// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package instance

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/go-resty/resty/v2"

	"github.com/canonical/tenant-orchestrator/internal/apperrors"
)

const (
	serviceName = "instance"
	rpcPath     = "/jsonrpc"
)

type rpcRequest struct {
	JSONRPC string    `json:"jsonrpc"`
	Method  string    `json:"method"`
	Params  rpcParams `json:"params"`
	ID      uint64    `json:"id"`
}

type rpcParams struct {
	Service string        `json:"service"`
	Method  string        `json:"method"`
	Args    []interface{} `json:"args"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error"`
}

// RPCError is the error object returned by the administrative endpoint.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	} `json:"data"`
}

func (e *RPCError) Error() string {
	if e.Data.Message != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Data.Message)
	}
	return e.Message
}

type rpcClient struct {
	http *resty.Client
	seq  atomic.Uint64
}

// call performs one JSON-RPC call and decodes its result into out when out is not nil.
func (c *rpcClient) call(ctx context.Context, operation, service, method string, out interface{}, args ...interface{}) error {
	if args == nil {
		args = []interface{}{}
	}

	req := rpcRequest{
		JSONRPC: "2.0",
		Method:  "call",
		Params:  rpcParams{Service: service, Method: method, Args: args},
		ID:      c.seq.Add(1),
	}

	var resp rpcResponse
	r, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&resp).
		Post(rpcPath)
	if err != nil {
		return apperrors.NewExternalServiceError(serviceName, operation, true, err)
	}

	if r.StatusCode() >= http.StatusInternalServerError {
		return apperrors.NewExternalServiceError(serviceName, operation, true, fmt.Errorf("unexpected status %d", r.StatusCode()))
	}

	if r.IsError() {
		return apperrors.NewExternalServiceError(serviceName, operation, false, fmt.Errorf("unexpected status %d", r.StatusCode()))
	}

	if resp.Error != nil {
		return apperrors.NewExternalServiceError(serviceName, operation, false, resp.Error)
	}

	if out == nil || len(resp.Result) == 0 {
		return nil
	}

	if err := json.Unmarshal(resp.Result, out); err != nil {
		return apperrors.NewExternalServiceError(serviceName, operation, false, fmt.Errorf("failed to decode result: %w", err))
	}

	return nil
}
