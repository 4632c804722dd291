// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter hands the resolved Remote Settings server over to the
// HTTP layer used by sync clients.
//
// [NewHTTPServerAdapter] resolves the server address when it is called, so
// a malformed custom server URL is reported at construction time and no
// client is ever built around an unparseable address. The adapter prepares
// requests but never sends them; executing them is up to the caller.
package adapter

import (
	"context"

	"github.com/go-resty/resty/v2"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter exposes the resolved endpoints of one Remote Settings
// collection.
type ServerAdapter interface {
	// BaseURL returns the canonical server URL, always with a trailing slash
	// when the path is empty.
	BaseURL() string

	// RecordsURL returns the absolute records endpoint of the configured
	// bucket and collection.
	RecordsURL() string

	// RecordsRequest returns an unsent GET request for the records endpoint
	// bound to ctx.
	RecordsRequest(ctx context.Context) *resty.Request
}
