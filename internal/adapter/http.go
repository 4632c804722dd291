// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/remote-settings/internal/config"
	"github.com/MKhiriev/remote-settings/internal/logger"
	"github.com/MKhiriev/remote-settings/internal/remotesettings"
	"github.com/go-resty/resty/v2"
)

const defaultRequestTimeout = 15 * time.Second

type httpServerAdapter struct {
	client *resty.Client

	baseURL    string
	recordsURL string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter]
// for rsCfg.
//
// The server is resolved immediately. Errors from [remotesettings.Config]
// are wrapped, so callers can match [remotesettings.ErrInvalidURL],
// [remotesettings.ErrAmbiguousServer] and
// [remotesettings.ErrMissingCollection] with errors.Is. A zero
// RequestTimeout selects a 15s default.
func NewHTTPServerAdapter(rsCfg remotesettings.Config, adapterCfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	if err := rsCfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid remote settings config: %w", err)
	}

	server, err := rsCfg.ResolveServer()
	if err != nil {
		return nil, fmt.Errorf("resolve server: %w", err)
	}

	base, err := server.URL()
	if err != nil {
		return nil, fmt.Errorf("resolve server url: %w", err)
	}

	records, err := rsCfg.RecordsURL()
	if err != nil {
		return nil, fmt.Errorf("build records url: %w", err)
	}

	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(base.String(), "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	if log == nil {
		log = logger.Nop()
	}
	log = log.WithComponent("adapter")
	log.Debug().
		Str("server", server.String()).
		Str("base_url", base.String()).
		Str("bucket", rsCfg.Bucket()).
		Str("collection", rsCfg.CollectionName).
		Dur("timeout", timeout).
		Msg("remote settings adapter configured")

	return &httpServerAdapter{
		client:     client,
		baseURL:    base.String(),
		recordsURL: records.String(),
		logger:     log,
	}, nil
}

// BaseURL implements [ServerAdapter].
func (h *httpServerAdapter) BaseURL() string {
	return h.baseURL
}

// RecordsURL implements [ServerAdapter].
func (h *httpServerAdapter) RecordsURL() string {
	return h.recordsURL
}

// RecordsRequest implements [ServerAdapter]. The returned request is
// executed with its Send method.
func (h *httpServerAdapter) RecordsRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	req.Method = http.MethodGet
	req.URL = h.recordsURL

	h.logger.Debug().Str("url", h.recordsURL).Msg("records request prepared")
	return req
}
