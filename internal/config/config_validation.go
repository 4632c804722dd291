// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the client configuration can be used at startup.
//
// The server address is resolved here so that a malformed custom URL stops
// the client before any request is attempted.
func (cfg *ClientConfig) validate() error {
	if err := cfg.RemoteSettings.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRemoteSettingsConfigs, err)
	}

	if _, err := cfg.RemoteSettings.BaseURL(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRemoteSettingsConfigs, err)
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
