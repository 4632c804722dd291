package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/remote-settings/internal/remotesettings"
	"github.com/rs/zerolog"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// RequestTimeout is the default timeout for outbound client requests.
	// Zero selects the adapter default.
	RequestTimeout time.Duration
}

// ClientLog holds the resolved logger settings.
type ClientLog struct {
	// Level is the minimum level emitted by the client logger.
	Level zerolog.Level
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// RemoteSettings is the server and collection selection handed to sync
	// clients.
	RemoteSettings remotesettings.Config
	// Adapter contains client transport timeouts.
	Adapter ClientAdapter
	// Log contains logger settings.
	Log ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the textual
// server selection to a [remotesettings.Server], and validates the
// resulting [ClientConfig]. A malformed custom server URL fails here rather
// than on first network use.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	rs := remotesettings.Config{
		ServerURL:      cfg.RemoteSettings.ServerURL,
		BucketName:     cfg.RemoteSettings.BucketName,
		CollectionName: cfg.RemoteSettings.CollectionName,
	}
	if server, ok := remotesettings.ParseServer(cfg.RemoteSettings.Server); ok {
		rs.Server = &server
	}

	level := zerolog.DebugLevel
	if cfg.Log.Level != "" {
		parsed, err := zerolog.ParseLevel(cfg.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
		}
		level = parsed
	}

	clientCfg := &ClientConfig{
		RemoteSettings: rs,
		Adapter: ClientAdapter{
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Log: ClientLog{Level: level},
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}
