package client

import (
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/remote-settings/internal/adapter"
	"github.com/MKhiriev/remote-settings/internal/logger"
)

// ErrNilAdapter is returned by [NewApp] when no server adapter is supplied.
var ErrNilAdapter = errors.New("server adapter is required")

// App prints the resolved Remote Settings endpoints of the configured
// collection.
type App struct {
	serverAdapter adapter.ServerAdapter
	out           io.Writer

	logger *logger.Logger
}

// NewApp wires an [App] around serverAdapter. Output is written to out.
func NewApp(serverAdapter adapter.ServerAdapter, out io.Writer, log *logger.Logger) (*App, error) {
	if serverAdapter == nil {
		return nil, ErrNilAdapter
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{serverAdapter: serverAdapter, out: out, logger: log}, nil
}

// Run implements [Client].
func (a *App) Run() error {
	serverURL := a.serverAdapter.BaseURL()
	recordsURL := a.serverAdapter.RecordsURL()

	a.logger.Info().
		Str("server_url", serverURL).
		Str("records_url", recordsURL).
		Msg("remote settings endpoints resolved")

	if _, err := fmt.Fprintf(a.out, "server_url=%s\nrecords_url=%s\n", serverURL, recordsURL); err != nil {
		return fmt.Errorf("write endpoints: %w", err)
	}

	return nil
}
