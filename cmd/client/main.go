package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/remote-settings/internal/adapter"
	"github.com/MKhiriev/remote-settings/internal/client"
	"github.com/MKhiriev/remote-settings/internal/config"
	"github.com/MKhiriev/remote-settings/internal/logger"
	"github.com/MKhiriev/remote-settings/models"
	"github.com/rs/zerolog"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const role = "remote-settings-client"

func main() {
	fmt.Fprint(os.Stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger(role, zerolog.DebugLevel).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger(role, cfg.Log.Level)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.RemoteSettings, cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	app, err := client.NewApp(serverAdapter, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
