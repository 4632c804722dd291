package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-server server name (prod, stage, dev) or custom server URL
//	-server-url deprecated custom server URL
//	-bucket bucket name
//	-collection collection name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level log level (e.g., "debug", "info")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var server string
	var serverURL string
	var bucketName string
	var collectionName string
	var requestTimeout time.Duration
	var logLevel string
	var jsonConfigPath string

	flag.StringVar(&server, "server", "", "Server name (prod, stage, dev) or custom server URL")
	flag.StringVar(&serverURL, "server-url", "", "Custom server URL (deprecated, use -server)")
	flag.StringVar(&bucketName, "bucket", "", "Bucket name")
	flag.StringVar(&collectionName, "collection", "", "Collection name")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&logLevel, "log-level", "", "Log level (e.g., debug, info)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		RemoteSettings: RemoteSettings{
			Server:         server,
			ServerURL:      serverURL,
			BucketName:     bucketName,
			CollectionName: collectionName,
		},
		Adapter: Adapter{
			RequestTimeout: requestTimeout,
		},
		Log: Log{
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}
}
