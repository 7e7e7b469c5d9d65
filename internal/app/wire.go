package app

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"numconv/internal/client"
	"numconv/internal/config"
	"numconv/internal/domain"
	"numconv/internal/log"
	"numconv/internal/services/convert"
)

// Options holds runtime wiring options for building the app.
type Options struct {
	ConfigFile string       // yaml config path; empty means ~/.numconv/config.yaml
	LogLevel   string       // overrides the configured level when set
	ServerURL  string       // remote numconv base URL; empty means convert locally
	HTTP       *http.Client // optional; defaults to http.DefaultClient
}

// Wire bundles the config, logger, converter and optional remote client
// for the CLI.
type Wire struct {
	Cfg       *config.Config
	Log       *logrus.Logger
	Converter domain.Converter
	Remote    domain.Client // nil unless a server URL was given
}

// NewWire constructs the dependency graph from opts.
func NewWire(opts Options) (*Wire, error) {
	cfgFile := opts.ConfigFile
	if cfgFile == "" {
		cfgFile = config.ConfigFile()
	}
	cfg, err := config.LoadOrGenerate(cfgFile)
	if err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	// Ensure an HTTP client is available for outbound calls
	httpClient := opts.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	w := &Wire{
		Cfg:       cfg,
		Log:       log.InitLogs(cfg.LogLevel),
		Converter: convert.New(),
	}
	if opts.ServerURL != "" {
		w.Remote = client.NewHTTP(opts.ServerURL, httpClient)
	}
	return w, nil
}
