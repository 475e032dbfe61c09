// Package config provides configuration management for go-foxstarter.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

var AppVersion = "-unset-" // will be set at build time

const (
	// DefaultListenPort is used when neither PORT nor -webport is given
	DefaultListenPort = 3000

	// PortEnv names the environment variable selecting the listen port
	PortEnv = "PORT"

	// http.Server timeouts
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
)

// MainConfig holds the main configuration for go-foxstarter
type MainConfig struct {
	// Web interface settings
	Web *WebConfig `json:"web"`

	// Client settings used by foxcli
	Client ClientConfig `json:"client"`

	AppVersion string `json:"app_version"` // Application version, set at build time
}

// WebConfig holds web interface configuration
type WebConfig struct {
	ListenHost string `json:"listen_host"`
	ListenPort int    `json:"listen_port"`
	SSL        bool   `json:"ssl"`
	CertFile   string `json:"cert_file,omitempty"`
	KeyFile    string `json:"key_file,omitempty"`
	Debug      bool   `json:"debug"` // Enable access log and gin debug mode
	PprofAddr  string `json:"pprof_addr,omitempty"`

	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

// ClientConfig holds settings of the terminal front-end
type ClientConfig struct {
	ServerURL string `json:"server_url"`
	PrefsDir  string `json:"prefs_dir"` // directory of the local preference database
}

// NewDefaultConfig returns a configuration with sensible defaults
func NewDefaultConfig() *MainConfig {
	return &MainConfig{
		AppVersion: AppVersion,
		Web: &WebConfig{
			ListenPort:      DefaultListenPort,
			ReadTimeout:     DefaultReadTimeout,
			WriteTimeout:    DefaultWriteTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Client: ClientConfig{
			ServerURL: "http://localhost:" + strconv.Itoa(DefaultListenPort),
			PrefsDir:  defaultPrefsDir(),
		},
	}
}

// ApplyEnv overrides the listen port from the PORT environment variable.
// An empty variable is ignored.
func (w *WebConfig) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	v, ok := lookup(PortEnv)
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	p, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return errors.Wrapf(err, "invalid %s value %q", PortEnv, v)
	}
	w.ListenPort = p
	return nil
}

// Validate checks the web configuration before the server starts
func (w *WebConfig) Validate() error {
	if w.ListenPort < 1 || w.ListenPort > 65535 {
		return errors.Errorf("invalid port number: %d (must be between 1 and 65535)", w.ListenPort)
	}
	if w.SSL && (w.CertFile == "" || w.KeyFile == "") {
		return errors.New("SSL enabled but cert_file or key_file not specified in config")
	}
	return nil
}

// Addr returns the listen address for net/http
func (w *WebConfig) Addr() string {
	return w.ListenHost + ":" + strconv.Itoa(w.ListenPort)
}

func defaultPrefsDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir + string(os.PathSeparator) + "foxstarter"
	}
	return "data"
}
