// Package config resolves the probe's settings from defaults, an optional YAML file, the
// environment and command-line flags, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/peachcloud/peach-probe/servicedef"
)

const (
	DefaultTimeout   = time.Second * 10
	DefaultInterface = "wlan0"
	DefaultTestSSID  = "peach-probe-test-ssid"

	// TimeoutEnv overrides the per-call timeout, in time.ParseDuration syntax.
	TimeoutEnv = "PEACH_PROBE_TIMEOUT"
)

var defaultAddresses = map[servicedef.Microservice]string{
	servicedef.Network: "127.0.0.1:5110",
	servicedef.OLED:    "127.0.0.1:5112",
	servicedef.Stats:   "127.0.0.1:5113",
	servicedef.Menu:    "127.0.0.1:5114",
}

// Config holds everything needed to build the service registry.
type Config struct {
	Services      Services      `yaml:"services"`
	Timeout       time.Duration `yaml:"timeout"`
	Interface     string        `yaml:"interface"`
	TestSSID      string        `yaml:"test_ssid"`
	VersionLookup bool          `yaml:"version_lookup"`
}

// Services holds the host:port address of each microservice's JSON-RPC server.
type Services struct {
	Network string `yaml:"network"`
	OLED    string `yaml:"oled"`
	Stats   string `yaml:"stats"`
	Menu    string `yaml:"menu"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Services: Services{
			Network: defaultAddresses[servicedef.Network],
			OLED:    defaultAddresses[servicedef.OLED],
			Stats:   defaultAddresses[servicedef.Stats],
			Menu:    defaultAddresses[servicedef.Menu],
		},
		Timeout:       DefaultTimeout,
		Interface:     DefaultInterface,
		TestSSID:      DefaultTestSSID,
		VersionLookup: true,
	}
}

// AddressEnv is the environment variable that overrides the address of a service, such as
// PEACH_STATS_SERVER.
func AddressEnv(m servicedef.Microservice) string {
	return "PEACH_" + strings.ToUpper(string(m)) + "_SERVER"
}

// Address returns the configured address of a service.
func (c Config) Address(m servicedef.Microservice) string {
	if p := c.Services.field(m); p != nil {
		return *p
	}
	return ""
}

func (s *Services) field(m servicedef.Microservice) *string {
	switch m {
	case servicedef.Network:
		return &s.Network
	case servicedef.OLED:
		return &s.OLED
	case servicedef.Stats:
		return &s.Stats
	case servicedef.Menu:
		return &s.Menu
	}
	return nil
}

// Load builds the configuration from the defaults, the YAML file at path if path is not
// empty, and then the environment. Flags are applied by the caller afterward, followed by
// Validate.
func Load(path string, getenv func(string) string) (Config, error) {
	c := Default()
	if path != "" {
		if err := c.loadFile(path); err != nil {
			return c, err
		}
	}
	if getenv == nil {
		getenv = os.Getenv
	}
	if err := c.applyEnv(getenv); err != nil {
		return c, err
	}
	return c, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	for _, m := range servicedef.AllMicroservices {
		if v := strings.TrimSpace(getenv(AddressEnv(m))); v != "" {
			*c.Services.field(m) = v
		}
	}
	if v := strings.TrimSpace(getenv(TimeoutEnv)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", TimeoutEnv, err)
		}
		c.Timeout = d
	}
	return nil
}

// Validate reports every problem with the configuration at once.
func (c Config) Validate() error {
	var err error
	for _, m := range servicedef.AllMicroservices {
		addr := c.Address(m)
		switch {
		case addr == "":
			err = multierr.Append(err, fmt.Errorf("services.%s: address is required", m))
		case strings.Contains(addr, "://"):
			err = multierr.Append(err, fmt.Errorf("services.%s: address %q must be host:port, without a scheme", m, addr))
		}
	}
	if c.Timeout <= 0 {
		err = multierr.Append(err, fmt.Errorf("timeout must be positive, got %s", c.Timeout))
	}
	if strings.TrimSpace(c.Interface) == "" {
		err = multierr.Append(err, errors.New("interface is required"))
	}
	if strings.TrimSpace(c.TestSSID) == "" {
		err = multierr.Append(err, errors.New("test_ssid is required"))
	}
	return err
}
