package client

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/essinghigh-org/ts-radius/pkg/dictionary"
	"github.com/essinghigh-org/ts-radius/pkg/log"
)

// Defaults applied by New for unset Config fields
const (
	DefaultPort                  = 1812
	DefaultTimeout               = 5 * time.Second
	DefaultHealthCheckInterval   = 30 * time.Minute
	DefaultHealthCheckTimeout    = 5 * time.Second
	DefaultAssignmentAttributeID = 25

	// MinHealthCheckInterval is the floor for the background cycle period
	MinHealthCheckInterval = 5 * time.Second
)

// Config holds the client configuration.
type Config struct {
	// Host is the primary server; also the sole pool member when Hosts is empty
	Host string

	// Hosts is the ordered failover pool; index 0 is the primary
	Hosts []string

	// Secret is the shared secret; empty rejects construction
	Secret []byte

	// Port is the UDP port used for all hosts
	Port int

	// Timeout bounds one authentication transaction
	Timeout time.Duration

	// HealthCheckInterval is the background cycle period, floored at 5s
	HealthCheckInterval time.Duration

	// HealthCheckTimeout bounds one probe transaction
	HealthCheckTimeout time.Duration

	// HealthCheckUser and HealthCheckPassword are the probe credentials
	HealthCheckUser     string
	HealthCheckPassword string

	// AssignmentAttributeID selects the attribute extracted into Result.Class
	AssignmentAttributeID uint8

	// VendorID and VendorType narrow assignment extraction to one vendor
	// sub-attribute when AssignmentAttributeID is Vendor-Specific (26).
	// Both must be set for the vendor path to apply.
	VendorID   *uint32
	VendorType *uint8

	// ValuePattern is an optional regular expression; capture group 1 is the
	// extracted value. Compiled once at construction.
	ValuePattern string

	// Dictionary used to decode response attributes; nil means the standard table
	Dictionary *dictionary.Dictionary

	// Logger receives diagnostics; nil means a default logrus logger
	Logger log.Logger
}

func (cfg *Config) applyDefaults() {
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.HealthCheckInterval == 0 {
		cfg.HealthCheckInterval = DefaultHealthCheckInterval
	}
	if cfg.HealthCheckInterval < MinHealthCheckInterval {
		cfg.HealthCheckInterval = MinHealthCheckInterval
	}
	if cfg.HealthCheckTimeout == 0 {
		cfg.HealthCheckTimeout = DefaultHealthCheckTimeout
	}
	if cfg.AssignmentAttributeID == 0 {
		cfg.AssignmentAttributeID = DefaultAssignmentAttributeID
	}
}

func (cfg *Config) validate() error {
	if len(cfg.Secret) == 0 {
		return fmt.Errorf("shared secret must not be empty")
	}

	if len(cfg.hostPool()) == 0 {
		return fmt.Errorf("at least one host must be configured")
	}

	if cfg.HealthCheckUser == "" {
		return fmt.Errorf("health check user must be configured")
	}

	if cfg.HealthCheckPassword == "" {
		return fmt.Errorf("health check password must be configured")
	}

	return nil
}

// hostPool derives the ordered failover pool: Hosts filtered of empty
// entries, or [Host] when Hosts is empty.
func (cfg *Config) hostPool() []string {
	pool := make([]string, 0, len(cfg.Hosts))
	for _, host := range cfg.Hosts {
		if host != "" {
			pool = append(pool, host)
		}
	}

	if len(pool) == 0 && cfg.Host != "" {
		pool = append(pool, cfg.Host)
	}

	return pool
}

func (cfg *Config) compileValuePattern() (*regexp.Regexp, error) {
	if cfg.ValuePattern == "" {
		return nil, nil
	}

	pattern, err := regexp.Compile(cfg.ValuePattern)
	if err != nil {
		return nil, fmt.Errorf("invalid value pattern: %w", err)
	}

	return pattern, nil
}

// fileConfig is the on-disk YAML layout; durations are milliseconds.
type fileConfig struct {
	Host                  string   `yaml:"host"`
	Hosts                 []string `yaml:"hosts,omitempty"`
	Secret                string   `yaml:"secret"`
	Port                  int      `yaml:"port,omitempty"`
	TimeoutMs             int      `yaml:"timeout_ms,omitempty"`
	HealthCheckIntervalMs int      `yaml:"health_check_interval_ms,omitempty"`
	HealthCheckTimeoutMs  int      `yaml:"health_check_timeout_ms,omitempty"`
	HealthCheckUser       string   `yaml:"health_check_user"`
	HealthCheckPassword   string   `yaml:"health_check_password"`
	AssignmentAttributeID uint8    `yaml:"assignment_attribute_id,omitempty"`
	VendorID              *uint32  `yaml:"vendor_id,omitempty"`
	VendorType            *uint8   `yaml:"vendor_type,omitempty"`
	ValuePattern          string   `yaml:"value_pattern,omitempty"`
}

// LoadConfig reads a client configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := &Config{
		Host:                  fc.Host,
		Hosts:                 fc.Hosts,
		Secret:                []byte(fc.Secret),
		Port:                  fc.Port,
		Timeout:               time.Duration(fc.TimeoutMs) * time.Millisecond,
		HealthCheckInterval:   time.Duration(fc.HealthCheckIntervalMs) * time.Millisecond,
		HealthCheckTimeout:    time.Duration(fc.HealthCheckTimeoutMs) * time.Millisecond,
		HealthCheckUser:       fc.HealthCheckUser,
		HealthCheckPassword:   fc.HealthCheckPassword,
		AssignmentAttributeID: fc.AssignmentAttributeID,
		VendorID:              fc.VendorID,
		VendorType:            fc.VendorType,
		ValuePattern:          fc.ValuePattern,
	}

	return cfg, nil
}
