package client

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostPool(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		hosts    []string
		expected []string
	}{
		{"hosts takes precedence", "10.0.0.1", []string{"10.0.0.2", "10.0.0.3"}, []string{"10.0.0.2", "10.0.0.3"}},
		{"empty hosts falls back to host", "10.0.0.1", nil, []string{"10.0.0.1"}},
		{"empty entries filtered", "10.0.0.1", []string{"", "10.0.0.2", "", "10.0.0.3"}, []string{"10.0.0.2", "10.0.0.3"}},
		{"all entries empty falls back to host", "10.0.0.1", []string{"", ""}, []string{"10.0.0.1"}},
		{"nothing configured", "", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Host: tt.host, Hosts: tt.hosts}
			assert.Equal(t, tt.expected, cfg.hostPool())
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultHealthCheckInterval, cfg.HealthCheckInterval)
	assert.Equal(t, DefaultHealthCheckTimeout, cfg.HealthCheckTimeout)
	assert.Equal(t, uint8(DefaultAssignmentAttributeID), cfg.AssignmentAttributeID)
}

func TestApplyDefaultsFloorsHealthCheckInterval(t *testing.T) {
	cfg := Config{HealthCheckInterval: time.Second}
	cfg.applyDefaults()

	assert.Equal(t, MinHealthCheckInterval, cfg.HealthCheckInterval)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Host:                "10.0.0.1",
		Secret:              []byte("s"),
		HealthCheckUser:     "probe",
		HealthCheckPassword: "probe-pw",
	}

	require.NoError(t, valid.validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty secret", func(c *Config) { c.Secret = nil }},
		{"no hosts", func(c *Config) { c.Host = ""; c.Hosts = nil }},
		{"missing health check user", func(c *Config) { c.HealthCheckUser = "" }},
		{"missing health check password", func(c *Config) { c.HealthCheckPassword = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.validate())
		})
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config{Host: "10.0.0.1"})
	assert.Error(t, err)
}

func TestNewRejectsInvalidValuePattern(t *testing.T) {
	_, err := New(Config{
		Host:                "10.0.0.1",
		Secret:              []byte("s"),
		HealthCheckUser:     "probe",
		HealthCheckPassword: "probe-pw",
		ValuePattern:        "(unclosed",
	})
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radius.yaml")
	content := `
host: 10.0.0.1
hosts:
  - 10.0.0.1
  - 10.0.0.2
secret: testing123
port: 11812
timeout_ms: 750
health_check_interval_ms: 60000
health_check_timeout_ms: 500
health_check_user: probe
health_check_password: probe-pw
assignment_attribute_id: 26
vendor_id: 9
vendor_type: 1
value_pattern: 'group=(\w+)'
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.1", cfg.Host)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.Hosts)
	assert.Equal(t, []byte("testing123"), cfg.Secret)
	assert.Equal(t, 11812, cfg.Port)
	assert.Equal(t, 750*time.Millisecond, cfg.Timeout)
	assert.Equal(t, time.Minute, cfg.HealthCheckInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.HealthCheckTimeout)
	assert.Equal(t, "probe", cfg.HealthCheckUser)
	assert.Equal(t, "probe-pw", cfg.HealthCheckPassword)
	assert.Equal(t, uint8(26), cfg.AssignmentAttributeID)
	require.NotNil(t, cfg.VendorID)
	assert.Equal(t, uint32(9), *cfg.VendorID)
	require.NotNil(t, cfg.VendorType)
	assert.Equal(t, uint8(1), *cfg.VendorType)
	assert.Equal(t, `group=(\w+)`, cfg.ValuePattern)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig("/nonexistent/radius.yaml")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hosts: ["), 0o644))

	_, err = LoadConfig(path)
	assert.Error(t, err)
}
