package client

import (
	"time"
)

// HostHealth is the per-host probe record. A zero LastOkAt or LastTriedAt
// means never.
type HostHealth struct {
	Host                string
	LastOkAt            time.Time
	LastTriedAt         time.Time
	ConsecutiveFailures int
}

// probeHost runs one health-check transaction against host using the
// dedicated probe credentials and updates its health record. Any received
// RADIUS response marks the host alive, including rejects, challenges and
// authenticator mismatches produced by a live server. Timeouts, malformed
// responses and transport faults mark it dead.
func (c *Client) probeHost(host string) bool {
	c.mu.Lock()
	record, exists := c.health[host]
	if exists {
		record.LastTriedAt = time.Now()
	}
	c.mu.Unlock()

	if !exists {
		return false
	}

	opts := c.exchangeOpts()
	opts.timeout = c.config.HealthCheckTimeout
	opts.vendorID = nil
	opts.vendorType = nil
	opts.valuePattern = nil

	result, err := exchange(host, c.config.HealthCheckUser, c.config.HealthCheckPassword, opts)

	alive := err == nil && result.Error != ErrorTimeout && result.Error != ErrorMalformedResponse

	c.mu.Lock()
	defer c.mu.Unlock()

	if alive {
		record.LastOkAt = time.Now()
		record.ConsecutiveFailures = 0
		c.logger.Debugf("probe of %s succeeded", host)
		return true
	}

	record.ConsecutiveFailures++
	if err != nil {
		c.logger.Debugf("probe of %s failed: %v", host, err)
	} else {
		c.logger.Debugf("probe of %s failed: %s", host, result.Error)
	}

	return false
}

// HealthStatus returns a snapshot of the health table in pool order.
func (c *Client) HealthStatus() []HostHealth {
	c.mu.Lock()
	defer c.mu.Unlock()

	status := make([]HostHealth, 0, len(c.pool))
	for _, host := range c.pool {
		if record, ok := c.health[host]; ok {
			status = append(status, *record)
		}
	}

	return status
}
