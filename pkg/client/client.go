// Package client implements a failover-aware RADIUS PAP client. One Client
// owns an ordered pool of servers, keeps a health record per host, directs
// authentication traffic at a single active host and moves it when probes or
// live traffic show the host has gone away.
package client

import (
	"context"
	"fmt"
	"regexp"
	"sync"

	"github.com/essinghigh-org/ts-radius/pkg/dictionary"
	"github.com/essinghigh-org/ts-radius/pkg/log"
)

// Client is the public surface: construct with New, then Authenticate,
// Failover, ActiveHost, HealthStatus and Shutdown.
type Client struct {
	config       Config
	pool         []string
	valuePattern *regexp.Regexp
	dict         *dictionary.Dictionary
	logger       log.Logger

	mu         sync.Mutex
	activeHost string
	health     map[string]*HostHealth

	guardMu    sync.Mutex
	inProgress bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New validates the configuration, builds the host pool and health table,
// kicks off initial host selection in the background and starts the periodic
// health cycle.
func New(cfg Config) (*Client, error) {
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	valuePattern, err := cfg.compileValuePattern()
	if err != nil {
		return nil, err
	}

	dict := cfg.Dictionary
	if dict == nil {
		dict, err = dictionary.NewDefault()
		if err != nil {
			return nil, fmt.Errorf("failed to build dictionary: %w", err)
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewDefaultLogger()
	}

	pool := cfg.hostPool()

	health := make(map[string]*HostHealth, len(pool))
	for _, host := range pool {
		health[host] = &HostHealth{Host: host}
	}

	ctx, cancel := context.WithCancel(context.Background())

	c := &Client{
		config:       cfg,
		pool:         pool,
		valuePattern: valuePattern,
		dict:         dict,
		logger:       logger,
		health:       health,
		ctx:          ctx,
		cancel:       cancel,
	}

	go c.fastFailover()

	c.wg.Add(1)
	go c.healthCycleRoutine()

	return c, nil
}

// Authenticate runs one PAP transaction against the current active host. The
// outcome is always returned to the caller; a timeout additionally schedules
// a background probe-and-failover sequence without delaying the return.
// Transport faults surface as errors.
func (c *Client) Authenticate(user, password string) (*Result, error) {
	host := c.ActiveHost()

	result, err := exchange(host, user, password, c.exchangeOpts())
	if err != nil {
		return nil, err
	}

	if result.Error == ErrorTimeout {
		go c.onAuthTimeout()
	}

	return result, nil
}

// ActiveHost returns the active host, or the pool's first entry as a probe
// fallback when no host is active (none promoted yet, or cleared by a
// failover in which no host responded).
func (c *Client) ActiveHost() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.activeHost != "" {
		return c.activeHost
	}

	return c.pool[0]
}

// Shutdown stops the background health cycle. In-flight transactions and
// probes are not cancelled; they complete or time out on their own.
func (c *Client) Shutdown() {
	c.cancel()
	c.wg.Wait()
}

func (c *Client) exchangeOpts() exchangeOptions {
	return exchangeOptions{
		secret:       c.config.Secret,
		port:         c.config.Port,
		timeout:      c.config.Timeout,
		assignmentID: c.config.AssignmentAttributeID,
		vendorID:     c.config.VendorID,
		vendorType:   c.config.VendorType,
		valuePattern: c.valuePattern,
		dict:         c.dict,
		logger:       c.logger,
	}
}
