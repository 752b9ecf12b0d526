package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Path == "" && cfg.Database.Type == "sqlite" {
		cfg.Database.Path = "colonysim.db"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "colonysim"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 25
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 5
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Adjacency graph defaults
	if cfg.AdjacencyGraph.Path == "" {
		cfg.AdjacencyGraph.Path = "adjacency.json"
	}

	// Site finder defaults (§4.14: "top N ... 10 when filtered by
	// sovereignty, else 20")
	if cfg.SiteFinder.DefaultMaxJumps == 0 {
		cfg.SiteFinder.DefaultMaxJumps = 3
	}
	if cfg.SiteFinder.DefaultTopN == 0 {
		cfg.SiteFinder.DefaultTopN = 20
	}
	if cfg.SiteFinder.SovereigntyTopN == 0 {
		cfg.SiteFinder.SovereigntyTopN = 10
	}

	// Simulation defaults (§4.12: 300-snapshot compression cap, 30-day
	// horizon)
	if cfg.Simulation.SnapshotCap == 0 {
		cfg.Simulation.SnapshotCap = 300
	}
	if cfg.Simulation.DefaultHorizonHours == 0 {
		cfg.Simulation.DefaultHorizonHours = 30 * 24
	}

	// API defaults
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = 30 * time.Second
	}
	if cfg.API.RateLimit.RequestsPerSecond == 0 {
		cfg.API.RateLimit.RequestsPerSecond = 2
	}
	if cfg.API.RateLimit.Burst == 0 {
		cfg.API.RateLimit.Burst = 10
	}
	if cfg.API.CircuitBreaker.MaxFailures == 0 {
		cfg.API.CircuitBreaker.MaxFailures = 5
	}
	if cfg.API.CircuitBreaker.OpenTimeout == 0 {
		cfg.API.CircuitBreaker.OpenTimeout = 30 * time.Second
	}
}
