package config

// AdjacencyGraphConfig locates the §6.2 stellar adjacency graph JSON file.
type AdjacencyGraphConfig struct {
	Path string `mapstructure:"path"`
}

// SiteFinderConfig holds site-finder defaults (§4.14).
type SiteFinderConfig struct {
	DefaultMaxJumps   int `mapstructure:"default_max_jumps" validate:"min=0"`
	DefaultTopN       int `mapstructure:"default_top_n" validate:"min=1"`
	SovereigntyTopN   int `mapstructure:"sovereignty_top_n" validate:"min=1"`
}

// SimulationConfig holds colony-simulator and snapshot-generator defaults
// (§4.10, §4.12).
type SimulationConfig struct {
	SnapshotCap     int `mapstructure:"snapshot_cap" validate:"min=1"`
	DefaultHorizonHours int `mapstructure:"default_horizon_hours" validate:"min=1"`
}
