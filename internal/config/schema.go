package config

// Config is the root configuration structure.
type Config struct {
	Station StationConfig `toml:"station" json:"station"`
	Output  OutputConfig  `toml:"output" json:"output"`
	Log     LogConfig     `toml:"log" json:"log"`
}

// StationConfig holds defaults for station track-list requests.
type StationConfig struct {
	NumEntries int `toml:"num_entries" json:"num_entries" validate:"gte=0,lte=78"`
	MaxResults int `toml:"max_results" json:"max_results" validate:"gte=0"` // 0 leaves the page size to the server
}

// OutputConfig holds CLI output settings.
type OutputConfig struct {
	Format string `toml:"format" json:"format" validate:"omitempty,oneof=normal minimal table json"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level" json:"level" validate:"omitempty,oneof=debug info warn error"`
	File  string `toml:"file" json:"file"`
}
