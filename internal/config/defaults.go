package config

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Station: StationConfig{
			NumEntries: 25,
		},
		Output: OutputConfig{
			Format: "normal",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ApplyDefaults fills in zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	d := Default()

	// Station
	if c.Station.NumEntries == 0 {
		c.Station.NumEntries = d.Station.NumEntries
	}

	// Output
	if c.Output.Format == "" {
		c.Output.Format = d.Output.Format
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}
