package dynamo

// Config holds configuration for the DynamoDB backend.
type Config struct {
	// Table is the name of the single table holding all records and
	// per-kind index items.
	// Default: "plinth_entities"
	Table string
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Table: "plinth_entities",
	}
}

// validate ensures config values are within acceptable bounds.
func (c *Config) validate() {
	if c.Table == "" {
		c.Table = "plinth_entities"
	}
}
