package store

// Config holds configuration for the Store.
type Config struct {
	// Table is the DynamoDB table holding meal and order records.
	// Default: "Records"
	Table string

	// DefaultLimit caps query results when the caller passes limit <= 0.
	// The cap is applied client-side while draining result pages.
	// Default: 100
	DefaultLimit int
}

// DefaultConfig returns sensible defaults for a single shared table.
func DefaultConfig() Config {
	return Config{
		Table:        "Records",
		DefaultLimit: 100,
	}
}

// validate ensures config values are within acceptable bounds.
func (c *Config) validate() {
	if c.Table == "" {
		c.Table = "Records"
	}
	if c.DefaultLimit < 1 {
		c.DefaultLimit = 100
	}
}
