package breadcrumbs

// DefaultContextKey is the store key the trail is kept under.
const DefaultContextKey = "breadcrumbs"

// Config holds process-wide breadcrumb settings. It is resolved once at
// startup and shared read-only by every Builder.
type Config struct {
	HomeLabel  string
	HomePath   string
	AddHome    bool
	ContextKey string
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() *Config {
	return &Config{
		HomeLabel:  "Home",
		HomePath:   "/",
		AddHome:    true,
		ContextKey: DefaultContextKey,
	}
}

func (c *Config) contextKey() string {
	if c.ContextKey == "" {
		return DefaultContextKey
	}
	return c.ContextKey
}

func (c *Config) homeLabel() string {
	if c.HomeLabel == "" {
		return "Home"
	}
	return c.HomeLabel
}

func (c *Config) homePath() string {
	if c.HomePath == "" {
		return "/"
	}
	return c.HomePath
}
