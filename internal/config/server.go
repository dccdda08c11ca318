package config

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080"
	Addr string `toml:"addr"`
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{Addr: DefaultAddr}
}
