package metrics

import "strconv"

// Config of the metrics endpoint.
type Config struct {
	Enabled bool   `yaml:"enabled"`
	HTTP    string `yaml:"http"`
	Port    int    `yaml:"port"`
}

// DefaultConfig serves nothing until enabled.
var DefaultConfig = Config{
	HTTP: "127.0.0.1",
	Port: 19090,
}

func (c Config) Endpoint() string {
	return c.HTTP + ":" + strconv.Itoa(c.Port)
}
