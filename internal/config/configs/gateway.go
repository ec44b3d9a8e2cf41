package configs

import "time"

type Gateway struct {
	URL      string        `env:"URL" envDefault:"http://localhost:8090"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"10s"`
	TestMode bool          `env:"TEST_MODE" envDefault:"false"`
}
