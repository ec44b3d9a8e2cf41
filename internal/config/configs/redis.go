package configs

// Redis configures the shared live-set store, health signal and link locks.
// An empty Address keeps all three in process, which is only correct for a
// single replica.
type Redis struct {
	Address string `env:"ADDRESS"`
}

// Enabled reports whether a redis server is configured.
func (c Redis) Enabled() bool { return c.Address != "" }
