package configs

import "time"

// Promo holds the engine's own knobs.
type Promo struct {
	// TimezoneOffset is the fixed offset of the promotion day from UTC.
	TimezoneOffset time.Duration `env:"TIMEZONE_OFFSET" envDefault:"-5h"`
	// RunInterval is how often the daily pass is repeated. Zero disables the
	// ticker and leaves runs to the queue.
	RunInterval time.Duration `env:"RUN_INTERVAL" envDefault:"1h"`
	// LotterySize is the number of ads returned when a request asks for none.
	LotterySize int `env:"LOTTERY_SIZE" envDefault:"10"`
	// LockTTL bounds how long a crashed holder keeps a link locked.
	LockTTL time.Duration `env:"LOCK_TTL" envDefault:"30s"`
	// LockWait bounds how long an operation waits for a link lock.
	LockWait time.Duration `env:"LOCK_WAIT" envDefault:"10s"`
}
