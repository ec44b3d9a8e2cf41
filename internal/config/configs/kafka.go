package configs

// Kafka configures the update queue and the notification topic. Without
// brokers the update queue runs in process and notifications are logged.
type Kafka struct {
	Brokers     []string `env:"BROKERS" envSeparator:","`
	UpdateTopic string   `env:"UPDATE_TOPIC" envDefault:"update_promos"`
	NotifyTopic string   `env:"NOTIFY_TOPIC" envDefault:"promo_notifications"`
	GroupID     string   `env:"GROUP_ID" envDefault:"promoter"`
}

// Enabled reports whether any broker is configured.
func (c Kafka) Enabled() bool { return len(c.Brokers) > 0 }
