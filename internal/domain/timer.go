package domain

// DefaultTimerDuration is the initial rest timer length in seconds.
const DefaultTimerDuration = 90

// TimerConfig is the only durable piece of rest timer state. Countdown and
// running state are ephemeral and intentionally not persisted.
type TimerConfig struct {
	DefaultDuration int `json:"defaultDuration"`
}
