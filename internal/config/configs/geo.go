package configs

import "time"

// Geo configures the external geo lookup service. Lookups go to
// BaseURL + "/json/{ip}". Retries is the number of extra attempts made
// before a click is recorded without location data.
type Geo struct {
	BaseURL      string        `env:"BASE_URL" envDefault:"http://ip-api.com"`
	Timeout      time.Duration `env:"TIMEOUT" envDefault:"3s"`
	Retries      uint64        `env:"RETRIES" envDefault:"2"`
	RetryBackoff time.Duration `env:"RETRY_BACKOFF" envDefault:"200ms"`
	// DevIP is used instead of the visitor address when the service runs
	// in development, where visitors are usually on loopback.
	DevIP string `env:"DEV_IP" envDefault:"8.8.8.8"`
}
