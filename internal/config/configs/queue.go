package configs

import "time"

// Queue configures the in-process click enrichment queue. Buffer is the
// number of visits that may wait for enrichment before redirects start to
// block. MaxRetries bounds redelivery of a visit whose click cannot be
// stored.
type Queue struct {
	Buffer          int64         `env:"BUFFER" envDefault:"1024"`
	MaxRetries      int           `env:"MAX_RETRIES" envDefault:"3"`
	InitialInterval time.Duration `env:"INITIAL_INTERVAL" envDefault:"100ms"`
}
