package configs

import "time"

// Auth configures verification of the bearer tokens issued by the
// authentication service.
type Auth struct {
	JWTSecret string `env:"JWT_SECRET,notEmpty"`
	Issuer    string `env:"ISSUER" envDefault:"snaplink"`
	// TokenTTL only applies to tokens minted for seeded demo accounts.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
}
