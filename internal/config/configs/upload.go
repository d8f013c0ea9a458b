package configs

// Upload holds the asset storage credentials used to sign direct uploads.
type Upload struct {
	CloudName string `env:"CLOUD_NAME"`
	APIKey    string `env:"API_KEY"`
	APISecret string `env:"API_SECRET"`
}
