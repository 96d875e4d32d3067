package submit

// Config holds configuration for the submission workflow.
type Config struct {
	// Env is the target environment name (see targets.go).
	Env string `mapstructure:"env" default:"test1"`
	// Bureau selects the credit bureau settings for the request payload.
	Bureau string `mapstructure:"bureau" default:"EFX"`
	// Token is the bearer token; conventionally set via LPCR_TOKEN.
	Token string `mapstructure:"token" default:""`
	// Password is the bureau subscriber password; set via LPCR_PASSWORD.
	Password string `mapstructure:"password" default:""`
	// Retries is the number of retry attempts per request.
	Retries int `mapstructure:"retries" default:"2"`
	// BackoffSeconds is the initial retry backoff; it doubles per attempt.
	BackoffSeconds float64 `mapstructure:"backoff_seconds" default:"0.5"`
	// TimeoutSeconds is the per-request timeout.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// Insecure disables TLS verification for test environments.
	Insecure bool `mapstructure:"insecure" default:"false"`
	// URL overrides the environment's service URL when non-empty.
	URL string `mapstructure:"url" default:""`
	// Host overrides the environment's Host header when non-empty.
	Host string `mapstructure:"host" default:""`
}
