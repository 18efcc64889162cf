package webhook

// SecurityConfig holds inbound webhook security settings.
type SecurityConfig struct {
	// Secret is compared against the secret-token header. Empty disables the check.
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

const (
	DefaultRateLimitPerMin = 60
	maxTrackedSources      = 1000
)
