package constants

const (
	Version    = "1.0.0"
	ApiVersion = "1"
)
