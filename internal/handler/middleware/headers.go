package middleware

// Headers carrying the browser signals that feed the submission fingerprint.
const (
	HeaderClientPlatform = "X-Client-Platform"
	HeaderClientScreen   = "X-Client-Screen"
	HeaderClientTimezone = "X-Client-Timezone"
	HeaderClientCanvas   = "X-Client-Canvas"
)
