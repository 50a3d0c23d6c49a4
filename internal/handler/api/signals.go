package api

import (
	"strings"

	"booking-intake/internal/domain/throttle"
	"booking-intake/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

const (
	HeaderClientPlatform = middleware.HeaderClientPlatform
	HeaderClientScreen   = middleware.HeaderClientScreen
	HeaderClientTimezone = middleware.HeaderClientTimezone
	HeaderClientCanvas   = middleware.HeaderClientCanvas
)

func signalsFromRequest(c *gin.Context) throttle.Signals {
	return throttle.Signals{
		UserAgent:         c.GetHeader("User-Agent"),
		Language:          primaryLanguage(c.GetHeader("Accept-Language")),
		Platform:          c.GetHeader(HeaderClientPlatform),
		ScreenResolution:  c.GetHeader(HeaderClientScreen),
		Timezone:          c.GetHeader(HeaderClientTimezone),
		CanvasFingerprint: c.GetHeader(HeaderClientCanvas),
	}
}

// primaryLanguage returns the first tag of an Accept-Language value,
// e.g. "es-CL" for "es-CL,es;q=0.9,en;q=0.8".
func primaryLanguage(header string) string {
	first, _, _ := strings.Cut(header, ",")
	tag, _, _ := strings.Cut(first, ";")
	return strings.TrimSpace(tag)
}
