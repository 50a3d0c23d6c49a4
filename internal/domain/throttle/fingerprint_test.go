//go:build unit

package throttle_test

import (
	"testing"

	"booking-intake/internal/domain/throttle"

	"github.com/stretchr/testify/assert"
)

func baseSignals() throttle.Signals {
	return throttle.Signals{
		UserAgent:         "Mozilla/5.0",
		Language:          "es-CL",
		Platform:          "MacIntel",
		ScreenResolution:  "1920x1080",
		Timezone:          "America/Santiago",
		CanvasFingerprint: "AAAABJRU5ErkJggg==",
	}
}

func TestFingerprint(t *testing.T) {
	t.Run("known value", func(t *testing.T) {
		assert.Equal(t, "fp_208448392", throttle.Fingerprint(baseSignals()))
	})

	t.Run("stable across calls", func(t *testing.T) {
		assert.Equal(t, throttle.Fingerprint(baseSignals()), throttle.Fingerprint(baseSignals()))
	})

	t.Run("canvas sample changes the key", func(t *testing.T) {
		other := baseSignals()
		other.CanvasFingerprint = "BBBBBJRU5ErkJggg=="
		assert.NotEqual(t, throttle.Fingerprint(baseSignals()), throttle.Fingerprint(other))
	})

	t.Run("empty signals still produce a key", func(t *testing.T) {
		assert.Regexp(t, `^fp_\d+$`, throttle.Fingerprint(throttle.Signals{}))
	})

	t.Run("non-ASCII input is hashed", func(t *testing.T) {
		s := baseSignals()
		s.Timezone = "América/Santiago 🚗"
		assert.Regexp(t, `^fp_\d+$`, throttle.Fingerprint(s))
	})

	t.Run("line and paragraph separators hash as raw characters", func(t *testing.T) {
		s := baseSignals()
		s.UserAgent = "Mozilla/5.0\u2028\u2029"
		assert.Equal(t, "fp_298732073", throttle.Fingerprint(s))
	})

	t.Run("escaped backslash before u2028 text is left alone", func(t *testing.T) {
		s := baseSignals()
		s.UserAgent = `Mozilla/5.0\u2028`
		assert.Equal(t, "fp_839864321", throttle.Fingerprint(s))
	})
}
