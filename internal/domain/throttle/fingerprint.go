package throttle

import (
	"bytes"
	"encoding/json"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
)

// Signals are the client traits folded into a fingerprint. CanvasFingerprint
// is the tail of a locally rendered text sample; any stable string works.
type Signals struct {
	UserAgent         string `json:"userAgent"`
	Language          string `json:"language"`
	Platform          string `json:"platform"`
	ScreenResolution  string `json:"screenResolution"`
	Timezone          string `json:"timezone"`
	CanvasFingerprint string `json:"canvasFingerprint"`
}

// Fingerprint reduces the signals to a short rate-limit key. It is a 32-bit
// multiply-by-31 rolling hash over the UTF-16 code units of the JSON form,
// so collisions are possible and expected to be rare, not impossible.
func Fingerprint(s Signals) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// a struct of strings always encodes
	_ = enc.Encode(s)
	raw := unescapeLineSeparators(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))

	var hash int32
	for _, unit := range utf16.Encode([]rune(string(raw))) {
		hash = (hash << 5) - hash + int32(unit)
	}

	abs := int64(hash)
	if abs < 0 {
		abs = -abs
	}
	return "fp_" + strconv.FormatInt(abs, 10)
}

// unescapeLineSeparators undoes the \u2028 and \u2029 escapes encoding/json
// always emits, so the folded text matches a browser's JSON.stringify.
// Escaped backslashes are copied as pairs and never start a match.
func unescapeLineSeparators(raw []byte) []byte {
	if !bytes.Contains(raw, []byte(`\u202`)) {
		return raw
	}
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			out = append(out, raw[i])
			continue
		}
		if i+5 < len(raw) && raw[i+1] == 'u' {
			switch string(raw[i+2 : i+6]) {
			case "2028":
				out = utf8.AppendRune(out, '\u2028')
				i += 5
				continue
			case "2029":
				out = utf8.AppendRune(out, '\u2029')
				i += 5
				continue
			}
		}
		out = append(out, raw[i], raw[i+1])
		i++
	}
	return out
}
