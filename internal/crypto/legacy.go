package crypto

import (
	"encoding/base64"
	"unicode"
	"unicode/utf8"
)

// DecodeLegacyBase64 reverses the plain base64 obfuscation used by early
// releases to store API keys. It reports false when value is not standard
// base64 or does not decode to printable UTF-8 text.
func DecodeLegacyBase64(value string) (string, bool) {
	if value == "" {
		return "", false
	}

	raw, err := base64.StdEncoding.DecodeString(value)
	if err != nil || len(raw) == 0 {
		return "", false
	}
	if !utf8.Valid(raw) {
		return "", false
	}

	decoded := string(raw)
	for _, r := range decoded {
		if !unicode.IsPrint(r) {
			return "", false
		}
	}

	return decoded, true
}
