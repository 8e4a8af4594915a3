package mdffi

import "unicode/utf8"

// DecodeText checks that raw is valid UTF-8 and returns it as an owned string.
// On failure no string is produced and the error is an *EncodingError.
func DecodeText(raw []byte) (string, error) {
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	return "", newEncodingError(firstInvalid(raw))
}

func firstInvalid(raw []byte) int {
	for i := 0; i < len(raw); {
		r, size := utf8.DecodeRune(raw[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(raw)
}
