package amounts

import (
	"encoding/hex"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

var (
	// ErrMalformedHex indicates a hex field containing characters outside [0-9a-fA-F].
	ErrMalformedHex = errors.New("malformed hex string")

	// ErrInvalidUTF8 indicates hex-encoded bytes that are not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("hex bytes are not valid UTF-8")
)

// Strip0x removes an optional 0x/0X prefix from a hex string.
func Strip0x(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

// HexToBig parses a hexadecimal-encoded integer with an optional 0x prefix.
// Empty input (including a bare "0x") parses as zero.
func HexToBig(s string) (*big.Int, error) {
	h := Strip0x(strings.TrimSpace(s))
	if h == "" {
		return new(big.Int), nil
	}
	if !isHexDigits(h) {
		return nil, errors.Wrapf(ErrMalformedHex, "%q", s)
	}
	// base is fixed to 16, so SetString only fails on non-hex input which is
	// already ruled out above
	v, ok := new(big.Int).SetString(h, 16)
	if !ok {
		return nil, errors.Wrapf(ErrMalformedHex, "%q", s)
	}
	return v, nil
}

// HexToUint64 parses a hexadecimal-encoded integer into a uint64.
// Values exceeding 64 bits are an error.
func HexToUint64(s string) (uint64, error) {
	h := Strip0x(strings.TrimSpace(s))
	if h == "" {
		return 0, nil
	}
	if !isHexDigits(h) {
		return 0, errors.Wrapf(ErrMalformedHex, "%q", s)
	}
	v, err := strconv.ParseUint(h, 16, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to parse %q as uint64", s)
	}
	return v, nil
}

// HexToUTF8 decodes a hex-encoded byte sequence into UTF-8 text.
func HexToUTF8(s string) (string, error) {
	h := Strip0x(strings.TrimSpace(s))
	b, err := hex.DecodeString(h)
	if err != nil {
		return "", errors.Wrapf(ErrMalformedHex, "%q", s)
	}
	if !utf8.Valid(b) {
		return "", errors.Wrapf(ErrInvalidUTF8, "%q", s)
	}
	return string(b), nil
}

// StripLeadingZeros removes leading zero padding from a hex string while
// always preserving at least one digit.
func StripLeadingZeros(s string) string {
	trimmed := strings.TrimLeft(s, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

// IsHexString reports whether s is a 0x-prefixed string of hex digits.
func IsHexString(s string) bool {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return false
	}
	return isHexDigits(s[2:])
}

func isHexDigits(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
