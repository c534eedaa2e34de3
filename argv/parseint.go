package argv

import "math"

// ParseInt parses a signed 64-bit integer option value.
// Supports: 123, -456, 0xFF, 0XbadF00d. The whole string must be consumed.
// A sign is only accepted on decimal values; hex values are limited to
// math.MaxInt64.
func ParseInt(s string) (int64, error) {
	if len(s) == 0 {
		return 0, invalidInt(s, "empty integer")
	}

	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return parseHex(s)
	}

	negative := false
	digits := s
	if s[0] == '-' {
		negative = true
		digits = s[1:]
		if len(digits) == 0 {
			return 0, invalidInt(s, "invalid integer")
		}
	}

	// Accumulate as uint64 so that MinInt64 is representable
	limit := uint64(math.MaxInt64)
	if negative {
		limit++
	}
	var result uint64
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return 0, invalidInt(s, "invalid decimal character")
		}
		digit := uint64(c - '0')
		if result > (limit-digit)/10 {
			return 0, invalidInt(s, "integer overflow")
		}
		result = result*10 + digit
	}

	if negative {
		return -int64(result-1) - 1, nil
	}
	return int64(result), nil
}

// parseHex parses "0x" followed by hexadecimal digits using ASCII math
func parseHex(s string) (int64, error) {
	digits := s[2:]
	if len(digits) == 0 {
		return 0, invalidInt(s, "empty hex value")
	}

	var result int64
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		var digit int64
		switch {
		case c >= '0' && c <= '9':
			digit = int64(c - '0')
		case c >= 'A' && c <= 'F':
			digit = int64(c - 'A' + 10)
		case c >= 'a' && c <= 'f':
			digit = int64(c - 'a' + 10)
		default:
			return 0, invalidInt(s, "invalid hex character")
		}
		if result > (math.MaxInt64-digit)/16 {
			return 0, invalidInt(s, "hex integer overflow")
		}
		result = result*16 + digit
	}
	return result, nil
}

func invalidInt(s, msg string) error {
	return NewError(ErrorTypeInvalidValue, msg+": "+s).WithOption(s)
}
