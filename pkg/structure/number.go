package structure

import (
	"math"
	"time"
)

// ParseLeadingInt returns the integer denoted by the leading part of s,
// ignoring leading whitespace and anything after the digits. Underscores are
// accepted between digits. If s does not start with an integer, zero is
// returned. The flag is false only when the digits do not fit in an int64.
func ParseLeadingInt(s string) (int64, bool) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	limit := uint64(math.MaxInt64)
	if neg {
		limit++
	}
	var n uint64
	digits := 0
	for ; i < len(s); i++ {
		c := s[i]
		if c == '_' && digits > 0 && i+1 < len(s) && isDigit(s[i+1]) {
			continue
		}
		if !isDigit(c) {
			break
		}
		d := uint64(c - '0')
		if n > (limit-d)/10 {
			return 0, false
		}
		n = n*10 + d
		digits++
	}
	if neg {
		return int64(-n), true
	}
	return int64(n), true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

// AsInt64 converts v to an int64 the way a loose integer conversion would:
// integers are kept, floats are truncated, strings are read with
// [ParseLeadingInt] and times become Unix seconds. The flag is false for any
// other value, and for numbers or digits that do not fit in an int64.
func AsInt64(v any) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int8:
		return int64(t), true
	case int16:
		return int64(t), true
	case int32:
		return int64(t), true
	case int64:
		return t, true
	case uint:
		return int64(t), true
	case uint8:
		return int64(t), true
	case uint16:
		return int64(t), true
	case uint32:
		return int64(t), true
	case uint64:
		return int64(t), true
	case float32:
		return truncate(float64(t))
	case float64:
		return truncate(t)
	case string:
		return ParseLeadingInt(t)
	case time.Time:
		return t.Unix(), true
	default:
		return 0, false
	}
}

func truncate(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(math.Trunc(f)), true
}
