package parser

import "strconv"

// AppendClock appends "HH:MM:SS" to dst. Hours are padded to two digits
// and never truncated, so 123 hours render as "123".
func AppendClock(dst []byte, hours int64, minutes, seconds int) []byte {
	if hours < 10 {
		dst = append(dst, '0')
	}
	dst = strconv.AppendInt(dst, hours, 10)
	dst = append(dst, ':')
	dst = appendPadded(dst, minutes, 2)
	dst = append(dst, ':')
	return appendPadded(dst, seconds, 2)
}

// AppendMillis appends ".mmm" to dst
func AppendMillis(dst []byte, milliseconds int) []byte {
	dst = append(dst, '.')
	return appendPadded(dst, milliseconds, 3)
}

func appendPadded(dst []byte, v, width int) []byte {
	for limit := 10; width > 1; width-- {
		if v < limit {
			dst = append(dst, '0')
		}
		limit *= 10
	}
	return strconv.AppendInt(dst, int64(v), 10)
}
