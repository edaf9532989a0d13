package chapters

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// maxHours keeps the millisecond result within int64.
const maxHours = (math.MaxInt64/1000 - 3599) / 3600

// ParseTimestamp converts "MM:SS" or "H:MM:SS" into milliseconds.
// Minutes and seconds must be 0-59; hours may not overflow int64 milliseconds.
func ParseTimestamp(raw string) (int64, error) {
	parts := strings.Split(raw, ":")

	var hs, ms, ss string
	switch len(parts) {
	case 2:
		hs, ms, ss = "0", parts[0], parts[1]
	case 3:
		hs, ms, ss = parts[0], parts[1], parts[2]
	default:
		return 0, &FormatError{Raw: raw, Reason: "expected [H:]MM:SS"}
	}

	h, errH := strconv.ParseInt(hs, 10, 64)
	m, errM := strconv.ParseInt(ms, 10, 64)
	s, errS := strconv.ParseInt(ss, 10, 64)
	if errors.Is(errH, strconv.ErrRange) {
		return 0, &RangeError{Raw: raw}
	}
	if errH != nil || errM != nil || errS != nil {
		return 0, &FormatError{Raw: raw, Reason: "non-numeric field"}
	}

	if h < 0 || h > maxHours || m < 0 || m > 59 || s < 0 || s > 59 {
		return 0, &RangeError{Raw: raw}
	}
	return (h*3600 + m*60 + s) * 1000, nil
}
