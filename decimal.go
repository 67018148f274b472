package tbltex

import (
	"strconv"
	"strings"
)

// maxExponent bounds the exponent a token may carry. Larger shifts would
// pad or render millions of zeros, so such tokens pass through.
const maxExponent = 4096

// decimal is a parsed numeric token: base-10 digits with a movable point.
// The point is an index into digits and may lie past the end of the slice,
// in which case the missing positions are implied zeros.
type decimal struct {
	digits []byte // values 0-9, not ASCII
	point  int
	neg    bool

	// mantissa is the token up to any exponent marker, blanks removed.
	mantissa string
	hasExp   bool
	exp      int
}

// parseDecimal parses token. It reports false for anything that is not a
// plain decimal number, so callers can pass the token through unchanged.
func parseDecimal(token string) (decimal, bool) {
	var d decimal
	point := -1
	var mantissa strings.Builder

	for i := 0; i < len(token); i++ {
		c := token[i]
		switch {
		case c == ' ' || c == '\t':
			continue
		case c == '-' && len(d.digits) == 0 && !d.neg && point < 0:
			d.neg = true
		case c >= '0' && c <= '9':
			d.digits = append(d.digits, c-'0')
		case c == '.':
			if point >= 0 {
				return decimal{}, false
			}
			point = len(d.digits)
		case c == 'e' || c == 'E':
			exp, err := strconv.Atoi(strings.Trim(token[i+1:], " \t"))
			if err != nil || exp > maxExponent || exp < -maxExponent {
				return decimal{}, false
			}
			d.hasExp = true
			d.exp = exp
			d.mantissa = mantissa.String()
			i = len(token)
			continue
		default:
			return decimal{}, false
		}
		mantissa.WriteByte(c)
	}
	if len(d.digits) == 0 {
		return decimal{}, false
	}
	if !d.hasExp {
		d.mantissa = mantissa.String()
	}

	if point < 0 {
		point = len(d.digits)
	}
	d.point = point
	d.shift(d.exp)
	return d, true
}

// shift moves the point by n places and left-pads with zeros so the point
// never falls before the first digit.
func (d *decimal) shift(n int) {
	d.point += n
	if d.point >= 0 {
		return
	}
	pad := make([]byte, -d.point, len(d.digits)-d.point)
	d.digits = append(pad, d.digits...)
	d.point = 0
}

// end returns the exclusive end index of the digit window for res.
func (d *decimal) end(res Resolution) int {
	end := len(d.digits)
	switch {
	case res.Frac != Unset:
		end = d.point + res.Frac
	case res.Int != Unset:
		end = res.Int
	}
	if end < d.point {
		end = d.point
	}
	return end
}

// round applies round-half-up on the magnitude at index end and returns the
// possibly shifted end index.
func (d *decimal) round(end int) int {
	if end < 0 || end >= len(d.digits) || d.digits[end] < 5 {
		return end
	}
	for i := end - 1; i >= 0; i-- {
		d.digits[i]++
		if d.digits[i] < 10 {
			return end
		}
		d.digits[i] = 0
	}
	d.digits = append([]byte{1}, d.digits...)
	d.point++
	return end + 1
}

// render serializes digits [0, end) with the point inserted at d.point.
// Positions past the stored digits render as zeros.
func (d *decimal) render(end int) string {
	var sb strings.Builder
	if d.neg {
		sb.WriteByte('-')
	}
	for i := 0; i < end; i++ {
		if i == d.point {
			sb.WriteByte('.')
		}
		if i < len(d.digits) {
			sb.WriteByte('0' + d.digits[i])
		} else {
			sb.WriteByte('0')
		}
	}
	if end == 0 {
		sb.WriteByte('0')
	}
	return sb.String()
}
