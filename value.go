package tbltex

import (
	"fmt"
	"strconv"
	"strings"
)

// Unset marks a Resolution axis that imposes no truncation.
const Unset = -1

// Resolution is the number of integer and fractional digits a column is
// rounded to. Either half may be [Unset].
type Resolution struct {
	Int  int
	Frac int
}

// NoRounding renders values exactly as parsed.
var NoRounding = Resolution{Int: Unset, Frac: Unset}

// IsSet reports whether any rounding is requested.
func (r Resolution) IsSet() bool { return r.Int != Unset || r.Frac != Unset }

// String returns the resolution in the "<int>.<frac>" form accepted by
// [ParseResolution].
func (r Resolution) String() string {
	var sb strings.Builder
	if r.Int != Unset {
		sb.WriteString(strconv.Itoa(r.Int))
	}
	if r.Frac != Unset {
		sb.WriteByte('.')
		sb.WriteString(strconv.Itoa(r.Frac))
	}
	return sb.String()
}

// ParseResolution parses "<int>[.<frac>]". Either part may be omitted, so
// "3", ".2" and "3.2" are all valid.
func ParseResolution(s string) (Resolution, error) {
	res := NoRounding
	intPart, fracPart, _ := strings.Cut(s, ".")
	if intPart != "" {
		n, err := strconv.Atoi(intPart)
		if err != nil || n < 0 {
			return NoRounding, fmt.Errorf("%w: %q", ErrInvalidResolution, s)
		}
		res.Int = n
	}
	if fracPart != "" {
		n, err := strconv.Atoi(fracPart)
		if err != nil || n < 0 {
			return NoRounding, fmt.Errorf("%w: %q", ErrInvalidResolution, s)
		}
		res.Frac = n
	}
	return res, nil
}

// FormatValue re-renders a numeric token at the given resolution using
// round-half-up on the magnitude. Tokens that do not parse as numbers are
// returned unchanged.
//
// With no rounding requested, a token carrying an exponent is rendered as
// LaTeX inline math ($m\times10^{e}$); other tokens are returned with
// blanks removed.
func FormatValue(token string, res Resolution) string {
	d, ok := parseDecimal(token)
	if !ok {
		return token
	}
	if !res.IsSet() {
		if d.hasExp {
			return fmt.Sprintf(`$%s\times10^{%d}$`, d.mantissa, d.exp)
		}
		return d.mantissa
	}
	end := d.round(d.end(res))
	return d.render(end)
}
