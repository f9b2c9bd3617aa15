package taxonomy

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseCodeSpec expands an alias code spec into individual codes.
//
// A spec is a comma-separated list of parts, each either a single code
// ("A00") or a contiguous range with a shared alphabetic prefix
// ("A40-A79"). Multi-part specs combine both: "A04-A06, A09".
// Numeric widths are preserved, so "A04-A06" yields A04, A05, A06.
func ParseCodeSpec(spec string) ([]string, error) {
	var codes []string
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("%w: empty part in code spec %q", ErrInvalidSpec, spec)
		}

		lo, hi, found := strings.Cut(part, "-")
		if !found {
			if _, _, err := splitCode(lo); err != nil {
				return nil, err
			}
			codes = append(codes, lo)
			continue
		}

		loPrefix, loNum, err := splitCode(lo)
		if err != nil {
			return nil, err
		}
		hiPrefix, hiNum, err := splitCode(hi)
		if err != nil {
			return nil, err
		}
		if loPrefix != hiPrefix {
			return nil, fmt.Errorf("%w: range %q spans prefixes %q and %q",
				ErrInvalidSpec, part, loPrefix, hiPrefix)
		}
		if hiNum < loNum {
			return nil, fmt.Errorf("%w: descending range %q", ErrInvalidSpec, part)
		}

		width := len(lo) - len(loPrefix)
		for n := loNum; n <= hiNum; n++ {
			codes = append(codes, fmt.Sprintf("%s%0*d", loPrefix, width, n))
		}
	}
	return codes, nil
}

// splitCode separates an alphabetic prefix from its numeric suffix.
func splitCode(code string) (prefix string, num int, err error) {
	i := 0
	for i < len(code) && unicode.IsLetter(rune(code[i])) {
		i++
	}
	if i == 0 || i == len(code) {
		return "", 0, fmt.Errorf("%w: malformed code %q", ErrInvalidSpec, code)
	}
	num, err = strconv.Atoi(code[i:])
	if err != nil {
		return "", 0, fmt.Errorf("%w: malformed code %q", ErrInvalidSpec, code)
	}
	return code[:i], num, nil
}
