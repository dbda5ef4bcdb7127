package life

import (
	"strings"

	"github.com/pkg/errors"
)

// Rule is an outer-totalistic birth/survival rule. Bit k of Birth is set when
// a dead cell with k live neighbours comes alive; bit k of Survive is set when
// a live cell with k live neighbours stays alive.
type Rule struct {
	Birth   uint16
	Survive uint16
}

// Conway is the standard B3/S23 rule.
var Conway = Rule{Birth: 1 << 3, Survive: 1<<2 | 1<<3}

// Next returns whether a cell is alive in the next generation.
func (r Rule) Next(alive bool, neighbors int) bool {
	if neighbors < 0 || neighbors > 8 {
		return false
	}
	if alive {
		return r.Survive&(1<<neighbors) != 0
	}
	return r.Birth&(1<<neighbors) != 0
}

// String formats the rule in B/S notation, e.g. "B3/S23".
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	writeCounts(&b, r.Birth)
	b.WriteString("/S")
	writeCounts(&b, r.Survive)
	return b.String()
}

func writeCounts(b *strings.Builder, mask uint16) {
	for k := 0; k <= 8; k++ {
		if mask&(1<<k) != 0 {
			b.WriteByte(byte('0' + k))
		}
	}
}

// ParseRule parses B/S notation. Both halves are required, may appear in
// either order and may be empty ("B/S" kills everything). Parsing is case
// insensitive.
func ParseRule(s string) (Rule, error) {
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(s)), "/")
	if len(parts) != 2 {
		return Rule{}, errors.Wrapf(ErrInvalidRule, "%q: want B<digits>/S<digits>", s)
	}
	var (
		r            Rule
		seenB, seenS bool
	)
	for _, part := range parts {
		if part == "" {
			return Rule{}, errors.Wrapf(ErrInvalidRule, "%q: empty half", s)
		}
		mask, err := parseCounts(part[1:])
		if err != nil {
			return Rule{}, errors.Wrapf(ErrInvalidRule, "%q: %v", s, err)
		}
		switch part[0] {
		case 'B':
			if seenB {
				return Rule{}, errors.Wrapf(ErrInvalidRule, "%q: birth given twice", s)
			}
			seenB = true
			r.Birth = mask
		case 'S':
			if seenS {
				return Rule{}, errors.Wrapf(ErrInvalidRule, "%q: survival given twice", s)
			}
			seenS = true
			r.Survive = mask
		default:
			return Rule{}, errors.Wrapf(ErrInvalidRule, "%q: unexpected prefix %q", s, part[0])
		}
	}
	return r, nil
}

func parseCounts(digits string) (uint16, error) {
	var mask uint16
	for _, c := range digits {
		if c < '0' || c > '8' {
			return 0, errors.Errorf("neighbour count %q outside 0-8", c)
		}
		mask |= 1 << (c - '0')
	}
	return mask, nil
}
