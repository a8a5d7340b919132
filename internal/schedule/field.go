package schedule

import (
	"math/bits"
	"strconv"
	"strings"
)

// Field identifies one of the five positional cron fields.
type Field int

const (
	Minute Field = iota
	Hour
	DayOfMonth
	Month
	DayOfWeek
)

// FieldCount is the number of whitespace-separated fields in a job.
const FieldCount = 5

var fieldNames = [FieldCount]string{"minute", "hour", "day-of-month", "month", "day-of-week"}

func (f Field) String() string {
	if f < 0 || int(f) >= FieldCount {
		return "field(" + strconv.Itoa(int(f)) + ")"
	}
	return fieldNames[f]
}

// Domain is the inclusive span a wildcard expands to. Stepped wildcards
// (*/n) count from Min.
type Domain struct {
	Min, Max int
}

var domains = [FieldCount]Domain{
	Minute:     {0, 59},
	Hour:       {0, 23},
	DayOfMonth: {1, 31},
	Month:      {1, 12},
	DayOfWeek:  {0, 6},
}

// Domain returns the field's value span.
func (f Field) Domain() Domain { return domains[f] }

// upper is the largest literal accepted. Day-of-week takes 7 as a second
// spelling of Sunday.
func (f Field) upper() int {
	if f == DayOfWeek {
		return 7
	}
	return domains[f].Max
}

// bitset is a set of small integers (0-63).
type bitset uint64

func (b bitset) has(v int) bool { return v >= 0 && v < 64 && b&(1<<uint(v)) != 0 }
func (b *bitset) set(v int)     { *b |= 1 << uint(v) }
func (b *bitset) clear(v int)   { *b &^= 1 << uint(v) }
func (b bitset) len() int       { return bits.OnesCount64(uint64(b)) }

func (b bitset) values() []int {
	out := make([]int, 0, b.len())
	for rest := uint64(b); rest != 0; rest &= rest - 1 {
		out = append(out, bits.TrailingZeros64(rest))
	}
	return out
}

// FieldSpec is a resolved cron field: the set of admissible values within
// the field's domain plus the text it came from. The zero value is not
// valid; build one with ParseField.
type FieldSpec struct {
	field    Field
	set      bitset
	wildcard bool
	source   string
}

// ParseField resolves raw against field's domain. The grammar is a
// comma-separated list of atoms: *, */n, a, a-b, a-b/n.
func ParseField(field Field, raw string) (FieldSpec, error) {
	if raw == "" {
		return FieldSpec{}, fieldErr(field, raw, ErrMalformedField, "empty field")
	}
	spec := FieldSpec{field: field, source: raw, wildcard: raw == "*"}
	for _, atom := range strings.Split(raw, ",") {
		set, err := parseAtom(field, raw, atom)
		if err != nil {
			return FieldSpec{}, err
		}
		spec.set |= set
	}
	if field == DayOfWeek && spec.set.has(7) {
		spec.set.clear(7)
		spec.set.set(0)
	}
	if spec.set == 0 {
		return FieldSpec{}, fieldErr(field, raw, ErrMalformedField, "resolves to an empty set")
	}
	return spec, nil
}

// parseAtom resolves one list element.
func parseAtom(field Field, raw, atom string) (set bitset, err error) {
	if atom == "" {
		return 0, fieldErr(field, raw, ErrMalformedField, "empty list element")
	}

	base, stepText, stepped := strings.Cut(atom, "/")
	step := 1
	if stepped {
		if step, err = parseStep(field, raw, stepText); err != nil {
			return 0, err
		}
	}

	domain := field.Domain()
	var lo, hi int
	switch {
	case base == "*":
		lo, hi = domain.Min, domain.Max
	case strings.Contains(base, "-"):
		startText, endText, _ := strings.Cut(base, "-")
		if lo, err = parseValue(field, raw, startText); err != nil {
			return 0, err
		}
		if hi, err = parseValue(field, raw, endText); err != nil {
			return 0, err
		}
		if lo > hi {
			return 0, fieldErr(field, raw, ErrInvalidRange, "range start %d > end %d", lo, hi)
		}
	default:
		if stepped {
			return 0, fieldErr(field, raw, ErrMalformedField, "step %q needs * or a range", atom)
		}
		if lo, err = parseValue(field, raw, base); err != nil {
			return 0, err
		}
		hi = lo
	}

	for v := lo; v <= hi; v += step {
		set.set(v)
	}
	return set, nil
}

func parseValue(field Field, raw, text string) (int, error) {
	if !isDigits(text) {
		return 0, fieldErr(field, raw, ErrMalformedField, "invalid value %q", text)
	}
	v, err := strconv.Atoi(text)
	if err != nil || v < field.Domain().Min || v > field.upper() {
		return 0, fieldErr(field, raw, ErrOutOfDomain, "value %s outside [%d-%d]", text, field.Domain().Min, field.upper())
	}
	return v, nil
}

func parseStep(field Field, raw, text string) (int, error) {
	if rest, negative := strings.CutPrefix(text, "-"); negative && isDigits(rest) {
		return 0, fieldErr(field, raw, ErrInvalidStep, "step must be positive, got %s", text)
	}
	if !isDigits(text) {
		return 0, fieldErr(field, raw, ErrMalformedField, "invalid step %q", text)
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fieldErr(field, raw, ErrMalformedField, "invalid step %q", text)
	}
	if n <= 0 {
		return 0, fieldErr(field, raw, ErrInvalidStep, "step must be positive, got %d", n)
	}
	return n, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Field returns which cron position the spec was parsed for.
func (s FieldSpec) Field() Field { return s.field }

// Has reports whether v is admitted. For day-of-week, 7 is Sunday.
func (s FieldSpec) Has(v int) bool {
	if s.field == DayOfWeek && v == 7 {
		v = 0
	}
	return s.set.has(v)
}

// Values returns the resolved set in ascending order.
func (s FieldSpec) Values() []int { return s.set.values() }

// Len is the size of the resolved set.
func (s FieldSpec) Len() int { return s.set.len() }

// Wildcard reports whether the field is unrestricted, i.e. exactly "*".
// Fields like "0-6", "*/1" or "*,5" cover the same values but still count
// as restricted for the day selection rule.
func (s FieldSpec) Wildcard() bool { return s.wildcard }

// Source is the raw text the field was parsed from.
func (s FieldSpec) Source() string { return s.source }

func (s FieldSpec) String() string { return s.source }
