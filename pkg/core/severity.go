package core

import (
	"fmt"
	"math"
	"strings"
)

// =============================================================================
// Severity
// =============================================================================

// Severity is the level a rule reports at. The zero value disables the rule.
type Severity int

// Severity levels, numbered to match the ordinal form used in rule settings.
const (
	// SeverityOff disables a rule.
	SeverityOff Severity = iota
	// SeverityWarn reports violations without failing the run.
	SeverityWarn
	// SeverityError reports violations and fails the run.
	SeverityError
)

// String returns the token form of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityOff:
		return "off"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Valid reports whether s is one of the three known levels.
func (s Severity) Valid() bool {
	return s >= SeverityOff && s <= SeverityError
}

// Enabled reports whether the rule runs at all.
func (s Severity) Enabled() bool {
	return s == SeverityWarn || s == SeverityError
}

// MarshalText encodes the severity as its token.
func (s Severity) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid severity %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText accepts any severity token or ordinal.
func (s *Severity) UnmarshalText(text []byte) error {
	sev, ok := ParseSeverity(string(text))
	if !ok {
		return fmt.Errorf("invalid severity %q", string(text))
	}
	*s = sev
	return nil
}

// ParseSeverity converts a token ("off", "warn", "error") or an ordinal
// written as text ("0", "1", "2") to a Severity.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.TrimSpace(s) {
	case "off", "0":
		return SeverityOff, true
	case "warn", "1":
		return SeverityWarn, true
	case "error", "2":
		return SeverityError, true
	default:
		return SeverityOff, false
	}
}

// SeverityOf converts a decoded value to a Severity. Strings must be tokens;
// numbers must be the integral ordinals 0, 1 or 2 of any Go numeric kind.
func SeverityOf(v any) (Severity, bool) {
	switch n := v.(type) {
	case Severity:
		return n, n.Valid()
	case string:
		switch n {
		case "off":
			return SeverityOff, true
		case "warn":
			return SeverityWarn, true
		case "error":
			return SeverityError, true
		}
		return SeverityOff, false
	case int:
		return ordinal(int64(n))
	case int8:
		return ordinal(int64(n))
	case int16:
		return ordinal(int64(n))
	case int32:
		return ordinal(int64(n))
	case int64:
		return ordinal(n)
	case uint:
		return ordinal(int64(n))
	case uint8:
		return ordinal(int64(n))
	case uint16:
		return ordinal(int64(n))
	case uint32:
		return ordinal(int64(n))
	case uint64:
		if n > math.MaxInt64 {
			return SeverityOff, false
		}
		return ordinal(int64(n))
	case float32:
		return floatOrdinal(float64(n))
	case float64:
		return floatOrdinal(n)
	default:
		return SeverityOff, false
	}
}

func ordinal(n int64) (Severity, bool) {
	if n < int64(SeverityOff) || n > int64(SeverityError) {
		return SeverityOff, false
	}
	return Severity(n), true
}

func floatOrdinal(f float64) (Severity, bool) {
	if f != math.Trunc(f) {
		return SeverityOff, false
	}
	return ordinal(int64(f))
}
