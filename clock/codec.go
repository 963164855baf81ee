package clock

import "github.com/tpkit/timeperiod/parser"

// MarshalText implements encoding.TextMarshaler interface
func (t Time) MarshalText() ([]byte, error) {
	return t.appendText(make([]byte, 0, 8)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler interface
func (t *Time) UnmarshalText(input []byte) error {
	v, err := ParseTime(string(input))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalJSON implements json.Marshaler.
// Time is encoded as canonical string "HH:MM:SS"
func (t Time) MarshalJSON() ([]byte, error) {
	return parser.Quoted(8, t.appendText), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Time) UnmarshalJSON(input []byte) error {
	s, err := parser.Unquote(input)
	if err != nil || s == nil {
		return err
	}
	return t.UnmarshalText([]byte(*s))
}

// MarshalText implements encoding.TextMarshaler interface
func (p TimePeriod) MarshalText() ([]byte, error) {
	return p.appendText(make([]byte, 0, 8)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler interface
func (p *TimePeriod) UnmarshalText(input []byte) error {
	v, err := ParseTimePeriod(string(input))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// MarshalJSON implements json.Marshaler.
// TimePeriod is encoded as canonical string "HH:MM:SS"
func (p TimePeriod) MarshalJSON() ([]byte, error) {
	return parser.Quoted(10, p.appendText), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *TimePeriod) UnmarshalJSON(input []byte) error {
	s, err := parser.Unquote(input)
	if err != nil || s == nil {
		return err
	}
	return p.UnmarshalText([]byte(*s))
}
