package schedule

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownFrequency = errors.New("unknown pay frequency, must be one of weekly, bi-weekly or monthly")

// Frequency is the recurrence rule of a pay schedule.
type Frequency string

const (
	Weekly   Frequency = "weekly"
	BiWeekly Frequency = "bi-weekly"
	Monthly  Frequency = "monthly"
)

// ParseFrequency parses a frequency. Common aliases are accepted.
func ParseFrequency(s string) (Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weekly", "week":
		return Weekly, nil
	case "bi-weekly", "biweekly", "bi_weekly", "fortnightly", "fortnight":
		return BiWeekly, nil
	case "monthly", "month":
		return Monthly, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFrequency, s)
	}
}

// Valid reports whether f is one of the supported frequencies.
func (f Frequency) Valid() bool {
	return f == Weekly || f == BiWeekly || f == Monthly
}

func (f Frequency) String() string {
	return string(f)
}

// days returns the step length for day based frequencies.
func (f Frequency) days() (int, bool) {
	switch f {
	case Weekly:
		return 7, true
	case BiWeekly:
		return 14, true
	default:
		return 0, false
	}
}

// MarshalJSON implements the json.Marshaler interface.
func (f Frequency) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(f))
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *Frequency) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	if s == "" {
		*f = ""
		return nil
	}

	parsed, err := ParseFrequency(s)
	if err != nil {
		return err
	}

	*f = parsed
	return nil
}

// Scan writes the value from the database.
func (f *Frequency) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*f = ""
		return nil
	case string:
		*f = Frequency(v)
	case []byte:
		*f = Frequency(v)
	default:
		return fmt.Errorf("cannot scan %T into Frequency", value)
	}

	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (f Frequency) Value() (driver.Value, error) {
	return string(f), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Frequency) GormDataType() string {
	return "string"
}
