package diary

import (
	"encoding/json"
	"time"
)

const layoutDateKey = "2006-01-02"

// ParseTime reads an RFC 3339 instant, with or without fractional seconds.
func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// FormatTime renders an instant the way it is persisted.
func FormatTime(v time.Time) string {
	return v.UTC().Format(time.RFC3339Nano)
}

// Timestamp is a time.Time that persists as an RFC 3339 string in UTC.
// Values that do not parse, such as a bare "10:35 AM" written by older
// clients, are kept verbatim in Raw with a zero Time and written back
// unchanged.
type Timestamp struct {
	time.Time
	Raw string
}

// At wraps t.
func At(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return json.Marshal(t.Raw)
	}
	return json.Marshal(FormatTime(t.Time))
}

// UnmarshalJSON never fails. A non-string value is kept as its JSON text.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	*t = Timestamp{}
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		if string(b) != "null" {
			t.Raw = string(b)
		}
		return nil
	}
	if timestamp == "" {
		return nil
	}
	parsed, err := ParseTime(timestamp)
	if err != nil {
		t.Raw = timestamp
		return nil
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) String() string {
	if t.IsZero() {
		return t.Raw
	}
	return FormatTime(t.Time)
}

// Display formats t in loc, or returns Raw when t holds no parsed instant.
func (t Timestamp) Display(loc *time.Location, layout string) string {
	if t.IsZero() {
		return t.Raw
	}
	return t.In(loc).Format(layout)
}

// DateKey is the UTC calendar date of t, used as the key of Document.Logs.
func DateKey(t time.Time) string {
	return t.UTC().Format(layoutDateKey)
}

// ParseDateKey validates a YYYY-MM-DD key and returns midnight UTC of that day.
func ParseDateKey(key string) (time.Time, error) {
	return time.ParseInLocation(layoutDateKey, key, time.UTC)
}

// Heading renders a date key as "Monday, January 2, 2006". The date is read
// in UTC so the output does not depend on the local zone. Unparseable keys
// are returned unchanged.
func Heading(key string) string {
	t, err := ParseDateKey(key)
	if err != nil {
		return key
	}
	return t.Format("Monday, January 2, 2006")
}
