package entity

import (
	"encoding/json"
	"time"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// Timestamp is a stored timestamp that may not have been parseable. A valid
// value marshals as RFC 3339 in UTC; an invalid one marshals as the raw text
// it was read from.
type Timestamp struct {
	t     time.Time
	raw   string
	valid bool
}

func At(t time.Time) Timestamp {
	return Timestamp{t: t, valid: true}
}

// RawTimestamp wraps text read from storage without interpreting it.
// Normalize does the parsing.
func RawTimestamp(raw string) Timestamp {
	return Timestamp{raw: raw}
}

func ParseTimestamp(raw string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// Normalize returns the canonical UTC form, or the receiver unchanged when
// the raw text cannot be parsed.
func (ts Timestamp) Normalize() Timestamp {
	if ts.valid {
		return At(ts.t.UTC())
	}
	if parsed, ok := ParseTimestamp(ts.raw); ok {
		return At(parsed.UTC())
	}
	return ts
}

func (ts Timestamp) Time() (time.Time, bool) {
	return ts.t, ts.valid
}

func (ts Timestamp) Raw() string {
	return ts.raw
}

func (ts Timestamp) IsZero() bool {
	return !ts.valid && ts.raw == ""
}

func (ts Timestamp) String() string {
	if ts.valid {
		return ts.t.UTC().Format(time.RFC3339Nano)
	}
	return ts.raw
}

// After orders timestamps for recency sorting. Unparseable values sort as
// the zero time.
func (ts Timestamp) After(other Timestamp) bool {
	a, _ := ts.Normalize().Time()
	b, _ := other.Normalize().Time()
	return a.After(b)
}

func (ts Timestamp) Equal(other Timestamp) bool {
	a, aok := ts.Normalize().Time()
	b, bok := other.Normalize().Time()
	if !aok || !bok {
		return !aok && !bok && ts.raw == other.raw
	}
	return a.Equal(b)
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(ts.String())
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*ts = Timestamp{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*ts = RawTimestamp(raw).Normalize()
	return nil
}
