package helpers

import (
	"bytes"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

// Wire layouts for calendar dates and class start times.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

var location atomic.Pointer[time.Location]

func init() {
	location.Store(time.UTC)
}

// SetLocation sets the zone dates are parsed and printed in.
func SetLocation(loc *time.Location) {
	if loc == nil {
		loc = time.UTC
	}
	location.Store(loc)
}

// Location returns the zone dates are parsed and printed in.
func Location() *time.Location {
	return location.Load()
}

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// Date is a calendar date in the yyyy-MM-dd wire format. The zero value
// encodes as JSON null.
type Date struct {
	t time.Time
}

// DateFromMillis converts epoch milliseconds to a Date.
func DateFromMillis(ms int64) Date {
	return Date{t: time.UnixMilli(ms).In(Location())}
}

// DateFromMillisPtr converts optional epoch milliseconds to a Date.
func DateFromMillisPtr(ms *int64) Date {
	if ms == nil {
		return Date{}
	}
	return DateFromMillis(*ms)
}

// NewDate truncates t to midnight in the configured zone.
func NewDate(t time.Time) Date {
	t = t.In(Location())
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, Location())}
}

func (d Date) Time() time.Time {
	return d.t
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) UnixMilli() int64 {
	return d.t.UnixMilli()
}

// MillisPtr returns nil for the zero Date.
func (d Date) MillisPtr() *int64 {
	if d.IsZero() {
		return nil
	}
	ms := d.UnixMilli()
	return &ms
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.In(Location()).Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	t, err := unmarshalTime(data, DateLayout)
	if err != nil {
		return err
	}
	d.t = t
	return nil
}

// DateTime is an instant in the yyyy-MM-dd HH:mm:ss wire format.
type DateTime struct {
	t time.Time
}

// DateTimeFromMillis converts epoch milliseconds to a DateTime.
func DateTimeFromMillis(ms int64) DateTime {
	return DateTime{t: time.UnixMilli(ms).In(Location())}
}

// NewDateTime truncates t to whole seconds.
func NewDateTime(t time.Time) DateTime {
	return DateTime{t: t.Truncate(time.Second).In(Location())}
}

func (d DateTime) Time() time.Time {
	return d.t
}

func (d DateTime) IsZero() bool {
	return d.t.IsZero()
}

func (d DateTime) UnixMilli() int64 {
	return d.t.UnixMilli()
}

func (d DateTime) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.In(Location()).Format(DateTimeLayout)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	t, err := unmarshalTime(data, DateTimeLayout)
	if err != nil {
		return err
	}
	d.t = t
	return nil
}

func unmarshalTime(data []byte, layout string) (time.Time, error) {
	if bytes.Equal(data, []byte("null")) {
		return time.Time{}, nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return time.Time{}, fmt.Errorf("expected a %q string, got %s", layout, data)
	}
	t, err := time.ParseInLocation(layout, string(data[1:len(data)-1]), Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time value: %w", err)
	}
	return t, nil
}
