package timeutil

import (
	"encoding/json"
	"time"
)

const (
	dateTimeFormat = "2006-01-02T15:04:05.000Z"
	dateFormat     = "2006-01-02"
)

type DateTime struct {
	time.Time
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	var dateStr string
	if err := json.Unmarshal(data, &dateStr); err != nil {
		return err
	}

	parsed, err := time.Parse(dateTimeFormat, dateStr)
	if err != nil {
		return err
	}

	d.Time = parsed.UTC()
	return nil
}

func (d DateTime) String() string {
	return d.Time.Format(dateTimeFormat)
}

func (d DateTime) ToDate() Date {
	return NewDate(d.Time)
}

func (d DateTime) Add(dur time.Duration) DateTime {
	return NewDateTime(d.Time.Add(dur))
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{
		Time: t.UTC(),
	}
}

func ParseDateTime(s string) (DateTime, error) {
	parsed, err := time.Parse(dateTimeFormat, s)
	if err != nil {
		return DateTime{}, err
	}
	return NewDateTime(parsed), nil
}

func DateTimeNow() DateTime {
	return NewDateTime(Now())
}

type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var dateStr string
	if err := json.Unmarshal(data, &dateStr); err != nil {
		return err
	}

	parsed, err := time.Parse(dateFormat, dateStr)
	if err != nil {
		return err
	}

	d.Time = parsed.UTC()
	return nil
}

func (d Date) String() string {
	return d.Time.Format(dateFormat)
}

// EndOfDay is the wire representation of calendar dates on timelines, which
// are normalized to 23:59:59.000 UTC of the same day.
func (d Date) EndOfDay() DateTime {
	y, m, day := d.Time.Date()
	return NewDateTime(time.Date(y, m, day, 23, 59, 59, 0, time.UTC))
}

func NewDate(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{
		Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
	}
}

func DateNow() Date {
	return NewDate(Now())
}

func ParseDate(s string) (Date, error) {
	parsed, err := time.Parse(dateFormat, s)
	if err != nil {
		return Date{}, err
	}

	return NewDate(parsed), nil
}

func Now() time.Time {
	return time.Now().UTC()
}
