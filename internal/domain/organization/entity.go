package organization

import "time"

type Organization struct {
	ID        string
	Name      string
	Code      string
	Timezone  string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location resolves the organization timezone, falling back to UTC for
// unknown or empty names. "Today" for notice-period checks is taken in
// this location.
func (o Organization) Location() *time.Location {
	if o.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(o.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
