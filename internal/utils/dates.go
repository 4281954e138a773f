package utils

import (
	"time"

	"github.com/yukikurage/taskmaster-api/internal/constants"
)

// Clock returns the current time; services swap it out in tests
type Clock func() time.Time

// Today formats the current calendar date in loc as YYYY-MM-DD
func Today(clock Clock, loc *time.Location) string {
	if clock == nil {
		clock = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return clock().In(loc).Format(constants.DateLayout)
}

// IsDate reports whether s is a YYYY-MM-DD calendar date
func IsDate(s string) bool {
	_, err := time.Parse(constants.DateLayout, s)
	return err == nil
}
