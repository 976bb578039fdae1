package localtime

import (
	"fmt"
	"time"
)

// Date/time layouts used across pages and filenames. A kickoff must map to
// the same calendar date everywhere it appears, so all formatting goes
// through one Clock.
const (
	LayoutPageDate   = "2006-01-02" // day page filenames, selected-date token
	LayoutFolderDate = "20060102"   // match page path component
	LayoutHumanDate  = "02 Jan 2006"
	LayoutMenuDate   = "Jan 02"
	LayoutShortDate  = "02 Jan"
	LayoutTimeOfDay  = "15:04"
)

// Clock converts epoch kickoffs into a fixed, explicitly configured UTC
// offset. The offset is injected rather than read from the machine so a run
// produces identical date groupings no matter where it executes.
type Clock struct {
	loc *time.Location
	now time.Time
}

// New builds a Clock for the given offset in minutes east of UTC.
// now is frozen at construction and used as "today" for the whole run.
func New(offsetMinutes int, now time.Time) Clock {
	name := "UTC"
	if offsetMinutes != 0 {
		sign := "+"
		m := offsetMinutes
		if m < 0 {
			sign = "-"
			m = -m
		}
		name = fmt.Sprintf("UTC%s%02d:%02d", sign, m/60, m%60)
	}
	loc := time.FixedZone(name, offsetMinutes*60)
	return Clock{loc: loc, now: now.In(loc)}
}

// Localize converts a Unix epoch kickoff into the configured zone.
func (c Clock) Localize(epoch int64) time.Time {
	return time.Unix(epoch, 0).In(c.loc)
}

// DateOf returns the local calendar date of a kickoff, truncated to midnight.
func (c Clock) DateOf(epoch int64) time.Time {
	t := c.Localize(epoch)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.loc)
}

// Now returns the frozen run-start time.
func (c Clock) Now() time.Time { return c.now }

// Today returns the frozen run-start date, truncated to midnight.
func (c Clock) Today() time.Time {
	return time.Date(c.now.Year(), c.now.Month(), c.now.Day(), 0, 0, 0, 0, c.loc)
}
