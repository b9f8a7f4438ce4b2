// Package schedule groups and searches scheduled game nights.
package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/mmynk/gamenight/internal/models"
)

// MonthSection is one calendar month worth of play dates.
type MonthSection struct {
	Key   string // "2006-01"
	Title string // "January 2006"
	Dates []*models.PlayDate
}

// Remaining is the time left until an event, split into display units.
type Remaining struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

func (r Remaining) String() string {
	return fmt.Sprintf("%dd %dh %dm %ds", r.Days, r.Hours, r.Minutes, r.Seconds)
}

// GroupByMonth buckets play dates by calendar month in loc.
// Sections are ordered by month and dates inside a section by start time.
func GroupByMonth(dates []*models.PlayDate, loc *time.Location) []MonthSection {
	if loc == nil {
		loc = time.Local
	}

	byKey := make(map[string]*MonthSection)
	for _, pd := range dates {
		t := time.Unix(pd.StartsAt, 0).In(loc)
		key := t.Format("2006-01")
		section, ok := byKey[key]
		if !ok {
			first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
			section = &MonthSection{Key: key, Title: first.Format("January 2006")}
			byKey[key] = section
		}
		section.Dates = append(section.Dates, pd)
	}

	sections := make([]MonthSection, 0, len(byKey))
	for _, section := range byKey {
		sort.SliceStable(section.Dates, func(i, j int) bool {
			return section.Dates[i].StartsAt < section.Dates[j].StartsAt
		})
		sections = append(sections, *section)
	}
	sort.Slice(sections, func(i, j int) bool { return sections[i].Key < sections[j].Key })
	return sections
}

// Next returns the earliest play date strictly after now, or nil.
func Next(dates []*models.PlayDate, now time.Time) *models.PlayDate {
	var next *models.PlayDate
	for _, pd := range dates {
		if pd.StartsAt <= now.Unix() {
			continue
		}
		if next == nil || pd.StartsAt < next.StartsAt {
			next = pd
		}
	}
	return next
}

// Countdown splits the time from now until target. Past targets yield zero.
func Countdown(now, target time.Time) Remaining {
	d := target.Sub(now)
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return Remaining{
		Days:    total / 86400,
		Hours:   total % 86400 / 3600,
		Minutes: total % 3600 / 60,
		Seconds: total % 60,
	}
}
