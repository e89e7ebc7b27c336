// Package frequency turns maintenance frequency descriptors into recurrences and
// computes due dates from them.
//
// Resolution never fails: unknown input falls back to DefaultBucket.
package frequency

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Bucket is a canonical recurrence name.
type Bucket string

const (
	Daily      Bucket = "daily"
	Weekly     Bucket = "weekly"
	Monthly    Bucket = "monthly"
	Quarterly  Bucket = "quarterly"
	SemiAnnual Bucket = "semi-annual"
	Annual     Bucket = "annual"
	BiAnnual   Bucket = "bi-annual"

	// Custom marks a recurrence parsed from "<N> <unit>" or "every N hours".
	Custom Bucket = "custom"
)

// DefaultBucket is used for every descriptor that cannot be resolved.
const DefaultBucket = Daily

// Unit is the calendar unit a recurrence advances by.
type Unit int

const (
	Day Unit = iota
	Week
	Month
	Year
)

func (u Unit) String() string {
	switch u {
	case Week:
		return "week"
	case Month:
		return "month"
	case Year:
		return "year"
	default:
		return "day"
	}
}

// Recurrence is a resolved frequency: advance by Count Units.
type Recurrence struct {
	Bucket Bucket
	Unit   Unit
	Count  int
}

var bucketRecurrences = map[Bucket]Recurrence{
	Daily:      {Bucket: Daily, Unit: Day, Count: 1},
	Weekly:     {Bucket: Weekly, Unit: Week, Count: 1},
	Monthly:    {Bucket: Monthly, Unit: Month, Count: 1},
	Quarterly:  {Bucket: Quarterly, Unit: Month, Count: 3},
	SemiAnnual: {Bucket: SemiAnnual, Unit: Month, Count: 6},
	Annual:     {Bucket: Annual, Unit: Year, Count: 1},
	BiAnnual:   {Bucket: BiAnnual, Unit: Year, Count: 2},
}

// dayCountBuckets maps bare integer descriptors to buckets.
var dayCountBuckets = map[int]Bucket{
	1:   Daily,
	7:   Weekly,
	30:  Monthly,
	90:  Quarterly,
	180: SemiAnnual,
	365: Annual,
}

// phraseBuckets is checked in order; more specific phrases come first so that
// "semi-annual" and "bi-annual" are not swallowed by "annual".
var phraseBuckets = []struct {
	bucket  Bucket
	phrases []string
}{
	{BiAnnual, []string{"bi-annual", "biannual", "every 2 years"}},
	{SemiAnnual, []string{"semi-annual", "semiannual", "every 6 months"}},
	{Annual, []string{"annual", "yearly", "every year"}},
	{Quarterly, []string{"quarterly", "every 3 months"}},
	{Monthly, []string{"monthly", "every month"}},
	{Weekly, []string{"weekly", "every week"}},
	{Daily, []string{"daily", "every day"}},
}

var (
	unitPattern  = regexp.MustCompile(`(?i)(\d+)\s*(day|week|month|year)s?\b`)
	hoursPattern = regexp.MustCompile(`(?i)every\s+(\d+)\s*hours?\b`)
)

// Resolve parses descriptor into a Recurrence.
func Resolve(descriptor string) Recurrence {
	normalized := strings.ToLower(strings.TrimSpace(descriptor))

	if days, err := strconv.Atoi(normalized); err == nil {
		if bucket, ok := dayCountBuckets[days]; ok {
			return bucketRecurrences[bucket]
		}

		return bucketRecurrences[DefaultBucket]
	}

	for _, candidate := range phraseBuckets {
		for _, phrase := range candidate.phrases {
			if strings.Contains(normalized, phrase) {
				return bucketRecurrences[candidate.bucket]
			}
		}
	}

	if match := unitPattern.FindStringSubmatch(normalized); match != nil {
		if n, err := strconv.Atoi(match[1]); err == nil && n > 0 {
			return Recurrence{Bucket: Custom, Unit: parseUnit(match[2]), Count: n}
		}
	}

	if match := hoursPattern.FindStringSubmatch(normalized); match != nil {
		if hours, err := strconv.Atoi(match[1]); err == nil {
			return Recurrence{Bucket: Custom, Unit: Day, Count: max(1, hours/24)}
		}
	}

	return bucketRecurrences[DefaultBucket]
}

// NextDate returns the due date that follows base for descriptor.
func NextDate(descriptor string, base time.Time) time.Time {
	return Resolve(descriptor).Next(base)
}

// Next advances base by the recurrence. Month and year steps clamp to the last
// day of the target month, so Jan 31 + 1 month is Feb 28 or 29.
func (r Recurrence) Next(base time.Time) time.Time {
	count := r.Count
	if count < 1 {
		count = 1
	}

	switch r.Unit {
	case Week:
		return base.AddDate(0, 0, 7*count)
	case Month:
		return addMonths(base, count)
	case Year:
		return addMonths(base, 12*count)
	default:
		return base.AddDate(0, 0, count)
	}
}

func (r Recurrence) String() string {
	if r.Bucket != Custom {
		return string(r.Bucket)
	}

	return strconv.Itoa(r.Count) + " " + r.Unit.String() + "(s)"
}

func parseUnit(raw string) Unit {
	switch strings.ToLower(raw) {
	case "week":
		return Week
	case "month":
		return Month
	case "year":
		return Year
	default:
		return Day
	}
}

func addMonths(base time.Time, months int) time.Time {
	year, month, day := base.Date()
	firstOfTarget := time.Date(year, month+time.Month(months), 1,
		base.Hour(), base.Minute(), base.Second(), base.Nanosecond(), base.Location())

	lastDay := daysIn(firstOfTarget.Year(), firstOfTarget.Month(), base.Location())
	if day > lastDay {
		day = lastDay
	}

	return firstOfTarget.AddDate(0, 0, day-1)
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
