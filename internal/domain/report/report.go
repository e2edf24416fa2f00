package report

import (
	"math"
	"sort"
	"time"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/shift"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/user"
)

// UserInfo is the profile header embedded in every report.
type UserInfo struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Department *string `json:"department,omitempty"`
	Position   *string `json:"position,omitempty"`
}

// Period describes the date window a report covers.
type Period struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Week      int       `json:"week,omitempty"`
	Month     int       `json:"month,omitempty"`
	Year      int       `json:"year"`
}

// Summary accumulates period-wide totals.
type Summary struct {
	TotalHours  float64            `json:"total_hours"`
	TotalDays   int                `json:"total_days"`
	TotalLeaves int                `json:"total_leaves"`
	ShiftCounts map[shift.Type]int `json:"shift_counts"`
}

// ShiftEntry is a shift as it appears inside a day bucket.
type ShiftEntry struct {
	ID        string     `json:"id"`
	Type      shift.Type `json:"type"`
	Name      string     `json:"name"`
	StartTime time.Time  `json:"start_time"`
	EndTime   time.Time  `json:"end_time"`
	Hours     float64    `json:"hours"`
}

// DayBucket collects one calendar day's shifts and hour subtotal.
type DayBucket struct {
	Date       time.Time    `json:"date"`
	Shifts     []ShiftEntry `json:"shifts"`
	TotalHours float64      `json:"total_hours"`
}

// WeekBucket sums a week's day buckets inside a monthly report.
type WeekBucket struct {
	Week        int                `json:"week"`
	Year        int                `json:"year"`
	StartDate   time.Time          `json:"start_date"`
	EndDate     time.Time          `json:"end_date"`
	TotalHours  float64            `json:"total_hours"`
	TotalDays   int                `json:"total_days"`
	TotalLeaves int                `json:"total_leaves"`
	ShiftCounts map[shift.Type]int `json:"shift_counts"`
}

// Report is a per-user summary of one period's approved shifts.
type Report struct {
	User            UserInfo     `json:"user"`
	Period          Period       `json:"period"`
	Summary         Summary      `json:"summary"`
	DailyBreakdown  []DayBucket  `json:"daily_breakdown"`
	WeeklyBreakdown []WeekBucket `json:"weekly_breakdown,omitempty"`
}

func newShiftCounts() map[shift.Type]int {
	counts := make(map[shift.Type]int, len(shift.AllTypes))
	for _, t := range shift.AllTypes {
		counts[t] = 0
	}
	return counts
}

func newUserInfo(u user.User) UserInfo {
	return UserInfo{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Department: u.Department,
		Position:   u.Position,
	}
}

// BuildWeekly folds a user's approved shifts over [start, end] into a
// weekly report: one day bucket per calendar day, a per-type histogram
// and hour/day/leave totals.
func BuildWeekly(shifts []shift.Shift, start, end time.Time, u user.User) Report {
	r := Report{
		User: newUserInfo(u),
		Period: Period{
			StartDate: start,
			EndDate:   end,
			Week:      WeekNumber(start),
			Year:      start.Year(),
		},
		Summary: Summary{ShiftCounts: newShiftCounts()},
	}

	r.DailyBreakdown = buildDayBuckets(start, end)
	fillBuckets(&r, shifts, start)

	return r
}

// BuildMonthly is BuildWeekly over a calendar month, with the day buckets
// additionally grouped into (year, week) buckets sorted ascending.
func BuildMonthly(shifts []shift.Shift, start, end time.Time, u user.User) Report {
	r := Report{
		User: newUserInfo(u),
		Period: Period{
			StartDate: start,
			EndDate:   end,
			Month:     int(start.Month()),
			Year:      start.Year(),
		},
		Summary: Summary{ShiftCounts: newShiftCounts()},
	}

	r.DailyBreakdown = buildDayBuckets(start, end)
	fillBuckets(&r, shifts, start)
	r.WeeklyBreakdown = buildWeekBuckets(r.DailyBreakdown)

	return r
}

func buildDayBuckets(start, end time.Time) []DayBucket {
	var buckets []DayBucket
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		buckets = append(buckets, DayBucket{Date: day, Shifts: []ShiftEntry{}})
	}
	return buckets
}

func fillBuckets(r *Report, shifts []shift.Shift, start time.Time) {
	for _, s := range shifts {
		r.Summary.ShiftCounts[s.ShiftType]++

		hours, err := shift.HoursWorked(s.ShiftType, s.Date)
		if err != nil {
			// Unknown type in storage, count it in the histogram only.
			continue
		}

		if shift.IsLeaveType(s.ShiftType) {
			r.Summary.TotalLeaves++
		} else {
			r.Summary.TotalHours += hours
			r.Summary.TotalDays++
		}

		// Guards against off-by-one or timezone drift: a shift outside
		// the bucket range still counts toward the summary above.
		dayIndex := int(math.Floor(s.Date.Sub(start).Hours() / 24))
		if dayIndex < 0 || dayIndex >= len(r.DailyBreakdown) {
			continue
		}

		r.DailyBreakdown[dayIndex].Shifts = append(r.DailyBreakdown[dayIndex].Shifts, ShiftEntry{
			ID:        s.ID,
			Type:      s.ShiftType,
			Name:      shift.Name(s.ShiftType),
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Hours:     hours,
		})
		r.DailyBreakdown[dayIndex].TotalHours += hours
	}
}

func buildWeekBuckets(days []DayBucket) []WeekBucket {
	type weekKey struct {
		year int
		week int
	}

	weeks := make(map[weekKey]*WeekBucket)

	for _, day := range days {
		key := weekKey{year: day.Date.Year(), week: WeekNumber(day.Date)}

		bucket, ok := weeks[key]
		if !ok {
			weekStart, weekEnd := WeekBounds(key.week, key.year)
			bucket = &WeekBucket{
				Week:        key.week,
				Year:        key.year,
				StartDate:   weekStart,
				EndDate:     weekEnd,
				ShiftCounts: newShiftCounts(),
			}
			weeks[key] = bucket
		}

		bucket.TotalHours += day.TotalHours

		for _, entry := range day.Shifts {
			bucket.ShiftCounts[entry.Type]++
			if shift.IsLeaveType(entry.Type) {
				bucket.TotalLeaves++
			} else {
				bucket.TotalDays++
			}
		}
	}

	result := make([]WeekBucket, 0, len(weeks))
	for _, bucket := range weeks {
		result = append(result, *bucket)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Year != result[j].Year {
			return result[i].Year < result[j].Year
		}
		return result[i].Week < result[j].Week
	})

	return result
}
