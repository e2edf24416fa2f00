package shift

import "time"

// ClockOffset is a wall-clock offset within a calendar day.
type ClockOffset struct {
	Hours   int
	Minutes int
}

// ShiftTimes holds the clock offsets a working shift starts and ends at.
type ShiftTimes struct {
	Start ClockOffset
	End   ClockOffset
}

// shiftTimeTable maps working shift types to their fixed clock offsets.
// The night shift's end offset is earlier than its start, it crosses
// midnight into the next day.
var shiftTimeTable = map[Type]ShiftTimes{
	TypeMorning:   {Start: ClockOffset{6, 48}, End: ClockOffset{15, 0}},
	TypeAfternoon: {Start: ClockOffset{14, 48}, End: ClockOffset{23, 0}},
	TypeNight:     {Start: ClockOffset{22, 48}, End: ClockOffset{7, 0}},
	TypeDay:       {Start: ClockOffset{9, 0}, End: ClockOffset{18, 0}},
}

// TimesFor returns the clock offsets for a working shift type. Leave types
// are not in the table and yield ErrUnknownShiftType.
func TimesFor(t Type) (ShiftTimes, error) {
	times, ok := shiftTimeTable[t]
	if !ok {
		return ShiftTimes{}, ErrUnknownShiftType
	}
	return times, nil
}

// Span returns the start and end timestamps for a shift of the given type
// on the given calendar date. Leave types span the full day; the night
// shift's end rolls over into the next day.
func Span(t Type, date time.Time) (start, end time.Time, err error) {
	y, m, d := date.Date()

	if IsLeaveType(t) {
		start = time.Date(y, m, d, 0, 0, 0, 0, date.Location())
		end = time.Date(y, m, d, 23, 59, 59, 999000000, date.Location())
		return start, end, nil
	}

	times, err := TimesFor(t)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	start = time.Date(y, m, d, times.Start.Hours, times.Start.Minutes, 0, 0, date.Location())
	end = time.Date(y, m, d, times.End.Hours, times.End.Minutes, 0, 0, date.Location())

	// Night shift spans over two days
	if end.Before(start) {
		end = end.AddDate(0, 0, 1)
	}

	return start, end, nil
}

// HoursWorked returns the hours worked for a shift of the given type on
// the given date. Leave days contribute no worked hours.
func HoursWorked(t Type, date time.Time) (float64, error) {
	if IsLeaveType(t) {
		return 0, nil
	}

	start, end, err := Span(t, date)
	if err != nil {
		return 0, err
	}
	return end.Sub(start).Hours(), nil
}
