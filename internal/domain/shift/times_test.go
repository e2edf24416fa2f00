package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSpanWorkingShifts(t *testing.T) {
	day := date(2024, time.June, 10)

	cases := []struct {
		shiftType Type
		wantStart string
		wantEnd   string
	}{
		{TypeMorning, "2024-06-10T06:48:00Z", "2024-06-10T15:00:00Z"},
		{TypeAfternoon, "2024-06-10T14:48:00Z", "2024-06-10T23:00:00Z"},
		{TypeDay, "2024-06-10T09:00:00Z", "2024-06-10T18:00:00Z"},
	}

	for _, c := range cases {
		start, end, err := Span(c.shiftType, day)
		require.NoError(t, err, "Span(%s)", c.shiftType)
		assert.Equal(t, c.wantStart, start.Format(time.RFC3339))
		assert.Equal(t, c.wantEnd, end.Format(time.RFC3339))
	}
}

func TestSpanNightShiftCrossesMidnight(t *testing.T) {
	start, end, err := Span(TypeNight, date(2024, time.June, 10))
	require.NoError(t, err)

	assert.Equal(t, "2024-06-10T22:48:00Z", start.Format(time.RFC3339))
	assert.Equal(t, "2024-06-11T07:00:00Z", end.Format(time.RFC3339))
	assert.True(t, end.After(start))
}

func TestSpanNightShiftMonthRollover(t *testing.T) {
	_, end, err := Span(TypeNight, date(2024, time.January, 31))
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01T07:00:00Z", end.Format(time.RFC3339))
}

func TestSpanLeaveTypesCoverFullDay(t *testing.T) {
	day := date(2024, time.June, 10)

	for _, leaveType := range LeaveTypes {
		start, end, err := Span(leaveType, day)
		require.NoError(t, err, "Span(%s)", leaveType)

		assert.Equal(t, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2024, time.June, 10, 23, 59, 59, 999000000, time.UTC), end)
	}
}

func TestSpanUnknownType(t *testing.T) {
	_, _, err := Span(Type("X"), date(2024, time.June, 10))
	assert.ErrorIs(t, err, ErrUnknownShiftType)
}

func TestHoursWorked(t *testing.T) {
	day := date(2024, time.June, 10)

	cases := []struct {
		shiftType Type
		want      float64
	}{
		{TypeMorning, 8.2},
		{TypeAfternoon, 8.2},
		{TypeNight, 8.2},
		{TypeDay, 9},
		{TypePaidLeave, 0},
		{TypeSickLeave, 0},
		{TypeCompensation, 0},
		{TypeNationalHoliday, 0},
	}

	for _, c := range cases {
		hours, err := HoursWorked(c.shiftType, day)
		require.NoError(t, err, "HoursWorked(%s)", c.shiftType)
		assert.InDelta(t, c.want, hours, 0.001, "HoursWorked(%s)", c.shiftType)
	}
}

func TestTimesForLeaveType(t *testing.T) {
	_, err := TimesFor(TypePaidLeave)
	assert.ErrorIs(t, err, ErrUnknownShiftType)
}
