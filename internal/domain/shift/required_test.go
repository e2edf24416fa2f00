package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func shiftsOfTypes(types ...Type) []Shift {
	shifts := make([]Shift, 0, len(types))
	for _, t := range types {
		shifts = append(shifts, Shift{ShiftType: t})
	}
	return shifts
}

func TestCheckRequiredShiftsComplete(t *testing.T) {
	check := CheckRequiredShifts(shiftsOfTypes(TypeMorning, TypeAfternoon, TypeNight, TypeDay))

	assert.True(t, check.IsComplete)
	assert.Empty(t, check.MissingShifts)
}

func TestCheckRequiredShiftsMissing(t *testing.T) {
	check := CheckRequiredShifts(shiftsOfTypes(TypeMorning, TypeAfternoon))

	assert.False(t, check.IsComplete)
	assert.Equal(t, []Type{TypeNight}, check.MissingShifts)
}

func TestCheckRequiredShiftsEmptyDay(t *testing.T) {
	check := CheckRequiredShifts(nil)

	assert.False(t, check.IsComplete)
	assert.Equal(t, []Type{TypeMorning, TypeAfternoon, TypeNight}, check.MissingShifts)
}

func TestCheckRequiredShiftsLeaveDoesNotCount(t *testing.T) {
	check := CheckRequiredShifts(shiftsOfTypes(TypePaidLeave, TypeSickLeave))

	assert.False(t, check.IsComplete)
	assert.Len(t, check.MissingShifts, 3)
}

func TestCheckRequiredShiftsDuplicatesCountOnce(t *testing.T) {
	check := CheckRequiredShifts(shiftsOfTypes(TypeMorning, TypeMorning, TypeAfternoon, TypeNight))

	assert.True(t, check.IsComplete)
}
