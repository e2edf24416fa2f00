package shift

// requiredTypes is the mandatory staffing set for a calendar day.
var requiredTypes = []Type{TypeMorning, TypeAfternoon, TypeNight}

// RequiredCheck reports whether a day's mandatory shifts are staffed.
type RequiredCheck struct {
	IsComplete    bool   `json:"is_complete"`
	MissingShifts []Type `json:"missing_shifts"`
}

// CheckRequiredShifts checks whether the given day's shifts cover at least
// one of each required type (M, A, N) and lists the gaps.
func CheckRequiredShifts(shifts []Shift) RequiredCheck {
	present := make(map[Type]bool, len(shifts))
	for _, s := range shifts {
		present[s.ShiftType] = true
	}

	missing := []Type{}
	for _, t := range requiredTypes {
		if !present[t] {
			missing = append(missing, t)
		}
	}

	return RequiredCheck{
		IsComplete:    len(missing) == 0,
		MissingShifts: missing,
	}
}
