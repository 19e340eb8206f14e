package domain

// SlotGranularityMinutes is the fixed step between candidate start times.
const SlotGranularityMinutes = 15

// Business validation constants
const (
	MinServiceDurationMinutes = 1
	MaxServiceDurationMinutes = 24 * 60
	MaxNotesLength            = 500
	MaxClientNameLength       = 200
)

// Time format constants
const (
	TimeFormat  = "15:04"      // HH:MM
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// AnyStaffToken selects whichever staff member is free.
const AnyStaffToken = "any"
