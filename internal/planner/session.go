package planner

// Focus is the training-goal category a session is tagged with.
type Focus string

const (
	FocusStrength     Focus = "Strength"
	FocusHypertrophy  Focus = "Hypertrophy"
	FocusConditioning Focus = "Conditioning"
	FocusMobility     Focus = "Mobility"
	FocusSkill        Focus = "Skill"
	FocusRecovery     Focus = "Recovery"
)

// Focuses holds all focus categories in their fixed, canonical order.
var Focuses = []Focus{
	FocusStrength,
	FocusHypertrophy,
	FocusConditioning,
	FocusMobility,
	FocusSkill,
	FocusRecovery,
}

// Intensity is a coarse perceived-effort tier, independent of Focus.
type Intensity string

const (
	IntensityLow    Intensity = "Low"
	IntensityMedium Intensity = "Medium"
	IntensityHigh   Intensity = "High"
)

type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
	Sunday    Day = "Sunday"
)

// Days holds the weekdays in fixed Monday-first order.
var Days = []Day{
	Monday,
	Tuesday,
	Wednesday,
	Thursday,
	Friday,
	Saturday,
	Sunday,
}

var dayIndexes = map[Day]int{
	Monday:    0,
	Tuesday:   1,
	Wednesday: 2,
	Thursday:  3,
	Friday:    4,
	Saturday:  5,
	Sunday:    6,
}

// DayIndex returns the Monday-first index of the given day,
// or 7 for an unknown day name so that junk sorts last.
func DayIndex(day Day) int {
	if i, ok := dayIndexes[day]; ok {
		return i
	}
	return len(Days)
}

// Session is a single one-off weekly training slot, not a series.
// Start is a wall-clock "HH:MM" string (24h, zero-padded), so plain
// string comparison orders sessions within a day correctly.
type Session struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Focus     Focus     `json:"focus"`
	Intensity Intensity `json:"intensity"`
	Day       Day       `json:"day"`
	Start     string    `json:"start"`
	Duration  int       `json:"duration"`
	Location  string    `json:"location"`
	Notes     string    `json:"notes"`
	Completed bool      `json:"completed"`
}

// SessionDraft carries everything a Session has except the id, which
// the store assigns on create and never overwrites on update.
type SessionDraft struct {
	Name      string    `json:"name"`
	Focus     Focus     `json:"focus"`
	Intensity Intensity `json:"intensity"`
	Day       Day       `json:"day"`
	Start     string    `json:"start"`
	Duration  int       `json:"duration"`
	Location  string    `json:"location"`
	Notes     string    `json:"notes"`
}
