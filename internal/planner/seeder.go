package planner

// Template is one entry of the canned session catalog. The form layer
// may splice a template into a draft before calling Store.Create.
type Template struct {
	Name      string    `json:"name"`
	Focus     Focus     `json:"focus"`
	Intensity Intensity `json:"intensity"`
	Duration  int       `json:"duration"`
	Location  string    `json:"location"`
	Notes     string    `json:"notes"`
}

// session templates and their day/start assignments are a build-time
// constant; seedSlots is kept in (day, start) order so DefaultWeek
// output is already canonical
var seedSlots = []struct {
	day      Day
	start    string
	template Template
}{
	{
		day:   Monday,
		start: "07:00",
		template: Template{
			Name:      "Full-Body Strength",
			Focus:     FocusStrength,
			Intensity: IntensityHigh,
			Duration:  60,
			Location:  "Garage gym",
			Notes:     "Main lifts first, accessories if time allows.",
		},
	},
	{
		day:   Tuesday,
		start: "18:00",
		template: Template{
			Name:      "Interval Run",
			Focus:     FocusConditioning,
			Intensity: IntensityHigh,
			Duration:  35,
			Location:  "Track",
			Notes:     "6x400m, full recovery between reps.",
		},
	},
	{
		day:   Wednesday,
		start: "07:30",
		template: Template{
			Name:      "Mobility Flow",
			Focus:     FocusMobility,
			Intensity: IntensityLow,
			Duration:  30,
			Location:  "Living room",
			Notes:     "Hips and thoracic spine.",
		},
	},
	{
		day:   Thursday,
		start: "18:30",
		template: Template{
			Name:      "Upper-Body Pump",
			Focus:     FocusHypertrophy,
			Intensity: IntensityMedium,
			Duration:  75,
			Location:  "Gym",
			Notes:     "",
		},
	},
	{
		day:   Saturday,
		start: "09:00",
		template: Template{
			Name:      "Handstand Practice",
			Focus:     FocusSkill,
			Intensity: IntensityMedium,
			Duration:  45,
			Location:  "Park",
			Notes:     "Wall holds, then freestanding attempts.",
		},
	},
	{
		day:   Sunday,
		start: "08:00",
		template: Template{
			Name:      "Easy Spin",
			Focus:     FocusRecovery,
			Intensity: IntensityLow,
			Duration:  40,
			Location:  "Bike path",
			Notes:     "Keep the heart rate down.",
		},
	},
}

// Templates returns the fixed session template catalog.
func Templates() []Template {
	templates := make([]Template, 0, len(seedSlots))
	for _, slot := range seedSlots {
		templates = append(templates, slot.template)
	}
	return templates
}

// DefaultWeek returns the pre-populated starter week: the full template
// catalog placed on its fixed days and start times, in canonical
// (day, start) order, not completed. Only the ids differ between calls.
func DefaultWeek() []Session {
	week := make([]Session, 0, len(seedSlots))
	for _, slot := range seedSlots {
		week = append(week, Session{
			ID:        NewID(),
			Name:      slot.template.Name,
			Focus:     slot.template.Focus,
			Intensity: slot.template.Intensity,
			Day:       slot.day,
			Start:     slot.start,
			Duration:  slot.template.Duration,
			Location:  slot.template.Location,
			Notes:     slot.template.Notes,
			Completed: false,
		})
	}
	return week
}
