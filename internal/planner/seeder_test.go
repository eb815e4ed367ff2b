package planner_test

import (
	"testing"

	"github.com/2beens/weekplan/internal/planner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeek(t *testing.T) {
	week := planner.DefaultWeek()
	require.Len(t, week, 6)

	seenIds := make(map[string]bool)
	for _, s := range week {
		assert.NotEmpty(t, s.ID)
		assert.False(t, seenIds[s.ID], "duplicate id %s", s.ID)
		seenIds[s.ID] = true

		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.Start)
		assert.Positive(t, s.Duration)
		assert.False(t, s.Completed)
	}

	// already in canonical (day, start) order
	for i := 1; i < len(week); i++ {
		prev, curr := week[i-1], week[i]
		if planner.DayIndex(prev.Day) == planner.DayIndex(curr.Day) {
			assert.LessOrEqual(t, prev.Start, curr.Start)
		} else {
			assert.Less(t, planner.DayIndex(prev.Day), planner.DayIndex(curr.Day))
		}
	}
}

func TestDefaultWeek_DeterministicUpToIds(t *testing.T) {
	week1 := planner.DefaultWeek()
	week2 := planner.DefaultWeek()
	require.Len(t, week2, len(week1))

	for i := range week1 {
		assert.NotEqual(t, week1[i].ID, week2[i].ID)

		week1[i].ID = ""
		week2[i].ID = ""
		assert.Equal(t, week1[i], week2[i])
	}
}

func TestDefaultWeek_CoversEveryFocusOnce(t *testing.T) {
	week := planner.DefaultWeek()

	focusCount := make(map[planner.Focus]int)
	for _, s := range week {
		focusCount[s.Focus]++
	}

	for _, focus := range planner.Focuses {
		assert.Equal(t, 1, focusCount[focus], "focus %s", focus)
	}
}

func TestTemplates(t *testing.T) {
	templates := planner.Templates()
	require.Len(t, templates, 6)

	week := planner.DefaultWeek()
	for i, tmpl := range templates {
		assert.Equal(t, week[i].Name, tmpl.Name)
		assert.Equal(t, week[i].Focus, tmpl.Focus)
		assert.Equal(t, week[i].Intensity, tmpl.Intensity)
		assert.Equal(t, week[i].Duration, tmpl.Duration)
		assert.Equal(t, week[i].Location, tmpl.Location)
		assert.Equal(t, week[i].Notes, tmpl.Notes)
	}
}
