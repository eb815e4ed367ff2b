package planner

import (
	"fmt"
	"math"
	"sort"
)

// DayGroup is one weekday bucket of the weekly view.
type DayGroup struct {
	Day      Day       `json:"day"`
	Sessions []Session `json:"sessions"`
}

// FocusVolume sums session minutes for one focus category.
type FocusVolume struct {
	Focus            Focus `json:"focus"`
	TotalMinutes     int   `json:"totalMinutes"`
	CompletedMinutes int   `json:"completedMinutes"`
}

// GroupByDay buckets the sessions per weekday, Monday first. Every day
// gets a bucket, empty days included, and each bucket is ordered by
// start time ascending.
func GroupByDay(sessions []Session) []DayGroup {
	day2sessions := make(map[Day][]Session)
	for _, s := range sessions {
		day2sessions[s.Day] = append(day2sessions[s.Day], s)
	}

	groups := make([]DayGroup, 0, len(Days))
	for _, day := range Days {
		daySessions := day2sessions[day]
		if daySessions == nil {
			daySessions = []Session{}
		}
		sort.SliceStable(daySessions, func(i, j int) bool {
			return daySessions[i].Start < daySessions[j].Start
		})
		groups = append(groups, DayGroup{
			Day:      day,
			Sessions: daySessions,
		})
	}
	return groups
}

// FocusVolumes returns one entry per focus category in canonical order,
// zero entries included for categories without sessions.
func FocusVolumes(sessions []Session) []FocusVolume {
	focus2volume := make(map[Focus]FocusVolume)
	for _, s := range sessions {
		volume := focus2volume[s.Focus]
		volume.TotalMinutes += s.Duration
		if s.Completed {
			volume.CompletedMinutes += s.Duration
		}
		focus2volume[s.Focus] = volume
	}

	volumes := make([]FocusVolume, 0, len(Focuses))
	for _, focus := range Focuses {
		volume := focus2volume[focus]
		volume.Focus = focus
		volumes = append(volumes, volume)
	}
	return volumes
}

// WeeklyMinutes is the total planned volume over the whole collection.
func WeeklyMinutes(sessions []Session) int {
	var total int
	for _, s := range sessions {
		total += s.Duration
	}
	return total
}

// CompletionRate returns the rounded percentage of completed sessions,
// 0 for an empty collection.
func CompletionRate(sessions []Session) int {
	if len(sessions) == 0 {
		return 0
	}
	var completed int
	for _, s := range sessions {
		if s.Completed {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(sessions))))
}

// EndTime adds duration minutes to a "HH:MM" start, wrapping past
// midnight. An unparseable start is returned as-is.
func EndTime(start string, duration int) string {
	var hours, minutes int
	if _, err := fmt.Sscanf(start, "%d:%d", &hours, &minutes); err != nil {
		return start
	}

	total := (hours*60 + minutes + duration) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
