package app

import (
	"sort"
	"time"

	"tableflip.dev/diary/pkg/diary"
)

// ReportDay groups the entries written on one date inside the window.
type ReportDay struct {
	Date    string
	Entries []diary.Entry
}

// TagCount is how often a tag was used inside the window.
type TagCount struct {
	Tag   string
	Count int
}

// ReportResult summarizes the entries written between Since and Until.
type ReportResult struct {
	Since time.Time
	Until time.Time
	Days  []ReportDay
	Moods map[diary.Mood]int
	Tags  []TagCount
	Total int
}

// Report collects entries whose time falls in [since, until], oldest day
// first, with mood and tag tallies.
func (s *Service) Report(since, until time.Time) ReportResult {
	if since.After(until) {
		since, until = until, since
	}
	doc := s.Document()

	result := ReportResult{
		Since: since,
		Until: until,
		Moods: make(map[diary.Mood]int),
	}
	tags := make(map[string]int)

	for _, key := range doc.Days() {
		day := doc.Logs[key]
		if day == nil {
			continue
		}
		var picked []diary.Entry
		for _, e := range day.Entries {
			if e.Time.Before(since) || e.Time.After(until) {
				continue
			}
			picked = append(picked, e)
			if e.Mood != "" {
				result.Moods[e.Mood]++
			}
			for _, t := range e.Tags {
				tags[t]++
			}
		}
		if len(picked) == 0 {
			continue
		}
		result.Days = append(result.Days, ReportDay{Date: key, Entries: picked})
		result.Total += len(picked)
	}

	for tag, count := range tags {
		result.Tags = append(result.Tags, TagCount{Tag: tag, Count: count})
	}
	sort.Slice(result.Tags, func(i, j int) bool {
		if result.Tags[i].Count == result.Tags[j].Count {
			return result.Tags[i].Tag < result.Tags[j].Tag
		}
		return result.Tags[i].Count > result.Tags[j].Count
	})
	return result
}
