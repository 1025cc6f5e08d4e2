// Package mcp provides the Model Context Protocol server integration for diary.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/diary"
	"tableflip.dev/diary/pkg/export"
	"tableflip.dev/diary/pkg/timeutil"
)

// Service adapts the diary session to the shapes exposed over MCP.
type Service struct {
	App      *app.Service
	Location *time.Location
}

// DaySummary describes a day log and basic aggregate metadata.
type DaySummary struct {
	Date         string `json:"date"`
	Heading      string `json:"heading"`
	EntryCount   int    `json:"entryCount"`
	LastUpdated  string `json:"lastUpdated,omitempty"`
	LatestEntry  string `json:"latestEntry,omitempty"`
	MoodsPresent string `json:"moods,omitempty"`
}

// EntryDTO is a transport-friendly projection of an entry.
type EntryDTO struct {
	ID       string   `json:"id"`
	Date     string   `json:"date"`
	Text     string   `json:"text"`
	Mood     string   `json:"mood,omitempty"`
	MoodName string   `json:"moodName,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	TimeISO  string   `json:"time"`
	TimeUnix int64    `json:"timeUnix"`
	Local    string   `json:"localTime"`
}

// NoteDTO is a transport-friendly projection of a note.
type NoteDTO struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	CreatedISO string `json:"createdAt"`
}

// NewService builds a service over an opened diary session.
func NewService(a *app.Service, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{App: a, Location: loc}
}

func (s *Service) ready() error {
	if s.App == nil {
		return errors.New("diary session is not configured")
	}
	return nil
}

// ListDays returns summaries for every day log, oldest first.
func (s *Service) ListDays(ctx context.Context) ([]DaySummary, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	doc := s.App.Document()
	summaries := make([]DaySummary, 0, len(doc.Logs))
	for _, key := range doc.Days() {
		day := doc.Logs[key]
		summary := DaySummary{
			Date:       key,
			Heading:    diary.Heading(key),
			EntryCount: len(day.Entries),
		}
		if n := len(day.Entries); n > 0 {
			last := day.Entries[n-1]
			summary.LastUpdated = last.Time.String()
			summary.LatestEntry = last.Text
			summary.MoodsPresent = moodsOf(day.Entries)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func moodsOf(entries []diary.Entry) string {
	var b strings.Builder
	seen := map[diary.Mood]bool{}
	for _, e := range entries {
		if e.Mood == "" || seen[e.Mood] {
			continue
		}
		seen[e.Mood] = true
		b.WriteString(string(e.Mood))
	}
	return b.String()
}

// Day returns the entries of one day. An empty date means today.
func (s *Service) Day(ctx context.Context, date string) (string, []EntryDTO, error) {
	if err := s.ready(); err != nil {
		return "", nil, err
	}
	if date == "" {
		date = s.App.Today()
	}
	day, err := s.App.Day(date)
	if err != nil {
		return "", nil, err
	}
	return date, s.toDTOs(date, day.Entries), nil
}

// AddEntryOptions captures the parameters used to create a new entry.
type AddEntryOptions struct {
	Text string
	Mood string
	Tags string
}

// AddEntry appends an entry to today's log.
func (s *Service) AddEntry(ctx context.Context, opts AddEntryOptions) (*EntryDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	mood, err := diary.ParseMood(opts.Mood)
	if err != nil {
		return nil, err
	}
	e, err := s.App.AddEntry(opts.Text, diary.EntryOptions{Mood: mood, Tags: diary.ParseTags(opts.Tags)})
	if err != nil {
		return nil, err
	}
	dto := s.toDTO(diary.DateKey(e.Time.Time), e)
	return &dto, nil
}

// UpdateEntryOptions names an entry and the fields to change. Nil fields are
// left alone; an empty mood or tag string clears the field.
type UpdateEntryOptions struct {
	Date string
	ID   string
	Text *string
	Mood *string
	Tags *string
}

// UpdateEntry patches an entry.
func (s *Service) UpdateEntry(ctx context.Context, opts UpdateEntryOptions) (*EntryDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	date := opts.Date
	if date == "" {
		date = s.App.Today()
	}
	current, err := s.App.FindEntry(date, opts.ID)
	if err != nil {
		return nil, err
	}

	patch := diary.EntryPatch{Text: opts.Text}
	if opts.Mood != nil {
		mood, err := diary.ParseMood(*opts.Mood)
		if err != nil {
			return nil, err
		}
		patch.Mood = &mood
	}
	if opts.Tags != nil {
		tags := diary.ParseTags(*opts.Tags)
		patch.Tags = &tags
	}

	e, err := s.App.UpdateEntry(date, current.ID, patch)
	if err != nil {
		return nil, err
	}
	dto := s.toDTO(date, e)
	return &dto, nil
}

// DeleteEntry removes an entry from today's log and returns what was
// removed.
func (s *Service) DeleteEntry(ctx context.Context, id string) (*EntryDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	date := s.App.Today()
	e, err := s.App.FindEntry(date, id)
	if err != nil {
		return nil, err
	}
	if err := s.App.DeleteEntry(date, e.ID); err != nil {
		return nil, err
	}
	dto := s.toDTO(date, e)
	return &dto, nil
}

// SearchEntries performs a case-insensitive substring match across entry
// text and tags, newest first.
func (s *Service) SearchEntries(ctx context.Context, query string, limit int) ([]EntryDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	q := strings.TrimSpace(strings.ToLower(query))
	if q == "" {
		return []EntryDTO{}, nil
	}
	q = strings.TrimPrefix(q, "#")
	if limit <= 0 {
		limit = 20
	}

	doc := s.App.Document()
	days := doc.Days()
	results := make([]EntryDTO, 0, limit)
	for i := len(days) - 1; i >= 0 && len(results) < limit; i-- {
		entries := doc.Logs[days[i]].Entries
		for j := len(entries) - 1; j >= 0 && len(results) < limit; j-- {
			if matches(entries[j], q) {
				results = append(results, s.toDTO(days[i], entries[j]))
			}
		}
	}
	return results, nil
}

func matches(e diary.Entry, q string) bool {
	if strings.Contains(strings.ToLower(e.Text), q) {
		return true
	}
	for _, t := range e.Tags {
		if strings.EqualFold(t, q) {
			return true
		}
	}
	return false
}

// ListNotes returns every note in display order.
func (s *Service) ListNotes(ctx context.Context) ([]NoteDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	notes := s.App.Notes()
	out := make([]NoteDTO, 0, len(notes))
	for _, n := range notes {
		out = append(out, toNoteDTO(n))
	}
	return out, nil
}

// NoteByID resolves a note by id or unique id prefix.
func (s *Service) NoteByID(ctx context.Context, id string) (*NoteDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, errors.New("id is required")
	}
	n, err := s.App.FindNote(id)
	if err != nil {
		return nil, err
	}
	dto := toNoteDTO(n)
	return &dto, nil
}

// AddNote creates a note.
func (s *Service) AddNote(ctx context.Context, title, content string) (*NoteDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	dto := toNoteDTO(s.App.AddNote(diary.NoteInput{Title: title, Content: content}))
	return &dto, nil
}

// UpdateNote patches a note's title or content.
func (s *Service) UpdateNote(ctx context.Context, id string, title, content *string) (*NoteDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	current, err := s.App.FindNote(id)
	if err != nil {
		return nil, err
	}
	n, err := s.App.UpdateNote(current.ID, diary.NotePatch{Title: title, Content: content})
	if err != nil {
		return nil, err
	}
	dto := toNoteDTO(n)
	return &dto, nil
}

// DeleteNote removes a note and returns what was removed.
func (s *Service) DeleteNote(ctx context.Context, id string) (*NoteDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	n, err := s.App.FindNote(id)
	if err != nil {
		return nil, err
	}
	if err := s.App.DeleteNote(n.ID); err != nil {
		return nil, err
	}
	dto := toNoteDTO(n)
	return &dto, nil
}

// Export renders the whole diary in the named format.
func (s *Service) Export(ctx context.Context, format string) (export.Kind, []byte, error) {
	if err := s.ready(); err != nil {
		return "", nil, err
	}
	kind, err := export.ParseKind(format)
	if err != nil {
		return "", nil, err
	}
	b, err := export.Render(s.App.Document(), kind, s.Location)
	if err != nil {
		return "", nil, err
	}
	return kind, b, nil
}

// Report summarizes the entries written during the trailing window, for
// example "7d" or "2w".
func (s *Service) Report(ctx context.Context, window string) (*app.ReportResult, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	w, err := timeutil.ParseWindow(window)
	if err != nil {
		return nil, fmt.Errorf("invalid window: %w", err)
	}
	result := s.App.Report(w.Range(s.App.Now()))
	return &result, nil
}

func (s *Service) toDTOs(date string, entries []diary.Entry) []EntryDTO {
	out := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, s.toDTO(date, e))
	}
	return out
}

func (s *Service) toDTO(date string, e diary.Entry) EntryDTO {
	dto := EntryDTO{
		ID:       e.ID,
		Date:     date,
		Text:     e.Text,
		Tags:     e.Tags,
		TimeISO:  e.Time.String(),
		Local:    e.Time.Display(s.Location, "3:04 PM"),
	}
	if !e.Time.IsZero() {
		dto.TimeUnix = e.Time.Unix()
	}
	if e.Mood != "" {
		dto.Mood = string(e.Mood)
		dto.MoodName = e.Mood.Name()
	}
	return dto
}

func toNoteDTO(n diary.Note) NoteDTO {
	return NoteDTO{
		ID:         n.ID,
		Title:      n.Title,
		Content:    n.Content,
		CreatedISO: n.CreatedAt.String(),
	}
}
