package note

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/diary"
	"tableflip.dev/diary/pkg/printers"
)

var errNoDiary = errors.New("can not manage notes, no diary")

// List prints every note.
type List struct {
	App      *app.Service
	ShowID   bool
	Location *time.Location
	Out      io.Writer
}

func (n *List) Do(ctx context.Context) error {
	if n.App == nil {
		return errNoDiary
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Location: n.Location, Out: n.Out}
	pp.Notes(n.App.Notes()...)
	return nil
}

// Show prints one note in full.
type Show struct {
	App      *app.Service
	ID       string
	Location *time.Location
	Out      io.Writer
}

func (n *Show) Do(ctx context.Context) error {
	if n.App == nil {
		return errNoDiary
	}
	note, err := n.App.FindNote(n.ID)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Location: n.Location, Out: n.Out}
	pp.Note(note)
	return nil
}

// Add creates a note.
type Add struct {
	App      *app.Service
	Title    string
	Content  string
	Location *time.Location
	Out      io.Writer

	Added diary.Note
}

func (n *Add) Do(ctx context.Context) error {
	if n.App == nil {
		return errNoDiary
	}
	n.Added = n.App.AddNote(diary.NoteInput{Title: n.Title, Content: n.Content})
	pp := printers.PrettyPrint{Location: n.Location, Out: n.Out}
	pp.Note(n.Added)
	return nil
}

// Edit changes the title or content of a note.
type Edit struct {
	App      *app.Service
	ID       string
	Patch    diary.NotePatch
	Location *time.Location
	Out      io.Writer
}

func (n *Edit) Do(ctx context.Context) error {
	if n.App == nil {
		return errNoDiary
	}
	if n.Patch.Title == nil && n.Patch.Content == nil {
		return errors.New("nothing to change: give --title or --content")
	}
	current, err := n.App.FindNote(n.ID)
	if err != nil {
		return err
	}
	updated, err := n.App.UpdateNote(current.ID, n.Patch)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Location: n.Location, Out: n.Out}
	pp.Note(updated)
	return nil
}

// Remove deletes a note.
type Remove struct {
	App      *app.Service
	ID       string
	ShowID   bool
	Location *time.Location
	Out      io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	if n.App == nil {
		return errNoDiary
	}
	current, err := n.App.FindNote(n.ID)
	if err != nil {
		return err
	}
	if err := n.App.DeleteNote(current.ID); err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Location: n.Location, Out: n.Out}
	pp.Notes(n.App.Notes()...)
	return nil
}
