package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/glamour"

	"tableflip.dev/diary/pkg/app"
	diaryexport "tableflip.dev/diary/pkg/export"
)

// Export writes the whole diary to a file, or to Out when Path is "-".
type Export struct {
	App      *app.Service
	Kind     diaryexport.Kind
	Path     string // file or directory; empty means the working directory
	Render   bool
	Location *time.Location
	Out      io.Writer

	// Written is the file the export went to, empty for Out.
	Written string
}

func (n *Export) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not export, no diary")
	}
	out := n.Out
	if out == nil {
		out = os.Stdout
	}

	b, err := diaryexport.Render(n.App.Document(), n.Kind, n.Location)
	if err != nil {
		return err
	}

	if n.Render {
		if n.Kind != diaryexport.KindText {
			return errors.New("--render needs the text format")
		}
		styled, err := renderMarkdown(string(b))
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, styled)
		return err
	}

	if n.Path == "-" {
		_, err = out.Write(append(b, '\n'))
		return err
	}

	path, err := n.target()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	n.Written = path
	_, _ = fmt.Fprintf(out, "Wrote %s (%s)\n", path, diaryexport.ContentType(n.Kind))
	return nil
}

func (n *Export) target() (string, error) {
	name := diaryexport.Filename(n.Kind, n.App.Now())
	if n.Path == "" {
		return name, nil
	}
	info, err := os.Stat(n.Path)
	if err == nil && info.IsDir() {
		return filepath.Join(n.Path, name), nil
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", err
	}
	return n.Path, nil
}

func renderMarkdown(md string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
