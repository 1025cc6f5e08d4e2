package options

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/app"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output errors as JSON.")
}

type jsonError struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HandleError prints err as {"error": "..."} when --json is set and swallows
// it, so scripts read one JSON document either way.
func (o *OutputOptions) HandleError(err error) error {
	return o.handleError(color.Output, err)
}

func (o *OutputOptions) handleError(w io.Writer, err error) error {
	if !o.JSON || err == nil {
		return err
	}
	b, jerr := json.Marshal(jsonError{Error: err.Error(), Code: errorCode(err)})
	if jerr != nil {
		return jerr
	}
	_, _ = fmt.Fprintln(w, string(b))
	return nil
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, app.ErrNotFound):
		return "not_found"
	case errors.Is(err, app.ErrAmbiguous):
		return "ambiguous"
	case errors.Is(err, app.ErrEmptyText):
		return "empty_text"
	case errors.Is(err, app.ErrInvalidDate):
		return "invalid_date"
	case errors.Is(err, app.ErrNotToday):
		return "not_today"
	}
	return ""
}
