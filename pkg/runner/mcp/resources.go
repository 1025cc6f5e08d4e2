package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/diary/pkg/diary"
	"tableflip.dev/diary/pkg/export"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerDaysResource(srv, svc)
	registerDayTemplate(srv, svc)
	registerNotesResource(srv, svc)
	registerNoteTemplate(srv, svc)
	registerExportResource(srv, svc)
}

func registerDaysResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"diary://days",
		"Days",
		mcp.WithResourceDescription("Every day log with entry counts."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		days, err := svc.ListDays(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"days":  days,
			"count": len(days),
		})
	})
}

func registerDayTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"diary://days/{date}",
		"Day Log",
		mcp.WithTemplateDescription("Entries written on one date (YYYY-MM-DD)."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		date := templateArg(request, "date")
		if date == "" {
			return nil, fmt.Errorf("date is required")
		}
		date, entries, err := svc.Day(ctx, date)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"date":    date,
			"heading": diary.Heading(date),
			"count":   len(entries),
			"entries": entries,
		})
	})
}

func registerNotesResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"diary://notes",
		"Notes",
		mcp.WithResourceDescription("Every note in creation order."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		notes, err := svc.ListNotes(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"notes": notes,
			"count": len(notes),
		})
	})
}

func registerNoteTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"diary://notes/{id}",
		"Note",
		mcp.WithTemplateDescription("A single note."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		dto, err := svc.NoteByID(ctx, templateArg(request, "id"))
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"note": dto,
		})
	})
}

func registerExportResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"diary://export.md",
		"Markdown Export",
		mcp.WithResourceDescription("The whole diary as Markdown text."),
		mcp.WithMIMEType(export.ContentType(export.KindText)),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		kind, b, err := svc.Export(ctx, string(export.KindText))
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: export.ContentType(kind),
				Text:     string(b),
			},
		}, nil
	})
}

// templateArg reads a URI template variable. Depending on the matcher the
// value arrives as a string or a single element slice.
func templateArg(request mcp.ReadResourceRequest, name string) string {
	switch v := request.Params.Arguments[name].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
