package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/diary"
	"tableflip.dev/diary/pkg/export"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerAddEntryTool(srv, svc)
	registerUpdateEntryTool(srv, svc)
	registerDeleteEntryTool(srv, svc)
	registerGetDayTool(srv, svc)
	registerListDaysTool(srv, svc)
	registerSearchEntriesTool(srv, svc)
	registerAddNoteTool(srv, svc)
	registerUpdateNoteTool(srv, svc)
	registerDeleteNoteTool(srv, svc)
	registerListNotesTool(srv, svc)
	registerExportTool(srv, svc)
	registerReportTool(srv, svc)
}

func moodEnum() []string {
	out := []string{""}
	out = append(out, diary.MoodKeys()...)
	for _, m := range diary.Moods() {
		out = append(out, string(m))
	}
	return out
}

func registerAddEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_entry",
		mcp.WithDescription("Append an entry to today's log."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("What happened. Must not be blank."),
		),
		mcp.WithString("mood",
			mcp.Description("Optional mood, by name or emoji."),
			mcp.Enum(moodEnum()...),
		),
		mcp.WithString("tags",
			mcp.Description("Optional tags separated by spaces or commas, with or without #."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Text string `json:"text"`
			Mood string `json:"mood"`
			Tags string `json:"tags"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.AddEntry(ctx, AddEntryOptions{Text: args.Text, Mood: args.Mood, Tags: args.Tags})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerUpdateEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"update_entry",
		mcp.WithDescription("Change the text, mood or tags of an entry. Omitted fields are kept."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier or unique prefix."),
		),
		mcp.WithString("date",
			mcp.Description("Day of the entry as YYYY-MM-DD (default today)."),
		),
		mcp.WithString("text",
			mcp.Description("Replacement text."),
		),
		mcp.WithString("mood",
			mcp.Description("Replacement mood; an empty string clears it."),
		),
		mcp.WithString("tags",
			mcp.Description("Replacement tags; an empty string clears them."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ID   string  `json:"id"`
			Date string  `json:"date"`
			Text *string `json:"text"`
			Mood *string `json:"mood"`
			Tags *string `json:"tags"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.ID == "" {
			return mcp.NewToolResultError("id is required"), nil
		}

		dto, err := svc.UpdateEntry(ctx, UpdateEntryOptions{
			Date: args.Date,
			ID:   args.ID,
			Text: args.Text,
			Mood: args.Mood,
			Tags: args.Tags,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDeleteEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_entry",
		mcp.WithDescription("Delete an entry from today's log. Past days are read-only."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier or unique prefix."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.DeleteEntry(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"deleted": dto,
		})
	})
}

func registerGetDayTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_day",
		mcp.WithDescription("List the entries of one day."),
		mcp.WithString("date",
			mcp.Description("Day as YYYY-MM-DD (default today)."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date, entries, err := svc.Day(ctx, request.GetString("date", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"date":    date,
			"heading": diary.Heading(date),
			"entries": entries,
			"count":   len(entries),
		})
	})
}

func registerListDaysTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_days",
		mcp.WithDescription("List every day that has a log, with entry counts."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		days, err := svc.ListDays(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"days":  days,
			"count": len(days),
		})
	})
}

func registerSearchEntriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"search_entries",
		mcp.WithDescription("Search entries by substring of the text or by exact tag, newest first."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Case-insensitive search text. A leading # searches tags."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of entries to return (default 20)."),
			mcp.Min(1),
			mcp.Max(100),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		limit := request.GetInt("limit", 20)

		results, err := svc.SearchEntries(ctx, query, limit)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"query":   query,
			"limit":   limit,
			"results": results,
			"count":   len(results),
		})
	})
}

func registerAddNoteTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_note",
		mcp.WithDescription("Create a note. A blank title becomes \"Untitled\"."),
		mcp.WithString("title",
			mcp.Description("Note title."),
		),
		mcp.WithString("content",
			mcp.Description("Note body."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.AddNote(ctx, request.GetString("title", ""), request.GetString("content", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerUpdateNoteTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"update_note",
		mcp.WithDescription("Change the title or content of a note. Omitted fields are kept."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Note identifier or unique prefix."),
		),
		mcp.WithString("title",
			mcp.Description("Replacement title."),
		),
		mcp.WithString("content",
			mcp.Description("Replacement content."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ID      string  `json:"id"`
			Title   *string `json:"title"`
			Content *string `json:"content"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.ID == "" {
			return mcp.NewToolResultError("id is required"), nil
		}

		dto, err := svc.UpdateNote(ctx, args.ID, args.Title, args.Content)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDeleteNoteTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_note",
		mcp.WithDescription("Delete a note."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Note identifier or unique prefix."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.DeleteNote(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"deleted": dto,
		})
	})
}

func registerListNotesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_notes",
		mcp.WithDescription("List every note in creation order."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		notes, err := svc.ListNotes(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"notes": notes,
			"count": len(notes),
		})
	})
}

func registerExportTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"export",
		mcp.WithDescription("Export the whole diary as JSON or Markdown text."),
		mcp.WithString("format",
			mcp.Description("json (default) or text."),
			mcp.Enum(string(export.KindJSON), string(export.KindText)),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		_, b, err := svc.Export(ctx, request.GetString("format", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(string(b)), nil
	})
}

func registerReportTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"report",
		mcp.WithDescription("Summarize moods and tags over a trailing window."),
		mcp.WithString("window",
			mcp.Description("Window such as 3d, 1w or 1mo (default 1w)."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := svc.Report(ctx, request.GetString("window", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(reportPayload(result))
	})
}

func reportPayload(r *app.ReportResult) map[string]any {
	days := make([]map[string]any, 0, len(r.Days))
	for _, d := range r.Days {
		days = append(days, map[string]any{
			"date":    d.Date,
			"heading": diary.Heading(d.Date),
			"count":   len(d.Entries),
		})
	}
	moods := make(map[string]int, len(r.Moods))
	for m, n := range r.Moods {
		moods[m.Name()] = n
	}
	tags := make([]map[string]any, 0, len(r.Tags))
	for _, t := range r.Tags {
		tags = append(tags, map[string]any{"tag": t.Tag, "count": t.Count})
	}
	return map[string]any{
		"since": diary.FormatTime(r.Since),
		"until": diary.FormatTime(r.Until),
		"total": r.Total,
		"days":  days,
		"moods": moods,
		"tags":  tags,
	}
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
