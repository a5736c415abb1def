package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"ingrain/internal/application/commands"
	"ingrain/internal/domain"
	"ingrain/internal/ports"
)

// RegisterWriteTools adds the extraction and mutation tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, repo ports.ProcedureRepository) {
	s.AddTool(extractTool(), extractHandler())
	s.AddTool(saveTool(), saveHandler(repo))
	s.AddTool(markReviewedTool(), markReviewedHandler(repo))
	s.AddTool(delayReviewTool(), delayReviewHandler(repo))
}

// --- extract_skills ---

func extractTool() mcp.Tool {
	return mcp.NewTool("extract_skills",
		mcp.WithDescription("Extract ordered procedure steps from free text using heuristic action-pattern matching. Never fails; unstructured input degrades to line-based extraction."),
		mcp.WithString("content",
			mcp.Description("Raw text describing the procedure"),
			mcp.Required(),
		),
		mcp.WithString("refinement_prompt",
			mcp.Description("Optional instruction for a future refinement stage; accepted but not interpreted"),
		),
	)
}

func extractHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		content := req.GetString("content", "")
		refinementPrompt := req.GetString("refinement_prompt", "")

		result, err := commands.NewExtractCommand(content, refinementPrompt).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if result.Count == 0 {
			return mcp.NewToolResultText("No steps extracted."), nil
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Extracted %d steps:\n", result.Count)
		for _, step := range result.Steps {
			fmt.Fprintf(&sb, "%d. %s\n", step.Order, step.Description)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- save_procedure ---

func saveTool() mcp.Tool {
	return mcp.NewTool("save_procedure",
		mcp.WithDescription("Save a procedure with its steps and materialize its review schedule. The first review lands on the start date."),
		mcp.WithString("title",
			mcp.Description("Procedure title"),
			mcp.Required(),
		),
		mcp.WithArray("steps",
			mcp.Description("Ordered step descriptions"),
			mcp.Required(),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("algorithm",
			mcp.Description("Review cadence: motor or cognitive"),
			mcp.Required(),
		),
		mcp.WithString("start_date",
			mcp.Description("Schedule start date in YYYY-MM-DD form. Defaults to today."),
		),
	)
}

func saveHandler(repo ports.ProcedureRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		title := req.GetString("title", "")
		steps := req.GetStringSlice("steps", nil)
		algorithm := req.GetString("algorithm", "")

		cmd := commands.NewSaveCommand(repo, title, steps, algorithm)
		if startDate := req.GetString("start_date", ""); startDate != "" {
			date, err := domain.ParseDate(startDate)
			if err != nil {
				return toolError(err)
			}
			cmd.StartDate = date
		}

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(fmt.Sprintf("%s\nid: %s", result.Message, result.Procedure.ID)), nil
	}
}

// --- mark_reviewed ---

func markReviewedTool() mcp.Tool {
	return mcp.NewTool("mark_reviewed",
		mcp.WithDescription("Mark a review event completed and report the next pending review, if any."),
		mcp.WithString("procedure_id",
			mcp.Description("Procedure id"),
			mcp.Required(),
		),
		mcp.WithNumber("review_index",
			mcp.Description("Zero-based index into the review schedule"),
			mcp.Required(),
		),
	)
}

func markReviewedHandler(repo ports.ProcedureRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("procedure_id", "")
		index := req.GetInt("review_index", -1)

		result, err := commands.NewMarkReviewedCommand(repo, id, index).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delay_review ---

func delayReviewTool() mcp.Tool {
	return mcp.NewTool("delay_review",
		mcp.WithDescription("Push a review event forward by one calendar day. Repeated calls compound."),
		mcp.WithString("procedure_id",
			mcp.Description("Procedure id"),
			mcp.Required(),
		),
		mcp.WithNumber("review_index",
			mcp.Description("Zero-based index into the review schedule"),
			mcp.Required(),
		),
	)
}

func delayReviewHandler(repo ports.ProcedureRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("procedure_id", "")
		index := req.GetInt("review_index", -1)

		result, err := commands.NewDelayReviewCommand(repo, id, index).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}
