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

// RegisterReadTools adds all read-only procedure tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, repo ports.ProcedureRepository) {
	s.AddTool(queueTool(), queueHandler(repo))
	s.AddTool(listTool(), listHandler(repo))
	s.AddTool(getTool(), getHandler(repo))
}

// --- get_review_queue ---

func queueTool() mcp.Tool {
	return mcp.NewTool("get_review_queue",
		mcp.WithDescription("List the reviews due on a date. Returns the incomplete review events whose date matches."),
		mcp.WithString("date",
			mcp.Description("Date to query in YYYY-MM-DD form. Defaults to today."),
		),
	)
}

func queueHandler(repo ports.ProcedureRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date := req.GetString("date", domain.Today().String())

		cmd := commands.NewQueueCommand(repo, date)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(result.Items) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("Nothing due on %s.", result.Date)), nil
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "%d reviews due on %s:\n", len(result.Items), result.Date)
		for _, item := range result.Items {
			fmt.Fprintf(&sb, "%s  review %d  %q  (%s, %d steps)  %s\n",
				item.ProcedureID, item.ReviewIndex, item.Title, item.Algorithm, item.StepCount, item.Label)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- list_procedures ---

func listTool() mcp.Tool {
	return mcp.NewTool("list_procedures",
		mcp.WithDescription("List all saved procedures with their review progress."),
	)
}

func listHandler(repo ports.ProcedureRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		procedures, err := commands.NewListProceduresCommand(repo).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(procedures) == 0 {
			return mcp.NewToolResultText("No procedures saved."), nil
		}

		var sb strings.Builder
		for _, p := range procedures {
			sb.WriteString(formatProcedureLine(p))
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- get_procedure ---

func getTool() mcp.Tool {
	return mcp.NewTool("get_procedure",
		mcp.WithDescription("Get the full record of a procedure: steps and review schedule."),
		mcp.WithString("procedure_id",
			mcp.Description("Procedure id"),
			mcp.Required(),
		),
	)
}

func getHandler(repo ports.ProcedureRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("procedure_id", "")
		if id == "" {
			return toolError(fmt.Errorf("procedure_id is required"))
		}

		p, err := commands.NewGetProcedureCommand(repo, id).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(formatProcedure(p)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatProcedureLine(p *domain.Procedure) string {
	return fmt.Sprintf("%s  %q  %s  %d steps  progress %s  created %s",
		p.ID, p.Title, p.Algorithm, len(p.Steps), p.Progress(), p.CreatedAt.Format("2006-01-02"))
}

func formatProcedure(p *domain.Procedure) string {
	var sb strings.Builder
	sb.WriteString(formatProcedureLine(p))
	sb.WriteString("\n\nSteps:\n")
	for _, step := range p.Steps {
		fmt.Fprintf(&sb, "  %d. %s\n", step.Order, step.Description)
	}
	sb.WriteString("\nReview schedule:\n")
	for i, ev := range p.ReviewSchedule {
		status := " "
		if ev.Completed {
			status = "x"
		}
		fmt.Fprintf(&sb, "  [%s] %d  %s  %s\n", status, i, ev.Date, ev.Label)
	}
	return sb.String()
}
