package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"ingrain/internal/application/commands"
	"ingrain/internal/domain"
	"ingrain/internal/ports"
)

// procedureSummary is the read-only list projection.
type procedureSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Algorithm string `json:"algorithm"`
	StepCount int    `json:"stepCount"`
	CreatedAt string `json:"createdAt"`
	Progress  string `json:"progress"`
}

// procedureRecord is the full read-only projection of one procedure.
type procedureRecord struct {
	procedureSummary
	CurrentStep int             `json:"currentStep"`
	Steps       []stepRecord    `json:"steps"`
	Schedule    []reviewEventJS `json:"reviewSchedule"`
}

type stepRecord struct {
	Order       int    `json:"order"`
	Description string `json:"description"`
}

type reviewEventJS struct {
	Date      string `json:"date"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
}

// RegisterResources adds the procedure list and per-procedure resources
// to the MCP server.
func RegisterResources(s *server.MCPServer, repo ports.ProcedureRepository) {
	s.AddResource(
		mcp.NewResource("ingrain://procedures", "Saved procedures",
			mcp.WithResourceDescription("All saved procedures with their review progress"),
			mcp.WithMIMEType("application/json"),
		),
		listResourceHandler(repo),
	)

	s.AddResourceTemplate(
		mcp.NewResourceTemplate("ingrain://procedures/{id}", "Procedure record",
			mcp.WithTemplateDescription("Full procedure record: steps and review schedule"),
			mcp.WithTemplateMIMEType("application/json"),
		),
		getResourceHandler(repo),
	)
}

func listResourceHandler(repo ports.ProcedureRepository) server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		procedures, err := commands.NewListProceduresCommand(repo).Execute(ctx)
		if err != nil {
			return nil, err
		}

		summaries := make([]procedureSummary, 0, len(procedures))
		for _, p := range procedures {
			summaries = append(summaries, summarize(p))
		}

		return jsonContents(req.Params.URI, summaries)
	}
}

func getResourceHandler(repo ports.ProcedureRepository) server.ResourceTemplateHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id := strings.TrimPrefix(req.Params.URI, "ingrain://procedures/")
		if id == "" || id == req.Params.URI {
			return nil, fmt.Errorf("invalid procedure URI: %s", req.Params.URI)
		}

		p, err := commands.NewGetProcedureCommand(repo, id).Execute(ctx)
		if err != nil {
			return nil, err
		}

		record := procedureRecord{
			procedureSummary: summarize(p),
			CurrentStep:      p.CurrentStep,
			Steps:            make([]stepRecord, 0, len(p.Steps)),
			Schedule:         make([]reviewEventJS, 0, len(p.ReviewSchedule)),
		}
		for _, step := range p.Steps {
			record.Steps = append(record.Steps, stepRecord{Order: step.Order, Description: step.Description})
		}
		for _, ev := range p.ReviewSchedule {
			record.Schedule = append(record.Schedule, reviewEventJS{
				Date:      ev.Date.String(),
				Label:     ev.Label,
				Completed: ev.Completed,
			})
		}

		return jsonContents(req.Params.URI, record)
	}
}

func summarize(p *domain.Procedure) procedureSummary {
	return procedureSummary{
		ID:        p.ID,
		Title:     p.Title,
		Algorithm: string(p.Algorithm),
		StepCount: len(p.Steps),
		CreatedAt: p.CreatedAt.Format("2006-01-02"),
		Progress:  p.Progress(),
	}
}

func jsonContents(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
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
