package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// handleListLanguages lists supported languages and canonical pairs.
func (s *Server) handleListLanguages(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder

	sb.WriteString("# Supported Languages\n\n")
	for _, l := range s.registry.Languages() {
		fmt.Fprintf(&sb, "- %s (`%s`)\n", l.Name, l.ID)
	}

	sb.WriteString("\n# Comparison Pairs\n\n")
	sb.WriteString("Each pair works in both directions.\n\n")
	for _, p := range s.registry.Pairs() {
		fmt.Fprintf(&sb, "- %s\n", p)
	}

	return mcp.NewToolResultText(sb.String()), nil
}

// handleGetComparison formats a resolved comparison as markdown.
func (s *Server) handleGetComparison(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	source, err := request.RequireString("source")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: source"), nil
	}
	target, err := request.RequireString("target")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: target"), nil
	}
	section := request.GetString("section", "")

	rec := s.registry.Resolve(source, target)
	if rec == nil {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No comparison available for %s -> %s. Use list_languages to see supported pairs.",
			source, target)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s to %s\n\n", rec.SourceLanguage, rec.TargetLanguage)

	if section == "" || section == "syntax" {
		sb.WriteString("## Syntax Examples\n\n")
		for _, ex := range rec.SyntaxExamples {
			fmt.Fprintf(&sb, "### %s\n\n", ex.Topic)
			if ex.Description != "" {
				sb.WriteString(ex.Description + "\n\n")
			}
			fmt.Fprintf(&sb, "%s:\n\n```\n%s\n```\n\n", rec.SourceLanguage, strings.TrimRight(ex.SourceCode, "\n"))
			fmt.Fprintf(&sb, "%s:\n\n```\n%s\n```\n\n", rec.TargetLanguage, strings.TrimRight(ex.TargetCode, "\n"))
		}
	}

	if section == "" || section == "pitfalls" {
		sb.WriteString("## Common Pitfalls\n\n")
		for _, p := range rec.CommonPitfalls {
			fmt.Fprintf(&sb, "### %s\n\n%s\n\n", p.Title, p.Description)
			if p.SourceExample != nil {
				fmt.Fprintf(&sb, "%s:\n\n```\n%s\n```\n\n", rec.SourceLanguage, strings.TrimRight(*p.SourceExample, "\n"))
			}
			if p.TargetExample != nil {
				fmt.Fprintf(&sb, "%s:\n\n```\n%s\n```\n\n", rec.TargetLanguage, strings.TrimRight(*p.TargetExample, "\n"))
			}
			fmt.Fprintf(&sb, "**Correct approach:** %s\n\n", p.CorrectApproach)
		}
	}

	if section == "" || section == "differences" {
		sb.WriteString("## Key Differences\n\n")
		for _, d := range rec.KeyDifferences {
			fmt.Fprintf(&sb, "### %s\n\n%s\n\n", d.Topic, d.Description)
			fmt.Fprintf(&sb, "- %s: %s\n- %s: %s\n\n", rec.SourceLanguage, d.SourceApproach, rec.TargetLanguage, d.TargetApproach)
		}
	}

	if section == "" || section == "frameworks" {
		if len(rec.FrameworkComparisons) == 0 {
			if section == "frameworks" {
				sb.WriteString("No framework comparisons recorded for this pair.\n")
			}
		} else {
			sb.WriteString("## Framework Comparisons\n\n")
			for _, fc := range rec.FrameworkComparisons {
				fmt.Fprintf(&sb, "### %s: %s vs %s\n\n", fc.Category, fc.SourceFramework.Name, fc.TargetFramework.Name)
				if len(fc.MigrationTips) > 0 {
					sb.WriteString("Migration tips:\n\n")
					for _, tip := range fc.MigrationTips {
						fmt.Fprintf(&sb, "- %s\n", tip)
					}
					sb.WriteString("\n")
				}
				if len(fc.CommonPitfalls) > 0 {
					sb.WriteString("Watch out for:\n\n")
					for _, pit := range fc.CommonPitfalls {
						fmt.Fprintf(&sb, "- %s\n", pit)
					}
					sb.WriteString("\n")
				}
			}
		}
	}

	return mcp.NewToolResultText(sb.String()), nil
}
