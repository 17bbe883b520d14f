package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hyperengineering/coda"
)

func (s *Server) registerFormulaTools() {
	s.mcpServer.AddTool(mcp.NewTool("coda_list_formulas",
		mcp.WithDescription("List named formulas in a doc."),
		mcp.WithString("doc_id",
			mcp.Description("ID of the doc"),
			mcp.Required(),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results to return"),
		),
		mcp.WithString("page_token",
			mcp.Description("An opaque token used to fetch the next page of results"),
		),
		mcp.WithString("sort_by",
			mcp.Description(`How to sort the results, e.g. "name"`),
		),
	), adapt(s.handleListFormulas))

	s.mcpServer.AddTool(mcp.NewTool("coda_get_formula",
		mcp.WithDescription("Get a named formula, including its current value."),
		mcp.WithString("doc_id",
			mcp.Description("ID of the doc"),
			mcp.Required(),
		),
		mcp.WithString("formula_id_or_name",
			mcp.Description("ID or name of the formula"),
			mcp.Required(),
		),
	), adapt(s.handleGetFormula))
}

func (s *Server) handleListFormulas(ctx context.Context, args map[string]any) (*ToolResult, error) {
	docID := stringArg(args, "doc_id")
	if docID == "" {
		return errResult("doc_id is required"), nil
	}

	list, err := s.client.ListFormulas(ctx, docID, coda.ListFormulasParams{
		Limit:     intArg(args, "limit"),
		PageToken: stringArg(args, "page_token"),
		SortBy:    stringArg(args, "sort_by"),
	})
	if err != nil {
		return errResult("list formulas failed: %v", err), nil
	}
	return jsonResult(list)
}

func (s *Server) handleGetFormula(ctx context.Context, args map[string]any) (*ToolResult, error) {
	docID := stringArg(args, "doc_id")
	formulaID := stringArg(args, "formula_id_or_name")
	if docID == "" || formulaID == "" {
		return errResult("doc_id and formula_id_or_name are required"), nil
	}

	formula, err := s.client.GetFormula(ctx, docID, formulaID)
	if err != nil {
		return errResult("get formula failed: %v", err), nil
	}
	return jsonResult(formula)
}
