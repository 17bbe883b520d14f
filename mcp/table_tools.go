package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hyperengineering/coda"
)

func (s *Server) registerTableTools() {
	s.mcpServer.AddTool(mcp.NewTool("coda_list_tables",
		mcp.WithDescription("List tables and views in a Coda doc."),
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
		mcp.WithArray("table_types",
			mcp.Description(`Types of tables to include, e.g. ["table", "view"]`),
			mcp.WithStringItems(),
		),
	), adapt(s.handleListTables))

	s.mcpServer.AddTool(mcp.NewTool("coda_get_table",
		mcp.WithDescription("Get details about a table or view: row count, display column, sorts, layout, and filter."),
		mcp.WithString("doc_id",
			mcp.Description("ID of the doc"),
			mcp.Required(),
		),
		mcp.WithString("table_id_or_name",
			mcp.Description("ID or name of the table"),
			mcp.Required(),
		),
	), adapt(s.handleGetTable))

	s.mcpServer.AddTool(mcp.NewTool("coda_list_columns",
		mcp.WithDescription("List columns in a table with their formats."),
		mcp.WithString("doc_id",
			mcp.Description("ID of the doc"),
			mcp.Required(),
		),
		mcp.WithString("table_id_or_name",
			mcp.Description("ID or name of the table"),
			mcp.Required(),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results to return"),
		),
		mcp.WithString("page_token",
			mcp.Description("An opaque token used to fetch the next page of results"),
		),
		mcp.WithBoolean("visible_only",
			mcp.Description("If true, only return visible columns"),
		),
	), adapt(s.handleListColumns))

	s.mcpServer.AddTool(mcp.NewTool("coda_get_column",
		mcp.WithDescription("Get details about a column, including its format and formula."),
		mcp.WithString("doc_id",
			mcp.Description("ID of the doc"),
			mcp.Required(),
		),
		mcp.WithString("table_id_or_name",
			mcp.Description("ID or name of the table"),
			mcp.Required(),
		),
		mcp.WithString("column_id_or_name",
			mcp.Description("ID or name of the column"),
			mcp.Required(),
		),
	), adapt(s.handleGetColumn))
}

func (s *Server) handleListTables(ctx context.Context, args map[string]any) (*ToolResult, error) {
	docID := stringArg(args, "doc_id")
	if docID == "" {
		return errResult("doc_id is required"), nil
	}

	list, err := s.client.ListTables(ctx, docID, coda.ListTablesParams{
		Limit:      intArg(args, "limit"),
		PageToken:  stringArg(args, "page_token"),
		SortBy:     stringArg(args, "sort_by"),
		TableTypes: stringSliceArg(args, "table_types"),
	})
	if err != nil {
		return errResult("list tables failed: %v", err), nil
	}
	return jsonResult(list)
}

func (s *Server) handleGetTable(ctx context.Context, args map[string]any) (*ToolResult, error) {
	docID := stringArg(args, "doc_id")
	tableID := stringArg(args, "table_id_or_name")
	if docID == "" || tableID == "" {
		return errResult("doc_id and table_id_or_name are required"), nil
	}

	table, err := s.client.GetTable(ctx, docID, tableID)
	if err != nil {
		return errResult("get table failed: %v", err), nil
	}
	return jsonResult(table)
}

func (s *Server) handleListColumns(ctx context.Context, args map[string]any) (*ToolResult, error) {
	docID := stringArg(args, "doc_id")
	tableID := stringArg(args, "table_id_or_name")
	if docID == "" || tableID == "" {
		return errResult("doc_id and table_id_or_name are required"), nil
	}

	list, err := s.client.ListColumns(ctx, docID, tableID, coda.ListColumnsParams{
		Limit:       intArg(args, "limit"),
		PageToken:   stringArg(args, "page_token"),
		VisibleOnly: boolArg(args, "visible_only"),
	})
	if err != nil {
		return errResult("list columns failed: %v", err), nil
	}
	return jsonResult(list)
}

func (s *Server) handleGetColumn(ctx context.Context, args map[string]any) (*ToolResult, error) {
	docID := stringArg(args, "doc_id")
	tableID := stringArg(args, "table_id_or_name")
	columnID := stringArg(args, "column_id_or_name")
	if docID == "" || tableID == "" || columnID == "" {
		return errResult("doc_id, table_id_or_name, and column_id_or_name are required"), nil
	}

	column, err := s.client.GetColumn(ctx, docID, tableID, columnID)
	if err != nil {
		return errResult("get column failed: %v", err), nil
	}
	return jsonResult(column)
}
