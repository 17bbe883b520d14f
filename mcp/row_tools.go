package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hyperengineering/coda"
)

func (s *Server) registerRowTools() {
	s.mcpServer.AddTool(mcp.NewTool("coda_list_rows",
		mcp.WithDescription("List rows in a table, optionally filtered by a query like 'Status=\"Complete\"'."),
		mcp.WithString("doc_id",
			mcp.Description("ID of the doc"),
			mcp.Required(),
		),
		mcp.WithString("table_id_or_name",
			mcp.Description("ID or name of the table"),
			mcp.Required(),
		),
		mcp.WithString("query",
			mcp.Description(`Query to filter rows, e.g. 'Status="Complete"'`),
		),
		mcp.WithString("sort_by",
			mcp.Description(`Column to sort by; use "natural" for the table's sort order`),
		),
		mcp.WithBoolean("use_column_names",
			mcp.Description("Use column names instead of IDs in the response"),
		),
		mcp.WithString("value_format",
			mcp.Description("Format for cell values"),
			mcp.Enum("simple", "simpleWithArrays", "rich"),
		),
		mcp.WithBoolean("visible_only",
			mcp.Description("If true, only return visible rows"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results to return"),
		),
		mcp.WithString("page_token",
			mcp.Description("An opaque token used to fetch the next page of results"),
		),
		mcp.WithString("sync_token",
			mcp.Description("Token for incremental sync of changes"),
		),
	), adapt(s.handleListRows))

	s.mcpServer.AddTool(mcp.NewTool("coda_get_row",
		mcp.WithDescription("Get a single row from a table with its cell values."),
		mcp.WithString("doc_id",
			mcp.Description("ID of the doc"),
			mcp.Required(),
		),
		mcp.WithString("table_id_or_name",
			mcp.Description("ID or name of the table"),
			mcp.Required(),
		),
		mcp.WithString("row_id_or_name",
			mcp.Description("ID or name of the row"),
			mcp.Required(),
		),
		mcp.WithBoolean("use_column_names",
			mcp.Description("Use column names instead of IDs in the response"),
		),
		mcp.WithString("value_format",
			mcp.Description("Format for cell values"),
			mcp.Enum("simple", "simpleWithArrays", "rich"),
		),
	), adapt(s.handleGetRow))

	s.mcpServer.AddTool(mcp.NewTool("coda_upsert_rows",
		mcp.WithDescription("Insert or update rows in a table. When key_columns is given, rows matching on those columns are updated instead of inserted."),
		mcp.WithString("doc_id",
			mcp.Description("ID of the doc"),
			mcp.Required(),
		),
		mcp.WithString("table_id_or_name",
			mcp.Description("ID or name of the table"),
			mcp.Required(),
		),
		mcp.WithArray("rows",
			mcp.Description(`Rows to upsert; each row is {"cells": [{"column": "<id or name>", "value": <value>}, ...]}`),
			mcp.Required(),
		),
		mcp.WithArray("key_columns",
			mcp.Description("Column IDs or names used as keys for matching existing rows"),
			mcp.WithStringItems(),
		),
		mcp.WithBoolean("disable_parsing",
			mcp.Description("If true, cell values are stored verbatim (URLs won't become links)"),
		),
	), adapt(s.handleUpsertRows))

	s.mcpServer.AddTool(mcp.NewTool("coda_update_row",
		mcp.WithDescription("Update the cells of a single row."),
		mcp.WithString("doc_id",
			mcp.Description("ID of the doc"),
			mcp.Required(),
		),
		mcp.WithString("table_id_or_name",
			mcp.Description("ID or name of the table"),
			mcp.Required(),
		),
		mcp.WithString("row_id_or_name",
			mcp.Description("ID or name of the row to update"),
			mcp.Required(),
		),
		mcp.WithObject("row",
			mcp.Description(`Row data, e.g. {"cells": [{"column": "<id or name>", "value": <value>}, ...]}`),
			mcp.Required(),
		),
		mcp.WithBoolean("disable_parsing",
			mcp.Description("If true, cell values are stored verbatim"),
		),
	), adapt(s.handleUpdateRow))

	s.mcpServer.AddTool(mcp.NewTool("coda_delete_row",
		mcp.WithDescription("Delete a single row from a table."),
		mcp.WithString("doc_id",
			mcp.Description("ID of the doc"),
			mcp.Required(),
		),
		mcp.WithString("table_id_or_name",
			mcp.Description("ID or name of the table"),
			mcp.Required(),
		),
		mcp.WithString("row_id_or_name",
			mcp.Description("ID or name of the row to delete"),
			mcp.Required(),
		),
	), adapt(s.handleDeleteRow))

	s.mcpServer.AddTool(mcp.NewTool("coda_delete_rows",
		mcp.WithDescription("Delete multiple rows from a table in one request."),
		mcp.WithString("doc_id",
			mcp.Description("ID of the doc"),
			mcp.Required(),
		),
		mcp.WithString("table_id_or_name",
			mcp.Description("ID or name of the table"),
			mcp.Required(),
		),
		mcp.WithArray("row_ids",
			mcp.Description("Row IDs to delete"),
			mcp.WithStringItems(),
			mcp.Required(),
		),
	), adapt(s.handleDeleteRows))

	s.mcpServer.AddTool(mcp.NewTool("coda_push_button",
		mcp.WithDescription("Push a button in a table cell."),
		mcp.WithString("doc_id",
			mcp.Description("ID of the doc"),
			mcp.Required(),
		),
		mcp.WithString("table_id_or_name",
			mcp.Description("ID or name of the table"),
			mcp.Required(),
		),
		mcp.WithString("row_id_or_name",
			mcp.Description("ID or name of the row containing the button"),
			mcp.Required(),
		),
		mcp.WithString("column_id_or_name",
			mcp.Description("ID or name of the column containing the button"),
			mcp.Required(),
		),
	), adapt(s.handlePushButton))
}

func (s *Server) handleListRows(ctx context.Context, args map[string]any) (*ToolResult, error) {
	docID := stringArg(args, "doc_id")
	tableID := stringArg(args, "table_id_or_name")
	if docID == "" || tableID == "" {
		return errResult("doc_id and table_id_or_name are required"), nil
	}

	list, err := s.client.ListRows(ctx, docID, tableID, coda.ListRowsParams{
		Query:          stringArg(args, "query"),
		SortBy:         stringArg(args, "sort_by"),
		UseColumnNames: boolArg(args, "use_column_names"),
		ValueFormat:    coda.ValueFormat(stringArg(args, "value_format")),
		VisibleOnly:    boolArg(args, "visible_only"),
		Limit:          intArg(args, "limit"),
		PageToken:      stringArg(args, "page_token"),
		SyncToken:      stringArg(args, "sync_token"),
	})
	if err != nil {
		return errResult("list rows failed: %v", err), nil
	}
	return jsonResult(list)
}

func (s *Server) handleGetRow(ctx context.Context, args map[string]any) (*ToolResult, error) {
	docID := stringArg(args, "doc_id")
	tableID := stringArg(args, "table_id_or_name")
	rowID := stringArg(args, "row_id_or_name")
	if docID == "" || tableID == "" || rowID == "" {
		return errResult("doc_id, table_id_or_name, and row_id_or_name are required"), nil
	}

	row, err := s.client.GetRow(ctx, docID, tableID, rowID, coda.GetRowParams{
		UseColumnNames: boolArg(args, "use_column_names"),
		ValueFormat:    coda.ValueFormat(stringArg(args, "value_format")),
	})
	if err != nil {
		return errResult("get row failed: %v", err), nil
	}
	return jsonResult(row)
}

func (s *Server) handleUpsertRows(ctx context.Context, args map[string]any) (*ToolResult, error) {
	docID := stringArg(args, "doc_id")
	tableID := stringArg(args, "table_id_or_name")
	if docID == "" || tableID == "" {
		return errResult("doc_id and table_id_or_name are required"), nil
	}

	var rows []coda.RowEdit
	ok, err := decodeObjectArg(args, "rows", &rows)
	if err != nil {
		return errResult("invalid rows: %v", err), nil
	}
	if !ok || len(rows) == 0 {
		return errResult("rows is required"), nil
	}

	result, err := s.client.UpsertRows(ctx, docID, tableID, coda.UpsertRowsParams{
		Rows:           rows,
		KeyColumns:     stringSliceArg(args, "key_columns"),
		DisableParsing: boolArg(args, "disable_parsing"),
	})
	if err != nil {
		return errResult("upsert rows failed: %v", err), nil
	}
	return jsonResult(result)
}

func (s *Server) handleUpdateRow(ctx context.Context, args map[string]any) (*ToolResult, error) {
	docID := stringArg(args, "doc_id")
	tableID := stringArg(args, "table_id_or_name")
	rowID := stringArg(args, "row_id_or_name")
	if docID == "" || tableID == "" || rowID == "" {
		return errResult("doc_id, table_id_or_name, and row_id_or_name are required"), nil
	}

	var row coda.RowEdit
	ok, err := decodeObjectArg(args, "row", &row)
	if err != nil {
		return errResult("invalid row: %v", err), nil
	}
	if !ok || len(row.Cells) == 0 {
		return errResult("row is required"), nil
	}

	result, err := s.client.UpdateRow(ctx, docID, tableID, rowID, row, boolArg(args, "disable_parsing"))
	if err != nil {
		return errResult("update row failed: %v", err), nil
	}
	return jsonResult(result)
}

func (s *Server) handleDeleteRow(ctx context.Context, args map[string]any) (*ToolResult, error) {
	docID := stringArg(args, "doc_id")
	tableID := stringArg(args, "table_id_or_name")
	rowID := stringArg(args, "row_id_or_name")
	if docID == "" || tableID == "" || rowID == "" {
		return errResult("doc_id, table_id_or_name, and row_id_or_name are required"), nil
	}

	result, err := s.client.DeleteRow(ctx, docID, tableID, rowID)
	if err != nil {
		return errResult("delete row failed: %v", err), nil
	}
	return jsonResult(result)
}

func (s *Server) handleDeleteRows(ctx context.Context, args map[string]any) (*ToolResult, error) {
	docID := stringArg(args, "doc_id")
	tableID := stringArg(args, "table_id_or_name")
	if docID == "" || tableID == "" {
		return errResult("doc_id and table_id_or_name are required"), nil
	}
	rowIDs := stringSliceArg(args, "row_ids")
	if len(rowIDs) == 0 {
		return errResult("row_ids is required"), nil
	}

	result, err := s.client.DeleteRows(ctx, docID, tableID, rowIDs)
	if err != nil {
		return errResult("delete rows failed: %v", err), nil
	}
	return jsonResult(result)
}

func (s *Server) handlePushButton(ctx context.Context, args map[string]any) (*ToolResult, error) {
	docID := stringArg(args, "doc_id")
	tableID := stringArg(args, "table_id_or_name")
	rowID := stringArg(args, "row_id_or_name")
	columnID := stringArg(args, "column_id_or_name")
	if docID == "" || tableID == "" || rowID == "" || columnID == "" {
		return errResult("doc_id, table_id_or_name, row_id_or_name, and column_id_or_name are required"), nil
	}

	result, err := s.client.PushButton(ctx, docID, tableID, rowID, columnID)
	if err != nil {
		return errResult("push button failed: %v", err), nil
	}
	return jsonResult(result)
}
