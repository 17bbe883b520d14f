// Package mcp exposes the Coda client as Model Context Protocol tools.
//
// The server speaks MCP over stdio via mcp-go and registers one tool per
// Coda operation. Tool arguments are flat snake_case primitives (plus
// JSON objects for the vendor's structured payloads); results are the
// typed API responses re-serialized with snake_case keys. API errors are
// returned as IsError text results rather than protocol errors so the
// calling agent can read and react to them.
package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hyperengineering/coda"
	"github.com/hyperengineering/coda/internal/casing"
)

// Server wraps the MCP server with Coda tools.
type Server struct {
	client    *coda.Client
	mcpServer *server.MCPServer
}

// ToolResult represents the result of a tool call.
type ToolResult struct {
	Content string
	IsError bool
}

// ToolInfo represents a registered tool.
type ToolInfo struct {
	Name        string
	Description string
}

// NewServer creates a new MCP server with all Coda tools registered.
func NewServer(client *coda.Client) *Server {
	s := &Server{client: client}

	s.mcpServer = server.NewMCPServer(
		"coda",
		coda.Version,
		server.WithToolCapabilities(true),
	)

	s.registerDocTools()
	s.registerPageTools()
	s.registerTableTools()
	s.registerRowTools()
	s.registerFormulaTools()

	return s
}

// Run starts the MCP server, reading from stdin and writing to stdout.
func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}

// HandleMessage processes a raw JSON-RPC message and returns a response.
// This is primarily for testing the MCP protocol layer.
func (s *Server) HandleMessage(ctx context.Context, message json.RawMessage) mcp.JSONRPCMessage {
	return s.mcpServer.HandleMessage(ctx, message)
}

// ListTools returns all registered tools.
func (s *Server) ListTools() []ToolInfo {
	return []ToolInfo{
		{Name: "coda_whoami", Description: "Get information about the authenticated user and token"},
		{Name: "coda_list_docs", Description: "List docs accessible by the user"},
		{Name: "coda_create_doc", Description: "Create a new doc, optionally copying an existing one"},
		{Name: "coda_get_doc", Description: "Get metadata about a doc"},
		{Name: "coda_update_doc", Description: "Update the title or icon of a doc"},
		{Name: "coda_delete_doc", Description: "Permanently delete a doc"},
		{Name: "coda_list_pages", Description: "List pages in a doc"},
		{Name: "coda_create_page", Description: "Create a new page in a doc"},
		{Name: "coda_get_page", Description: "Get details about a page"},
		{Name: "coda_update_page", Description: "Update properties or content of a page"},
		{Name: "coda_delete_page", Description: "Delete a page from a doc"},
		{Name: "coda_begin_page_export", Description: "Start an asynchronous export of page content"},
		{Name: "coda_get_page_export_status", Description: "Check an export and download its content when complete"},
		{Name: "coda_list_tables", Description: "List tables and views in a doc"},
		{Name: "coda_get_table", Description: "Get details about a table or view"},
		{Name: "coda_list_columns", Description: "List columns in a table"},
		{Name: "coda_get_column", Description: "Get details about a column"},
		{Name: "coda_list_rows", Description: "List rows in a table"},
		{Name: "coda_get_row", Description: "Get a single row from a table"},
		{Name: "coda_upsert_rows", Description: "Insert or update rows in a table"},
		{Name: "coda_update_row", Description: "Update the cells of a row"},
		{Name: "coda_delete_row", Description: "Delete a single row"},
		{Name: "coda_delete_rows", Description: "Delete multiple rows by ID"},
		{Name: "coda_push_button", Description: "Push a button in a table cell"},
		{Name: "coda_list_formulas", Description: "List named formulas in a doc"},
		{Name: "coda_get_formula", Description: "Get a named formula and its current value"},
	}
}

// CallTool executes a tool by name with the given arguments.
// This is used for testing and direct invocation.
func (s *Server) CallTool(ctx context.Context, name string, args map[string]any) (*ToolResult, error) {
	switch name {
	case "coda_whoami":
		return s.handleWhoAmI(ctx, args)
	case "coda_list_docs":
		return s.handleListDocs(ctx, args)
	case "coda_create_doc":
		return s.handleCreateDoc(ctx, args)
	case "coda_get_doc":
		return s.handleGetDoc(ctx, args)
	case "coda_update_doc":
		return s.handleUpdateDoc(ctx, args)
	case "coda_delete_doc":
		return s.handleDeleteDoc(ctx, args)
	case "coda_list_pages":
		return s.handleListPages(ctx, args)
	case "coda_create_page":
		return s.handleCreatePage(ctx, args)
	case "coda_get_page":
		return s.handleGetPage(ctx, args)
	case "coda_update_page":
		return s.handleUpdatePage(ctx, args)
	case "coda_delete_page":
		return s.handleDeletePage(ctx, args)
	case "coda_begin_page_export":
		return s.handleBeginPageExport(ctx, args)
	case "coda_get_page_export_status":
		return s.handlePageExportStatus(ctx, args)
	case "coda_list_tables":
		return s.handleListTables(ctx, args)
	case "coda_get_table":
		return s.handleGetTable(ctx, args)
	case "coda_list_columns":
		return s.handleListColumns(ctx, args)
	case "coda_get_column":
		return s.handleGetColumn(ctx, args)
	case "coda_list_rows":
		return s.handleListRows(ctx, args)
	case "coda_get_row":
		return s.handleGetRow(ctx, args)
	case "coda_upsert_rows":
		return s.handleUpsertRows(ctx, args)
	case "coda_update_row":
		return s.handleUpdateRow(ctx, args)
	case "coda_delete_row":
		return s.handleDeleteRow(ctx, args)
	case "coda_delete_rows":
		return s.handleDeleteRows(ctx, args)
	case "coda_push_button":
		return s.handlePushButton(ctx, args)
	case "coda_list_formulas":
		return s.handleListFormulas(ctx, args)
	case "coda_get_formula":
		return s.handleGetFormula(ctx, args)
	default:
		return &ToolResult{Content: fmt.Sprintf("unknown tool: %s", name), IsError: true}, nil
	}
}

// handlerFunc is the internal signature shared by all tool handlers.
type handlerFunc func(ctx context.Context, args map[string]any) (*ToolResult, error)

// adapt bridges an internal handler to the mcp-go tool handler signature.
func adapt(handler handlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := handler(ctx, req.GetArguments())
		if err != nil {
			return nil, err
		}
		return toMCPResult(result), nil
	}
}

func toMCPResult(r *ToolResult) *mcp.CallToolResult {
	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: r.Content,
			},
		},
	}
	if r.IsError {
		result.IsError = true
	}
	return result
}

// jsonResult renders a typed API response as indented JSON with all
// keys converted to snake_case. Row values and formula results are data
// keyed by column IDs or user-chosen names; those subtrees stay exactly
// as the API returned them so agents can feed the keys back into
// upserts, key_columns, and query filters.
func jsonResult(v any) (*ToolResult, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	snake, err := casing.SnakeKeys(raw, "values", "value")
	if err != nil {
		return nil, fmt.Errorf("reshape result: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, snake, "", "  "); err != nil {
		return nil, fmt.Errorf("format result: %w", err)
	}
	return &ToolResult{Content: buf.String()}, nil
}

func errResult(format string, a ...any) *ToolResult {
	return &ToolResult{Content: fmt.Sprintf(format, a...), IsError: true}
}
