package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hyperengineering/coda"
)

func (s *Server) registerPageTools() {
	s.mcpServer.AddTool(mcp.NewTool("coda_list_pages",
		mcp.WithDescription("List pages in a Coda doc."),
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
	), adapt(s.handleListPages))

	s.mcpServer.AddTool(mcp.NewTool("coda_create_page",
		mcp.WithDescription("Create a new page in a doc, optionally as a subpage with initial canvas content."),
		mcp.WithString("doc_id",
			mcp.Description("ID of the doc"),
			mcp.Required(),
		),
		mcp.WithString("name",
			mcp.Description("Name of the page"),
			mcp.Required(),
		),
		mcp.WithString("subtitle",
			mcp.Description("Subtitle of the page"),
		),
		mcp.WithString("icon_name",
			mcp.Description("Name of the icon"),
		),
		mcp.WithString("image_url",
			mcp.Description("URL of the cover image"),
		),
		mcp.WithString("parent_page_id",
			mcp.Description("ID of this new page's parent, if creating a subpage"),
		),
		mcp.WithObject("page_content",
			mcp.Description(`Content to initialize the page with, e.g. {"type": "canvas", "canvas_content": {"format": "html", "content": "<p><b>This</b> is rich text</p>"}}`),
		),
	), adapt(s.handleCreatePage))

	s.mcpServer.AddTool(mcp.NewTool("coda_get_page",
		mcp.WithDescription("Get details about a page."),
		mcp.WithString("doc_id",
			mcp.Description("ID of the doc"),
			mcp.Required(),
		),
		mcp.WithString("page_id_or_name",
			mcp.Description("ID or name of the page"),
			mcp.Required(),
		),
	), adapt(s.handleGetPage))

	s.mcpServer.AddTool(mcp.NewTool("coda_update_page",
		mcp.WithDescription("Update properties of a page, optionally appending to or replacing its content."),
		mcp.WithString("doc_id",
			mcp.Description("ID of the doc"),
			mcp.Required(),
		),
		mcp.WithString("page_id_or_name",
			mcp.Description("ID or name of the page"),
			mcp.Required(),
		),
		mcp.WithString("name",
			mcp.Description("Name of the page"),
		),
		mcp.WithString("subtitle",
			mcp.Description("Subtitle of the page"),
		),
		mcp.WithString("icon_name",
			mcp.Description("Name of the icon"),
		),
		mcp.WithString("image_url",
			mcp.Description("URL of the cover image"),
		),
		mcp.WithBoolean("is_hidden",
			mcp.Description("Whether the page is hidden"),
		),
		mcp.WithObject("content_update",
			mcp.Description(`Content update payload, e.g. {"insertion_mode": "append", "canvas_content": {"format": "html", "content": "<p><b>This</b> is rich text</p>"}}`),
		),
	), adapt(s.handleUpdatePage))

	s.mcpServer.AddTool(mcp.NewTool("coda_delete_page",
		mcp.WithDescription("Delete a page from a doc."),
		mcp.WithString("doc_id",
			mcp.Description("ID of the doc"),
			mcp.Required(),
		),
		mcp.WithString("page_id_or_name",
			mcp.Description("ID or name of the page"),
			mcp.Required(),
		),
	), adapt(s.handleDeletePage))

	s.mcpServer.AddTool(mcp.NewTool("coda_begin_page_export",
		mcp.WithDescription(`Start an asynchronous export of page content. Returns a request ID; poll coda_get_page_export_status until status is "complete". Early polls can report the request as missing while it replicates across Coda's servers; the status tool absorbs those retries internally.`),
		mcp.WithString("doc_id",
			mcp.Description("ID of the doc"),
			mcp.Required(),
		),
		mcp.WithString("page_id_or_name",
			mcp.Description("ID or name of the page"),
			mcp.Required(),
		),
		mcp.WithString("output_format",
			mcp.Description(`Export format: "html" or "markdown" (default: "html")`),
			mcp.Enum("html", "markdown"),
		),
	), adapt(s.handleBeginPageExport))

	s.mcpServer.AddTool(mcp.NewTool("coda_get_page_export_status",
		mcp.WithDescription(`Check the status of a page export started with coda_begin_page_export. When the export is complete the content is downloaded automatically and returned in the "content" field, so no extra request is needed. If status is "in progress", wait a moment and poll again; if "failed", the "error" field explains why.`),
		mcp.WithString("doc_id",
			mcp.Description("ID of the doc"),
			mcp.Required(),
		),
		mcp.WithString("page_id_or_name",
			mcp.Description("ID or name of the page"),
			mcp.Required(),
		),
		mcp.WithString("request_id",
			mcp.Description("The request ID returned by coda_begin_page_export"),
			mcp.Required(),
		),
	), adapt(s.handlePageExportStatus))
}

func (s *Server) handleListPages(ctx context.Context, args map[string]any) (*ToolResult, error) {
	docID := stringArg(args, "doc_id")
	if docID == "" {
		return errResult("doc_id is required"), nil
	}

	list, err := s.client.ListPages(ctx, docID, coda.ListPagesParams{
		Limit:     intArg(args, "limit"),
		PageToken: stringArg(args, "page_token"),
	})
	if err != nil {
		return errResult("list pages failed: %v", err), nil
	}
	return jsonResult(list)
}

func (s *Server) handleCreatePage(ctx context.Context, args map[string]any) (*ToolResult, error) {
	docID := stringArg(args, "doc_id")
	if docID == "" {
		return errResult("doc_id is required"), nil
	}
	name := stringArg(args, "name")
	if name == "" {
		return errResult("name is required"), nil
	}

	params := coda.CreatePageParams{
		Name:         name,
		Subtitle:     stringArg(args, "subtitle"),
		IconName:     stringArg(args, "icon_name"),
		ImageURL:     stringArg(args, "image_url"),
		ParentPageID: stringArg(args, "parent_page_id"),
	}

	var content coda.PageContent
	ok, err := decodeObjectArg(args, "page_content", &content)
	if err != nil {
		return errResult("invalid page_content: %v", err), nil
	}
	if ok {
		params.PageContent = &content
	}

	result, err := s.client.CreatePage(ctx, docID, params)
	if err != nil {
		return errResult("create page failed: %v", err), nil
	}
	return jsonResult(result)
}

func (s *Server) handleGetPage(ctx context.Context, args map[string]any) (*ToolResult, error) {
	docID := stringArg(args, "doc_id")
	pageID := stringArg(args, "page_id_or_name")
	if docID == "" || pageID == "" {
		return errResult("doc_id and page_id_or_name are required"), nil
	}

	page, err := s.client.GetPage(ctx, docID, pageID)
	if err != nil {
		return errResult("get page failed: %v", err), nil
	}
	return jsonResult(page)
}

func (s *Server) handleUpdatePage(ctx context.Context, args map[string]any) (*ToolResult, error) {
	docID := stringArg(args, "doc_id")
	pageID := stringArg(args, "page_id_or_name")
	if docID == "" || pageID == "" {
		return errResult("doc_id and page_id_or_name are required"), nil
	}

	params := coda.UpdatePageParams{
		Name:     stringArg(args, "name"),
		Subtitle: stringArg(args, "subtitle"),
		IconName: stringArg(args, "icon_name"),
		ImageURL: stringArg(args, "image_url"),
		IsHidden: boolArg(args, "is_hidden"),
	}

	var update coda.PageContentUpdate
	ok, err := decodeObjectArg(args, "content_update", &update)
	if err != nil {
		return errResult("invalid content_update: %v", err), nil
	}
	if ok {
		params.ContentUpdate = &update
	}

	result, err := s.client.UpdatePage(ctx, docID, pageID, params)
	if err != nil {
		return errResult("update page failed: %v", err), nil
	}
	return jsonResult(result)
}

func (s *Server) handleDeletePage(ctx context.Context, args map[string]any) (*ToolResult, error) {
	docID := stringArg(args, "doc_id")
	pageID := stringArg(args, "page_id_or_name")
	if docID == "" || pageID == "" {
		return errResult("doc_id and page_id_or_name are required"), nil
	}

	result, err := s.client.DeletePage(ctx, docID, pageID)
	if err != nil {
		return errResult("delete page failed: %v", err), nil
	}
	return jsonResult(result)
}

func (s *Server) handleBeginPageExport(ctx context.Context, args map[string]any) (*ToolResult, error) {
	docID := stringArg(args, "doc_id")
	pageID := stringArg(args, "page_id_or_name")
	if docID == "" || pageID == "" {
		return errResult("doc_id and page_id_or_name are required"), nil
	}

	export, err := s.client.BeginPageExport(ctx, docID, pageID, stringArg(args, "output_format"))
	if err != nil {
		return errResult("begin page export failed: %v", err), nil
	}
	return jsonResult(export)
}

func (s *Server) handlePageExportStatus(ctx context.Context, args map[string]any) (*ToolResult, error) {
	docID := stringArg(args, "doc_id")
	pageID := stringArg(args, "page_id_or_name")
	requestID := stringArg(args, "request_id")
	if docID == "" || pageID == "" || requestID == "" {
		return errResult("doc_id, page_id_or_name, and request_id are required"), nil
	}

	status, err := s.client.PageExportStatus(ctx, docID, pageID, requestID)
	if err != nil {
		return errResult("get page export status failed: %v", err), nil
	}
	return jsonResult(status)
}
