package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hyperengineering/coda"
)

func (s *Server) registerDocTools() {
	s.mcpServer.AddTool(mcp.NewTool("coda_whoami",
		mcp.WithDescription("Get information about the current authenticated user, including name, email, and scoped token info."),
	), adapt(s.handleWhoAmI))

	s.mcpServer.AddTool(mcp.NewTool("coda_list_docs",
		mcp.WithDescription("List Coda docs accessible by the user, in reverse chronological order by the latest event relevant to the user (last viewed, edited, or shared)."),
		mcp.WithBoolean("is_owner",
			mcp.Description("Show only docs owned by the user"),
			mcp.Required(),
		),
		mcp.WithBoolean("is_published",
			mcp.Description("Show only published docs"),
			mcp.Required(),
		),
		mcp.WithString("query",
			mcp.Description("Search term used to filter down results"),
			mcp.Required(),
		),
		mcp.WithString("source_doc",
			mcp.Description("Show only docs copied from the specified doc ID"),
		),
		mcp.WithBoolean("is_starred",
			mcp.Description("If true, returns docs that are starred; if false, docs that are not starred"),
		),
		mcp.WithBoolean("in_gallery",
			mcp.Description("Show only docs visible within the gallery"),
		),
		mcp.WithString("workspace_id",
			mcp.Description("Show only docs belonging to the given workspace"),
		),
		mcp.WithString("folder_id",
			mcp.Description("Show only docs belonging to the given folder"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results to return (default: 25)"),
		),
		mcp.WithString("page_token",
			mcp.Description("An opaque token used to fetch the next page of results"),
		),
	), adapt(s.handleListDocs))

	s.mcpServer.AddTool(mcp.NewTool("coda_create_doc",
		mcp.WithDescription("Create a new Coda doc, optionally copying an existing doc."),
		mcp.WithString("title",
			mcp.Description("Title of the new doc"),
			mcp.Required(),
		),
		mcp.WithString("source_doc",
			mcp.Description("ID of a doc to copy"),
		),
		mcp.WithString("timezone",
			mcp.Description("Timezone for the doc, e.g. 'America/Los_Angeles'"),
		),
		mcp.WithString("folder_id",
			mcp.Description("ID of the folder to place the doc in"),
		),
		mcp.WithString("workspace_id",
			mcp.Description("ID of the workspace to place the doc in"),
		),
		mcp.WithObject("initial_page",
			mcp.Description(`Configuration for the initial page: name, subtitle, icon_name, image_url, parent_page_id, and page_content, e.g. {"name": "Launch", "page_content": {"type": "canvas", "canvas_content": {"format": "markdown", "content": "# Hello"}}}`),
		),
	), adapt(s.handleCreateDoc))

	s.mcpServer.AddTool(mcp.NewTool("coda_get_doc",
		mcp.WithDescription("Get metadata about a doc: name, owner, size, timestamps, and sharing info."),
		mcp.WithString("doc_id",
			mcp.Description("ID of the doc"),
			mcp.Required(),
		),
	), adapt(s.handleGetDoc))

	s.mcpServer.AddTool(mcp.NewTool("coda_update_doc",
		mcp.WithDescription("Update the title and/or icon of a doc."),
		mcp.WithString("doc_id",
			mcp.Description("ID of the doc"),
			mcp.Required(),
		),
		mcp.WithString("title",
			mcp.Description("New title for the doc"),
		),
		mcp.WithString("icon_name",
			mcp.Description("Name of the icon"),
		),
	), adapt(s.handleUpdateDoc))

	s.mcpServer.AddTool(mcp.NewTool("coda_delete_doc",
		mcp.WithDescription("Permanently delete a doc. USE WITH CAUTION: there is no undo."),
		mcp.WithString("doc_id",
			mcp.Description("ID of the doc to delete"),
			mcp.Required(),
		),
	), adapt(s.handleDeleteDoc))
}

func (s *Server) handleWhoAmI(ctx context.Context, _ map[string]any) (*ToolResult, error) {
	user, err := s.client.WhoAmI(ctx)
	if err != nil {
		return errResult("whoami failed: %v", err), nil
	}
	return jsonResult(user)
}

func (s *Server) handleListDocs(ctx context.Context, args map[string]any) (*ToolResult, error) {
	params := coda.ListDocsParams{
		Query:       stringArg(args, "query"),
		SourceDoc:   stringArg(args, "source_doc"),
		IsStarred:   boolArg(args, "is_starred"),
		InGallery:   boolArg(args, "in_gallery"),
		WorkspaceID: stringArg(args, "workspace_id"),
		FolderID:    stringArg(args, "folder_id"),
		Limit:       intArg(args, "limit"),
		PageToken:   stringArg(args, "page_token"),
	}
	if b := boolArg(args, "is_owner"); b != nil {
		params.IsOwner = *b
	}
	if b := boolArg(args, "is_published"); b != nil {
		params.IsPublished = *b
	}

	list, err := s.client.ListDocs(ctx, params)
	if err != nil {
		return errResult("list docs failed: %v", err), nil
	}
	return jsonResult(list)
}

func (s *Server) handleCreateDoc(ctx context.Context, args map[string]any) (*ToolResult, error) {
	title := stringArg(args, "title")
	if title == "" {
		return errResult("title is required"), nil
	}

	params := coda.CreateDocParams{
		Title:       title,
		SourceDoc:   stringArg(args, "source_doc"),
		Timezone:    stringArg(args, "timezone"),
		FolderID:    stringArg(args, "folder_id"),
		WorkspaceID: stringArg(args, "workspace_id"),
	}

	var initialPage coda.InitialPage
	ok, err := decodeObjectArg(args, "initial_page", &initialPage)
	if err != nil {
		return errResult("invalid initial_page: %v", err), nil
	}
	if ok {
		params.InitialPage = &initialPage
	}

	doc, err := s.client.CreateDoc(ctx, params)
	if err != nil {
		return errResult("create doc failed: %v", err), nil
	}
	return jsonResult(doc)
}

func (s *Server) handleGetDoc(ctx context.Context, args map[string]any) (*ToolResult, error) {
	docID := stringArg(args, "doc_id")
	if docID == "" {
		return errResult("doc_id is required"), nil
	}

	doc, err := s.client.GetDoc(ctx, docID)
	if err != nil {
		return errResult("get doc failed: %v", err), nil
	}
	return jsonResult(doc)
}

func (s *Server) handleUpdateDoc(ctx context.Context, args map[string]any) (*ToolResult, error) {
	docID := stringArg(args, "doc_id")
	if docID == "" {
		return errResult("doc_id is required"), nil
	}

	params := coda.UpdateDocParams{
		Title:    stringArg(args, "title"),
		IconName: stringArg(args, "icon_name"),
	}

	result, err := s.client.UpdateDoc(ctx, docID, params)
	if err != nil {
		return errResult("update doc failed: %v", err), nil
	}
	return jsonResult(result)
}

func (s *Server) handleDeleteDoc(ctx context.Context, args map[string]any) (*ToolResult, error) {
	docID := stringArg(args, "doc_id")
	if docID == "" {
		return errResult("doc_id is required"), nil
	}

	result, err := s.client.DeleteDoc(ctx, docID)
	if err != nil {
		return errResult("delete doc failed: %v", err), nil
	}
	return jsonResult(result)
}
