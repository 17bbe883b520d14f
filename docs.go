package coda

import (
	"context"
	"time"
)

// Doc is metadata about a Coda doc.
type Doc struct {
	ID          string              `json:"id"`
	Type        string              `json:"type"`
	Href        string              `json:"href"`
	BrowserLink string              `json:"browserLink"`
	Name        string              `json:"name"`
	Owner       string              `json:"owner"`
	OwnerName   string              `json:"ownerName"`
	Icon        *Icon               `json:"icon,omitempty"`
	DocSize     *DocSize            `json:"docSize,omitempty"`
	SourceDoc   *SourceDoc          `json:"sourceDoc,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
	Published   *DocPublished       `json:"published,omitempty"`
	Folder      *FolderReference    `json:"folder,omitempty"`
	Workspace   *WorkspaceReference `json:"workspace,omitempty"`
	WorkspaceID string              `json:"workspaceId,omitempty"`
	FolderID    string              `json:"folderId,omitempty"`
}

// DocSize summarizes the contents of a doc.
type DocSize struct {
	TotalRowCount     int64 `json:"totalRowCount"`
	TableAndViewCount int   `json:"tableAndViewCount"`
	PageCount         int   `json:"pageCount"`
	OverAPISizeLimit  bool  `json:"overApiSizeLimit"`
}

// SourceDoc points at the doc this one was copied from.
type SourceDoc struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Href string `json:"href"`
}

// DocPublished describes publishing settings for a published doc.
type DocPublished struct {
	Description  string   `json:"description,omitempty"`
	BrowserLink  string   `json:"browserLink"`
	ImageLink    string   `json:"imageLink,omitempty"`
	Discoverable bool     `json:"discoverable"`
	EarnCredit   bool     `json:"earnCredit"`
	Mode         string   `json:"mode"`
	Categories   []string `json:"categories,omitempty"`
}

// DocList is a page of docs.
type DocList struct {
	Items []Doc `json:"items"`
	Pagination
}

// ListDocsParams filters the doc listing. IsOwner, IsPublished, and Query
// are always sent; the rest are omitted when unset.
type ListDocsParams struct {
	IsOwner     bool
	IsPublished bool
	Query       string
	SourceDoc   string
	IsStarred   *bool
	InGallery   *bool
	WorkspaceID string
	FolderID    string
	Limit       int
	PageToken   string
}

// InitialPage configures the first page of a new doc.
type InitialPage struct {
	Name         string       `json:"name,omitempty"`
	Subtitle     string       `json:"subtitle,omitempty"`
	IconName     string       `json:"iconName,omitempty"`
	ImageURL     string       `json:"imageUrl,omitempty"`
	ParentPageID string       `json:"parentPageId,omitempty"`
	PageContent  *PageContent `json:"pageContent,omitempty"`
}

// CreateDocParams describes a new doc.
type CreateDocParams struct {
	Title       string       `json:"title"`
	SourceDoc   string       `json:"sourceDoc,omitempty"`
	Timezone    string       `json:"timezone,omitempty"`
	FolderID    string       `json:"folderId,omitempty"`
	WorkspaceID string       `json:"workspaceId,omitempty"`
	InitialPage *InitialPage `json:"initialPage,omitempty"`
}

// UpdateDocParams holds the mutable doc properties.
type UpdateDocParams struct {
	Title    string `json:"title,omitempty"`
	IconName string `json:"iconName,omitempty"`
}

// DocUpdated is the response to a doc update.
type DocUpdated struct {
	RequestID string `json:"requestId,omitempty"`
	ID        string `json:"id,omitempty"`
}

// DocDeleted is the response to a doc deletion.
type DocDeleted struct {
	RequestID string `json:"requestId,omitempty"`
}

// WhoAmI returns information about the authenticated user and token.
func (c *Client) WhoAmI(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, "whoami", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListDocs returns docs accessible by the user, in the same order as on
// the docs page: reverse chronological by the latest event relevant to
// the user (last viewed, edited, or shared).
func (c *Client) ListDocs(ctx context.Context, params ListDocsParams) (*DocList, error) {
	q := newQuery()
	q.setBool("isOwner", params.IsOwner)
	q.setBool("isPublished", params.IsPublished)
	q.Set("query", params.Query)
	q.setString("sourceDoc", params.SourceDoc)
	q.setOptBool("isStarred", params.IsStarred)
	q.setOptBool("inGallery", params.InGallery)
	q.setString("workspaceId", params.WorkspaceID)
	q.setString("folderId", params.FolderID)
	q.setInt("limit", params.Limit)
	q.setString("pageToken", params.PageToken)

	var list DocList
	if err := c.get(ctx, "docs", q.Values, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetDoc returns metadata for a doc.
func (c *Client) GetDoc(ctx context.Context, docID string) (*Doc, error) {
	var doc Doc
	if err := c.get(ctx, "docs/"+escape(docID), nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// CreateDoc creates a new doc, optionally copying an existing one.
func (c *Client) CreateDoc(ctx context.Context, params CreateDocParams) (*Doc, error) {
	var doc Doc
	if err := c.post(ctx, "docs", params, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// UpdateDoc updates the title and/or icon of a doc.
func (c *Client) UpdateDoc(ctx context.Context, docID string, params UpdateDocParams) (*DocUpdated, error) {
	var result DocUpdated
	if err := c.patch(ctx, "docs/"+escape(docID), params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteDoc permanently deletes a doc. There is no undo.
func (c *Client) DeleteDoc(ctx context.Context, docID string) (*DocDeleted, error) {
	var result DocDeleted
	if err := c.delete(ctx, "docs/"+escape(docID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
