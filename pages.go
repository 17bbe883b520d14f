package coda

import (
	"context"
	"time"
)

// Page is metadata about a page in a doc.
type Page struct {
	ID                  string          `json:"id"`
	Type                string          `json:"type"`
	Href                string          `json:"href"`
	BrowserLink         string          `json:"browserLink,omitempty"`
	Name                string          `json:"name"`
	Subtitle            string          `json:"subtitle,omitempty"`
	Icon                *Icon           `json:"icon,omitempty"`
	Image               *Image          `json:"image,omitempty"`
	ContentType         string          `json:"contentType,omitempty"`
	IsHidden            bool            `json:"isHidden,omitempty"`
	IsEffectivelyHidden bool            `json:"isEffectivelyHidden,omitempty"`
	Parent              *PageReference  `json:"parent,omitempty"`
	Children            []PageReference `json:"children,omitempty"`
	CreatedAt           *time.Time      `json:"createdAt,omitempty"`
	UpdatedAt           *time.Time      `json:"updatedAt,omitempty"`
}

// PageList is a page of pages.
type PageList struct {
	Items []Page `json:"items"`
	Pagination
}

// ListPagesParams controls page listing.
type ListPagesParams struct {
	Limit     int
	PageToken string
}

// CreatePageParams describes a new page.
type CreatePageParams struct {
	Name         string       `json:"name"`
	Subtitle     string       `json:"subtitle,omitempty"`
	IconName     string       `json:"iconName,omitempty"`
	ImageURL     string       `json:"imageUrl,omitempty"`
	ParentPageID string       `json:"parentPageId,omitempty"`
	PageContent  *PageContent `json:"pageContent,omitempty"`
}

// PageContentUpdate appends to or replaces a page's canvas content.
type PageContentUpdate struct {
	InsertionMode string        `json:"insertionMode"` // "append" or "replace"
	CanvasContent CanvasContent `json:"canvasContent"`
}

// UpdatePageParams holds the mutable page properties. Unset fields are
// left untouched; IsHidden is a pointer so false can be sent explicitly.
type UpdatePageParams struct {
	Name          string             `json:"name,omitempty"`
	Subtitle      string             `json:"subtitle,omitempty"`
	IconName      string             `json:"iconName,omitempty"`
	ImageURL      string             `json:"imageUrl,omitempty"`
	IsHidden      *bool              `json:"isHidden,omitempty"`
	ContentUpdate *PageContentUpdate `json:"contentUpdate,omitempty"`
}

// PageCreated is the response to a page creation.
type PageCreated struct {
	ID        string `json:"id"`
	RequestID string `json:"requestId,omitempty"`
}

// PageUpdated is the response to a page update.
type PageUpdated struct {
	ID        string `json:"id"`
	RequestID string `json:"requestId,omitempty"`
}

// PageDeleted is the response to a page deletion.
type PageDeleted struct {
	ID        string `json:"id"`
	RequestID string `json:"requestId,omitempty"`
}

// ListPages returns the pages in a doc.
func (c *Client) ListPages(ctx context.Context, docID string, params ListPagesParams) (*PageList, error) {
	q := newQuery()
	q.setInt("limit", params.Limit)
	q.setString("pageToken", params.PageToken)

	var list PageList
	if err := c.get(ctx, "docs/"+escape(docID)+"/pages", q.Values, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetPage returns details about a page. pageIDOrName accepts either.
func (c *Client) GetPage(ctx context.Context, docID, pageIDOrName string) (*Page, error) {
	var page Page
	if err := c.get(ctx, "docs/"+escape(docID)+"/pages/"+escape(pageIDOrName), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreatePage creates a new page in a doc.
func (c *Client) CreatePage(ctx context.Context, docID string, params CreatePageParams) (*PageCreated, error) {
	var result PageCreated
	if err := c.post(ctx, "docs/"+escape(docID)+"/pages", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdatePage updates properties and/or content of a page.
func (c *Client) UpdatePage(ctx context.Context, docID, pageIDOrName string, params UpdatePageParams) (*PageUpdated, error) {
	var result PageUpdated
	if err := c.put(ctx, "docs/"+escape(docID)+"/pages/"+escape(pageIDOrName), params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeletePage deletes a page from a doc.
func (c *Client) DeletePage(ctx context.Context, docID, pageIDOrName string) (*PageDeleted, error) {
	var result PageDeleted
	if err := c.delete(ctx, "docs/"+escape(docID)+"/pages/"+escape(pageIDOrName), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
