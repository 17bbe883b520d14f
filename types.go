package coda

// Shared wire shapes. JSON tags match the vendor's camelCase field names;
// the mcp package re-serializes results with snake_case keys for agents.

// Pagination carries the cursor fields shared by every list response.
type Pagination struct {
	Href          string `json:"href,omitempty"`
	NextPageToken string `json:"nextPageToken,omitempty"`
	NextPageLink  string `json:"nextPageLink,omitempty"`
}

// User describes the authenticated token holder (the whoami endpoint).
type User struct {
	Name        string              `json:"name"`
	LoginID     string              `json:"loginId"`
	Type        string              `json:"type"`
	Href        string              `json:"href,omitempty"`
	TokenName   string              `json:"tokenName,omitempty"`
	Scoped      bool                `json:"scoped"`
	PictureLink string              `json:"pictureLink,omitempty"`
	Workspace   *WorkspaceReference `json:"workspace,omitempty"`
}

// WorkspaceReference identifies the workspace a doc belongs to.
type WorkspaceReference struct {
	ID             string `json:"id"`
	Type           string `json:"type"`
	OrganizationID string `json:"organizationId,omitempty"`
	BrowserLink    string `json:"browserLink,omitempty"`
	Name           string `json:"name,omitempty"`
}

// FolderReference identifies the folder a doc belongs to.
type FolderReference struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	BrowserLink string `json:"browserLink,omitempty"`
	Name        string `json:"name,omitempty"`
}

// Icon is a doc or page icon.
type Icon struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	BrowserLink string `json:"browserLink,omitempty"`
}

// Image is a cover or embedded image.
type Image struct {
	BrowserLink string  `json:"browserLink"`
	Type        string  `json:"type,omitempty"`
	Width       float64 `json:"width,omitempty"`
	Height      float64 `json:"height,omitempty"`
}

// PageReference is a compact pointer to a page.
type PageReference struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Href        string `json:"href"`
	BrowserLink string `json:"browserLink,omitempty"`
	Name        string `json:"name,omitempty"`
}

// FormulaDetail describes the properties of a formula attached to a
// table filter or column.
type FormulaDetail struct {
	Valid           bool  `json:"valid"`
	IsVolatile      *bool `json:"isVolatile,omitempty"`
	HasUserFormula  *bool `json:"hasUserFormula,omitempty"`
	HasTodayFormula *bool `json:"hasTodayFormula,omitempty"`
	HasNowFormula   *bool `json:"hasNowFormula,omitempty"`
}

// CanvasContent is rich text content in one of the export formats.
type CanvasContent struct {
	Format  string `json:"format"` // "html" or "markdown"
	Content string `json:"content"`
}

// PageContent initializes a page with canvas content.
type PageContent struct {
	Type          string        `json:"type"` // always "canvas"
	CanvasContent CanvasContent `json:"canvasContent"`
}
