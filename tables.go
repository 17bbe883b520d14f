package coda

import (
	"context"
	"encoding/json"
	"time"
)

// TableType distinguishes base tables from views.
type TableType string

// Table types.
const (
	TableTypeTable TableType = "table"
	TableTypeView  TableType = "view"
)

// Layout is the visual layout of a table or view.
type Layout string

// Layouts.
const (
	LayoutDefault      Layout = "default"
	LayoutAreaChart    Layout = "areaChart"
	LayoutBarChart     Layout = "barChart"
	LayoutBubbleChart  Layout = "bubbleChart"
	LayoutCalendar     Layout = "calendar"
	LayoutCard         Layout = "card"
	LayoutDetail       Layout = "detail"
	LayoutForm         Layout = "form"
	LayoutGanttChart   Layout = "ganttChart"
	LayoutLineChart    Layout = "lineChart"
	LayoutMasterDetail Layout = "masterDetail"
	LayoutPieChart     Layout = "pieChart"
	LayoutScatterChart Layout = "scatterChart"
	LayoutSlide        Layout = "slide"
	LayoutWordCloud    Layout = "wordCloud"
)

// SortDirection is the direction of a table sort.
type SortDirection string

// Sort directions.
const (
	SortAscending  SortDirection = "ascending"
	SortDescending SortDirection = "descending"
)

// TableReference is a compact pointer to a table or view.
type TableReference struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	TableType   TableType      `json:"tableType,omitempty"`
	Href        string         `json:"href"`
	BrowserLink string         `json:"browserLink,omitempty"`
	Name        string         `json:"name,omitempty"`
	Parent      *PageReference `json:"parent,omitempty"`
}

// ColumnReference is a compact pointer to a column.
type ColumnReference struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Href string `json:"href,omitempty"`
}

// Sort is a sort applied to a table or view.
type Sort struct {
	Column    ColumnReference `json:"column"`
	Direction SortDirection   `json:"direction"`
}

// Table is full metadata about a table or view.
type Table struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	TableType     TableType       `json:"tableType"`
	Href          string          `json:"href"`
	BrowserLink   string          `json:"browserLink,omitempty"`
	Name          string          `json:"name"`
	Parent        *PageReference  `json:"parent,omitempty"`
	ParentTable   *TableReference `json:"parentTable,omitempty"`
	DisplayColumn ColumnReference `json:"displayColumn"`
	RowCount      int64           `json:"rowCount"`
	Sorts         []Sort          `json:"sorts"`
	Layout        Layout          `json:"layout"`
	Filter        *FormulaDetail  `json:"filter,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	ViewID        string          `json:"viewId,omitempty"`
}

// TableList is a page of table references.
type TableList struct {
	Items []TableReference `json:"items"`
	Pagination
}

// ListTablesParams controls table listing.
type ListTablesParams struct {
	Limit      int
	PageToken  string
	SortBy     string
	TableTypes []string
}

// SelectOption is an option of a select column.
type SelectOption struct {
	Name            string `json:"name"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	ForegroundColor string `json:"foregroundColor,omitempty"`
}

// ColumnFormat describes how a column's values are typed and rendered.
// The vendor models this as a tagged union over the Type field; here the
// variant fields are optional and populated per type. Slider and image
// bounds can be either numbers or formula strings, so they stay raw.
type ColumnFormat struct {
	Type    string `json:"type"`
	IsArray bool   `json:"isArray"`

	// numeric, currency, duration
	Precision             *int   `json:"precision,omitempty"`
	UseThousandsSeparator *bool  `json:"useThousandsSeparator,omitempty"`
	CurrencyCode          string `json:"currencyCode,omitempty"`
	Format                string `json:"format,omitempty"`
	MaxUnit               string `json:"maxUnit,omitempty"`

	// date, time, dateTime
	DateFormat string `json:"dateFormat,omitempty"`
	TimeFormat string `json:"timeFormat,omitempty"`

	// email, link
	Display      string `json:"display,omitempty"`
	Autocomplete *bool  `json:"autocomplete,omitempty"`
	Force        *bool  `json:"force,omitempty"`

	// slider, scale, image
	Minimum     json.RawMessage `json:"minimum,omitempty"`
	Maximum     json.RawMessage `json:"maximum,omitempty"`
	Step        json.RawMessage `json:"step,omitempty"`
	Width       json.RawMessage `json:"width,omitempty"`
	Height      json.RawMessage `json:"height,omitempty"`
	Style       string          `json:"style,omitempty"`
	DisplayType string          `json:"displayType,omitempty"`
	ShowValue   *bool           `json:"showValue,omitempty"`
	Icon        string          `json:"icon,omitempty"`

	// button
	Label     string `json:"label,omitempty"`
	DisableIf string `json:"disableIf,omitempty"`
	Action    string `json:"action,omitempty"`

	// select
	Options []SelectOption `json:"options,omitempty"`

	// lookup
	Table *TableReference `json:"table,omitempty"`
}

// Column is info about a column.
type Column struct {
	ID           string       `json:"id"`
	Type         string       `json:"type"`
	Href         string       `json:"href"`
	Name         string       `json:"name"`
	Display      *bool        `json:"display,omitempty"`
	Calculated   *bool        `json:"calculated,omitempty"`
	Formula      string       `json:"formula,omitempty"`
	DefaultValue string       `json:"defaultValue,omitempty"`
	Format       ColumnFormat `json:"format"`
}

// ColumnDetail is a column with its parent table.
type ColumnDetail struct {
	Column
	Parent TableReference `json:"parent"`
}

// ColumnList is a page of columns.
type ColumnList struct {
	Items []Column `json:"items"`
	Pagination
}

// ListColumnsParams controls column listing.
type ListColumnsParams struct {
	Limit       int
	PageToken   string
	VisibleOnly *bool
}

// ListTables returns the tables and views in a doc.
func (c *Client) ListTables(ctx context.Context, docID string, params ListTablesParams) (*TableList, error) {
	q := newQuery()
	q.setInt("limit", params.Limit)
	q.setString("pageToken", params.PageToken)
	q.setString("sortBy", params.SortBy)
	q.setStrings("tableTypes", params.TableTypes)

	var list TableList
	if err := c.get(ctx, "docs/"+escape(docID)+"/tables", q.Values, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetTable returns details about a table or view, including row count,
// display column, sorts, and layout.
func (c *Client) GetTable(ctx context.Context, docID, tableIDOrName string) (*Table, error) {
	var table Table
	if err := c.get(ctx, "docs/"+escape(docID)+"/tables/"+escape(tableIDOrName), nil, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

// ListColumns returns the columns of a table.
func (c *Client) ListColumns(ctx context.Context, docID, tableIDOrName string, params ListColumnsParams) (*ColumnList, error) {
	q := newQuery()
	q.setInt("limit", params.Limit)
	q.setString("pageToken", params.PageToken)
	q.setOptBool("visibleOnly", params.VisibleOnly)

	var list ColumnList
	if err := c.get(ctx, "docs/"+escape(docID)+"/tables/"+escape(tableIDOrName)+"/columns", q.Values, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetColumn returns details about a column, including format and formula.
func (c *Client) GetColumn(ctx context.Context, docID, tableIDOrName, columnIDOrName string) (*ColumnDetail, error) {
	var column ColumnDetail
	path := "docs/" + escape(docID) + "/tables/" + escape(tableIDOrName) + "/columns/" + escape(columnIDOrName)
	if err := c.get(ctx, path, nil, &column); err != nil {
		return nil, err
	}
	return &column, nil
}
