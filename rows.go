package coda

import (
	"context"
	"time"
)

// ValueFormat controls how cell values are rendered in row responses.
type ValueFormat string

// Value formats.
const (
	ValueFormatSimple           ValueFormat = "simple"
	ValueFormatSimpleWithArrays ValueFormat = "simpleWithArrays"
	ValueFormatRich             ValueFormat = "rich"
)

// Row is a row in a table. Values maps column ID (or name, when
// requested) to the cell value in the requested format.
type Row struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	Href        string         `json:"href"`
	Name        string         `json:"name,omitempty"`
	Index       int            `json:"index"`
	BrowserLink string         `json:"browserLink,omitempty"`
	CreatedAt   *time.Time     `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time     `json:"updatedAt,omitempty"`
	Values      map[string]any `json:"values"`
}

// RowDetail is a row with its parent table.
type RowDetail struct {
	Row
	Parent *TableReference `json:"parent,omitempty"`
}

// RowList is a page of rows.
type RowList struct {
	Items []Row `json:"items"`
	Pagination
	NextSyncToken string `json:"nextSyncToken,omitempty"`
}

// ListRowsParams filters and shapes row listing.
type ListRowsParams struct {
	// Query filters rows, e.g. `Status="Complete"` or `c-abc123:"value"`.
	Query          string
	SortBy         string
	UseColumnNames *bool
	ValueFormat    ValueFormat
	VisibleOnly    *bool
	Limit          int
	PageToken      string
	SyncToken      string
}

// GetRowParams shapes a single-row fetch.
type GetRowParams struct {
	UseColumnNames *bool
	ValueFormat    ValueFormat
}

// CellEdit sets one cell. Column accepts an ID or a name.
type CellEdit struct {
	Column string `json:"column"`
	Value  any    `json:"value"`
}

// RowEdit is the cell values of one row for upsert/update operations.
type RowEdit struct {
	Cells []CellEdit `json:"cells"`
}

// UpsertRowsParams inserts rows, or updates them when KeyColumns match
// existing rows.
type UpsertRowsParams struct {
	Rows           []RowEdit `json:"rows"`
	KeyColumns     []string  `json:"keyColumns,omitempty"`
	DisableParsing *bool     `json:"disableParsing,omitempty"`
}

// RowsUpserted is the response to an upsert.
type RowsUpserted struct {
	RequestID   string   `json:"requestId"`
	AddedRowIDs []string `json:"addedRowIds,omitempty"`
}

// RowUpdated is the response to a row update.
type RowUpdated struct {
	RequestID string `json:"requestId"`
	ID        string `json:"id"`
}

// RowDeleted is the response to a single row deletion.
type RowDeleted struct {
	RequestID string `json:"requestId"`
	ID        string `json:"id"`
}

// RowsDeleted is the response to a bulk row deletion.
type RowsDeleted struct {
	RequestID string   `json:"requestId"`
	RowIDs    []string `json:"rowIds"`
}

// ButtonPushed is the response to a button push.
type ButtonPushed struct {
	RequestID string `json:"requestId"`
	RowID     string `json:"rowId"`
	ColumnID  string `json:"columnId"`
}

func rowsPath(docID, tableIDOrName string) string {
	return "docs/" + escape(docID) + "/tables/" + escape(tableIDOrName) + "/rows"
}

// ListRows returns the rows of a table.
func (c *Client) ListRows(ctx context.Context, docID, tableIDOrName string, params ListRowsParams) (*RowList, error) {
	q := newQuery()
	q.setString("query", params.Query)
	q.setString("sortBy", params.SortBy)
	q.setOptBool("useColumnNames", params.UseColumnNames)
	q.setString("valueFormat", string(params.ValueFormat))
	q.setOptBool("visibleOnly", params.VisibleOnly)
	q.setInt("limit", params.Limit)
	q.setString("pageToken", params.PageToken)
	q.setString("syncToken", params.SyncToken)

	var list RowList
	if err := c.get(ctx, rowsPath(docID, tableIDOrName), q.Values, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetRow returns a single row.
func (c *Client) GetRow(ctx context.Context, docID, tableIDOrName, rowIDOrName string, params GetRowParams) (*RowDetail, error) {
	q := newQuery()
	q.setOptBool("useColumnNames", params.UseColumnNames)
	q.setString("valueFormat", string(params.ValueFormat))

	var row RowDetail
	if err := c.get(ctx, rowsPath(docID, tableIDOrName)+"/"+escape(rowIDOrName), q.Values, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

// UpsertRows inserts or updates rows. The write is asynchronous on the
// vendor side; the returned request ID can be used to track it.
func (c *Client) UpsertRows(ctx context.Context, docID, tableIDOrName string, params UpsertRowsParams) (*RowsUpserted, error) {
	var result RowsUpserted
	if err := c.post(ctx, rowsPath(docID, tableIDOrName), params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateRow updates the cells of a single row.
func (c *Client) UpdateRow(ctx context.Context, docID, tableIDOrName, rowIDOrName string, row RowEdit, disableParsing *bool) (*RowUpdated, error) {
	body := struct {
		Row            RowEdit `json:"row"`
		DisableParsing *bool   `json:"disableParsing,omitempty"`
	}{Row: row, DisableParsing: disableParsing}

	var result RowUpdated
	if err := c.put(ctx, rowsPath(docID, tableIDOrName)+"/"+escape(rowIDOrName), body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteRow deletes a single row.
func (c *Client) DeleteRow(ctx context.Context, docID, tableIDOrName, rowIDOrName string) (*RowDeleted, error) {
	var result RowDeleted
	if err := c.delete(ctx, rowsPath(docID, tableIDOrName)+"/"+escape(rowIDOrName), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteRows deletes multiple rows by ID in one request.
func (c *Client) DeleteRows(ctx context.Context, docID, tableIDOrName string, rowIDs []string) (*RowsDeleted, error) {
	body := struct {
		RowIDs []string `json:"rowIds"`
	}{RowIDs: rowIDs}

	var result RowsDeleted
	if err := c.delete(ctx, rowsPath(docID, tableIDOrName), body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PushButton pushes a button in a table cell.
func (c *Client) PushButton(ctx context.Context, docID, tableIDOrName, rowIDOrName, columnIDOrName string) (*ButtonPushed, error) {
	path := rowsPath(docID, tableIDOrName) + "/" + escape(rowIDOrName) + "/buttons/" + escape(columnIDOrName)

	var result ButtonPushed
	if err := c.post(ctx, path, struct{}{}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
