package coda

import "context"

// FormulaReference is a compact pointer to a named formula.
type FormulaReference struct {
	ID     string         `json:"id"`
	Type   string         `json:"type"`
	Href   string         `json:"href"`
	Name   string         `json:"name"`
	Parent *PageReference `json:"parent,omitempty"`
}

// Formula is a named formula with its current value.
type Formula struct {
	ID     string         `json:"id"`
	Type   string         `json:"type"`
	Href   string         `json:"href"`
	Name   string         `json:"name"`
	Parent *PageReference `json:"parent,omitempty"`
	Value  any            `json:"value,omitempty"`
}

// FormulaList is a page of formula references.
type FormulaList struct {
	Items []FormulaReference `json:"items"`
	Pagination
}

// ListFormulasParams controls formula listing.
type ListFormulasParams struct {
	Limit     int
	PageToken string
	SortBy    string
}

// ListFormulas returns the named formulas in a doc.
func (c *Client) ListFormulas(ctx context.Context, docID string, params ListFormulasParams) (*FormulaList, error) {
	q := newQuery()
	q.setInt("limit", params.Limit)
	q.setString("pageToken", params.PageToken)
	q.setString("sortBy", params.SortBy)

	var list FormulaList
	if err := c.get(ctx, "docs/"+escape(docID)+"/formulas", q.Values, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetFormula returns a named formula, including its current value.
func (c *Client) GetFormula(ctx context.Context, docID, formulaIDOrName string) (*Formula, error) {
	var formula Formula
	if err := c.get(ctx, "docs/"+escape(docID)+"/formulas/"+escape(formulaIDOrName), nil, &formula); err != nil {
		return nil, err
	}
	return &formula, nil
}
