package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hyperengineering/coda"
)

// outputAsJSON writes any value as formatted JSON to the command's stdout.
func outputAsJSON(cmd *cobra.Command, v interface{}) error {
	out := cmd.OutOrStdout()
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError prints an error to stderr, ensuring no API tokens are leaked.
func outputError(w io.Writer, err error) {
	msg := scrubSensitiveData(err.Error())
	fmt.Fprintf(w, "%s %s\n", errorRender("Error:"), msg)
}

// scrubSensitiveData removes potential API tokens from error messages.
// The library already avoids including tokens, but this is defense in depth.
func scrubSensitiveData(msg string) string {
	if cfgAPIKey != "" && strings.Contains(msg, cfgAPIKey) {
		msg = strings.ReplaceAll(msg, cfgAPIKey, "[REDACTED]")
	}
	return msg
}

// outputDoc prints a doc's metadata in human-readable form.
func outputDoc(cmd *cobra.Command, doc *coda.Doc) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", labelRender("Name:"), doc.Name)
	fmt.Fprintf(out, "%s %s\n", labelRender("ID:"), doc.ID)
	fmt.Fprintf(out, "%s %s\n", labelRender("Owner:"), doc.OwnerName)
	fmt.Fprintf(out, "%s %s\n", labelRender("Link:"), doc.BrowserLink)
	if doc.Workspace != nil {
		fmt.Fprintf(out, "%s %s\n", labelRender("Workspace:"), doc.Workspace.ID)
	}
	if doc.DocSize != nil {
		fmt.Fprintf(out, "%s %d page(s), %d table(s)\n", labelRender("Size:"),
			doc.DocSize.PageCount, doc.DocSize.TableAndViewCount)
	}
	fmt.Fprintf(out, "%s %s\n", labelRender("Updated:"), doc.UpdatedAt.Format(time.RFC3339))
}

// outputPage prints a page's metadata in human-readable form.
func outputPage(cmd *cobra.Command, page *coda.Page) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", labelRender("Name:"), page.Name)
	fmt.Fprintf(out, "%s %s\n", labelRender("ID:"), page.ID)
	if page.Subtitle != "" {
		fmt.Fprintf(out, "%s %s\n", labelRender("Subtitle:"), page.Subtitle)
	}
	if page.ContentType != "" {
		fmt.Fprintf(out, "%s %s\n", labelRender("Content type:"), page.ContentType)
	}
	if page.Parent != nil {
		fmt.Fprintf(out, "%s %s\n", labelRender("Parent:"), page.Parent.ID)
	}
	if len(page.Children) > 0 {
		ids := make([]string, len(page.Children))
		for i, c := range page.Children {
			ids[i] = c.ID
		}
		fmt.Fprintf(out, "%s %s\n", labelRender("Children:"), strings.Join(ids, ", "))
	}
	if page.IsHidden {
		fmt.Fprintln(out, mutedRender("(hidden)"))
	}
	fmt.Fprintf(out, "%s %s\n", labelRender("Link:"), page.BrowserLink)
}

// outputTable prints a table's metadata in human-readable form.
func outputTable(cmd *cobra.Command, table *coda.Table) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", labelRender("Name:"), table.Name)
	fmt.Fprintf(out, "%s %s\n", labelRender("ID:"), table.ID)
	fmt.Fprintf(out, "%s %s\n", labelRender("Type:"), string(table.TableType))
	fmt.Fprintf(out, "%s %d\n", labelRender("Rows:"), table.RowCount)
	fmt.Fprintf(out, "%s %s\n", labelRender("Layout:"), string(table.Layout))
	fmt.Fprintf(out, "%s %s\n", labelRender("Display column:"), table.DisplayColumn.ID)
	if table.Parent != nil {
		fmt.Fprintf(out, "%s %s\n", labelRender("Page:"), table.Parent.ID)
	}
	fmt.Fprintf(out, "%s %s\n", labelRender("Link:"), table.BrowserLink)
}
