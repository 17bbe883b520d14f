package coda

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Export output formats.
const (
	ExportFormatHTML     = "html"
	ExportFormatMarkdown = "markdown"
)

// Export statuses reported by the API.
const (
	ExportStatusInProgress = "inProgress"
	ExportStatusComplete   = "complete"
	ExportStatusFailed     = "failed"
)

// PageExport is the response to an export initiation.
type PageExport struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Href   string `json:"href,omitempty"`
}

// PageExportStatus is the response to an export status poll. When the
// export has completed, Content holds the downloaded page content.
type PageExportStatus struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	Href         string `json:"href,omitempty"`
	DownloadLink string `json:"downloadLink,omitempty"`
	Error        string `json:"error,omitempty"`
	Content      string `json:"content,omitempty"`
}

// BeginPageExport starts an asynchronous export of page content. The
// returned request ID is polled with PageExportStatus. format is
// ExportFormatHTML or ExportFormatMarkdown.
func (c *Client) BeginPageExport(ctx context.Context, docID, pageIDOrName, format string) (*PageExport, error) {
	if format == "" {
		format = ExportFormatHTML
	}
	body := map[string]string{"outputFormat": format}

	var result PageExport
	path := "docs/" + escape(docID) + "/pages/" + escape(pageIDOrName) + "/export"
	if err := c.post(ctx, path, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PageExportStatus checks on an export started with BeginPageExport.
//
// The export request replicates across Coda's servers with some lag, so
// the status endpoint can 404 shortly after initiation. Those 404s are
// retried here with exponential backoff, bounded by MaxExportPolls.
// When the export is complete the content is downloaded automatically
// and returned in the Content field.
func (c *Client) PageExportStatus(ctx context.Context, docID, pageIDOrName, requestID string) (*PageExportStatus, error) {
	path := "docs/" + escape(docID) + "/pages/" + escape(pageIDOrName) + "/export/" + escape(requestID)

	var status PageExportStatus
	delay := c.exportPollInterval
	for attempt := 0; ; attempt++ {
		err := c.get(ctx, path, nil, &status)
		if err == nil {
			break
		}
		if !IsNotFound(err) || attempt >= c.maxExportPolls {
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}

	if status.Status == ExportStatusComplete && status.DownloadLink != "" {
		content, err := c.download(ctx, status.DownloadLink)
		if err != nil {
			return nil, err
		}
		status.Content = content
	}

	return &status, nil
}

// ExportPage runs the full export workflow: begin, poll until the export
// completes, and return the downloaded content. Polling is bounded by
// MaxExportPolls; a failed export returns ErrExportFailed.
func (c *Client) ExportPage(ctx context.Context, docID, pageIDOrName, format string) (*PageExportStatus, error) {
	export, err := c.BeginPageExport(ctx, docID, pageIDOrName, format)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < c.maxExportPolls; attempt++ {
		status, err := c.PageExportStatus(ctx, docID, pageIDOrName, export.ID)
		if err != nil {
			return nil, err
		}
		switch status.Status {
		case ExportStatusComplete:
			return status, nil
		case ExportStatusFailed:
			return status, fmt.Errorf("%w: %s", ErrExportFailed, status.Error)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.exportPollInterval):
		}
	}

	return nil, ErrExportTimeout
}

// download fetches exported content from the temporary link the API
// hands out. The link is pre-signed, so no auth header is sent.
func (c *Client) download(ctx context.Context, link string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return "", fmt.Errorf("coda: build download request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("coda: download export: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("coda: read export content: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", newAPIError(resp.StatusCode, body, "")
	}

	return string(body), nil
}
