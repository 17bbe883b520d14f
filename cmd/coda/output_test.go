package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/hyperengineering/coda"
)

func TestScrubSensitiveData(t *testing.T) {
	cfgAPIKey = "secret-token-123"
	defer func() { cfgAPIKey = "" }()

	msg := scrubSensitiveData("request failed: Bearer secret-token-123 rejected")
	if strings.Contains(msg, "secret-token-123") {
		t.Errorf("token leaked: %q", msg)
	}
	if !strings.Contains(msg, "[REDACTED]") {
		t.Errorf("expected redaction marker: %q", msg)
	}
}

func TestScrubSensitiveData_NoToken(t *testing.T) {
	cfgAPIKey = ""

	msg := scrubSensitiveData("plain error")
	if msg != "plain error" {
		t.Errorf("message altered: %q", msg)
	}
}

func TestOutputError(t *testing.T) {
	cfgAPIKey = "tok-abc"
	defer func() { cfgAPIKey = "" }()

	var buf bytes.Buffer
	outputError(&buf, &coda.APIError{StatusCode: 401, Message: "invalid token tok-abc"})

	out := buf.String()
	if !strings.Contains(out, "Error:") {
		t.Errorf("missing Error prefix: %q", out)
	}
	if strings.Contains(out, "tok-abc") {
		t.Errorf("token leaked: %q", out)
	}
}

func TestOutputAsJSON(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	err := outputAsJSON(cmd, map[string]string{"key": "value"})
	if err != nil {
		t.Fatalf("outputAsJSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"key": "value"`) {
		t.Errorf("output = %q", buf.String())
	}
}

func TestOutputDoc(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	outputDoc(cmd, &coda.Doc{
		ID:          "AbCDeFGH",
		Name:        "Project Tracker",
		OwnerName:   "Test User",
		BrowserLink: "https://coda.io/d/AbCDeFGH",
		UpdatedAt:   time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	})

	out := buf.String()
	for _, want := range []string{"Project Tracker", "AbCDeFGH", "Test User"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestOutputTable(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	outputTable(cmd, &coda.Table{
		ID:        "grid-one",
		Name:      "Tasks",
		TableType: coda.TableTypeTable,
		RowCount:  42,
		Layout:    coda.LayoutDefault,
	})

	out := buf.String()
	if !strings.Contains(out, "Tasks") || !strings.Contains(out, "42") {
		t.Errorf("output = %q", out)
	}
}
