package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// resetFlags clears global flag state between tests.
func resetFlags() {
	cfgAPIKey = ""
	cfgBaseURL = ""
	cfgDebug = false
	outputJSON = false
}

func TestCLI_Help_ListsAllCommands(t *testing.T) {
	resetFlags()

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"--help"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("help should not error: %v", err)
	}

	output := stdout.String()
	for _, cmd := range []string{"docs", "pages", "tables", "columns", "rows", "button", "formulas", "export", "whoami", "mcp", "version"} {
		if !strings.Contains(output, cmd) {
			t.Errorf("help output missing command %q", cmd)
		}
	}
}

func TestCLI_WhoAmI_JSON(t *testing.T) {
	resetFlags()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/whoami" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"name":"Test User","loginId":"user@example.com","type":"user","scoped":false}`))
	}))
	defer server.Close()

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"whoami", "--json", "--api-key", "test-token", "--base-url", server.URL})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("whoami should not error: %v", err)
	}

	var user map[string]any
	if err := json.Unmarshal(stdout.Bytes(), &user); err != nil {
		t.Fatalf("output not valid JSON: %v\n%s", err, stdout.String())
	}
	if user["loginId"] != "user@example.com" {
		t.Errorf("loginId = %v", user["loginId"])
	}
}

func TestCLI_DocsGet_MissingToken(t *testing.T) {
	resetFlags()

	t.Setenv("CODA_API_KEY", "")

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"docs", "get", "AbCDeFGH", "--api-key", ""})

	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected error without an API token")
	}
}
