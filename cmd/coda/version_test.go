package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestVersion_Human_ShowsVersionInfo(t *testing.T) {
	resetFlags()

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"version"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("version command should not error: %v", err)
	}

	output := stdout.String()
	if !strings.Contains(output, "coda ") {
		t.Error("output should start with 'coda '")
	}
	for _, field := range []string{"commit:", "built:", "go:", "os:"} {
		if !strings.Contains(output, field) {
			t.Errorf("output should contain %q", field)
		}
	}
}

func TestVersion_JSON_ReturnsValidJSON(t *testing.T) {
	resetFlags()

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"version", "--json"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("version --json should not error: %v", err)
	}

	var info map[string]any
	if err := json.Unmarshal(stdout.Bytes(), &info); err != nil {
		t.Fatalf("output not valid JSON: %v", err)
	}
	for _, key := range []string{"version", "commit", "date", "go", "os", "arch"} {
		if _, ok := info[key]; !ok {
			t.Errorf("JSON missing key %q", key)
		}
	}
}
