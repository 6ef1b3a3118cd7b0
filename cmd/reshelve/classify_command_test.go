package main

import (
	"encoding/json"
	"testing"
)

func TestClassifyCommandTable(t *testing.T) {
	configPath := newTestConfigFile(t)

	out, _, err := runCLI(t, configPath, "classify", "Show.S01E01.1080p.WEB-DL.DDP5.1.H.264-NTb.mkv")
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	requireContains(t, out, "1080p")
	requireContains(t, out, "WEBDL")
	requireContains(t, out, "Quality string:")
}

func TestClassifyCommandJSON(t *testing.T) {
	configPath := newTestConfigFile(t)

	out, _, err := runCLI(t, configPath, "classify", "--json", "Show.S01E01.1080p.WEB-DL.DDP5.1.H.264-NTb.mkv")
	if err != nil {
		t.Fatalf("classify --json: %v", err)
	}

	var payload classifyOutput
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("parse JSON output: %v\n%s", err, out)
	}
	if payload.Resolution != "1080p" {
		t.Errorf("resolution = %q", payload.Resolution)
	}
	if payload.ReleaseGroup != "NTb" {
		t.Errorf("release group = %q", payload.ReleaseGroup)
	}
	if payload.QualityString == "" {
		t.Error("quality string empty")
	}
}
