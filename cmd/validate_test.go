package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mfisher87/mystmd-plugin-listing/internal/listing"
)

func TestValidateDocuments(t *testing.T) {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Fatal(err)
	}
	docs := []*listing.Document{
		{Path: "ok", Title: "Fine", RawDate: "2024-01-01", Author: []listing.Person{{Name: "Jo"}}},
		{Path: "undated", Title: "No date", Author: []listing.Person{{Name: "Jo"}}},
		{Path: "untitled", RawDate: "2024-01-01", Author: []listing.Person{{Name: "Jo"}}},
		{Path: "anonymous", Title: "Nobody", RawDate: "2024-01-01"},
	}

	issues := validateDocuments(docs, loc)
	want := map[string]string{
		"undated":   "missing or unparseable date",
		"untitled":  "no title and no heading",
		"anonymous": "author is not a list of {name, email} entries",
	}
	if len(issues) != len(want) {
		t.Fatalf("got %d issues, want %d: %+v", len(issues), len(want), issues)
	}
	for _, issue := range issues {
		if want[issue.Key] != issue.Reason {
			t.Errorf("%s: reason %q, want %q", issue.Key, issue.Reason, want[issue.Key])
		}
	}
}

func TestPrintIssues(t *testing.T) {
	var buf bytes.Buffer
	printIssues(&buf, []validationIssue{{Key: "meeting-notes/a", Reason: "missing or unparseable date"}})
	if !strings.Contains(buf.String(), "- meeting-notes/a (missing or unparseable date)") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestValidateCommand(t *testing.T) {
	cfg := newProject(t, map[string]string{
		"good.md": "---\ntitle: Good\ndate: 2024-01-05\n---\nFine",
		"bad.md":  "---\ntitle: Bad\n---\nNo date",
	})

	out, _, err := executeRoot(t, "", "validate", "--root", cfg.Root)
	if err == nil {
		t.Fatal("expected validate to fail")
	}
	if !strings.Contains(out, "meeting-notes/bad") || strings.Contains(out, "meeting-notes/good") {
		t.Errorf("unexpected report:\n%s", out)
	}
}

func TestListCommand(t *testing.T) {
	cfg := newProject(t, map[string]string{
		"jan.md": "---\ntitle: January\ndate: 2024-01-05\nauthor:\n  - name: Jo\n---\nWinter notes",
		"feb.md": "---\ntitle: February\ndate: 2024-02-05\n---\nMore notes",
	})

	listNumber, listVerbose = 0, false
	out, _, err := executeRoot(t, "", "list", "--root", cfg.Root, "--verbose")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "2024-02-05  meeting-notes/feb  February") {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[3] != "    Winter notes" {
		t.Errorf("summary line = %q", lines[3])
	}
	if !strings.Contains(lines[2], "[Jo]") {
		t.Errorf("author missing from %q", lines[2])
	}
}
