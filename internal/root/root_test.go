package root

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindProjectRootFrom(t *testing.T) {
	tests := []struct {
		name   string
		marker func(t *testing.T, dir string)
	}{
		{"myst.yml", func(t *testing.T, dir string) {
			if err := os.WriteFile(filepath.Join(dir, "myst.yml"), []byte("version: 1\n"), 0644); err != nil {
				t.Fatal(err)
			}
		}},
		{".git", func(t *testing.T, dir string) {
			if err := os.Mkdir(filepath.Join(dir, ".git"), 0755); err != nil {
				t.Fatal(err)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projectDir := t.TempDir()
			tt.marker(t, projectDir)
			nested := filepath.Join(projectDir, "meeting-notes", "2024")
			if err := os.MkdirAll(nested, 0755); err != nil {
				t.Fatal(err)
			}

			got, err := findProjectRootFrom(nested)
			if err != nil {
				t.Fatalf("findProjectRootFrom: %v", err)
			}
			if got != projectDir {
				t.Errorf("got %s, want %s", got, projectDir)
			}
		})
	}
}

func TestResolveOverride(t *testing.T) {
	dir := t.TempDir()
	got, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != dir {
		t.Errorf("got %s, want %s", got, dir)
	}

	if _, err := Resolve(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing override directory")
	}
}
