package deck

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "lesson-01")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatal(err)
	}

	writeFile(t, filepath.Join(dir, "slide_001.png"), "png")
	writeFile(t, filepath.Join(dir, "slide_001.txt"), "概述\n第一点\n第二点\n")
	writeFile(t, filepath.Join(dir, "slide_002.png"), "png")
	writeFile(t, filepath.Join(dir, "slide_002.txt"), "总结\n")
	// Slide without a sidecar still counts as an image.
	writeFile(t, filepath.Join(dir, "slide_003.png"), "png")
	// Non-image files are ignored.
	writeFile(t, filepath.Join(dir, "notes.md"), "ignore me")

	d, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if d.Title != "lesson-01" {
		t.Errorf("Title = %q, want lesson-01", d.Title)
	}
	if len(d.Images) != 3 {
		t.Fatalf("len(Images) = %d, want 3", len(d.Images))
	}
	if len(d.Units) != 2 {
		t.Fatalf("len(Units) = %d, want 2", len(d.Units))
	}

	if d.Units[0].Page != 1 || d.Units[0].Title != "概述" {
		t.Errorf("unit 0 = %+v", d.Units[0])
	}
	if d.Units[0].Text != "第一点\n第二点" {
		t.Errorf("unit 0 text = %q", d.Units[0].Text)
	}
	if d.Units[1].Page != 2 || d.Units[1].Title != "总结" || d.Units[1].Text != "" {
		t.Errorf("unit 1 = %+v", d.Units[1])
	}
}

func TestLoadOrdering(t *testing.T) {
	dir := t.TempDir()
	// Written out of order; images must come back name-sorted.
	for _, name := range []string{"slide_010.png", "slide_002.png", "slide_001.png"} {
		writeFile(t, filepath.Join(dir, name), "png")
	}

	d, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []string{"slide_001.png", "slide_002.png", "slide_010.png"}
	for i, img := range d.Images {
		if filepath.Base(img) != want[i] {
			t.Errorf("Images[%d] = %s, want %s", i, filepath.Base(img), want[i])
		}
	}
}

func TestLoadEmptyDir(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("Load() should fail with no slide images")
	}
}

func TestSplitSidecar(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantTitle string
		wantText  string
	}{
		{"title and body", "标题\n内容一\n内容二", "标题", "内容一\n内容二"},
		{"title only", "标题\n", "标题", ""},
		{"blank lines skipped", "\n\n标题\n\n内容\n", "标题", "内容"},
		{"empty", "", "", ""},
		{"crlf", "标题\r\n内容\r\n", "标题", "内容"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, text := splitSidecar(tt.in)
			if title != tt.wantTitle || text != tt.wantText {
				t.Errorf("splitSidecar() = (%q, %q), want (%q, %q)", title, text, tt.wantTitle, tt.wantText)
			}
		})
	}
}
