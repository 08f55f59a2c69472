package textstat

import "testing"

func TestStripFrontmatter(t *testing.T) {
	got := StripFrontmatter("---\nkey: v\n---\nBody.")
	if got != "Body." {
		t.Fatalf("expected %q, got %q", "Body.", got)
	}
}

func TestStripFrontmatterBlankLineAfterClose(t *testing.T) {
	got := StripFrontmatter("---\ntitle: x\n---\n\nBody.")
	if got != "\nBody." {
		t.Fatalf("expected blank line preserved, got %q", got)
	}
}

func TestStripFrontmatterAbsent(t *testing.T) {
	content := "Just some text.\n---\nNot frontmatter."
	if got := StripFrontmatter(content); got != content {
		t.Fatalf("expected unchanged text, got %q", got)
	}
}

func TestStripFrontmatterUnterminated(t *testing.T) {
	content := "---\ntitle: open forever\nno closing line"
	if got := StripFrontmatter(content); got != content {
		t.Fatalf("expected unchanged text, got %q", got)
	}
}

func TestStripFrontmatterOpeningDelimiterOnly(t *testing.T) {
	if got := StripFrontmatter("---"); got != "---" {
		t.Fatalf("expected unchanged text, got %q", got)
	}
}

func TestStripFrontmatterEmptyBody(t *testing.T) {
	if got := StripFrontmatter("---\n---"); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
}
