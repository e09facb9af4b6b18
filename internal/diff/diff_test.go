package diff

import "testing"

func TestLinesIdentical(t *testing.T) {
	lines := Lines("a\nb\nc", "a\nb\nc")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for _, l := range lines {
		if l.Type != Same {
			t.Errorf("expected all lines Same, got %+v", l)
		}
	}
	if Changed(lines) {
		t.Error("identical bodies must not report changes")
	}
}

func TestLinesAddedAndRemoved(t *testing.T) {
	lines := Lines("a\nb\nc", "a\nx\nc")

	var added, removed int
	for _, l := range lines {
		switch l.Type {
		case Added:
			added++
			if l.Content != "x" || l.OldLine != -1 {
				t.Errorf("bad added line: %+v", l)
			}
		case Removed:
			removed++
			if l.Content != "b" || l.NewLine != -1 {
				t.Errorf("bad removed line: %+v", l)
			}
		}
	}
	if added != 1 || removed != 1 {
		t.Errorf("expected 1 added and 1 removed, got %d/%d", added, removed)
	}
	if !Changed(lines) {
		t.Error("expected change to be reported")
	}
}

func TestLinesEmptySides(t *testing.T) {
	if lines := Lines("", ""); len(lines) != 0 {
		t.Errorf("expected empty diff, got %d lines", len(lines))
	}

	lines := Lines("", "a\nb")
	if len(lines) != 2 || lines[0].Type != Added || lines[1].Type != Added {
		t.Errorf("expected all lines added, got %+v", lines)
	}

	lines = Lines("a\nb", "")
	if len(lines) != 2 || lines[0].Type != Removed {
		t.Errorf("expected all lines removed, got %+v", lines)
	}
}

func TestRender(t *testing.T) {
	out := Render(Lines("a\nb", "a\nc"))
	want := "  a\n- b\n+ c\n"
	if out != want {
		t.Errorf("Render = %q, want %q", out, want)
	}
}

func TestLineNumbers(t *testing.T) {
	lines := Lines("a\nb", "a\nb\nc")
	last := lines[len(lines)-1]
	if last.Type != Added || last.NewLine != 3 {
		t.Errorf("expected appended line numbered 3 in new body, got %+v", last)
	}
}
