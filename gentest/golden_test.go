package gentest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGoldenUpdateThenAssert(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "golden")

	(&Golden{Dir: dir, Update: true}).Assert(t, "index", "export {};\n")

	content, err := os.ReadFile(filepath.Join(dir, "index.golden"))
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "export {};\n" {
		t.Errorf("unexpected golden content %q", content)
	}

	(&Golden{Dir: dir}).Assert(t, "index", "export {};\n")
}

func TestDiff(t *testing.T) {
	got := Diff("a\nb\nc", "a\nx\nc\nd")

	if !strings.Contains(got, "line 2:\n  - b\n  + x\n") {
		t.Errorf("missing changed line in diff:\n%s", got)
	}
	if !strings.Contains(got, "line 4:\n  + d\n") {
		t.Errorf("missing added line in diff:\n%s", got)
	}
	if strings.Contains(got, "line 1") {
		t.Errorf("unchanged line reported:\n%s", got)
	}
}
