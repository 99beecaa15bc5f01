// Package gentest holds test helpers for generated output.
package gentest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Golden compares generated text against files under Dir. With Update set,
// mismatching or missing files are rewritten instead of failing the test.
type Golden struct {
	Dir    string
	Update bool
}

// NewGolden returns a Golden rooted at testdata.
func NewGolden(update bool) *Golden {
	return &Golden{Dir: "testdata", Update: update}
}

// Assert fails t when actual differs from the golden file name.
func (g *Golden) Assert(t testing.TB, name, actual string) {
	t.Helper()

	path := filepath.Join(g.Dir, name+".golden")

	if g.Update {
		if err := os.MkdirAll(g.Dir, 0o755); err != nil {
			t.Fatalf("failed to create golden directory: %v", err)
		}
		if err := os.WriteFile(path, []byte(actual), 0o644); err != nil {
			t.Fatalf("failed to update golden file: %v", err)
		}
		return
	}

	expected, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("golden file does not exist: %s (run with -update to create)", path)
		}
		t.Fatalf("failed to read golden file: %v", err)
	}

	if string(expected) != actual {
		t.Errorf("output does not match %s:\n%s", path, Diff(string(expected), actual))
	}
}

// Diff renders a line-by-line difference between expected and actual.
func Diff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var diff strings.Builder
	for i := range max(len(expectedLines), len(actualLines)) {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e == a {
			continue
		}

		fmt.Fprintf(&diff, "line %d:\n", i+1)
		if i < len(expectedLines) {
			fmt.Fprintf(&diff, "  - %s\n", e)
		}
		if i < len(actualLines) {
			fmt.Fprintf(&diff, "  + %s\n", a)
		}
	}
	return diff.String()
}
