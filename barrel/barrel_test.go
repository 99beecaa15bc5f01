package barrel

import (
	"strings"
	"testing"

	"github.com/cpcf/iconforge/catalog"
	"github.com/cpcf/iconforge/format"
)

func testCatalog(t *testing.T, raw ...string) catalog.Catalog {
	t.Helper()
	records := make([]catalog.Record, len(raw))
	for i, name := range raw {
		records[i] = catalog.Record{RawName: name, Contents: "<path/>"}
	}
	cat, err := catalog.FromRecords(records)
	if err != nil {
		t.Fatalf("FromRecords failed: %v", err)
	}
	return cat
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestBuildESM(t *testing.T) {
	cat := testCatalog(t, "arrow-left", "x")

	got := Build(cat, format.ESM, true)
	want := "export { default as ArrowLeftIcon } from './ArrowLeftIcon.js';\n" +
		"export { default as XIcon } from './XIcon.js';\n"

	if got != want {
		t.Errorf("ESM barrel mismatch\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestBuildCJS(t *testing.T) {
	cat := testCatalog(t, "arrow-left", "x")

	got := Build(cat, format.CJS, true)
	want := "module.exports.ArrowLeftIcon = require('./ArrowLeftIcon.js');\n" +
		"module.exports.XIcon = require('./XIcon.js');\n"

	if got != want {
		t.Errorf("CJS barrel mismatch\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestBuildFollowsCatalogOrder(t *testing.T) {
	raw := []string{"zap", "activity", "x", "bar-chart-2", "airplay"}
	cat := testCatalog(t, raw...)

	for _, f := range format.All {
		got := lines(Build(cat, f, true))
		if len(got) != cat.Len() {
			t.Fatalf("%s: %d lines for %d icons", f, len(got), cat.Len())
		}
		for i, name := range cat.Names() {
			if !strings.Contains(got[i], " "+name+" ") && !strings.Contains(got[i], "."+name+" ") {
				t.Errorf("%s line %d = %q, want icon %s", f, i, got[i], name)
			}
		}
	}
}

func TestBuildWithoutExtension(t *testing.T) {
	cat := testCatalog(t, "arrow-left", "x", "zoom-in")

	for _, f := range format.All {
		out := Build(cat, f, false)
		if strings.Contains(out, format.SourceExt) {
			t.Errorf("%s barrel without extension contains %q:\n%s", f, format.SourceExt, out)
		}
		if n := len(lines(out)); n != 3 {
			t.Errorf("%s: expected 3 lines, got %d", f, n)
		}
	}
}

func TestDeclarations(t *testing.T) {
	cat := testCatalog(t, "x")

	if got := Declarations(cat); got != "export { default as XIcon } from './XIcon';\n" {
		t.Errorf("unexpected declaration barrel %q", got)
	}
}
