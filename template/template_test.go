package template

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/cpcf/iconforge/format"
)

const vueTemplate = `import { h } from 'vue';

export default {
  setup() {
    return () => h('svg', { ATTRS, innerHTML: CONTENT });
  }
};
`

func TestParseESMBodyIsVerbatim(t *testing.T) {
	tpl, err := Parse(vueTemplate)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if tpl.Body(format.ESM) != vueTemplate {
		t.Errorf("ESM body changed:\n%s", tpl.Body(format.ESM))
	}
	if tpl.Source() != vueTemplate {
		t.Error("Source() should return the original text")
	}
}

func TestParseCJSRewrite(t *testing.T) {
	tpl, err := Parse(vueTemplate)
	if err != nil {
		t.Fatal(err)
	}

	body := tpl.Body(format.CJS)
	if !strings.HasPrefix(body, "const { h } = require('vue');\n") {
		t.Errorf("import not rewritten:\n%s", body)
	}
	if !strings.Contains(body, "module.exports = {") {
		t.Errorf("default export not rewritten:\n%s", body)
	}
	if strings.Contains(body, "import") || strings.Contains(body, "export default") {
		t.Errorf("ESM syntax left in CJS body:\n%s", body)
	}
}

func TestParseCJSAliasedImport(t *testing.T) {
	text := "import { h as render, defineComponent } from \"vue\";\nexport default { ATTRS, CONTENT };\n"

	tpl, err := Parse(text)
	if err != nil {
		t.Fatal(err)
	}

	want := "const { h: render, defineComponent } = require('vue');\nmodule.exports = { ATTRS, CONTENT };\n"
	if got := tpl.Body(format.CJS); got != want {
		t.Errorf("CJS body mismatch\nwant: %q\n got: %q", want, got)
	}

	imp := tpl.Import()
	if imp.Module != "vue" || len(imp.Bindings) != 2 {
		t.Fatalf("unexpected import %+v", imp)
	}
	if imp.Bindings[0].Local() != "render" || imp.Bindings[1].Local() != "defineComponent" {
		t.Errorf("unexpected bindings %+v", imp.Bindings)
	}
}

func TestParseMultilineImport(t *testing.T) {
	text := "import {\n  h,\n  ref as r,\n} from 'vue'\nexport default { ATTRS, CONTENT }\n"

	tpl, err := Parse(text)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(tpl.Body(format.CJS), "const { h, ref: r } = require('vue')\n") {
		t.Errorf("unexpected CJS body:\n%s", tpl.Body(format.CJS))
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"missing attrs marker", "import { h } from 'vue';\nexport default { CONTENT };"},
		{"missing content marker", "import { h } from 'vue';\nexport default { ATTRS };"},
		{"repeated marker", "import { h } from 'vue';\nexport default { ATTRS, ATTRS, CONTENT };"},
		{"no import", "export default { ATTRS, CONTENT };"},
		{"two imports", "import { h } from 'vue';\nimport { ref } from 'vue';\nexport default { ATTRS, CONTENT };"},
		{"default import", "import Vue from 'vue';\nexport default { ATTRS, CONTENT };"},
		{"no export", "import { h } from 'vue';\nconst x = { ATTRS, CONTENT };"},
		{"two exports", "import { h } from 'vue';\nexport default { ATTRS };\nexport default { CONTENT };"},
		{"bad binding", "import { * as vue } from 'vue';\nexport default { ATTRS, CONTENT };"},
		{"empty clause", "import { } from 'vue';\nexport default { ATTRS, CONTENT };"},
		{"marker in import", "import { h, ATTRS } from 'vue';\nexport default { CONTENT };"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			if !errors.Is(err, ErrTemplateMalformed) {
				t.Errorf("expected ErrTemplateMalformed, got %v", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"template.js": {Data: []byte(vueTemplate)},
		"broken.js":   {Data: []byte("export default {}")},
	}

	if _, err := Load(fsys, "template.js"); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	_, err := Load(fsys, "broken.js")
	if !errors.Is(err, ErrTemplateMalformed) {
		t.Errorf("expected ErrTemplateMalformed, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "broken.js") {
		t.Errorf("error should name the file: %v", err)
	}

	if _, err := Load(fsys, "missing.js"); err == nil {
		t.Error("expected error for missing template")
	}
}
