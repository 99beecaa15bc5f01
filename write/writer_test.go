package write

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestDiskWriterCreatesDirs(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "dist", "esm", "XIcon.js")

	w := NewDiskWriter()
	if err := w.Write(path, []byte("export default {};\n"), DefaultOptions); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "export default {};\n" {
		t.Errorf("unexpected content %q", content)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %v", entries)
	}
}

func TestDiskWriterOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.js")
	w := NewDiskWriter()

	if err := w.Write(path, []byte("one"), DefaultOptions); err != nil {
		t.Fatal(err)
	}
	if err := w.Write(path, []byte("two"), DefaultOptions); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}

	noOverwrite := Options{CreateDirs: true}
	if err := w.Write(path, []byte("three"), noOverwrite); err == nil {
		t.Error("expected error when overwrite is false")
	}

	content, _ := os.ReadFile(path)
	if string(content) != "two" {
		t.Errorf("content = %q, want %q", content, "two")
	}
}

func TestDiskWriterDirectWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b.d.ts")
	w := NewDiskWriter()

	if err := w.Write(path, []byte("x"), Options{CreateDirs: true, Overwrite: true}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not written: %v", err)
	}
}

func TestDiskWriterMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "XIcon.js")
	w := NewDiskWriter()

	if err := w.Write(path, []byte("x"), Options{Overwrite: true}); err == nil {
		t.Error("expected error writing into a missing directory without CreateDirs")
	}
}

func TestMemoryWriter(t *testing.T) {
	w := NewMemoryWriter()

	var wg sync.WaitGroup
	for _, p := range []string{"dist/b.js", "dist/a.js", "dist/esm/a.js"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := w.Write(p, []byte(p), DefaultOptions); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	paths := w.Paths()
	want := []string{"dist/a.js", "dist/b.js", "dist/esm/a.js"}
	if len(paths) != len(want) {
		t.Fatalf("Paths() = %v", paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("Paths()[%d] = %q, want %q", i, paths[i], want[i])
		}
	}

	if content, ok := w.File("dist/a.js"); !ok || content != "dist/a.js" {
		t.Errorf("File() = %q, %v", content, ok)
	}
	if changes := w.Changes(); len(changes) != 3 || changes[0].Size != len("dist/a.js") {
		t.Errorf("Changes() = %+v", changes)
	}

	w.Reset()
	if len(w.Paths()) != 0 {
		t.Error("Reset() did not clear files")
	}
}

func TestOnceWriter(t *testing.T) {
	mem := NewMemoryWriter()
	w := NewOnceWriter(mem)

	if err := w.Write("dist/XIcon.js", []byte("first"), DefaultOptions); err != nil {
		t.Fatal(err)
	}

	err := w.Write("dist/./XIcon.js", []byte("second"), DefaultOptions)
	if !errors.Is(err, ErrAlreadyWritten) {
		t.Fatalf("expected ErrAlreadyWritten, got %v", err)
	}

	if content, _ := mem.File("dist/XIcon.js"); content != "first" {
		t.Errorf("second write reached the underlying writer: %q", content)
	}

	if err := w.Write("dist/esm/XIcon.js", []byte("other"), DefaultOptions); err != nil {
		t.Errorf("distinct path rejected: %v", err)
	}
}
