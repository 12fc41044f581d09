package corpus

import (
	"archive/tar"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDirLabelsByMarker(t *testing.T) {
	root := t.TempDir()
	autos := filepath.Join(root, "rec.autos")
	electronics := filepath.Join(root, "sci.electronics")
	for _, dir := range []string{autos, electronics} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}

	// 0xE9 is e-acute in Latin-1
	if err := os.WriteFile(filepath.Join(autos, "001.txt"), []byte{'c', 'a', 'f', 0xE9}, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(electronics, "002.txt"), []byte("resistor"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadDir(root, "rec.autos")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("loaded %d documents, want 2", c.Len())
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("corpus failed validation: %v", err)
	}
	if c.Positives() != 1 {
		t.Errorf("got %d positive labels, want 1", c.Positives())
	}

	found := false
	for i, doc := range c.Documents {
		if strings.Contains(doc, "café") {
			found = true
			if c.Labels[i] != 1 {
				t.Errorf("Latin-1 document labeled %d, want 1", c.Labels[i])
			}
		}
	}
	if !found {
		t.Error("Latin-1 content was not decoded")
	}
}

func TestLoadArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.tar.gz")
	file, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(file)
	tw := tar.NewWriter(gz)

	entries := []struct {
		name    string
		content string
	}{
		{"20news/rec.autos/100", "the engine stalled"},
		{"20news/sci.electronics/200", "the capacitor failed"},
	}
	for _, entry := range entries {
		if err := tw.WriteHeader(&tar.Header{
			Name: entry.name,
			Mode: 0o644,
			Size: int64(len(entry.content)),
		}); err != nil {
			t.Fatal(err)
		}
		if _, err := tw.Write([]byte(entry.content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := file.Close(); err != nil {
		t.Fatal(err)
	}

	c, err := LoadArchive(path, "rec.autos")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("loaded %d documents, want 2", c.Len())
	}
	if c.Labels[0] != 1 || c.Labels[1] != 0 {
		t.Errorf("labels = %v, want [1 0]", c.Labels)
	}
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.csv")
	content := "text,label\nthe engine stalled,1\nthe capacitor failed,0\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("loaded %d documents, want 2", c.Len())
	}
	if c.Documents[0] != "the engine stalled" || c.Labels[0] != 1 {
		t.Errorf("first record = (%q, %d), want (\"the engine stalled\", 1)", c.Documents[0], c.Labels[0])
	}
}

func TestLoadCSVRejectsBadLabel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.csv")
	if err := os.WriteFile(path, []byte("text,label\noops,spam\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCSV(path); err == nil {
		t.Error("expected an error for a non-numeric label")
	}
}

func TestCorpusValidate(t *testing.T) {
	c := &Corpus{Documents: []string{"a", "b"}, Labels: []int{0}}
	if err := c.Validate(); err == nil {
		t.Error("expected an error for a document/label length mismatch")
	}

	c = &Corpus{Documents: []string{"a"}, Labels: []int{3}}
	if err := c.Validate(); err == nil {
		t.Error("expected an error for a non-binary label")
	}
}
