package inbox

import (
	"context"
	"testing"

	"github.com/spf13/afero"
)

func TestFolderSource_ItemsEmptyFolder(t *testing.T) {
	fs := afero.NewMemMapFs()
	source := NewFolderSource(fs, "/inbox")

	items, err := source.Items(context.Background())
	if err != nil {
		t.Fatalf("Items() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Items() = %v, want empty", items)
	}

	// The folder is created on first scan, like the original drop folder
	exists, err := afero.DirExists(fs, "/inbox")
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Error("inbox folder was not created")
	}
}

func TestFolderSource_ItemsScansKnownExtensions(t *testing.T) {
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"/inbox/a.txt":     "TITLE: a\nURL: u\n\nbody a",
		"/inbox/b.srt":     "TITLE: b\nURL: u\n\nbody b",
		"/inbox/c.vtt":     "TITLE: c\nURL: u\n\nbody c",
		"/inbox/notes.md":  "ignored",
		"/inbox/README":    "ignored",
		"/elsewhere/d.txt": "ignored",
	}
	for path, content := range files {
		if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	source := NewFolderSource(fs, "/inbox")
	items, err := source.Items(context.Background())
	if err != nil {
		t.Fatalf("Items() error = %v", err)
	}

	if len(items) != 3 {
		t.Fatalf("Items() returned %d items, want 3", len(items))
	}

	// Sorted by path: a.txt, b.srt, c.vtt
	wantNames := []string{"a.txt", "b.srt", "c.vtt"}
	for i, want := range wantNames {
		if items[i].Name != want {
			t.Errorf("items[%d].Name = %q, want %q", i, items[i].Name, want)
		}
		if items[i].Err != nil {
			t.Errorf("items[%d].Err = %v, want nil", i, items[i].Err)
		}
		if len(items[i].Payload) == 0 {
			t.Errorf("items[%d].Payload is empty", i)
		}
	}
}

func TestFolderSource_RemoveDeletesFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/inbox/a.txt", []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	source := NewFolderSource(fs, "/inbox")
	items, err := source.Items(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}

	if err := source.Remove(context.Background(), items[0]); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	exists, err := afero.Exists(fs, "/inbox/a.txt")
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Error("file still present after Remove()")
	}
}

func TestFolderSource_RemoveOnlyTouchesItsItem(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, path := range []string{"/inbox/a.txt", "/inbox/b.txt"} {
		if err := afero.WriteFile(fs, path, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	source := NewFolderSource(fs, "/inbox")
	items, err := source.Items(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if err := source.Remove(context.Background(), items[0]); err != nil {
		t.Fatal(err)
	}

	exists, err := afero.Exists(fs, "/inbox/b.txt")
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Error("unrelated file was removed")
	}
}
