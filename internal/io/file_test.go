package ioutils

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestIsAudioFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"a.mp3", true},
		{"a.MP3", true},
		{"a.flac", true},
		{"a.ogg", true},
		{"a.m4a", true},
		{"cover.jpg", false},
		{"notes", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsAudioFile(tt.path); got != tt.want {
				t.Errorf("IsAudioFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestFindAudioFiles(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "b.mp3"), "")
	writeTestFile(t, filepath.Join(root, "cover.jpg"), "")
	writeTestFile(t, filepath.Join(root, "disc 2", "a.flac"), "")
	single := filepath.Join(t.TempDir(), "single.wav")
	writeTestFile(t, single, "")

	got, err := FindAudioFiles(context.Background(), []string{root, single, root})
	if err != nil {
		t.Fatalf("FindAudioFiles() error = %v", err)
	}

	want := []string{
		filepath.Join(root, "b.mp3"),
		filepath.Join(root, "disc 2", "a.flac"),
		single,
	}
	sort.Strings(want)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindAudioFiles() = %v, want %v", got, want)
	}
}

func TestFindAudioFiles_Missing(t *testing.T) {
	_, err := FindAudioFiles(context.Background(), []string{filepath.Join(t.TempDir(), "nope")})
	if err == nil {
		t.Error("FindAudioFiles() should fail for a missing path")
	}
}

func TestBackupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.mp3")
	writeTestFile(t, path, "original")

	backup, err := BackupFile(context.Background(), path, "")
	if err != nil {
		t.Fatalf("BackupFile() error = %v", err)
	}
	if backup != path+DefaultBackupSuffix {
		t.Errorf("backup = %q, want %q", backup, path+DefaultBackupSuffix)
	}

	writeTestFile(t, path, "changed")
	if _, err := BackupFile(context.Background(), path, ""); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(backup)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "original" {
		t.Errorf("backup content = %q, want %q", data, "original")
	}
}

func TestCopyFile_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	src := filepath.Join(dir, "a")
	writeTestFile(t, src, "x")

	if err := CopyFile(ctx, src, filepath.Join(dir, "b")); err == nil {
		t.Error("CopyFile() should fail with a canceled context")
	}
}

func TestWriteFile_CreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "settings.json")
	if err := WriteFile(context.Background(), path, []byte("{}")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not written: %v", err)
	}
}
