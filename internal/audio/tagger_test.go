package audio

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/bogem/id3v2"
	"github.com/handiism/mbcomment/internal/model"
)

// newTestMP3 writes a file of silent frame bytes without any tag.
func newTestMP3(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "track.mp3")
	if err := os.WriteFile(path, make([]byte, 512), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func saveTestSnapshot(t *testing.T, tagger *Tagger, path string, m *model.Metadata) {
	t.Helper()
	if err := tagger.SaveSnapshot(&Snapshot{Path: path, Metadata: m}); err != nil {
		t.Fatalf("SaveSnapshot() error = %v", err)
	}
}

func TestIsWritable(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"song.mp3", true},
		{"SONG.MP3", true},
		{"song.flac", false},
		{"song.m4a", false},
		{"song", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsWritable(tt.path); got != tt.want {
				t.Errorf("IsWritable(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestTagger_RoundTrip(t *testing.T) {
	path := newTestMP3(t)
	tagger := NewTagger(nil)

	m := model.NewMetadata()
	m.Set("title", "Song")
	m.Set("artist", "Singer feat. Guest")
	m.Set("composer", "Jane Doe")
	m.Set("producer", "Producer One")
	m.Set("performer:vocals", "Singer")
	m.Set("comment", "Composer: Jane Doe")
	m.Set("DISPLAY ARTIST", "Singer")
	m.Set("MusicBrainz Track Id", "b1a9c0e9-d987-4042-ae91-78d6a3267d69")
	saveTestSnapshot(t, tagger, path, m)

	snap, err := tagger.ReadSnapshot(path)
	if err != nil {
		t.Fatalf("ReadSnapshot() error = %v", err)
	}

	checks := map[string]string{
		"title":            "Song",
		"artist":           "Singer feat. Guest",
		"composer":         "Jane Doe",
		"producer":         "Producer One",
		"performer:vocals": "Singer",
		"comment":          "Composer: Jane Doe",
		"DISPLAY ARTIST":   "Singer",
	}
	for key, want := range checks {
		if got := snap.Metadata.Get(key); got != want {
			t.Errorf("Get(%q) = %q, want %q", key, got, want)
		}
	}

	if snap.RecordingID != "b1a9c0e9-d987-4042-ae91-78d6a3267d69" {
		t.Errorf("RecordingID = %q", snap.RecordingID)
	}
}

func TestTagger_RecordingIDFromUFID(t *testing.T) {
	path := newTestMP3(t)
	const id = "f3b8c1a2-6a0e-4b7e-9d4c-2b5e8f1a7c3d"

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatal(err)
	}
	// UFID body: owner identifier, NUL, identifier.
	body := append([]byte("http://musicbrainz.org\x00"), id...)
	tag.AddFrame("UFID", id3v2.UnknownFrame{Body: body})
	tag.AddTextFrame("TIT2", id3v2.EncodingUTF8, "Song")
	tag.SetVersion(4)
	if err := tag.Save(); err != nil {
		t.Fatal(err)
	}
	tag.Close()

	snap, err := NewTagger(nil).ReadSnapshot(path)
	if err != nil {
		t.Fatalf("ReadSnapshot() error = %v", err)
	}
	if snap.RecordingID != id {
		t.Errorf("RecordingID = %q, want %q", snap.RecordingID, id)
	}

	// Saving must keep the UFID frame.
	if err := NewTagger(nil).SaveSnapshot(snap); err != nil {
		t.Fatal(err)
	}
	id2, err := NewReader().RecordingID(path)
	if err != nil {
		t.Fatal(err)
	}
	if id2 != id {
		t.Errorf("RecordingID after save = %q, want %q", id2, id)
	}
}

func TestTagger_PicardNames(t *testing.T) {
	path := newTestMP3(t)
	tagger := NewTagger(nil)

	m := model.NewMetadata()
	m.Set("writer", "Writer One")
	saveTestSnapshot(t, tagger, path, m)

	snap, err := tagger.ReadSnapshot(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := snap.Metadata.Get("writer"); got != "Writer One" {
		t.Errorf("writer = %q, want %q", got, "Writer One")
	}
	if snap.Metadata.Has("Writer") {
		t.Error("TXXX description should be mapped to the lowercase tag")
	}
}

func TestTagger_EditActions(t *testing.T) {
	tests := []struct {
		name   string
		action TagEditAction
		want   string
	}{
		{"modify", TagModify, "new"},
		{"do not modify", TagDoNotModify, "old"},
		{"empty", TagEmpty, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := newTestMP3(t)

			old := model.NewMetadata()
			old.Set("comment", "old")
			saveTestSnapshot(t, NewTagger(nil), path, old)

			cfg := DefaultTagConfig()
			cfg.Comments = tt.action
			updated := model.NewMetadata()
			updated.Set("comment", "new")
			saveTestSnapshot(t, NewTagger(cfg), path, updated)

			snap, err := NewTagger(nil).ReadSnapshot(path)
			if err != nil {
				t.Fatal(err)
			}
			if got := snap.Metadata.Get("comment"); got != tt.want {
				t.Errorf("comment = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTagger_ModifyTagsDisabled(t *testing.T) {
	path := newTestMP3(t)
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	cfg := DefaultTagConfig()
	cfg.ModifyTags = false
	m := model.NewMetadata()
	m.Set("comment", "ignored")
	saveTestSnapshot(t, NewTagger(cfg), path, m)

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(before, after) {
		t.Error("file should not change when ModifyTags is false")
	}
}

func TestTagger_UnsupportedFormat(t *testing.T) {
	tagger := NewTagger(nil)

	if _, err := tagger.ReadSnapshot("song.flac"); err == nil {
		t.Error("ReadSnapshot() should fail for FLAC files")
	}
	err := tagger.SaveSnapshot(&Snapshot{Path: "song.flac", Metadata: model.NewMetadata()})
	if err == nil {
		t.Error("SaveSnapshot() should fail for FLAC files")
	}
}

func TestReader_ReadSnapshot(t *testing.T) {
	path := newTestMP3(t)

	m := model.NewMetadata()
	m.Set("title", "Song")
	m.Set("artist", "Singer")
	m.Set("composer", "Jane Doe")
	m.Set("comment", "hello")
	saveTestSnapshot(t, NewTagger(nil), path, m)

	snap, err := NewReader().ReadSnapshot(path)
	if err != nil {
		t.Fatalf("ReadSnapshot() error = %v", err)
	}

	for key, want := range map[string]string{
		"title":    "Song",
		"artist":   "Singer",
		"composer": "Jane Doe",
		"comment":  "hello",
	} {
		if got := snap.Metadata.Get(key); got != want {
			t.Errorf("Get(%q) = %q, want %q", key, got, want)
		}
	}
	if snap.RecordingID != "" {
		t.Errorf("RecordingID = %q, want empty", snap.RecordingID)
	}
}

func TestReader_MissingFile(t *testing.T) {
	_, err := NewReader().ReadSnapshot(filepath.Join(t.TempDir(), "missing.flac"))
	if err == nil {
		t.Error("ReadSnapshot() should fail for a missing file")
	}
}

func TestPerformerCredit(t *testing.T) {
	match := performerCredit.FindStringSubmatch("Jane Doe (lead vocals)")
	if match == nil {
		t.Fatal("expected a match")
	}
	if match[1] != "Jane Doe" || match[2] != "lead vocals" {
		t.Errorf("match = %q", match[1:])
	}
}
