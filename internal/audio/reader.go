package audio

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/dhowden/tag"
	"github.com/dhowden/tag/mbz"
	"github.com/handiism/mbcomment/internal/model"
)

// rawCredits are the Vorbis comment and MP4 atom names copied verbatim
// into a snapshot.
var rawCredits = []string{
	"lyricist", "conductor", "remixer", "arranger", "engineer",
	"producer", "djmixer", "mixer", "writer", "artists",
}

// rawTrackIDs are recording ID names that mbz.Extract does not cover,
// such as the Vorbis comment Picard writes.
var rawTrackIDs = []string{"musicbrainz_trackid", "MusicBrainz Track Id"}

// performerCredit matches the Vorbis "Name (role)" performer form.
var performerCredit = regexp.MustCompile(`^(.*\S)\s*\(([^()]+)\)$`)

// Reader reads tags from any format supported by github.com/dhowden/tag.
//
// Snapshots read by a Reader are read-only: the library cannot write
// tags, so only MP3 snapshots read by a Tagger can be saved.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// RecordingID returns the MusicBrainz recording ID stored in the file,
// or an empty string if the file has none.
func (r *Reader) RecordingID(path string) (string, error) {
	m, err := readTags(path)
	if err != nil || m == nil {
		return "", err
	}
	return recordingID(m), nil
}

// ReadSnapshot reads the tags of path into a Snapshot.
func (r *Reader) ReadSnapshot(path string) (*Snapshot, error) {
	m, err := readTags(path)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{Path: path, Metadata: model.NewMetadata()}
	if m == nil {
		return snap, nil
	}

	md := snap.Metadata
	setNonEmpty(md, "title", m.Title())
	setNonEmpty(md, "artist", m.Artist())
	setNonEmpty(md, "albumartist", m.AlbumArtist())
	setNonEmpty(md, "album", m.Album())
	setNonEmpty(md, "composer", m.Composer())
	setNonEmpty(md, commentKey, m.Comment())

	raw := m.Raw()
	for _, key := range rawCredits {
		if s, ok := raw[key].(string); ok {
			setNonEmpty(md, key, s)
		}
	}
	if s, ok := raw["performer"].(string); ok {
		for _, credit := range strings.Split(s, valueSeparator) {
			if match := performerCredit.FindStringSubmatch(credit); match != nil {
				md.Add(performerPrefix+match[2], match[1])
			}
		}
	}

	snap.RecordingID = recordingID(m)
	return snap, nil
}

// readTags returns nil metadata for files without tags.
func readTags(path string) (tag.Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		if errors.Is(err, tag.ErrNoTagsFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read tags from %s: %w", path, err)
	}
	return m, nil
}

func recordingID(m tag.Metadata) string {
	// mbz.Track is the release track ID; the recording ID is mbz.Recording.
	if id := mbz.Extract(m)[mbz.Recording]; id != "" {
		return strings.TrimSpace(id)
	}
	raw := m.Raw()
	for _, key := range rawTrackIDs {
		if s, ok := raw[key].(string); ok && s != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func setNonEmpty(m *model.Metadata, key, value string) {
	if value = strings.TrimSpace(value); value != "" {
		m.Set(key, value)
	}
}
