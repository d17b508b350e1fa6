package audio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2"
	"github.com/handiism/mbcomment/internal/model"
)

// commentKey is the snapshot tag stored in the COMM frame.
const commentKey = "comment"

// ErrUnsupportedFormat is returned for files the Tagger cannot write.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// TagEditAction defines how to handle a group of ID3 frames.
//
// Each group can be configured independently to determine whether
// it should be rewritten from the snapshot, cleared, or left unchanged.
type TagEditAction int

const (
	// TagEmpty removes the frames of the group.
	TagEmpty TagEditAction = iota

	// TagModify rewrites the frames from the snapshot.
	TagModify

	// TagDoNotModify leaves the existing frames unchanged.
	TagDoNotModify
)

// TagConfig holds tagging configuration for each group of ID3 frames.
//
// Example:
//
//	cfg := &TagConfig{
//	    ModifyTags: true,
//	    Comments:   TagModify,      // write the derived comment
//	    Artist:     TagModify,      // MusicBee artist rewrite
//	    Credits:    TagDoNotModify, // keep TCOM/TEXT/TIPL/TMCL as they are
//	    Custom:     TagModify,      // TXXX frames such as DISPLAY ARTIST
//	}
type TagConfig struct {
	// ModifyTags is a master switch. If false, SaveSnapshot writes nothing.
	ModifyTags bool

	// Comments controls the COMM frame with an empty description.
	Comments TagEditAction

	// Artist controls TIT2, TPE1, TPE2 and TALB.
	Artist TagEditAction

	// Credits controls TCOM, TEXT, TPE3, TPE4, TIPL and TMCL.
	Credits TagEditAction

	// Custom controls TXXX frames.
	Custom TagEditAction
}

// DefaultTagConfig returns the default tag configuration.
//
// By default, every group is rewritten from the snapshot.
func DefaultTagConfig() *TagConfig {
	return &TagConfig{
		ModifyTags: true,
		Comments:   TagModify,
		Artist:     TagModify,
		Credits:    TagModify,
		Custom:     TagModify,
	}
}

// Snapshot is the tag state of one audio file.
type Snapshot struct {
	Path        string
	Metadata    *model.Metadata
	RecordingID string
}

// Tagger reads and writes the tags of MP3 files.
//
// Example:
//
//	tagger := NewTagger(DefaultTagConfig())
//
//	snap, err := tagger.ReadSnapshot(path)
//	// ... run processors over snap.Metadata ...
//	err = tagger.SaveSnapshot(snap)
type Tagger struct {
	config *TagConfig
}

// NewTagger creates a new Tagger with the given configuration.
//
// If config is nil, DefaultTagConfig() is used.
func NewTagger(config *TagConfig) *Tagger {
	if config == nil {
		config = DefaultTagConfig()
	}
	return &Tagger{config: config}
}

// IsWritable reports whether the Tagger can write tags to path.
func IsWritable(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".mp3")
}

// ReadSnapshot reads the ID3 tags of an MP3 file into a Snapshot.
//
// The MusicBrainz recording ID is taken from the MusicBrainz UFID frame
// (see Reader.RecordingID).
func (t *Tagger) ReadSnapshot(path string) (*Snapshot, error) {
	if !IsWritable(path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer tag.Close()

	m := model.NewMetadata()

	for _, f := range textFrames {
		addText(m, tag, f.key, f.frame)
	}
	for _, f := range creditFrames {
		addText(m, tag, f.key, f.frame)
	}
	readInvolved(m, tag)
	readMusicians(m, tag)

	for _, f := range tag.GetFrames(commentFrame) {
		if cf, ok := f.(id3v2.CommentFrame); ok && cf.Description == "" && cf.Text != "" {
			m.Set(commentKey, cf.Text)
			break
		}
	}

	for _, f := range tag.GetFrames(userTextFrame) {
		if udtf, ok := f.(id3v2.UserDefinedTextFrame); ok {
			if values := splitValues(udtf.Value); len(values) > 0 {
				m.Add(userTextKey(udtf.Description), values...)
			}
		}
	}

	recordingID, err := NewReader().RecordingID(path)
	if err != nil {
		return nil, err
	}

	return &Snapshot{Path: path, Metadata: m, RecordingID: recordingID}, nil
}

// SaveSnapshot writes the snapshot's tags back to its MP3 file.
//
// This method:
//  1. Opens the existing MP3 file
//  2. Rewrites each frame group according to TagConfig
//  3. Saves the tag as ID3v2.4, which allows multi-valued text frames
//
// Frames outside the configured groups (pictures, UFID, lyrics, comments
// with a description) are kept.
func (t *Tagger) SaveSnapshot(snap *Snapshot) error {
	if !t.config.ModifyTags {
		return nil
	}
	if !IsWritable(snap.Path) {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, snap.Path)
	}

	tag, err := id3v2.Open(snap.Path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", snap.Path, err)
	}
	defer tag.Close()

	m := snap.Metadata

	switch t.config.Artist {
	case TagEmpty:
		for _, f := range textFrames {
			tag.DeleteFrames(f.frame)
		}
	case TagModify:
		for _, f := range textFrames {
			setText(tag, f.frame, m.GetAll(f.key))
		}
	}

	switch t.config.Credits {
	case TagEmpty:
		for _, f := range creditFrames {
			tag.DeleteFrames(f.frame)
		}
		tag.DeleteFrames("TIPL")
		tag.DeleteFrames("TMCL")
	case TagModify:
		for _, f := range creditFrames {
			setText(tag, f.frame, m.GetAll(f.key))
		}
		writeInvolved(tag, m)
		writeMusicians(tag, m)
	}

	switch t.config.Comments {
	case TagEmpty:
		replaceComment(tag, "")
	case TagModify:
		replaceComment(tag, m.Get(commentKey))
	}

	switch t.config.Custom {
	case TagEmpty:
		tag.DeleteFrames(userTextFrame)
	case TagModify:
		writeUserText(tag, m)
	}

	tag.SetVersion(4)
	return tag.Save()
}

func addText(m *model.Metadata, tag *id3v2.Tag, key, frame string) {
	if values := splitValues(tag.GetTextFrame(frame).Text); len(values) > 0 {
		m.Set(key, values...)
	}
}

func setText(tag *id3v2.Tag, frame string, values []string) {
	tag.DeleteFrames(frame)
	if len(values) > 0 {
		tag.AddTextFrame(frame, id3v2.EncodingUTF8, strings.Join(values, valueSeparator))
	}
}

// readInvolved reads the TIPL role/name pairs.
func readInvolved(m *model.Metadata, tag *id3v2.Tag) {
	pairs := splitValues(tag.GetTextFrame("TIPL").Text)
	for i := 0; i+1 < len(pairs); i += 2 {
		for _, r := range involvedRoles {
			if strings.EqualFold(r.role, pairs[i]) {
				m.Add(r.key, pairs[i+1])
			}
		}
	}
}

func writeInvolved(tag *id3v2.Tag, m *model.Metadata) {
	var pairs []string
	for _, r := range involvedRoles {
		for _, name := range m.GetAll(r.key) {
			pairs = append(pairs, r.role, name)
		}
	}
	setText(tag, "TIPL", pairs)
}

// readMusicians reads the TMCL instrument/name pairs as performer:<role> tags.
func readMusicians(m *model.Metadata, tag *id3v2.Tag) {
	pairs := splitValues(tag.GetTextFrame("TMCL").Text)
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Add(performerPrefix+pairs[i], pairs[i+1])
	}
}

func writeMusicians(tag *id3v2.Tag, m *model.Metadata) {
	var pairs []string
	for _, key := range m.KeysWithPrefix(performerPrefix) {
		role := strings.TrimPrefix(key, performerPrefix)
		for _, name := range m.GetAll(key) {
			pairs = append(pairs, role, name)
		}
	}
	setText(tag, "TMCL", pairs)
}

// replaceComment replaces the COMM frame without description, keeping
// comments that carry one.
func replaceComment(tag *id3v2.Tag, text string) {
	var keep []id3v2.CommentFrame
	for _, f := range tag.GetFrames(commentFrame) {
		if cf, ok := f.(id3v2.CommentFrame); ok && cf.Description != "" {
			keep = append(keep, cf)
		}
	}

	tag.DeleteFrames(commentFrame)
	for _, cf := range keep {
		tag.AddCommentFrame(cf)
	}
	if text != "" {
		tag.AddCommentFrame(id3v2.CommentFrame{
			Encoding:    id3v2.EncodingUTF8,
			Language:    commentLanguage,
			Description: "",
			Text:        text,
		})
	}
}

// writeUserText rewrites every TXXX frame from the tags that have no
// dedicated frame.
func writeUserText(tag *id3v2.Tag, m *model.Metadata) {
	tag.DeleteFrames(userTextFrame)
	for _, key := range m.Keys() {
		if isFrameKey(key) {
			continue
		}
		values := m.GetAll(key)
		if len(values) == 0 {
			continue
		}
		tag.AddUserDefinedTextFrame(id3v2.UserDefinedTextFrame{
			Encoding:    id3v2.EncodingUTF8,
			Description: userTextDescription(key),
			Value:       strings.Join(values, valueSeparator),
		})
	}
}
