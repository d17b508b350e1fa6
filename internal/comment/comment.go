package comment

import (
	"strings"

	"github.com/handiism/mbcomment/internal/label"
	"github.com/handiism/mbcomment/internal/model"
)

// DefaultTag is the tag that receives the comment lines.
const DefaultTag = "comment"

// performerPrefix starts every performer role tag, e.g. "performer:guitar".
const performerPrefix = "performer:"

// lineSeparator separates lines inside the comment tag.
const lineSeparator = "\n"

// originalPerformerLabel prefixes the resolved original performer.
const originalPerformerLabel = "Originally performed by"

// roleLabels lists the credit tags copied to the comment, in output order.
var roleLabels = []struct {
	tag   string
	label string
}{
	{"composer", "Composed by"},
	{"arranger", "Arranged by"},
	{"conductor", "Conducted by"},
	{"lyricist", "Lyrics by"},
	{"producer", "Produced by"},
	{"mixer", "Mixed by"},
	{"remixer", "Remixed by"},
	{"djmixer", "DJ Mixed by"},
	{"engineer", "Engineered by"},
}

// Config controls what the Processor copies into the comment.
type Config struct {
	// Tag is the tag that receives the lines. Defaults to DefaultTag.
	Tag string

	// Roles copies composer, producer, performer:* and similar credits.
	Roles bool

	// Works describes the work relationships of the recording and, for
	// covers, the original performer.
	Works bool
}

// DefaultConfig enables everything.
func DefaultConfig() *Config {
	return &Config{
		Tag:   DefaultTag,
		Roles: true,
		Works: true,
	}
}

// Processor copies credits into the comment tag so that players which
// only display comments can still show them.
//
// Example output for a cover recording:
//
//	Composed by: John Lennon & Paul McCartney
//	Guitar performed by: Eric Clapton
//	Cover recording of: Yesterday
//	Originally performed by: The Beatles
type Processor struct {
	config *Config
}

// NewProcessor creates a Processor. If config is nil, DefaultConfig() is used.
func NewProcessor(config *Config) *Processor {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Tag == "" {
		config.Tag = DefaultTag
	}
	return &Processor{config: config}
}

// Name implements processor.Processor.
func (p *Processor) Name() string {
	return "copy_to_comment"
}

// Process implements processor.Processor.
func (p *Processor) Process(m *model.Metadata, rec *model.Recording) {
	var lines []string
	if p.config.Roles {
		lines = append(lines, RoleLines(m)...)
	}
	if p.config.Works {
		lines = append(lines, WorkLines(rec)...)
	}
	appendLines(m, p.config.Tag, lines)
}

// RoleLines returns one "<Label>: <names>" line per credit tag present in m.
func RoleLines(m *model.Metadata) []string {
	var lines []string
	for _, r := range roleLabels {
		if line, ok := creditLine(m, r.tag, r.label); ok {
			lines = append(lines, line)
		}
	}
	for _, key := range m.KeysWithPrefix(performerPrefix) {
		role := label.Title(strings.TrimPrefix(key, performerPrefix))
		if line, ok := creditLine(m, key, role+" performed by"); ok {
			lines = append(lines, line)
		}
	}
	return lines
}

// WorkLines describes each work the recording performs and, for covers,
// who originally performed it.
func WorkLines(rec *model.Recording) []string {
	if !rec.HasRelations() {
		return nil
	}

	var lines []string
	for _, rel := range rec.Relations {
		if !rel.IsPerformance() || !rel.HasWork() || rel.Work.Title == "" {
			continue
		}
		lines = append(lines, Phrase(rel.Attributes)+": "+rel.Work.Title)

		if !rel.Attributes.Cover || !rel.Work.HasRelations() {
			continue
		}
		if original := ResolveOriginalPerformer(rel.Work.Relations); original != "" {
			lines = append(lines, originalPerformerLabel+": "+original)
		}
	}
	return lines
}

func creditLine(m *model.Metadata, tag, lbl string) (string, bool) {
	values := m.GetAll(tag)
	if len(values) == 0 {
		return "", false
	}
	return lbl + ": " + label.JoinDefault(values), true
}

// appendLines adds lines to the tag, joining with any existing comment.
// Lines the existing comment already holds are skipped, so processing a
// file twice leaves its comment unchanged. Repeated lines of one run are
// all kept.
func appendLines(m *model.Metadata, tag string, lines []string) {
	existing := m.Get(tag)
	present := make(map[string]bool)
	for _, line := range strings.Split(existing, lineSeparator) {
		present[strings.TrimSpace(line)] = true
	}

	var added []string
	for _, line := range lines {
		if !present[line] {
			added = append(added, line)
		}
	}
	if len(added) == 0 {
		return
	}

	value := strings.Join(added, lineSeparator)
	if existing != "" {
		value = existing + lineSeparator + value
	}
	m.Set(tag, value)
}
