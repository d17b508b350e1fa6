// Package musicbee implements the "MusicBee Compatibility" processor.
//
// MusicBee reads several credits from custom tags rather than from the
// tags MusicBrainz Picard writes. The processor fills them in:
//
//	MusicBee              Tag             Source
//	Display Artist        DISPLAY ARTIST  artist
//	Artists:Artist        artist          artists (or split of artist)
//	Artists:Guest         GUEST ARTIST    feat./featuring in artist or title
//	Artists:Performer     PERFORMER       performer:*
//	Musician Credits      TMCL            performer:*
//	Involved People       IPLS            arranger, engineer, producer, ...
//	Comment               comment         all of the above
//	Misc                  MISC            catalognumber, barcode, asin, ...
package musicbee

import (
	"regexp"
	"strings"

	"github.com/handiism/mbcomment/internal/label"
	"github.com/handiism/mbcomment/internal/model"
)

// Tags written by the processor.
const (
	TagDisplayArtist = "DISPLAY ARTIST"
	TagGuestArtist   = "GUEST ARTIST"
	TagPerformer     = "PERFORMER"
	TagMusicians     = "TMCL"
	TagInvolved      = "IPLS"
	TagMisc          = "MISC"
	TagComment       = "comment"
)

const (
	performerPrefix = "performer:"
	listJoiner      = "; "
	commentJoiner   = "\n"
	valueJoiner     = ", "
)

var (
	artistSplit   = regexp.MustCompile(`,\s*|\s+&\s+|\s+and\s+|\s+feat[.:]\s+|\s+featuring\s+`)
	featuredSplit = regexp.MustCompile(`\s+\(?feat[.:]\s+|\s+featuring\s+`)
)

var (
	tiplNames    = []string{"Arranger", "Engineer", "Producer", "Mixer", "DJMixer"}
	ipslNames    = []string{"Arranger", "Engineer", "Producer", "Mixer", "DJMixer", "Remixer", "Conductor"}
	miscNames    = []string{"CatalogNumber", "Barcode", "ASIN", "ReleaseType", "ReleaseStatus", "ReleaseCountry"}
	commentNames = []string{"Composer", "Lyricist", "Conductor", "Arranger", "Engineer", "Producer", "Mixer", "Remixer", "DJMixer"}
)

// Processor rewrites Picard tags into MusicBee-compatible ones.
type Processor struct{}

// NewProcessor creates a Processor.
func NewProcessor() *Processor {
	return &Processor{}
}

// Name implements processor.Processor.
func (p *Processor) Name() string {
	return "musicbee_compatibility"
}

// Process implements processor.Processor. The recording is not used.
func (p *Processor) Process(m *model.Metadata, _ *model.Recording) {
	populatePerformers(m)
	populateArtist(m)
	populateWriter(m)
	populateTIPL(m)
	populateMisc(m)
	populateComment(m)
}

func populatePerformers(m *model.Metadata) {
	var performers []string
	for _, key := range m.KeysWithPrefix(performerPrefix) {
		appendCredit(m, TagMusicians, label.Title(strings.TrimPrefix(key, performerPrefix)), key, listJoiner)
		performers = append(performers, m.GetAll(key)...)
	}
	m.Set(TagPerformer, unique(performers)...)
}

func populateArtist(m *model.Metadata) {
	// A processed file keeps the full credit in DISPLAY ARTIST.
	display := m.Get("artist")
	if m.Has(TagDisplayArtist) {
		display = m.Get(TagDisplayArtist)
	}

	var artists []string
	switch {
	case m.Has("artists"):
		artists = m.GetAll("artists")
	case display != "":
		artists = artistSplit.Split(display, -1)
	default:
		return
	}

	var guests []string
	for _, credit := range []string{display, m.Get("title")} {
		if credit == "" {
			continue
		}
		parts := featuredSplit.Split(credit, 2)
		if len(parts) > 1 {
			guests = append(guests, artistSplit.Split(strings.TrimRight(parts[1], ")"), -1)...)
		}
	}

	isGuest := make(map[string]bool, len(guests))
	for _, g := range guests {
		isGuest[g] = true
	}
	var main []string
	for _, a := range artists {
		if !isGuest[a] {
			main = append(main, a)
		}
	}

	m.Set(TagDisplayArtist, display)
	m.Set("artist", main...)
	m.Set(TagGuestArtist, guests...)
}

func populateWriter(m *model.Metadata) {
	if !m.Has("writer") {
		return
	}
	merge(m, "composer", "writer")
	merge(m, "lyricist", "writer")
	m.Delete("writer")
}

func populateTIPL(m *model.Metadata) {
	for _, name := range tiplNames {
		if values := m.GetAll(strings.ToLower(name)); values != nil {
			m.Set(name, values...)
		}
	}
	for _, name := range ipslNames {
		appendCredit(m, TagInvolved, name, name, listJoiner)
	}
}

func populateMisc(m *model.Metadata) {
	for _, name := range miscNames {
		appendCredit(m, TagMisc, name, name, listJoiner)
	}
}

func populateComment(m *model.Metadata) {
	for _, name := range commentNames {
		appendCredit(m, TagComment, name, name, commentJoiner)
	}
	for _, key := range m.KeysWithPrefix(performerPrefix) {
		appendCredit(m, TagComment, label.Title(strings.TrimPrefix(key, performerPrefix)), key, commentJoiner)
	}
}

// appendCredit appends "<lbl>: v1, v2" for the values of source (matched
// case-insensitively by lower-casing) to target, separated by joiner.
// An entry the target already holds is not appended again, so tags read
// back from a processed file stay unchanged.
func appendCredit(m *model.Metadata, target, lbl, source, joiner string) {
	source = strings.ToLower(source)
	if !m.Has(source) {
		return
	}
	value := strings.Join(m.GetAll(source), valueJoiner)
	if lbl != "" {
		value = lbl + ": " + value
	}
	if !m.Has(target) {
		m.Set(target, value)
		return
	}
	existing := m.Get(target)
	for _, entry := range strings.Split(existing, joiner) {
		if strings.TrimSpace(entry) == value {
			return
		}
	}
	m.Set(target, existing+joiner+value)
}

// merge sets dst to the union of dst and src, keeping first-seen order.
func merge(m *model.Metadata, dst, src string) {
	m.Set(dst, unique(append(m.GetAll(dst), m.GetAll(src)...))...)
}

func unique(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
