package audio

import "strings"

// valueSeparator separates multiple values inside one ID3v2.4 text frame.
const valueSeparator = "\x00"

// commentLanguage is written on the COMM frame.
const commentLanguage = "eng"

const (
	commentFrame  = "COMM"
	userTextFrame = "TXXX"
)

// textFrames maps snapshot tags to plain ID3 text frames.
var textFrames = []struct {
	key   string
	frame string
}{
	{"title", "TIT2"},
	{"artist", "TPE1"},
	{"albumartist", "TPE2"},
	{"album", "TALB"},
}

// creditFrames maps credit tags to ID3 text frames.
var creditFrames = []struct {
	key   string
	frame string
}{
	{"composer", "TCOM"},
	{"lyricist", "TEXT"},
	{"conductor", "TPE3"},
	{"remixer", "TPE4"},
}

// involvedRoles maps snapshot tags to TIPL role names.
var involvedRoles = []struct {
	key  string
	role string
}{
	{"arranger", "arranger"},
	{"engineer", "engineer"},
	{"producer", "producer"},
	{"djmixer", "DJ-mix"},
	{"mixer", "mix"},
}

// userTextNames maps TXXX descriptions written by MusicBrainz Picard to
// snapshot tags. Descriptions not listed are used verbatim.
var userTextNames = map[string]string{
	"ARTISTS":                           "artists",
	"Writer":                            "writer",
	"CATALOGNUMBER":                     "catalognumber",
	"BARCODE":                           "barcode",
	"ASIN":                              "asin",
	"MusicBrainz Album Type":            "releasetype",
	"MusicBrainz Album Status":          "releasestatus",
	"MusicBrainz Album Release Country": "releasecountry",
}

const performerPrefix = "performer:"

// splitValues splits a multi-valued frame text and drops empty values.
func splitValues(text string) []string {
	var values []string
	for _, v := range strings.Split(text, valueSeparator) {
		if v != "" {
			values = append(values, v)
		}
	}
	return values
}

// userTextKey returns the snapshot tag for a TXXX description.
func userTextKey(description string) string {
	if key, ok := userTextNames[description]; ok {
		return key
	}
	return description
}

// userTextDescription returns the TXXX description for a snapshot tag.
func userTextDescription(key string) string {
	for desc, k := range userTextNames {
		if k == key {
			return desc
		}
	}
	return key
}

// isFrameKey reports whether key is stored in a dedicated frame rather
// than a TXXX frame.
func isFrameKey(key string) bool {
	if key == commentKey || strings.HasPrefix(key, performerPrefix) {
		return true
	}
	for _, f := range textFrames {
		if f.key == key {
			return true
		}
	}
	for _, f := range creditFrames {
		if f.key == key {
			return true
		}
	}
	for _, r := range involvedRoles {
		if r.key == key {
			return true
		}
	}
	return false
}
