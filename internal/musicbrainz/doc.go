// Package musicbrainz loads the relationship tree of a recording from the
// MusicBrainz web service (or from saved responses) and converts it to
// model types.
//
// # Sources
//
// Both Client (online) and Dir (offline) implement Source:
//
//	var src musicbrainz.Source = musicbrainz.NewClient(transport, musicbrainz.DefaultBaseURL)
//	rec, err := src.LookupRecording(ctx, mbid)
//	if errors.Is(err, musicbrainz.ErrNotFound) {
//	    // unknown recording
//	}
//
// A recording lookup returns the recording's artist credit and its
// relations to works. When a performance is flagged as a cover, the work
// is looked up as well so that the work's other performances are
// available for resolving the original performer.
//
// # Data format
//
// Responses follow the ws/2 JSON format. The dto subpackage holds the raw
// JSON shapes. Absent "relations" arrays are kept as nil so callers can
// tell "not loaded" from "none".
package musicbrainz
