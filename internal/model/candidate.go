package model

import "strings"

// keySeparator joins artist IDs inside a CandidateKey. MBIDs never contain it.
const keySeparator = "\x1f"

// CandidateKey identifies the set of artists credited on a recording by
// their ordered artist IDs.
//
// Display names are deliberately not part of the key: the same artists
// credited under different names group together. CandidateKey is
// comparable and is meant to be used as a map key.
type CandidateKey struct {
	ids   string
	count int
}

// ArtistIDs returns the ordered artist IDs.
func (k CandidateKey) ArtistIDs() []string {
	if k.count == 0 {
		return nil
	}
	return strings.SplitN(k.ids, keySeparator, k.count)
}

// Candidate pairs a CandidateKey with the display names of its artists.
type Candidate struct {
	Key   CandidateKey
	Names []string
}

// NewCandidate builds a Candidate from an artist credit, preserving order.
func NewCandidate(credit ArtistCredit) Candidate {
	ids := make([]string, len(credit))
	names := make([]string, len(credit))
	for i, c := range credit {
		ids[i] = c.Artist.ID
		names[i] = c.DisplayName()
	}
	return Candidate{
		Key:   CandidateKey{ids: strings.Join(ids, keySeparator), count: len(credit)},
		Names: names,
	}
}
