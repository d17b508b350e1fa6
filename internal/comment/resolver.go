package comment

import (
	"github.com/handiism/mbcomment/internal/label"
	"github.com/handiism/mbcomment/internal/model"
)

// Separators for the list of equally likely original performers.
const (
	ambiguousFinal  = " and by "
	ambiguousJoiner = ", by "
)

// tally counts CandidateKeys and remembers the order and names they were
// first seen with.
type tally struct {
	counts map[model.CandidateKey]int
	order  []model.Candidate
}

func newTally() *tally {
	return &tally{counts: make(map[model.CandidateKey]int)}
}

func (t *tally) add(c model.Candidate) {
	if _, ok := t.counts[c.Key]; !ok {
		t.order = append(t.order, c)
	}
	t.counts[c.Key]++
}

func (t *tally) len() int {
	return len(t.order)
}

// ResolveOriginalPerformer guesses who originally performed a work, given
// the performance relations of that work.
//
// Only full, non-medley, non-cover performances are considered. Studio
// performances (not live) count as stronger evidence than live ones, and
// an artist set that recorded the work in the studio more than once beats
// one that did so once. When the evidence does not single out one artist
// set, every studio candidate is listed:
//
//	"The Beatles and by Paul McCartney"
//
// Returns "" when nothing can be said.
func ResolveOriginalPerformer(relations []model.Relation) string {
	all := newTally()
	studio := newTally()

	for _, rel := range relations {
		if !rel.IsPerformance() {
			continue
		}
		if rel.Attributes.Cover || rel.Attributes.Partial || rel.Attributes.Medley {
			continue
		}
		if !rel.HasRecording() || !rel.Recording.HasArtistCredit() {
			continue
		}

		candidate := model.NewCandidate(rel.Recording.ArtistCredit)
		all.add(candidate)
		if !rel.Attributes.Live {
			studio.add(candidate)
		}
	}

	switch studio.len() {
	case 0:
		if all.len() == 1 {
			return label.JoinDefault(all.order[0].Names)
		}
		return ""
	case 1:
		return label.JoinDefault(studio.order[0].Names)
	}

	var repeated []model.Candidate
	for _, c := range studio.order {
		if studio.counts[c.Key] > 1 {
			repeated = append(repeated, c)
		}
	}
	if len(repeated) == 1 {
		return label.JoinDefault(repeated[0].Names)
	}

	names := make([]string, len(studio.order))
	for i, c := range studio.order {
		names[i] = label.JoinDefault(c.Names)
	}
	return label.Join(names, ambiguousFinal, ambiguousJoiner)
}
