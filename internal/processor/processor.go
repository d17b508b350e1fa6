// Package processor registers metadata processors and runs them over a
// track's tag snapshot in priority order.
//
// A processor receives the mutable Metadata of one track together with the
// recording it was matched to, and rewrites tags in place:
//
//	p := processor.NewPipeline()
//	p.Register(comment.NewProcessor(), processor.PriorityNormal)
//	p.Register(musicbee.NewProcessor(), processor.PriorityLow)
//
//	p.Run(metadata, recording)
//
// Run is synchronous and is called once per track.
package processor

import (
	"sort"

	"github.com/handiism/mbcomment/internal/model"
)

// Processor rewrites the tags of a single track.
//
// rec may be nil when the track has no MusicBrainz recording or the lookup
// failed. Processors must treat missing data as nothing to contribute.
type Processor interface {
	Name() string
	Process(m *model.Metadata, rec *model.Recording)
}

// Priority orders processors. Higher priorities run first.
type Priority int

const (
	PriorityLow    Priority = -100
	PriorityNormal Priority = 0
	PriorityHigh   Priority = 100
)

// ParsePriority converts "high", "normal" or "low" to a Priority.
// Anything else is PriorityNormal.
func ParsePriority(s string) Priority {
	switch s {
	case "high":
		return PriorityHigh
	case "low":
		return PriorityLow
	default:
		return PriorityNormal
	}
}

type entry struct {
	processor Processor
	priority  Priority
	seq       int
}

// Pipeline holds registered processors.
type Pipeline struct {
	entries []entry
}

// NewPipeline creates an empty Pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Register adds p with the given priority. Processors with equal priority
// run in registration order.
func (p *Pipeline) Register(proc Processor, priority Priority) {
	p.entries = append(p.entries, entry{processor: proc, priority: priority, seq: len(p.entries)})
	sort.SliceStable(p.entries, func(i, j int) bool {
		if p.entries[i].priority != p.entries[j].priority {
			return p.entries[i].priority > p.entries[j].priority
		}
		return p.entries[i].seq < p.entries[j].seq
	})
}

// Run applies every processor to m in order.
func (p *Pipeline) Run(m *model.Metadata, rec *model.Recording) {
	for _, e := range p.entries {
		e.processor.Process(m, rec)
	}
}

// Names returns the processor names in run order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.entries))
	for i, e := range p.entries {
		names[i] = e.processor.Name()
	}
	return names
}

// Len returns the number of registered processors.
func (p *Pipeline) Len() int {
	return len(p.entries)
}
