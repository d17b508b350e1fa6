package processor

import (
	"reflect"
	"testing"

	"github.com/handiism/mbcomment/internal/model"
)

type recordingProcessor struct {
	name string
}

func (r recordingProcessor) Name() string { return r.name }

func (r recordingProcessor) Process(m *model.Metadata, _ *model.Recording) {
	m.Add("order", r.name)
}

func TestPipeline_RunOrder(t *testing.T) {
	p := NewPipeline()
	p.Register(recordingProcessor{"normal-1"}, PriorityNormal)
	p.Register(recordingProcessor{"low"}, PriorityLow)
	p.Register(recordingProcessor{"high"}, PriorityHigh)
	p.Register(recordingProcessor{"normal-2"}, PriorityNormal)

	want := []string{"high", "normal-1", "normal-2", "low"}
	if got := p.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %q, want %q", got, want)
	}

	m := model.NewMetadata()
	p.Run(m, nil)
	if got := m.GetAll("order"); !reflect.DeepEqual(got, want) {
		t.Errorf("run order = %q, want %q", got, want)
	}
}

func TestPipeline_Empty(t *testing.T) {
	p := NewPipeline()
	m := model.NewMetadata()
	p.Run(m, nil)

	if m.Len() != 0 || p.Len() != 0 {
		t.Error("empty pipeline should not touch metadata")
	}
}

func TestParsePriority(t *testing.T) {
	tests := map[string]Priority{
		"high":   PriorityHigh,
		"normal": PriorityNormal,
		"low":    PriorityLow,
		"":       PriorityNormal,
		"urgent": PriorityNormal,
	}
	for in, want := range tests {
		if got := ParsePriority(in); got != want {
			t.Errorf("ParsePriority(%q) = %d, want %d", in, got, want)
		}
	}
}
