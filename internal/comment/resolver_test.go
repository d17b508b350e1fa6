package comment

import (
	"testing"

	"github.com/handiism/mbcomment/internal/model"
)

type artist struct {
	id, name string
}

func performance(attrs model.Attributes, artists ...artist) model.Relation {
	credit := make(model.ArtistCredit, len(artists))
	for i, a := range artists {
		credit[i] = model.ArtistCreditName{Artist: model.Artist{ID: a.id, Name: a.name}}
	}
	return model.Relation{
		Type:       model.RelationPerformance,
		TargetType: model.TargetRecording,
		Attributes: attrs,
		Recording:  &model.Recording{ArtistCredit: credit},
	}
}

var (
	studio = model.Attributes{}
	live   = model.Attributes{Live: true}

	alice = artist{"a1", "Alice"}
	bob   = artist{"b1", "Bob"}
	carl  = artist{"c1", "Carl"}
	dave  = artist{"d1", "Dave"}
)

func TestResolveOriginalPerformer(t *testing.T) {
	tests := []struct {
		name      string
		relations []model.Relation
		want      string
	}{
		{
			name: "no relations",
			want: "",
		},
		{
			name:      "single studio candidate",
			relations: []model.Relation{performance(studio, alice)},
			want:      "Alice",
		},
		{
			name: "single studio candidate beats live ones",
			relations: []model.Relation{
				performance(live, bob),
				performance(studio, alice),
				performance(live, carl),
			},
			want: "Alice",
		},
		{
			name:      "single live candidate",
			relations: []model.Relation{performance(live, bob, carl)},
			want:      "Bob & Carl",
		},
		{
			name: "same live candidate twice",
			relations: []model.Relation{
				performance(live, bob, carl),
				performance(live, bob, carl),
			},
			want: "Bob & Carl",
		},
		{
			name: "two live candidates",
			relations: []model.Relation{
				performance(live, bob),
				performance(live, carl),
			},
			want: "",
		},
		{
			name: "repeated studio candidate wins",
			relations: []model.Relation{
				performance(studio, bob),
				performance(studio, alice),
				performance(studio, alice),
			},
			want: "Alice",
		},
		{
			name: "ambiguous studio candidates",
			relations: []model.Relation{
				performance(studio, alice),
				performance(studio, bob, carl),
			},
			want: "Alice and by Bob & Carl",
		},
		{
			name: "three ambiguous studio candidates",
			relations: []model.Relation{
				performance(studio, alice),
				performance(studio, bob),
				performance(studio, carl),
			},
			want: "Alice, by Bob and by Carl",
		},
		{
			name: "two repeated studio candidates list all studio candidates",
			relations: []model.Relation{
				performance(studio, alice),
				performance(studio, alice),
				performance(studio, bob),
				performance(studio, bob),
				performance(studio, dave),
			},
			want: "Alice, by Bob and by Dave",
		},
		{
			name: "covers partials and medleys are ignored",
			relations: []model.Relation{
				performance(model.Attributes{Cover: true}, bob),
				performance(model.Attributes{Partial: true}, carl),
				performance(model.Attributes{Medley: true}, dave),
				performance(studio, alice),
			},
			want: "Alice",
		},
		{
			name: "instrumental counts as a full performance",
			relations: []model.Relation{
				performance(model.Attributes{Instrumental: true}, alice),
			},
			want: "Alice",
		},
		{
			name: "non-performance relations are ignored",
			relations: []model.Relation{
				{Type: "arrangement", Recording: &model.Recording{ArtistCredit: model.ArtistCredit{{Artist: model.Artist{ID: "b1", Name: "Bob"}}}}},
				performance(studio, alice),
			},
			want: "Alice",
		},
		{
			name: "relations without recording or credit are ignored",
			relations: []model.Relation{
				{Type: model.RelationPerformance},
				{Type: model.RelationPerformance, Recording: &model.Recording{}},
				performance(live, carl),
			},
			want: "Carl",
		},
		{
			name: "grouping uses artist IDs not names",
			relations: []model.Relation{
				performance(studio, artist{"x1", "Prince"}),
				performance(studio, artist{"x1", "The Artist"}),
				performance(studio, artist{"x2", "Prince"}),
			},
			want: "Prince",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveOriginalPerformer(tt.relations); got != tt.want {
				t.Errorf("ResolveOriginalPerformer() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveOriginalPerformer_Idempotent(t *testing.T) {
	relations := []model.Relation{
		performance(studio, alice),
		performance(studio, bob),
		performance(live, carl),
	}

	first := ResolveOriginalPerformer(relations)
	second := ResolveOriginalPerformer(relations)

	if first != second {
		t.Errorf("results differ: %q then %q", first, second)
	}
	if first != "Alice and by Bob" {
		t.Errorf("ResolveOriginalPerformer() = %q", first)
	}
}
