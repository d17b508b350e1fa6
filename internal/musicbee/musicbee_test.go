package musicbee

import (
	"reflect"
	"testing"

	"github.com/handiism/mbcomment/internal/model"
)

func TestPopulatePerformers(t *testing.T) {
	m := model.NewMetadata()
	m.Set("performer:guitar", "George", "John")
	m.Set("performer:bass guitar", "Paul")
	m.Set("performer:vocals", "John", "Paul")

	populatePerformers(m)

	wantTMCL := "Guitar: George, John; Bass Guitar: Paul; Vocals: John, Paul"
	if got := m.Get(TagMusicians); got != wantTMCL {
		t.Errorf("TMCL = %q, want %q", got, wantTMCL)
	}
	wantPerformers := []string{"George", "John", "Paul"}
	if got := m.GetAll(TagPerformer); !reflect.DeepEqual(got, wantPerformers) {
		t.Errorf("PERFORMER = %q, want %q", got, wantPerformers)
	}
}

func TestPopulateArtist(t *testing.T) {
	tests := []struct {
		name        string
		tags        map[string][]string
		wantArtists []string
		wantGuests  []string
		wantDisplay string
	}{
		{
			name:        "split artist string",
			tags:        map[string][]string{"artist": {"Simon & Garfunkel"}},
			wantArtists: []string{"Simon", "Garfunkel"},
			wantDisplay: "Simon & Garfunkel",
		},
		{
			name:        "featured artist in artist",
			tags:        map[string][]string{"artist": {"Eminem feat. Rihanna"}},
			wantArtists: []string{"Eminem"},
			wantGuests:  []string{"Rihanna"},
			wantDisplay: "Eminem feat. Rihanna",
		},
		{
			name: "featured artists in title with artists tag",
			tags: map[string][]string{
				"artists": {"Santana", "Rob Thomas"},
				"artist":  {"Santana"},
				"title":   {"Smooth (feat. Rob Thomas)"},
			},
			wantArtists: []string{"Santana"},
			wantGuests:  []string{"Rob Thomas"},
			wantDisplay: "Santana",
		},
		{
			name:        "featuring with several guests",
			tags:        map[string][]string{"artist": {"A featuring B, C and D"}},
			wantArtists: []string{"A"},
			wantGuests:  []string{"B", "C", "D"},
			wantDisplay: "A featuring B, C and D",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := model.NewMetadata()
			for _, k := range []string{"artists", "artist", "title"} {
				if v, ok := tt.tags[k]; ok {
					m.Set(k, v...)
				}
			}

			populateArtist(m)

			if got := m.GetAll("artist"); !reflect.DeepEqual(got, tt.wantArtists) {
				t.Errorf("artist = %q, want %q", got, tt.wantArtists)
			}
			if got := m.GetAll(TagGuestArtist); !reflect.DeepEqual(got, tt.wantGuests) {
				t.Errorf("guests = %q, want %q", got, tt.wantGuests)
			}
			if got := m.Get(TagDisplayArtist); got != tt.wantDisplay {
				t.Errorf("display = %q, want %q", got, tt.wantDisplay)
			}
		})
	}
}

func TestPopulateArtist_NoArtist(t *testing.T) {
	m := model.NewMetadata()
	m.Set("title", "Song feat. Someone")

	populateArtist(m)

	if m.Has(TagDisplayArtist) || m.Has(TagGuestArtist) || m.Has("artist") {
		t.Errorf("tags should be untouched, got keys %q", m.Keys())
	}
}

func TestPopulateWriter(t *testing.T) {
	m := model.NewMetadata()
	m.Set("composer", "A")
	m.Set("writer", "A", "B")

	populateWriter(m)

	if m.Has("writer") {
		t.Error("writer should be removed")
	}
	if got := m.GetAll("composer"); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("composer = %q", got)
	}
	if got := m.GetAll("lyricist"); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("lyricist = %q", got)
	}
}

func TestPopulateTIPLAndMisc(t *testing.T) {
	m := model.NewMetadata()
	m.Set("producer", "George Martin")
	m.Set("engineer", "Geoff Emerick", "Ken Scott")
	m.Set("conductor", "Someone")
	m.Set("catalognumber", "PCS 7088")
	m.Set("barcode", "077774644129")

	populateTIPL(m)
	populateMisc(m)

	if got := m.Get("Producer"); got != "George Martin" {
		t.Errorf("Producer = %q", got)
	}
	if m.Has("Conductor") {
		t.Error("Conductor is not a TIPL copy")
	}

	wantIPLS := "Engineer: Geoff Emerick, Ken Scott; Producer: George Martin; Conductor: Someone"
	if got := m.Get(TagInvolved); got != wantIPLS {
		t.Errorf("IPLS = %q, want %q", got, wantIPLS)
	}
	wantMisc := "CatalogNumber: PCS 7088; Barcode: 077774644129"
	if got := m.Get(TagMisc); got != wantMisc {
		t.Errorf("MISC = %q, want %q", got, wantMisc)
	}
}

func TestProcessor_Process(t *testing.T) {
	m := model.NewMetadata()
	m.Set("artist", "The Beatles")
	m.Set("title", "Come Together")
	m.Set("composer", "John Lennon", "Paul McCartney")
	m.Set("performer:drums", "Ringo Starr")
	m.Set("comment", "Remastered")

	NewProcessor().Process(m, nil)

	wantComment := "Remastered\n" +
		"Composer: John Lennon, Paul McCartney\n" +
		"Drums: Ringo Starr"
	if got := m.Get(TagComment); got != wantComment {
		t.Errorf("comment =\n%s\nwant\n%s", got, wantComment)
	}
	if got := m.Get(TagMusicians); got != "Drums: Ringo Starr" {
		t.Errorf("TMCL = %q", got)
	}
	if got := m.GetAll("artist"); !reflect.DeepEqual(got, []string{"The Beatles"}) {
		t.Errorf("artist = %q", got)
	}
	if m.Has(TagInvolved) || m.Has(TagMisc) {
		t.Error("IPLS and MISC should only be created from source tags")
	}
}

func TestProcessor_Rerun(t *testing.T) {
	m := model.NewMetadata()
	m.Set("artist", "Eminem feat. Rihanna")
	m.Set("performer:guitar", "Bob")
	m.Set("producer", "Carl")
	m.Set("catalognumber", "CAT-1")

	p := NewProcessor()
	p.Process(m, nil)
	first := m.Clone()
	p.Process(m, nil)

	for _, key := range first.Keys() {
		if got, want := m.GetAll(key), first.GetAll(key); !reflect.DeepEqual(got, want) {
			t.Errorf("%s after second run = %q, want %q", key, got, want)
		}
	}
	if got := m.Get(TagMusicians); got != "Guitar: Bob" {
		t.Errorf("TMCL = %q, want %q", got, "Guitar: Bob")
	}
	if got := m.GetAll(TagGuestArtist); !reflect.DeepEqual(got, []string{"Rihanna"}) {
		t.Errorf("guests = %q, want [Rihanna]", got)
	}
}

func TestAppendCredit_SkipsPresentEntry(t *testing.T) {
	m := model.NewMetadata()
	m.Set("producer", "Carl")
	m.Set(TagInvolved, "Arranger: Ann; Producer: Carl")

	appendCredit(m, TagInvolved, "Producer", "Producer", listJoiner)

	if got := m.Get(TagInvolved); got != "Arranger: Ann; Producer: Carl" {
		t.Errorf("IPLS = %q", got)
	}
}
