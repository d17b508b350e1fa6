package model

// Relationship types and target types used by the processors.
const (
	RelationPerformance = "performance"

	TargetWork      = "work"
	TargetRecording = "recording"
	TargetArtist    = "artist"
)

// Attribute names as they appear on MusicBrainz relationships.
const (
	AttributeLive         = "live"
	AttributeMedley       = "medley"
	AttributePartial      = "partial"
	AttributeInstrumental = "instrumental"
	AttributeCover        = "cover"
)

// Attributes holds the flags of a performance relationship.
//
// The field order (live, medley, partial, instrumental, cover) is fixed
// and is the order used by Index and by the phrase table built on it.
// The zero value means no attribute is set.
type Attributes struct {
	Live         bool
	Medley       bool
	Partial      bool
	Instrumental bool
	Cover        bool
}

// ParseAttributes builds Attributes from MusicBrainz attribute names.
// Unknown names are ignored and a nil list gives the zero value.
func ParseAttributes(names []string) Attributes {
	var a Attributes
	for _, name := range names {
		switch name {
		case AttributeLive:
			a.Live = true
		case AttributeMedley:
			a.Medley = true
		case AttributePartial:
			a.Partial = true
		case AttributeInstrumental:
			a.Instrumental = true
		case AttributeCover:
			a.Cover = true
		}
	}
	return a
}

// Index packs the flags into 0..31 with live as the most significant bit
// and cover as the least significant.
func (a Attributes) Index() int {
	i := 0
	for _, flag := range []bool{a.Live, a.Medley, a.Partial, a.Instrumental, a.Cover} {
		i <<= 1
		if flag {
			i |= 1
		}
	}
	return i
}

// AttributesFromIndex is the inverse of Attributes.Index.
func AttributesFromIndex(i int) Attributes {
	return Attributes{
		Live:         i&16 != 0,
		Medley:       i&8 != 0,
		Partial:      i&4 != 0,
		Instrumental: i&2 != 0,
		Cover:        i&1 != 0,
	}
}

// Artist is a MusicBrainz artist.
type Artist struct {
	ID   string
	Name string
}

// ArtistCreditName is one entry of an artist credit. Name is the name as
// credited, which may differ from Artist.Name.
type ArtistCreditName struct {
	Artist     Artist
	Name       string
	JoinPhrase string
}

// DisplayName returns the credited name, falling back to the artist name.
func (n ArtistCreditName) DisplayName() string {
	if n.Name != "" {
		return n.Name
	}
	return n.Artist.Name
}

// ArtistCredit is the ordered list of artists credited on a recording.
type ArtistCredit []ArtistCreditName

// Recording is a MusicBrainz recording together with its relationships.
type Recording struct {
	ID           string
	Title        string
	ArtistCredit ArtistCredit
	Relations    []Relation
}

// HasArtistCredit reports whether the recording credits any artist.
func (r *Recording) HasArtistCredit() bool {
	return r != nil && len(r.ArtistCredit) > 0
}

// HasRelations reports whether the recording carries a relation list.
func (r *Recording) HasRelations() bool {
	return r != nil && r.Relations != nil
}

// Work is a MusicBrainz work together with its relationships.
//
// Relations is nil when the relation list was not loaded, and empty when
// it was loaded but the work has none.
type Work struct {
	ID        string
	Title     string
	Relations []Relation
}

// HasRelations reports whether the work carries a relation list.
func (w *Work) HasRelations() bool {
	return w != nil && w.Relations != nil
}

// Relation is a relationship edge from a recording or work.
//
// Exactly one of Recording, Work or Artist is normally set, matching
// TargetType, but callers must use the presence predicates rather than
// rely on that.
type Relation struct {
	Type       string
	TargetType string
	Attributes Attributes
	Recording  *Recording
	Work       *Work
	Artist     *Artist
}

// IsPerformance reports whether the relation is a performance.
func (r Relation) IsPerformance() bool {
	return r.Type == RelationPerformance
}

// HasWork reports whether the relation points at a work.
func (r Relation) HasWork() bool {
	return r.Work != nil
}

// HasRecording reports whether the relation points at a recording.
func (r Relation) HasRecording() bool {
	return r.Recording != nil
}
