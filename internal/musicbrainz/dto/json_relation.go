package dto

import "github.com/handiism/mbcomment/internal/model"

// JSONWork is the body of a work lookup, or a work nested in a relation.
type JSONWork struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Relations []JSONRelation `json:"relations,omitempty"`
}

// ToWork converts the JSON work to the domain model.
func (w *JSONWork) ToWork() *model.Work {
	if w == nil {
		return nil
	}
	return &model.Work{
		ID:        w.ID,
		Title:     w.Title,
		Relations: toRelations(w.Relations),
	}
}

// JSONRelation is one entry of a "relations" array.
//
// Which of Recording, Work and Artist is present depends on TargetType.
type JSONRelation struct {
	Type       string         `json:"type"`
	TargetType string         `json:"target-type"`
	Direction  string         `json:"direction,omitempty"`
	Attributes []string       `json:"attributes,omitempty"`
	Recording  *JSONRecording `json:"recording,omitempty"`
	Work       *JSONWork      `json:"work,omitempty"`
	Artist     *JSONArtist    `json:"artist,omitempty"`
}

// ToRelation converts the JSON relation to the domain model.
func (r JSONRelation) ToRelation() model.Relation {
	rel := model.Relation{
		Type:       r.Type,
		TargetType: r.TargetType,
		Attributes: model.ParseAttributes(r.Attributes),
		Recording:  r.Recording.ToRecording(),
		Work:       r.Work.ToWork(),
	}
	if r.Artist != nil {
		rel.Artist = &model.Artist{ID: r.Artist.ID, Name: r.Artist.Name}
	}
	return rel
}

func toRelations(relations []JSONRelation) []model.Relation {
	if relations == nil {
		return nil
	}
	out := make([]model.Relation, len(relations))
	for i, r := range relations {
		out[i] = r.ToRelation()
	}
	return out
}
