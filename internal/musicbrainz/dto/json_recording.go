package dto

import "github.com/handiism/mbcomment/internal/model"

// JSONArtist is an artist as returned by the MusicBrainz web service.
type JSONArtist struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	SortName string `json:"sort-name,omitempty"`
}

// JSONArtistCredit is one entry of an "artist-credit" array.
type JSONArtistCredit struct {
	Name       string     `json:"name"`
	JoinPhrase string     `json:"joinphrase"`
	Artist     JSONArtist `json:"artist"`
}

// JSONRecording is the body of a recording lookup, or a recording nested
// in a relation.
//
// Example (trimmed):
//
//	{
//	  "id": "…", "title": "Yesterday",
//	  "artist-credit": [{"name": "The Beatles", "joinphrase": "", "artist": {"id": "…", "name": "The Beatles"}}],
//	  "relations": [{"type": "performance", "target-type": "work", "attributes": ["cover"], "work": {…}}]
//	}
type JSONRecording struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	ArtistCredit []JSONArtistCredit `json:"artist-credit,omitempty"`
	Relations    []JSONRelation     `json:"relations,omitempty"`
}

// ToRecording converts the JSON recording to the domain model.
// A missing "relations" array stays nil.
func (r *JSONRecording) ToRecording() *model.Recording {
	if r == nil {
		return nil
	}
	return &model.Recording{
		ID:           r.ID,
		Title:        r.Title,
		ArtistCredit: toArtistCredit(r.ArtistCredit),
		Relations:    toRelations(r.Relations),
	}
}

func toArtistCredit(credits []JSONArtistCredit) model.ArtistCredit {
	if credits == nil {
		return nil
	}
	out := make(model.ArtistCredit, len(credits))
	for i, c := range credits {
		out[i] = model.ArtistCreditName{
			Artist:     model.Artist{ID: c.Artist.ID, Name: c.Artist.Name},
			Name:       c.Name,
			JoinPhrase: c.JoinPhrase,
		}
	}
	return out
}
