package musicbrainz

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/handiism/mbcomment/internal/model"
)

var (
	// ErrNotFound is returned when a recording or work does not exist.
	ErrNotFound = errors.New("not found in MusicBrainz")

	// ErrInvalidID is returned for identifiers that are not MBIDs.
	ErrInvalidID = errors.New("invalid MusicBrainz identifier")

	// ErrMissingID is returned when a response carries no identifier.
	ErrMissingID = errors.New("response has no identifier")
)

// Source looks up a recording together with the relationship tree the
// processors need: its work relations, and for cover performances the
// work's own performance relations.
type Source interface {
	LookupRecording(ctx context.Context, id string) (*model.Recording, error)
}

// ValidateID checks that id is a well-formed MBID and returns its
// canonical lower-case form.
func ValidateID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidID, id, err)
	}
	return parsed.String(), nil
}

// needsWorkRelations reports whether the work of rel must be fetched to
// resolve the original performer.
func needsWorkRelations(rel model.Relation) bool {
	return rel.IsPerformance() && rel.HasWork() && rel.Attributes.Cover &&
		rel.Work.ID != "" && !rel.Work.HasRelations()
}

// attachWorks fills in missing work relation lists using lookup.
// Works that cannot be loaded are left as they are.
func attachWorks(ctx context.Context, rec *model.Recording, lookup func(context.Context, string) (*model.Work, error)) error {
	for i := range rec.Relations {
		rel := rec.Relations[i]
		if !needsWorkRelations(rel) {
			continue
		}
		work, err := lookup(ctx, rel.Work.ID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return err
		}
		// Works returned by lookup may be cached and must not be modified.
		w := *rel.Work
		w.Relations = work.Relations
		rec.Relations[i].Work = &w
	}
	return nil
}
