package musicbrainz

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/handiism/mbcomment/internal/model"
)

// Dir is an offline Source that reads lookup responses saved as files.
//
// Recordings are read from "<mbid>.json" and works from
// "work-<mbid>.json", both holding the same JSON the web service returns:
//
//	curl -A mbcomment 'https://musicbrainz.org/ws/2/recording/<mbid>?inc=artist-credits+work-rels&fmt=json' > dir/<mbid>.json
type Dir struct {
	path   string
	parser *Parser
}

// NewDir creates a Dir reading from path.
func NewDir(path string) *Dir {
	return &Dir{path: path, parser: NewParser()}
}

// LookupRecording implements Source.
func (d *Dir) LookupRecording(ctx context.Context, id string) (*model.Recording, error) {
	id, err := ValidateID(id)
	if err != nil {
		return nil, err
	}

	data, err := d.read(id + ".json")
	if err != nil {
		return nil, fmt.Errorf("lookup recording %s: %w", id, err)
	}

	rec, err := d.parser.ParseRecording(data)
	if err != nil {
		return nil, err
	}

	if err := attachWorks(ctx, rec, d.LookupWork); err != nil {
		return nil, err
	}
	return rec, nil
}

// LookupWork reads a saved work lookup.
func (d *Dir) LookupWork(_ context.Context, id string) (*model.Work, error) {
	id, err := ValidateID(id)
	if err != nil {
		return nil, err
	}

	data, err := d.read("work-" + id + ".json")
	if err != nil {
		return nil, fmt.Errorf("lookup work %s: %w", id, err)
	}
	return d.parser.ParseWork(data)
}

func (d *Dir) read(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(d.path, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	return data, err
}
