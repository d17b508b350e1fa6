package musicbrainz

import (
	"encoding/json"
	"fmt"

	"github.com/handiism/mbcomment/internal/model"
	"github.com/handiism/mbcomment/internal/musicbrainz/dto"
)

// Parser decodes MusicBrainz web service JSON into model types.
//
// Example usage:
//
//	parser := NewParser()
//	rec, err := parser.ParseRecording(body)
//	if err != nil {
//	    return err
//	}
//	for _, rel := range rec.Relations {
//	    fmt.Println(rel.Type, rel.TargetType)
//	}
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseRecording decodes a recording lookup response.
//
// Returns an error if the JSON is malformed or has no recording ID.
func (p *Parser) ParseRecording(data []byte) (*model.Recording, error) {
	var jsonRecording dto.JSONRecording
	if err := json.Unmarshal(data, &jsonRecording); err != nil {
		return nil, fmt.Errorf("failed to parse recording JSON: %w", err)
	}
	if jsonRecording.ID == "" {
		return nil, fmt.Errorf("failed to parse recording JSON: %w", ErrMissingID)
	}
	return jsonRecording.ToRecording(), nil
}

// ParseWork decodes a work lookup response.
//
// Returns an error if the JSON is malformed or has no work ID.
func (p *Parser) ParseWork(data []byte) (*model.Work, error) {
	var jsonWork dto.JSONWork
	if err := json.Unmarshal(data, &jsonWork); err != nil {
		return nil, fmt.Errorf("failed to parse work JSON: %w", err)
	}
	if jsonWork.ID == "" {
		return nil, fmt.Errorf("failed to parse work JSON: %w", ErrMissingID)
	}
	return jsonWork.ToWork(), nil
}
