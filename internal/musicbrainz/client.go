package musicbrainz

import (
	"context"
	"fmt"
	nethttp "net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/handiism/mbcomment/internal/http"
	"github.com/handiism/mbcomment/internal/model"
)

// DefaultBaseURL is the public MusicBrainz web service.
const DefaultBaseURL = "https://musicbrainz.org/ws/2"

const (
	recordingIncludes = "artist-credits+work-rels"
	workIncludes      = "recording-rels+artist-credits"
)

// Client looks up recordings on a MusicBrainz server.
//
// Work lookups are cached for the lifetime of the Client. Client is safe
// for concurrent use.
//
// Example usage:
//
//	client := NewClient(http.NewClient(http.DefaultConfig()), DefaultBaseURL)
//	rec, err := client.LookupRecording(ctx, "b1a9c0e9-d987-4042-ae91-78d6a3267d69")
type Client struct {
	transport *http.Client
	baseURL   string
	parser    *Parser

	mu    sync.Mutex
	works map[string]*model.Work
}

// NewClient creates a Client using transport for requests.
// An empty baseURL selects DefaultBaseURL.
func NewClient(transport *http.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		transport: transport,
		baseURL:   strings.TrimRight(baseURL, "/"),
		parser:    NewParser(),
		works:     make(map[string]*model.Work),
	}
}

// LookupRecording fetches a recording with its artist credit and work
// relations. For every cover performance it also fetches the work's
// performance relations so the original performer can be resolved.
//
// Returns ErrInvalidID for malformed IDs and ErrNotFound when the
// recording does not exist.
func (c *Client) LookupRecording(ctx context.Context, id string) (*model.Recording, error) {
	id, err := ValidateID(id)
	if err != nil {
		return nil, err
	}

	body, err := c.get(ctx, "recording", id, recordingIncludes)
	if err != nil {
		return nil, fmt.Errorf("lookup recording %s: %w", id, err)
	}

	rec, err := c.parser.ParseRecording(body)
	if err != nil {
		return nil, err
	}

	if err := attachWorks(ctx, rec, c.LookupWork); err != nil {
		return nil, err
	}
	return rec, nil
}

// LookupWork fetches a work with its recording relations.
func (c *Client) LookupWork(ctx context.Context, id string) (*model.Work, error) {
	id, err := ValidateID(id)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	work, ok := c.works[id]
	c.mu.Unlock()
	if ok {
		return work, nil
	}

	body, err := c.get(ctx, "work", id, workIncludes)
	if err != nil {
		return nil, fmt.Errorf("lookup work %s: %w", id, err)
	}

	work, err = c.parser.ParseWork(body)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.works[id] = work
	c.mu.Unlock()
	return work, nil
}

func (c *Client) get(ctx context.Context, entity, id, inc string) ([]byte, error) {
	v := url.Values{}
	v.Set("inc", inc)
	v.Set("fmt", "json")
	// inc values are joined with "+", which url.Values would escape.
	query := strings.ReplaceAll(v.Encode(), "%2B", "+")

	body, err := c.transport.Get(ctx, fmt.Sprintf("%s/%s/%s?%s", c.baseURL, entity, id, query))
	if http.IsStatus(err, nethttp.StatusNotFound) {
		return nil, ErrNotFound
	}
	return body, err
}
