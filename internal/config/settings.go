package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/handiism/mbcomment/internal/audio"
	"github.com/handiism/mbcomment/internal/comment"
	"github.com/handiism/mbcomment/internal/http"
	ioutils "github.com/handiism/mbcomment/internal/io"
	"github.com/handiism/mbcomment/internal/musicbrainz"
	"github.com/handiism/mbcomment/internal/processor"
	"gopkg.in/yaml.v3"
)

// Settings holds all configuration options.
type Settings struct {
	// MusicBrainz settings
	MusicBrainzURL      string  `json:"musicbrainz_url" yaml:"musicbrainz_url" validate:"required_without=OfflineDir"`
	UserAgent           string  `json:"user_agent" yaml:"user_agent"`
	RequestsPerSecond   float64 `json:"requests_per_second" yaml:"requests_per_second" validate:"gte=0"`
	RequestTimeout      float64 `json:"request_timeout" yaml:"request_timeout" validate:"gte=0"`
	LookupMaxRetries    int     `json:"lookup_max_retries" yaml:"lookup_max_retries" validate:"min=1"`
	LookupRetryCooldown float64 `json:"lookup_retry_cooldown" yaml:"lookup_retry_cooldown" validate:"gte=0"`
	LookupRetryExponent float64 `json:"lookup_retry_exponent" yaml:"lookup_retry_exponent" validate:"gte=1"`
	OfflineDir          string  `json:"offline_dir" yaml:"offline_dir"`

	// Processing
	MaxConcurrentFiles int  `json:"max_concurrent_files" yaml:"max_concurrent_files" validate:"min=1"`
	DryRun             bool `json:"dry_run" yaml:"dry_run"`

	// Copy to Comment processor
	CopyToComment         bool   `json:"copy_to_comment" yaml:"copy_to_comment"`
	CopyToCommentPriority string `json:"copy_to_comment_priority" yaml:"copy_to_comment_priority" validate:"omitempty,oneof=high normal low"`
	CommentTag            string `json:"comment_tag" yaml:"comment_tag"`
	CommentRoles          bool   `json:"comment_roles" yaml:"comment_roles"`
	CommentWorks          bool   `json:"comment_works" yaml:"comment_works"`

	// MusicBee Compatibility processor
	MusicBeeCompatibility bool   `json:"musicbee_compatibility" yaml:"musicbee_compatibility"`
	MusicBeePriority      string `json:"musicbee_priority" yaml:"musicbee_priority" validate:"omitempty,oneof=high normal low"`

	// Tag settings
	ModifyTags      bool   `json:"modify_tags" yaml:"modify_tags"`
	WriteComment    bool   `json:"write_comment" yaml:"write_comment"`
	BackupOriginals bool   `json:"backup_originals" yaml:"backup_originals"`
	BackupSuffix    string `json:"backup_suffix" yaml:"backup_suffix"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	client := http.DefaultConfig()
	return &Settings{
		MusicBrainzURL:      musicbrainz.DefaultBaseURL,
		UserAgent:           client.UserAgent,
		RequestsPerSecond:   client.RequestsPerSecond,
		RequestTimeout:      client.Timeout.Seconds(),
		LookupMaxRetries:    3,
		LookupRetryCooldown: 1.0,
		LookupRetryExponent: 2.0,

		MaxConcurrentFiles: 4,

		CopyToComment:         true,
		CopyToCommentPriority: "normal",
		CommentTag:            comment.DefaultTag,
		CommentRoles:          true,
		CommentWorks:          true,

		MusicBeeCompatibility: false,
		MusicBeePriority:      "high",

		ModifyTags:      true,
		WriteComment:    true,
		BackupOriginals: false,
		BackupSuffix:    ioutils.DefaultBackupSuffix,
	}
}

// Load reads settings from a JSON or YAML file.
//
// Files ending in .yaml or .yml are decoded as YAML, everything else as
// JSON. Keys missing from the file keep their default values, and a
// missing file gives DefaultSettings.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if isYAML(path) {
		err = yaml.Unmarshal(data, settings)
	} else {
		err = json.Unmarshal(data, settings)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a JSON or YAML file, chosen by extension.
func (s *Settings) Save(path string) error {
	var data []byte
	var err error
	if isYAML(path) {
		data, err = yaml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return err
	}

	return ioutils.WriteFile(context.Background(), path, data)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// ToTagConfig converts settings to TagConfig.
//
// The comment is written only when WriteComment is set. Artist, credit
// and TXXX frames are rewritten only when MusicBee compatibility can
// change them.
func (s *Settings) ToTagConfig() *audio.TagConfig {
	cfg := &audio.TagConfig{
		ModifyTags: s.ModifyTags,
		Comments:   audio.TagDoNotModify,
		Artist:     audio.TagDoNotModify,
		Credits:    audio.TagDoNotModify,
		Custom:     audio.TagDoNotModify,
	}
	if s.WriteComment {
		cfg.Comments = audio.TagModify
	}
	if s.MusicBeeCompatibility {
		cfg.Artist = audio.TagModify
		cfg.Credits = audio.TagModify
		cfg.Custom = audio.TagModify
	}
	if s.CommentTag != "" && s.CommentTag != comment.DefaultTag {
		cfg.Custom = audio.TagModify
	}
	return cfg
}

// ToClientConfig converts settings to the HTTP client configuration.
func (s *Settings) ToClientConfig() http.Config {
	return http.Config{
		UserAgent:         s.UserAgent,
		Timeout:           time.Duration(s.RequestTimeout * float64(time.Second)),
		RequestsPerSecond: s.RequestsPerSecond,
	}
}

// ToCommentConfig converts settings to the Copy to Comment configuration.
func (s *Settings) ToCommentConfig() *comment.Config {
	return &comment.Config{
		Tag:   s.CommentTag,
		Roles: s.CommentRoles,
		Works: s.CommentWorks,
	}
}

// CopyToCommentPriorityValue returns the parsed Copy to Comment priority.
func (s *Settings) CopyToCommentPriorityValue() processor.Priority {
	return processor.ParsePriority(s.CopyToCommentPriority)
}

// MusicBeePriorityValue returns the parsed MusicBee priority.
func (s *Settings) MusicBeePriorityValue() processor.Priority {
	return processor.ParsePriority(s.MusicBeePriority)
}

// NewSource returns the offline directory source when OfflineDir is set,
// or a MusicBrainz web service client otherwise.
func (s *Settings) NewSource() musicbrainz.Source {
	if s.OfflineDir != "" {
		return musicbrainz.NewDir(s.OfflineDir)
	}
	return musicbrainz.NewClient(http.NewClient(s.ToClientConfig()), s.MusicBrainzURL)
}
