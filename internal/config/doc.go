// Package config provides configuration management for mbcomment.
//
// This package handles:
//   - Loading and saving settings from JSON or YAML files
//   - Default configuration values
//   - Conversion to the configurations of the audio, comment and http
//     packages
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Looks up recordings on musicbrainz.org at 1 request per second
//	// Copy to Comment enabled, MusicBee compatibility disabled
//	// Tags are written, no backups
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/mbcomment.yaml")
//	if err != nil {
//	    // The file exists but could not be parsed
//	}
//	if err := settings.Validate(); err != nil {
//	    // err lists every invalid option
//	}
//
// A YAML file only needs the options it changes:
//
//	musicbee_compatibility: true
//	musicbee_priority: high
//	backup_originals: true
//
// # Saving Settings
//
//	settings.OfflineDir = "/data/mb-dump"
//	err := settings.Save("/path/to/mbcomment.json")
//
// # Configuration Options
//
// Settings includes options for:
//   - MusicBrainz server, user agent and rate limit
//   - Lookup retry behavior
//   - An offline directory of JSON lookups
//   - Concurrent file limit
//   - Enabled processors and their priorities
//   - Tag writing, dry runs and backups
package config
