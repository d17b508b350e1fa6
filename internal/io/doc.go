// Package ioutils provides file system utilities for mbcomment.
//
// This package contains functions for:
//   - Finding audio files below the given paths
//   - Backing up files before their tags are rewritten
//   - File copying and writing
//   - Directory creation
//
// # File Discovery
//
//	files, err := ioutils.FindAudioFiles(ctx, []string{"/music"})
//	// [/music/Album/01.mp3 /music/Album/02.flac ...]
//
// # Backups
//
//	backup, err := ioutils.BackupFile(ctx, "/music/song.mp3", "")
//	// backup == "/music/song.mp3.orig"
//
// Functions that accept a context.Context check it before starting,
// though a running copy is not interrupted.
package ioutils
