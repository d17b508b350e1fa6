// Package process runs the tag processors over a batch of audio files.
//
// The Manager finds the audio files below the given paths, then for each
// file, concurrently up to Settings.MaxConcurrentFiles:
//  1. Reads the tag snapshot and the MusicBrainz recording ID
//  2. Looks up the recording and its relationships
//  3. Runs the processor pipeline
//  4. Backs up the file, if enabled
//  5. Writes the tags back
//
// Files without a recording ID, or whose lookup fails, are still
// processed without relationships. Other per-file errors are reported
// and recorded in the file's Result; they never stop the batch.
//
// # Usage
//
//	manager := process.NewManager(settings, nil, func(e process.ProgressEvent) {
//	    fmt.Println(e.Message)
//	})
//	if err := manager.Initialize(ctx, []string{"/music/Album"}); err != nil {
//	    return err
//	}
//	err := manager.StartProcessing(ctx)
//
//	for _, r := range manager.Results() {
//	    fmt.Println(r.Path, r.Comment)
//	}
//
// With Settings.DryRun, the derived comments are reported and no file is
// modified.
package process
