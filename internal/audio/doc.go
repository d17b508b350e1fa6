// Package audio reads and writes the tags of audio files.
//
// # Snapshots
//
// A Snapshot holds the tags of one file as model.Metadata, keyed by
// MusicBrainz Picard tag names ("composer", "performer:vocals",
// "comment"), together with the file's MusicBrainz recording ID.
//
// # MP3 Files
//
// Use the Tagger to read and write ID3v2 tags:
//
//	tagger := audio.NewTagger(audio.DefaultTagConfig())
//
//	snap, err := tagger.ReadSnapshot("song.mp3")
//	snap.Metadata.Set("comment", "Composer: Jane Doe")
//	err = tagger.SaveSnapshot(snap)
//
// Tags map to frames the way Picard writes them:
//   - title, artist, albumartist, album: TIT2, TPE1, TPE2, TALB
//   - composer, lyricist, conductor, remixer: TCOM, TEXT, TPE3, TPE4
//   - arranger, engineer, producer, djmixer, mixer: TIPL pairs
//   - performer:<role>: TMCL pairs
//   - comment: COMM without description
//   - everything else: TXXX
//
// Multiple values are written NUL-separated, so tags are always saved
// as ID3v2.4.
//
// # Other Formats
//
// FLAC, Ogg and MP4 files are read with the Reader, backed by
// github.com/dhowden/tag. These snapshots cannot be saved.
package audio
