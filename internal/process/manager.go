package process

import (
	"context"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/handiism/mbcomment/internal/audio"
	"github.com/handiism/mbcomment/internal/comment"
	"github.com/handiism/mbcomment/internal/config"
	ioutils "github.com/handiism/mbcomment/internal/io"
	"github.com/handiism/mbcomment/internal/model"
	"github.com/handiism/mbcomment/internal/musicbee"
	"github.com/handiism/mbcomment/internal/musicbrainz"
	"github.com/handiism/mbcomment/internal/processor"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a processing progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Result is the outcome of processing one file.
type Result struct {
	Path        string
	RecordingID string

	// Comment is the value of the comment tag after the pipeline ran.
	Comment string

	// Written reports whether the tags were saved.
	Written bool

	// Err is the error that stopped processing of the file, if any.
	Err error
}

// Manager coordinates tag processing for a batch of files.
type Manager struct {
	settings *config.Settings
	source   musicbrainz.Source
	pipeline *processor.Pipeline
	tagger   *audio.Tagger
	reader   *audio.Reader

	files          []string
	results        []Result
	totalFiles     int32
	processedFiles int32

	onProgress func(ProgressEvent)
	mu         sync.RWMutex
}

// NewManager creates a new processing Manager.
//
// If source is nil, settings.NewSource() is used.
func NewManager(settings *config.Settings, source musicbrainz.Source, onProgress func(ProgressEvent)) *Manager {
	if source == nil {
		source = settings.NewSource()
	}

	return &Manager{
		settings:   settings,
		source:     source,
		pipeline:   NewPipeline(settings),
		tagger:     audio.NewTagger(settings.ToTagConfig()),
		reader:     audio.NewReader(),
		onProgress: onProgress,
	}
}

// NewPipeline registers the processors enabled in settings.
func NewPipeline(settings *config.Settings) *processor.Pipeline {
	p := processor.NewPipeline()
	if settings.MusicBeeCompatibility {
		p.Register(musicbee.NewProcessor(), settings.MusicBeePriorityValue())
	}
	if settings.CopyToComment {
		p.Register(comment.NewProcessor(settings.ToCommentConfig()), settings.CopyToCommentPriorityValue())
	}
	return p
}

// Initialize expands the input files and directories into the list of
// audio files to process.
func (m *Manager) Initialize(ctx context.Context, inputs []string) error {
	files, err := ioutils.FindAudioFiles(ctx, inputs)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.files = files
	m.results = make([]Result, len(files))
	m.totalFiles = int32(len(files))
	m.mu.Unlock()
	atomic.StoreInt32(&m.processedFiles, 0)

	m.progress(ProgressEvent{Message: fmt.Sprintf("Found %d audio files", len(files)), Level: LevelInfo})
	if m.pipeline.Len() == 0 {
		m.progress(ProgressEvent{Message: "No processors enabled", Level: LevelWarning})
	} else {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Processors: %v", m.pipeline.Names()), Level: LevelVerbose})
	}
	return nil
}

// StartProcessing processes all initialized files.
//
// Failures of individual files are reported and recorded in Results;
// only cancellation of ctx stops the batch.
func (m *Manager) StartProcessing(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.settings.MaxConcurrentFiles)

	for i, path := range m.files {
		i, path := i, path // capture
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := m.processFile(gctx, path)
			if res.Err != nil {
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error processing %s: %v", path, res.Err), Level: LevelError})
			}

			m.mu.Lock()
			m.results[i] = res
			m.mu.Unlock()
			atomic.AddInt32(&m.processedFiles, 1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	processed, total := m.GetProgress()
	m.progress(ProgressEvent{Message: fmt.Sprintf("Processed %d of %d files", processed, total), Level: LevelSuccess})
	return nil
}

// Results returns the per-file results in file order.
func (m *Manager) Results() []Result {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Result(nil), m.results...)
}

// GetProgress returns the number of processed files and the total.
func (m *Manager) GetProgress() (processed, total int32) {
	m.mu.RLock()
	total = m.totalFiles
	m.mu.RUnlock()
	return atomic.LoadInt32(&m.processedFiles), total
}

// GetFileNames returns the files found by Initialize.
func (m *Manager) GetFileNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.files...)
}

func (m *Manager) processFile(ctx context.Context, path string) Result {
	res := Result{Path: path}
	name := filepath.Base(path)

	snap, err := m.readSnapshot(path)
	if err != nil {
		res.Err = err
		return res
	}
	res.RecordingID = snap.RecordingID

	var rec *model.Recording
	if snap.RecordingID == "" {
		m.progress(ProgressEvent{Message: fmt.Sprintf("No MusicBrainz recording ID: %s", name), Level: LevelVerbose})
	} else {
		rec, err = m.lookup(ctx, snap.RecordingID)
		if err != nil {
			if ctx.Err() != nil {
				res.Err = ctx.Err()
				return res
			}
			m.progress(ProgressEvent{Message: fmt.Sprintf("Lookup failed for %s, continuing without relationships: %v", name, err), Level: LevelWarning})
		}
	}

	m.pipeline.Run(snap.Metadata, rec)
	res.Comment = snap.Metadata.Get(m.settings.CommentTag)

	if m.settings.DryRun {
		m.progress(ProgressEvent{Message: fmt.Sprintf("%s:\n%s", name, res.Comment), Level: LevelInfo})
		return res
	}

	if !m.settings.ModifyTags {
		return res
	}

	if !audio.IsWritable(path) {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Cannot write tags of %s, skipping", name), Level: LevelWarning})
		return res
	}

	if m.settings.BackupOriginals {
		backup, err := ioutils.BackupFile(ctx, path, m.settings.BackupSuffix)
		if err != nil {
			res.Err = err
			return res
		}
		m.progress(ProgressEvent{Message: fmt.Sprintf("Backed up %s to %s", name, filepath.Base(backup)), Level: LevelVerbose})
	}

	if err := m.tagger.SaveSnapshot(snap); err != nil {
		res.Err = fmt.Errorf("failed to write tags: %w", err)
		return res
	}
	res.Written = true

	m.progress(ProgressEvent{Message: fmt.Sprintf("Tagged: %s", name), Level: LevelVerbose})
	return res
}

func (m *Manager) readSnapshot(path string) (*audio.Snapshot, error) {
	if audio.IsWritable(path) {
		return m.tagger.ReadSnapshot(path)
	}
	return m.reader.ReadSnapshot(path)
}

// lookup fetches a recording, retrying transient failures.
func (m *Manager) lookup(ctx context.Context, id string) (*model.Recording, error) {
	var rec *model.Recording
	var err error

	for tries := 0; tries < m.settings.LookupMaxRetries; tries++ {
		rec, err = m.source.LookupRecording(ctx, id)
		if err == nil || !isRetryable(err) || ctx.Err() != nil {
			break
		}
		if tries+1 < m.settings.LookupMaxRetries {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Retry %d/%d for recording %s", tries+1, m.settings.LookupMaxRetries, id), Level: LevelWarning})
			m.waitForRetry(ctx, tries)
		}
	}

	return rec, err
}

func isRetryable(err error) bool {
	return !errors.Is(err, musicbrainz.ErrNotFound) &&
		!errors.Is(err, musicbrainz.ErrInvalidID) &&
		!errors.Is(err, musicbrainz.ErrMissingID)
}

func (m *Manager) waitForRetry(ctx context.Context, tries int) {
	cooldown := m.settings.LookupRetryCooldown * math.Pow(m.settings.LookupRetryExponent, float64(tries))
	select {
	case <-ctx.Done():
	case <-time.After(time.Duration(cooldown * float64(time.Second))):
	}
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
