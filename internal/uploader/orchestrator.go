// Package uploader drives guest photo batches through compression, dual
// blob storage and metadata persistence, exposing live per-file progress.
package uploader

import (
	"context"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"smart-wedding-backend/internal/models"
	"smart-wedding-backend/internal/transcode"
)

const (
	// DefaultRetention keeps a drained batch around for UI feedback before
	// it is cleared.
	DefaultRetention = 3 * time.Second
	// DefaultMaxParallel bounds how many files of one batch are processed
	// at once. The two blob writes of a single file always run in parallel.
	DefaultMaxParallel = 3

	progressUploading = 30
	progressStored    = 80
	progressDone      = 100
)

// ObjectStore writes one named blob and returns its public URL.
type ObjectStore interface {
	Upload(path string, data []byte, contentType string) (string, error)
}

// PhotoRecords creates the photo metadata row. The insert is the commit
// point: nothing downstream observes a photo before it succeeds.
type PhotoRecords interface {
	CreatePhoto(ctx context.Context, weddingID uuid.UUID, uploaderName, originalURL, displayURL string) (*models.Photo, error)
}

// TranscodeFunc derives the display variant from the original bytes.
type TranscodeFunc func([]byte) ([]byte, error)

// File is one user-selected file of a batch, fully read into memory.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

type Options struct {
	Retention   time.Duration
	MaxParallel int
	Transcode   TranscodeFunc
}

type Orchestrator struct {
	store     ObjectStore
	records   PhotoRecords
	transcode TranscodeFunc
	retention time.Duration
	parallel  int

	mu      sync.Mutex
	batches map[string]*Batch
}

func NewOrchestrator(store ObjectStore, records PhotoRecords, opts Options) *Orchestrator {
	if opts.Retention <= 0 {
		opts.Retention = DefaultRetention
	}
	if opts.MaxParallel <= 0 {
		opts.MaxParallel = DefaultMaxParallel
	}
	if opts.Transcode == nil {
		opts.Transcode = transcode.Display
	}
	return &Orchestrator{
		store:     store,
		records:   records,
		transcode: opts.Transcode,
		retention: opts.Retention,
		parallel:  opts.MaxParallel,
		batches:   make(map[string]*Batch),
	}
}

// BeginBatch validates the batch, registers its tasks and starts the
// workers. Validation failures reject the whole batch before any network
// call. The returned batch is live: its tasks advance in the background and
// its update stream closes once every file is terminal.
//
// A started file is never cancelled; workers run detached from the caller's
// context and each file runs to completed or error on its own.
func (o *Orchestrator) BeginBatch(ctx context.Context, wedding *models.Wedding, uploaderName string, files []File) (*Batch, error) {
	name := strings.TrimSpace(uploaderName)
	if name == "" {
		return nil, &ValidationError{Reason: "uploader name is required"}
	}
	if len(files) == 0 {
		return nil, &ValidationError{Reason: "no files selected"}
	}

	batch := &Batch{
		ID:    uuid.New().String(),
		tasks: make(map[string]*Task, len(files)),
		// Each file emits at most four transitions; a full buffer can hold
		// them all so workers never block on an absent stream consumer.
		updates: make(chan Update, len(files)*4),
		done:    make(chan struct{}),
	}
	for _, f := range files {
		task := &Task{
			ID:       uuid.New().String(),
			FileName: f.Name,
			Status:   StatusCompressing,
		}
		batch.order = append(batch.order, task.ID)
		batch.tasks[task.ID] = task
	}

	o.mu.Lock()
	o.batches[batch.ID] = batch
	o.mu.Unlock()

	run := context.WithoutCancel(ctx)
	go o.runBatch(run, batch, wedding, name, files)

	return batch, nil
}

// Batch returns a registered batch until its retention window elapses.
func (o *Orchestrator) Batch(batchID string) (*Batch, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	b, ok := o.batches[batchID]
	return b, ok
}

func (o *Orchestrator) runBatch(ctx context.Context, b *Batch, wedding *models.Wedding, uploaderName string, files []File) {
	sem := make(chan struct{}, o.parallel)
	var wg sync.WaitGroup
	for i, taskID := range b.order {
		wg.Add(1)
		go func(taskID string, file File) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			o.processFile(ctx, b, taskID, wedding, uploaderName, file)
		}(taskID, files[i])
	}
	wg.Wait()

	close(b.updates)
	close(b.done)

	// The per-batch status set is pure local bookkeeping; clearing it has
	// no external effect.
	time.AfterFunc(o.retention, func() {
		o.mu.Lock()
		delete(o.batches, b.ID)
		o.mu.Unlock()
	})
}

// processFile runs one file's pipeline: compress, store both variants,
// insert the metadata row. Steps are strictly sequential; a failure at any
// step parks the file at error without touching its siblings, and there is
// no automatic retry.
func (o *Orchestrator) processFile(ctx context.Context, b *Batch, taskID string, wedding *models.Wedding, uploaderName string, file File) {
	b.setTask(taskID, StatusCompressing, 0, nil)

	display, err := o.transcode(file.Data)
	if err != nil {
		o.failTask(b, taskID, file.Name, err)
		return
	}

	b.setTask(taskID, StatusUploading, progressUploading, nil)

	originalPath, displayPath := assetPaths(wedding.Slug, file.Name)
	contentType := file.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(file.Data)
	}

	var originalURL, displayURL string
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		url, err := o.store.Upload(originalPath, file.Data, contentType)
		if err != nil {
			return &StorageWriteError{Path: originalPath, Err: err}
		}
		originalURL = url
		return nil
	})
	g.Go(func() error {
		url, err := o.store.Upload(displayPath, display, transcode.DisplayContentType)
		if err != nil {
			return &StorageWriteError{Path: displayPath, Err: err}
		}
		displayURL = url
		return nil
	})
	if err := g.Wait(); err != nil {
		o.failTask(b, taskID, file.Name, err)
		return
	}

	b.setTask(taskID, StatusUploading, progressStored, nil)

	if _, err := o.records.CreatePhoto(ctx, wedding.ID, uploaderName, originalURL, displayURL); err != nil {
		// Both blobs are already stored; the orphans are accepted rather
		// than rolled back.
		o.failTask(b, taskID, file.Name, &RecordInsertError{Err: err})
		return
	}

	b.setTask(taskID, StatusCompleted, progressDone, nil)
}

func (o *Orchestrator) failTask(b *Batch, taskID, fileName string, err error) {
	log.Printf("upload failed for %s: %v", fileName, err)
	b.setTask(taskID, StatusError, 0, err)
}

// Batch is one user-initiated group of files. Task state is kept in an
// arena keyed by task id; updates apply by id so concurrent files can never
// clobber each other's status.
type Batch struct {
	ID string

	mu    sync.Mutex
	order []string
	tasks map[string]*Task

	updates chan Update
	done    chan struct{}
}

// Tasks returns a point-in-time copy of every task, in selection order.
func (b *Batch) Tasks() []Task {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Task, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, *b.tasks[id])
	}
	return out
}

// Updates streams task transitions. The channel is buffered for the whole
// batch and closed once every file is terminal. Single consumer.
func (b *Batch) Updates() <-chan Update {
	return b.updates
}

// Done is closed when every file has reached a terminal status.
func (b *Batch) Done() <-chan struct{} {
	return b.done
}

// Finished reports whether every task is terminal.
func (b *Batch) Finished() bool {
	select {
	case <-b.done:
		return true
	default:
		return false
	}
}

func (b *Batch) setTask(taskID string, status Status, progress int, err error) {
	b.mu.Lock()
	task, ok := b.tasks[taskID]
	if !ok {
		b.mu.Unlock()
		return
	}
	task.Status = status
	task.Progress = progress
	task.Error = ""
	if err != nil {
		task.Error = err.Error()
	}
	snapshot := *task
	b.mu.Unlock()

	select {
	case b.updates <- Update{BatchID: b.ID, Task: snapshot}:
	default:
		// Buffer sized for every transition; reaching here would mean a
		// task emitted more transitions than the pipeline defines.
	}
}
