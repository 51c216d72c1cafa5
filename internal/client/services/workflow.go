package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/ecoscan/internal/client/models"
	"github.com/dmitrijs2005/ecoscan/internal/common"
	"github.com/dmitrijs2005/ecoscan/internal/logging"
)

// WorkflowState names a stage of the upload-and-classification workflow.
type WorkflowState string

const (
	StateIdle        WorkflowState = "idle"
	StateSelected    WorkflowState = "selected"
	StateUploading   WorkflowState = "uploading"
	StateClassifying WorkflowState = "classifying"
	StateCompleted   WorkflowState = "completed"
	StateFailed      WorkflowState = "failed"
)

// ImageStore stores image bytes remotely and returns a stable reference.
// Assumed safe to retry.
type ImageStore interface {
	Store(ctx context.Context, data []byte, mediaType string) (string, error)
}

// Classifier classifies a previously stored image.
type Classifier interface {
	Classify(ctx context.Context, imageRef string) (*models.ClassificationResult, error)
}

// SessionSource yields the current session; nil means anonymous.
type SessionSource interface {
	Current() *models.Session
}

const defaultCallTimeout = 30 * time.Second

// UploadWorkflow drives one attempt at a time through
// Idle → Selected → Uploading → Classifying → Completed, with Failed
// reachable from the two remote stages and Reset returning to Idle from
// anywhere.
//
// The two collaborator calls are suspension points: the mutex is released
// while they run, so Reset and Select stay callable. Every Reset/Select
// bumps a generation counter; a result arriving for an older generation is
// discarded instead of applied.
type UploadWorkflow struct {
	mu       sync.Mutex
	state    WorkflowState
	attempt  *models.UploadAttempt
	imageRef string
	result   *models.ClassificationResult
	gen      uint64

	store      ImageStore
	classifier Classifier
	sessions   SessionSource
	log        HistoryService
	logger     logging.Logger
	timeout    time.Duration
}

// NewUploadWorkflow constructs an idle workflow bound to its collaborators.
func NewUploadWorkflow(store ImageStore, classifier Classifier, sessions SessionSource, log HistoryService, logger logging.Logger) *UploadWorkflow {
	return &UploadWorkflow{
		state:      StateIdle,
		store:      store,
		classifier: classifier,
		sessions:   sessions,
		log:        log,
		logger:     logger.With("module", "workflow"),
		timeout:    defaultCallTimeout,
	}
}

// SetCallTimeout overrides the per-collaborator-call deadline.
func (w *UploadWorkflow) SetCallTimeout(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.timeout = d
}

// Select takes ownership of the attempt and moves the workflow to Selected.
// Files whose declared media type is not image/* are rejected without any
// state change; ownership of a rejected attempt stays with the caller.
// A prior attempt, result or error is discarded.
func (w *UploadWorkflow) Select(attempt *models.UploadAttempt) error {
	if attempt == nil {
		return common.ErrInvalidInput
	}
	if !strings.HasPrefix(attempt.MediaType, "image/") {
		return fmt.Errorf("%w: %q", common.ErrUnsupportedMediaType, attempt.MediaType)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.discardLocked()
	w.attempt = attempt
	w.state = StateSelected
	return nil
}

// Reset discards the current attempt, its preview and any held result or
// error, and returns to Idle. Callable from any state; an in-flight
// collaborator result is dropped when it eventually arrives.
func (w *UploadWorkflow) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.discardLocked()
	w.state = StateIdle
}

// discardLocked bumps the generation and clears per-attempt state.
// Caller holds w.mu.
func (w *UploadWorkflow) discardLocked() {
	w.gen++
	if w.attempt != nil {
		if err := w.attempt.Close(); err != nil {
			w.logger.Warn(context.Background(), "failed to release preview", "error", err)
		}
	}
	w.attempt = nil
	w.imageRef = ""
	w.result = nil
}

// Classify runs the selected attempt through upload and classification and
// appends a record on success. It is callable from Selected, or from Failed
// to retry: a retry after an upload failure re-uploads, a retry after a
// classification failure reuses the stored image reference.
//
// Requires a current session; without one it fails with ErrUnauthenticated
// before contacting any collaborator. If the attempt is reset while a
// collaborator call is in flight, the late result is dropped and Classify
// returns (nil, nil).
func (w *UploadWorkflow) Classify(ctx context.Context) (*models.ClassificationResult, error) {
	w.mu.Lock()

	if w.state != StateSelected && w.state != StateFailed {
		w.mu.Unlock()
		return nil, fmt.Errorf("%w: classify from %q", common.ErrInvalidState, w.state)
	}

	sess := w.sessions.Current()
	if sess == nil {
		w.mu.Unlock()
		return nil, common.ErrUnauthenticated
	}

	gen := w.gen
	attempt := w.attempt
	ref := w.imageRef

	if ref == "" {
		w.state = StateUploading
		w.mu.Unlock()

		storeCtx, cancel := context.WithTimeout(ctx, w.timeout)
		storedRef, err := w.store.Store(storeCtx, attempt.Data, attempt.MediaType)
		cancel()

		w.mu.Lock()
		if gen != w.gen {
			w.mu.Unlock()
			w.logger.Info(ctx, "dropping stale upload result")
			return nil, nil
		}
		if err != nil {
			w.state = StateFailed
			w.mu.Unlock()
			return nil, fmt.Errorf("%w: %v", common.ErrUpload, err)
		}
		w.imageRef = storedRef
		ref = storedRef
	}

	w.state = StateClassifying
	w.mu.Unlock()

	classifyCtx, cancel := context.WithTimeout(ctx, w.timeout)
	result, err := w.classifier.Classify(classifyCtx, ref)
	cancel()

	w.mu.Lock()
	if gen != w.gen {
		w.mu.Unlock()
		w.logger.Info(ctx, "dropping stale classification result")
		return nil, nil
	}
	if err != nil {
		w.state = StateFailed
		w.mu.Unlock()
		return nil, fmt.Errorf("%w: %v", common.ErrClassification, err)
	}

	w.result = result
	w.state = StateCompleted
	w.mu.Unlock()

	record := &models.ClassificationRecord{
		OwnerID:  sess.Identity.ID,
		ImageRef: ref,
		Result:   *result,
	}
	if err := w.log.Append(ctx, record); err != nil {
		w.logger.Error(ctx, "failed to append classification record", "error", err)
		return nil, err
	}

	return result, nil
}

// State returns the current workflow stage.
func (w *UploadWorkflow) State() WorkflowState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Result returns the classification result of a completed run, or nil.
func (w *UploadWorkflow) Result() *models.ClassificationResult {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.result
}

// Attempt returns the currently selected attempt, or nil.
func (w *UploadWorkflow) Attempt() *models.UploadAttempt {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.attempt
}
