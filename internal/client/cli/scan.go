package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/dmitrijs2005/ecoscan/internal/client/models"
	"github.com/dmitrijs2005/ecoscan/internal/common"
)

// Select loads the photo at path and hands it to the workflow.
func (a *App) Select(ctx context.Context, path string) error {
	attempt, err := models.NewUploadAttempt(path)
	if err != nil {
		log.Printf("Cannot open %s: %s", path, err.Error())
		return err
	}

	if err := a.workflow.Select(attempt); err != nil {
		_ = attempt.Close()
		if errors.Is(err, common.ErrUnsupportedMediaType) {
			log.Printf("Not an image file: %s", path)
		} else {
			log.Printf("Cannot select %s: %s", path, err.Error())
		}
		return err
	}

	fmt.Printf("Selected %s (%s, %d bytes)\n", attempt.Path, attempt.MediaType, len(attempt.Data))
	return nil
}

// Classify runs the selected photo through upload and classification and
// prints the result with disposal guidance.
func (a *App) Classify(ctx context.Context) error {
	result, err := a.workflow.Classify(ctx)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrUnauthenticated):
			log.Printf("Please log in first")
		case errors.Is(err, common.ErrInvalidState):
			log.Printf("Nothing to classify: select a photo first")
		case errors.Is(err, common.ErrUpload):
			log.Printf("Upload failed, try 'classify' again: %s", err.Error())
		case errors.Is(err, common.ErrClassification):
			log.Printf("Classification failed, try 'classify' again: %s", err.Error())
		default:
			log.Printf("Classification error: %s", err.Error())
		}
		return err
	}
	if result == nil {
		// the attempt was reset or replaced while the request was in flight
		return nil
	}

	printResult(result)
	return nil
}

// Reset discards the current attempt and returns the workflow to idle.
func (a *App) Reset(ctx context.Context) error {
	a.workflow.Reset()
	fmt.Println("Workflow reset")
	return nil
}

// Status prints the workflow stage, session and connectivity state.
func (a *App) Status(ctx context.Context) error {
	fmt.Printf("Workflow: %s\n", a.workflow.State())
	if sess := a.session.Current(); sess != nil {
		fmt.Printf("Logged in as: %s (%s)\n", sess.Identity.Email, sess.Identity.Role)
	} else {
		fmt.Println("Not logged in")
	}
	if a.Mode != "" {
		fmt.Printf("Connection: %s\n", a.Mode)
	}
	if r := a.workflow.Result(); r != nil {
		printResult(r)
	}
	return nil
}

func printResult(r *models.ClassificationResult) {
	fmt.Printf("Identified: %s (category: %s, confidence: %.1f%%)\n", r.ObjectName, r.Category, r.Confidence)
	if len(r.HazardousElements) > 0 {
		fmt.Printf("Hazardous elements: %s\n", strings.Join(r.HazardousElements, ", "))
	}
	fmt.Printf("Disposal: %s\n", disposalGuidance(r))
}
