package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/dmitrijs2005/ecoscan/internal/client/client"
	"github.com/dmitrijs2005/ecoscan/internal/client/models"
	"github.com/dmitrijs2005/ecoscan/internal/client/services"
)

// History prints the local classification history of the logged-in user.
func (a *App) History(ctx context.Context) error {
	sess := a.session.Current()
	if !services.Allow(sess, false) {
		log.Printf("Please log in first")
		return nil
	}

	list, err := a.history.ListFor(ctx, sess.Identity.ID)
	if err != nil {
		log.Printf("Cannot read history: %s", err.Error())
		return err
	}

	if len(list) == 0 {
		fmt.Println("No classifications yet")
		return nil
	}
	for i, rec := range list {
		printRecord(i+1, rec, false)
	}
	return nil
}

// Records lists the classification records stored on the server. With
// all=true it lists records of every user, which requires the admin role.
func (a *App) Records(ctx context.Context, all bool) error {
	sess := a.session.Current()
	if !services.Allow(sess, all) {
		if sess == nil {
			log.Printf("Please log in first")
		} else {
			log.Printf("Admin role required")
		}
		return nil
	}

	list, err := a.api.ListRecords(ctx, all)
	if err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			log.Printf("Server unavailable, use 'history' for the local log")
		} else {
			log.Printf("Cannot list records: %s", err.Error())
		}
		return err
	}

	if len(list) == 0 {
		fmt.Println("No records on the server")
		return nil
	}
	for i, rec := range list {
		printRecord(i+1, rec, all)
	}
	return nil
}

func printRecord(n int, rec *models.ClassificationRecord, withOwner bool) {
	owner := ""
	if withOwner {
		owner = fmt.Sprintf(" owner=%s", rec.OwnerID)
	}
	hazard := ""
	if len(rec.Result.HazardousElements) > 0 {
		hazard = " [" + strings.Join(rec.Result.HazardousElements, ", ") + "]"
	}
	fmt.Printf("%d. %s  %s / %s (%.1f%%)%s%s\n",
		n, rec.CreatedAt.Format("2006-01-02 15:04"),
		rec.Result.ObjectName, rec.Result.Category, rec.Result.Confidence,
		hazard, owner)
}
