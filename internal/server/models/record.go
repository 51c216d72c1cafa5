package models

import "time"

// Record is one stored classification: which user classified which uploaded
// image, and what the classifier said about it.
type Record struct {
	ID                string    `db:"id"`
	OwnerID           string    `db:"owner_id"`
	ImageRef          string    `db:"image_ref"`
	ObjectName        string    `db:"object_name"`
	Category          string    `db:"category"`
	HazardousElements []string  `db:"hazardous_elements"`
	Confidence        float64   `db:"confidence"`
	CreatedAt         time.Time `db:"created_at"`
}
