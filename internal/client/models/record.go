package models

import "time"

// ClassificationResult is the payload returned by the classifier service.
// The client treats it as opaque: confidence and the hazardous element list
// are passed through and persisted without interpretation.
type ClassificationResult struct {
	ObjectName        string   `json:"object_name"`
	Category          string   `json:"category"`
	HazardousElements []string `json:"hazardous_elements"`
	Confidence        float64  `json:"confidence"`
}

// ClassificationRecord is one completed workflow run: the owner, the stored
// image reference and the result. Records are append-only and never mutated.
type ClassificationRecord struct {
	ID        string
	OwnerID   string
	ImageRef  string
	Result    ClassificationResult
	CreatedAt time.Time
}
