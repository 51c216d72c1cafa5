package cli

import (
	"strings"
	"testing"

	"github.com/dmitrijs2005/ecoscan/internal/client/models"
)

func TestDisposalGuidance(t *testing.T) {
	tests := []struct {
		name   string
		result models.ClassificationResult
		want   string
	}{
		{
			name:   "known category",
			result: models.ClassificationResult{Category: "Battery"},
			want:   "battery collection point",
		},
		{
			name:   "unknown category falls back to default",
			result: models.ClassificationResult{Category: "Toaster"},
			want:   "nearest certified e-waste collection point",
		},
		{
			name:   "hazardous elements add a warning",
			result: models.ClassificationResult{Category: "Display", HazardousElements: []string{"Mercury"}},
			want:   "Handle with care",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := disposalGuidance(&tt.result)
			if !strings.Contains(got, tt.want) {
				t.Fatalf("guidance %q does not contain %q", got, tt.want)
			}
		})
	}
}
