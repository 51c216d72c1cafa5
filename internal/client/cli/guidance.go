package cli

import "github.com/dmitrijs2005/ecoscan/internal/client/models"

// guidanceByCategory maps a classification category to a short disposal
// recommendation shown to the user after a successful classification.
var guidanceByCategory = map[string]string{
	"Battery": "Take to a battery collection point. Never put batteries in household waste: they can leak or ignite.",
	"Display": "Hand in at an e-waste center that accepts screens. Older displays may contain lead or mercury.",
	"PCB":     "Circuit boards belong at a certified e-waste recycler where metals can be recovered safely.",
	"Cable":   "Cables and chargers can go to any e-waste drop-off; the copper inside is fully recyclable.",
}

const guidanceDefault = "Bring to your nearest certified e-waste collection point. Do not dispose of in household waste."

const guidanceHazardous = " Handle with care: this item contains hazardous materials."

func disposalGuidance(r *models.ClassificationResult) string {
	g, ok := guidanceByCategory[r.Category]
	if !ok {
		g = guidanceDefault
	}
	if len(r.HazardousElements) > 0 {
		g += guidanceHazardous
	}
	return g
}
