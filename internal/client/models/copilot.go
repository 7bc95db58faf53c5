package models

// Analysis statuses reported by POST /copilot/analyze.
const (
	AnalysisAutoAccepted      = "auto_accepted"
	AnalysisNeedsConfirmation = "needs_confirmation"
	AnalysisRejected          = "rejected"
)

// ImageAnalysis is the result of an image upload. Suggestions are absent when
// the backend rejected the image.
type ImageAnalysis struct {
	Status                string   `json:"status"`
	GCSURI                string   `json:"gcs_uri"`
	EnhancedURI           *string  `json:"enhanced_uri,omitempty"`
	SuggestedTitle        *string  `json:"suggested_title,omitempty"`
	SuggestedMaterials    []string `json:"suggested_materials,omitempty"`
	PrimaryColors         []string `json:"primary_colors,omitempty"`
	SEOTags               []string `json:"seo_tags,omitempty"`
	EstimatedDimensionsCM *string  `json:"estimated_dimensions_cm,omitempty"`
	ConfidenceScore       float64  `json:"confidence_score"`
}

// HasSuggestions reports whether the backend returned AI suggestions.
func (a ImageAnalysis) HasSuggestions() bool {
	return a.Status != AnalysisRejected && a.Status != ""
}

// EnhanceRequest is the body of POST /copilot/enhance.
type EnhanceRequest struct {
	GCSURI string `json:"gcs_uri"`
}

// EnhancedImage is the reply of POST /copilot/enhance.
type EnhancedImage struct {
	EnhancedGCSURI string `json:"enhanced_gcs_uri"`
}
