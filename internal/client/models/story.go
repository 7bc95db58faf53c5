package models

// StoryRequest describes the product a story is generated for.
type StoryRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Materials   []string `json:"materials,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	ArtisanName string   `json:"artisan_name,omitempty"`
	Location    string   `json:"location,omitempty"`
}

// StoryResponse carries either "story" or "generated_story" depending on the
// backend version.
type StoryResponse struct {
	Story          *string `json:"story,omitempty"`
	GeneratedStory *string `json:"generated_story,omitempty"`
}

// Text returns whichever story field is set, preferring "story".
func (r StoryResponse) Text() string {
	if r.Story != nil && *r.Story != "" {
		return *r.Story
	}
	if r.GeneratedStory != nil {
		return *r.GeneratedStory
	}
	return ""
}
