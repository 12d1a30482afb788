package geocoder

// Suggestion is one address match ready for a select control.
type Suggestion struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// autocompleteResponse is the Geoapify autocomplete payload.
type autocompleteResponse struct {
	Features []struct {
		Properties struct {
			Formatted string `json:"formatted"`
			PlaceID   string `json:"place_id"`
		} `json:"properties"`
	} `json:"features"`
}
