package models

type ProfileHighlight struct {
	ID        int64   `json:"id"`
	ProfileID int64   `json:"profile_id"`
	Title     string  `json:"title"`
	Value     string  `json:"value"`
	Icon      *string `json:"icon,omitempty"`
	Position  int     `json:"order"`
}

type ProfileHighlightInput struct {
	ID    int64   `json:"id,omitempty"`
	Title string  `json:"title"`
	Value string  `json:"value"`
	Icon  *string `json:"icon,omitempty"`
	Order *int    `json:"order,omitempty"`
}
