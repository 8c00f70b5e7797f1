package models

type ContactMethod struct {
	ID        int64   `json:"id"`
	ProfileID int64   `json:"profile_id"`
	Type      string  `json:"type"`
	Value     string  `json:"value"`
	Label     *string `json:"label,omitempty"`
	Icon      *string `json:"icon,omitempty"`
	Position  int     `json:"order"`
}

type ContactMethodInput struct {
	ID    int64   `json:"id,omitempty"`
	Type  string  `json:"type"`
	Value string  `json:"value"`
	Label *string `json:"label,omitempty"`
	Icon  *string `json:"icon,omitempty"`
	Order *int    `json:"order,omitempty"`
}

// ContactTypes — известные виды контактов; всё остальное сохраняем как "other".
var ContactTypes = []string{
	"email", "phone", "website", "linkedin", "github", "twitter", "instagram", "other",
}
