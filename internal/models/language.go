package models

type Language struct {
	ID        int64  `json:"id"`
	ProfileID int64  `json:"profile_id"`
	Name      string `json:"name"`
	Level     string `json:"level"`
	IsNative  bool   `json:"is_native"`
}

type LanguageInput struct {
	ID       int64  `json:"id,omitempty"`
	Name     string `json:"name"`
	Level    string `json:"level"`
	IsNative bool   `json:"is_native"`
}

// LanguageLevels — допустимые уровни владения (как в исходной схеме).
var LanguageLevels = []string{
	"A1", "A2", "B1", "B2", "C1", "C2",
	"beginner", "intermediate", "advanced", "fluent", "native_like",
}
