package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookmarkRequest struct {
	ChapterId string `json:"chapter_id" validate:"required"`
	Note      string `json:"note"`
}

type BookmarkResponse struct {
	Id        uuid.UUID `json:"id"`
	ChapterId string    `json:"chapter_id"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

type ChapterPreferenceRequest struct {
	DifficultyLevel    string                 `json:"difficulty_level" validate:"omitempty,oneof=default beginner intermediate advanced"`
	FocusArea          string                 `json:"focus_area"`
	ExamplesPreference string                 `json:"examples_preference"`
	ContentPreferences map[string]interface{} `json:"content_preferences"`
}

type ChapterPreferenceResponse struct {
	ChapterId   string                 `json:"chapter_id"`
	Preferences map[string]interface{} `json:"preferences"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

type UserBackground struct {
	SoftwareBackground string `json:"software_background"`
	HardwareBackground string `json:"hardware_background"`
	ExperienceLevel    string `json:"experience_level"`
}

// PersonalizedChapterResponse is the read side of chapter preferences:
// stored preferences merged with options derived from the user background.
type PersonalizedChapterResponse struct {
	ChapterId              string                 `json:"chapter_id"`
	UserBackground         UserBackground         `json:"user_background"`
	PersonalizationOptions map[string]interface{} `json:"personalization_options"`
	RecommendedDifficulty  string                 `json:"recommended_difficulty"`
}

type LearningPathResponse struct {
	Path           string   `json:"path"`
	Reason         string   `json:"reason"`
	SuggestedOrder []string `json:"suggested_order"`
}

type AdaptContentRequest struct {
	ChapterId string `json:"chapter_id"`
	Content   string `json:"content" validate:"required"`
}

type AdaptationSuggestion struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

type AdaptContentResponse struct {
	OriginalContent string                 `json:"original_content"`
	Suggestions     []AdaptationSuggestion `json:"suggestions"`
	UserProfile     UserBackground         `json:"user_profile"`
}

type TranslateChapterRequest struct {
	ChapterId      string `json:"chapter_id" validate:"required"`
	Content        string `json:"content" validate:"required"`
	TargetLanguage string `json:"target_language"`
}

type TranslateChapterResponse struct {
	ChapterId         string `json:"chapter_id"`
	OriginalContent   string `json:"original_content"`
	TranslatedContent string `json:"translated_content"`
	TargetLanguage    string `json:"target_language"`
}

type UpdateProgressRequest struct {
	ChapterId string  `json:"chapter_id" validate:"required"`
	Position  float64 `json:"position" validate:"min=0,max=1"`
	Completed bool    `json:"completed"`
}

type ProgressResponse struct {
	ChapterId string    `json:"chapter_id"`
	Position  float64   `json:"position"`
	Completed bool      `json:"completed"`
	UpdatedAt time.Time `json:"updated_at"`
}
