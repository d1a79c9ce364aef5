package service

import (
	"testing"

	"ai-textbook-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonalizationOptionsForAdvancedUser(t *testing.T) {
	user := &entity.User{ExperienceLevel: "advanced"}

	options := personalizationOptionsFor(user)
	assert.Equal(t, true, options["skip_basics"])
	assert.Equal(t, true, options["add_advanced_examples"])
	assert.NotContains(t, options, "add_basics")
}

func TestPersonalizationOptionsForBeginnerWithSoftwareBackground(t *testing.T) {
	user := &entity.User{
		ExperienceLevel:    "beginner",
		SoftwareBackground: "web development",
	}

	options := personalizationOptionsFor(user)
	assert.Equal(t, true, options["add_basics"])
	assert.Equal(t, true, options["simplified_explanation"])
	assert.Equal(t, true, options["code_focus"])
	assert.Equal(t, true, options["implementation_details"])
}

func TestPersonalizationOptionsForMixedBackground(t *testing.T) {
	user := &entity.User{
		SoftwareBackground: "embedded",
		HardwareBackground: "robotics",
	}

	options := personalizationOptionsFor(user)
	assert.Equal(t, true, options["balanced_approach"])
	assert.NotContains(t, options, "code_focus")
	assert.NotContains(t, options, "theory_focus")
}

func TestPersonalizationOptionsForBlankProfile(t *testing.T) {
	options := personalizationOptionsFor(&entity.User{})
	assert.Empty(t, options)
}

func TestLearningPathPrefersExperienceLevel(t *testing.T) {
	user := &entity.User{
		ExperienceLevel:    "beginner",
		SoftwareBackground: "web development",
	}

	path, reason := learningPathFor(user)
	assert.Equal(t, "beginner", path)
	assert.Contains(t, reason, "beginner")
}

func TestLearningPathFromBackground(t *testing.T) {
	path, _ := learningPathFor(&entity.User{HardwareBackground: "robotics"})
	assert.Equal(t, "hardware-focused", path)

	path, _ = learningPathFor(&entity.User{SoftwareBackground: "backend"})
	assert.Equal(t, "software-focused", path)

	path, reason := learningPathFor(&entity.User{})
	assert.Equal(t, "standard", path)
	assert.Equal(t, "General recommendation", reason)
}

func TestSuggestedChapterOrderPerPath(t *testing.T) {
	advanced := suggestedChapterOrder("advanced")
	require.NotEmpty(t, advanced)
	assert.Equal(t, "advanced", advanced[0])

	software := suggestedChapterOrder("software-focused")
	assert.Contains(t, software, "software-aspects")

	standard := suggestedChapterOrder("standard")
	assert.Equal(t, "introduction", standard[0])
	assert.Equal(t, suggestedChapterOrder("beginner"), standard)
}

func TestAdaptationSuggestionsForHardwareBeginner(t *testing.T) {
	user := &entity.User{
		ExperienceLevel:    "beginner",
		HardwareBackground: "electronics",
	}

	suggestions := adaptationSuggestionsFor(user)
	require.Len(t, suggestions, 2)

	types := []string{suggestions[0].Type, suggestions[1].Type}
	assert.Contains(t, types, "add_context")
	assert.Contains(t, types, "add_theory")
}

func TestAdaptationSuggestionsForBlankProfile(t *testing.T) {
	assert.Empty(t, adaptationSuggestionsFor(&entity.User{}))
}
