package validate

import (
	"testing"

	"ai-textbook-be/internal/repository/contract"

	"github.com/stretchr/testify/assert"
)

func contextOf(texts ...string) []contract.ScoredEmbedding {
	items := make([]contract.ScoredEmbedding, len(texts))
	for i, t := range texts {
		items[i] = contract.ScoredEmbedding{
			Id:      "id",
			Score:   0.9,
			Payload: contract.EmbeddingPayload{Text: t},
		}
	}
	return items
}

func TestResponseAccuracyEmptyResponse(t *testing.T) {
	report := ResponseAccuracy("", "question", nil)

	assert.False(t, report.IsAccurate)
	assert.Equal(t, 0.0, report.ConfidenceScore)
	assert.Equal(t, []string{"Response is empty"}, report.Issues)
}

func TestResponseAccuracyWhitespaceResponse(t *testing.T) {
	report := ResponseAccuracy("   \n ", "question", contextOf("some context"))

	assert.False(t, report.IsAccurate)
	assert.Equal(t, 0.0, report.ConfidenceScore)
}

func TestResponseAccuracyHallucinationIndicator(t *testing.T) {
	report := ResponseAccuracy(
		"According to my training data, sensors measure things.",
		"what do sensors do",
		nil,
	)

	assert.False(t, report.IsAccurate)
	assert.Equal(t, 0.2, report.ConfidenceScore)
	assert.Len(t, report.Issues, 1)
	assert.Len(t, report.Suggestions, 1)
}

func TestResponseAccuracyGroundedAnswer(t *testing.T) {
	ctx := contextOf("Physical AI combines AI with physical systems. It requires sensors and actuators.")
	report := ResponseAccuracy(
		"Physical AI combines AI with physical systems and requires sensors.",
		"What is Physical AI?",
		ctx,
	)

	assert.True(t, report.IsAccurate)
	assert.Equal(t, 1.0, report.ConfidenceScore)
	assert.Empty(t, report.Issues)
}

func TestResponseAccuracyLowOverlap(t *testing.T) {
	ctx := contextOf("Photosynthesis converts sunlight into chemical energy in plants.")
	report := ResponseAccuracy(
		"Quantum entanglement links particle states across arbitrary distances forever.",
		"what is photosynthesis",
		ctx,
	)

	// Low overlap halves the confidence but does not flip accuracy on its own.
	assert.True(t, report.IsAccurate)
	assert.Equal(t, 0.5, report.ConfidenceScore)
	assert.Len(t, report.Issues, 1)
}

func TestSourceCitation(t *testing.T) {
	assert.False(t, SourceCitation("answer", nil))
	assert.False(t, SourceCitation("answer", []string{}))
	assert.True(t, SourceCitation("answer", []string{"intro_chunk_0"}))
}

func TestNoExternalKnowledge(t *testing.T) {
	clean := NoExternalKnowledge("Sensors convert physical quantities into signals.")
	assert.True(t, clean.NoExternalKnowledge)
	assert.False(t, clean.HasExternalKnowledge)
	assert.Empty(t, clean.ExternalIndicators)

	flagged := NoExternalKnowledge("As of 2024, breaking news suggests otherwise.")
	assert.False(t, flagged.NoExternalKnowledge)
	assert.True(t, flagged.HasExternalKnowledge)
	assert.ElementsMatch(t, []string{"as of 2024", "breaking news"}, flagged.ExternalIndicators)
}
