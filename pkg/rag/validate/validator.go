package validate

import (
	"fmt"
	"strings"

	"ai-textbook-be/internal/repository/contract"
)

// Report is the outcome of checking a generated answer against the retrieved
// context. Ephemeral, produced per call.
type Report struct {
	IsAccurate      bool     `json:"is_accurate"`
	ConfidenceScore float64  `json:"confidence_score"`
	Issues          []string `json:"issues"`
	Suggestions     []string `json:"suggestions"`
}

// ExternalKnowledgeReport flags phrases suggesting the answer leans on
// knowledge outside the retrieved content.
type ExternalKnowledgeReport struct {
	NoExternalKnowledge  bool     `json:"no_external_knowledge"`
	HasExternalKnowledge bool     `json:"has_external_knowledge"`
	ExternalIndicators   []string `json:"external_indicators"`
}

var hallucinationIndicators = []string{
	"according to my training data",
	"i found this information",
	"based on general knowledge",
	"wikipedia says",
	"the internet says",
}

var externalIndicators = []string{
	"recently in the news",
	"as of 2023",
	"as of 2024",
	"latest research shows",
	"new studies indicate",
	"breaking news",
	"current events",
	"recent developments",
}

// ResponseAccuracy sanity-checks that a generated answer is grounded in the
// retrieved context: non-empty, free of hallucination-indicator phrases, and
// with sufficient word overlap against the context texts.
func ResponseAccuracy(response, query string, contextUsed []contract.ScoredEmbedding) *Report {
	report := &Report{
		IsAccurate:      true,
		ConfidenceScore: 1.0,
		Issues:          []string{},
		Suggestions:     []string{},
	}

	if strings.TrimSpace(response) == "" {
		report.IsAccurate = false
		report.ConfidenceScore = 0.0
		report.Issues = append(report.Issues, "Response is empty")
		return report
	}

	responseLower := strings.ToLower(response)

	for _, indicator := range hallucinationIndicators {
		if strings.Contains(responseLower, indicator) {
			report.IsAccurate = false
			report.ConfidenceScore = 0.2
			report.Issues = append(report.Issues,
				fmt.Sprintf("Response contains potential hallucination indicator: '%s'", indicator))
			report.Suggestions = append(report.Suggestions,
				"Ensure the response only references information from the textbook content")
		}
	}

	if len(contextUsed) > 0 {
		var contextParts []string
		for _, item := range contextUsed {
			contextParts = append(contextParts, item.Payload.Text)
		}
		contextWords := wordSet(strings.ToLower(strings.Join(contextParts, " ")))
		responseWords := wordSet(responseLower)

		// Guard: an empty response word set would divide by zero.
		if len(contextWords) > 0 && len(responseWords) > 0 {
			common := 0
			for w := range responseWords {
				if _, ok := contextWords[w]; ok {
					common++
				}
			}
			overlapRatio := float64(common) / float64(len(responseWords))

			if overlapRatio < 0.3 {
				report.ConfidenceScore *= 0.5
				report.Issues = append(report.Issues,
					fmt.Sprintf("Low text overlap with provided context: %.2f%%", overlapRatio*100))
				report.Suggestions = append(report.Suggestions,
					"Ensure the response is more directly based on the textbook content")
			}
		}
	}

	return report
}

// SourceCitation reports whether the answer cites any sources at all. It does
// not verify that the answer content matches the cited sources.
func SourceCitation(response string, sources []string) bool {
	return len(sources) > 0
}

// NoExternalKnowledge scans the answer for temporal/external-knowledge phrases.
func NoExternalKnowledge(response string) *ExternalKnowledgeReport {
	result := &ExternalKnowledgeReport{
		NoExternalKnowledge: true,
		ExternalIndicators:  []string{},
	}

	responseLower := strings.ToLower(response)
	for _, indicator := range externalIndicators {
		if strings.Contains(responseLower, indicator) {
			result.NoExternalKnowledge = false
			result.HasExternalKnowledge = true
			result.ExternalIndicators = append(result.ExternalIndicators, indicator)
		}
	}

	return result
}

func wordSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(text) {
		set[w] = struct{}{}
	}
	return set
}
