package factory

import (
	"fmt"

	"ai-textbook-be/pkg/llm"
	"ai-textbook-be/pkg/llm/huggingface"
	"ai-textbook-be/pkg/llm/ollama"
)

func NewLLMProvider(providerType, modelName, baseURL, hfApiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	case "huggingface":
		return huggingface.NewHuggingFaceProvider(hfApiKey, "", modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
