package service

import (
	"context"
	"strings"

	"ai-textbook-be/internal/dto"
	"ai-textbook-be/internal/pkg/logger"
	"ai-textbook-be/pkg/llm"
)

const defaultTargetLanguage = "ur"

var languageNames = map[string]string{
	"ur": "Urdu",
}

type ITranslationService interface {
	TranslateChapter(ctx context.Context, req *dto.TranslateChapterRequest) (*dto.TranslateChapterResponse, error)
}

type translationService struct {
	llmProvider llm.LLMProvider
	log         logger.ILogger
}

func NewTranslationService(llmProvider llm.LLMProvider, log logger.ILogger) ITranslationService {
	return &translationService{
		llmProvider: llmProvider,
		log:         log,
	}
}

// TranslateChapter translates chapter content with the LLM provider. An
// unsupported target language or a provider failure falls back to the
// original content rather than failing the request.
func (s *translationService) TranslateChapter(ctx context.Context, req *dto.TranslateChapterRequest) (*dto.TranslateChapterResponse, error) {
	target := strings.ToLower(req.TargetLanguage)
	if target == "" {
		target = defaultTargetLanguage
	}

	res := &dto.TranslateChapterResponse{
		ChapterId:       req.ChapterId,
		OriginalContent: req.Content,
		TargetLanguage:  target,
	}

	language, supported := languageNames[target]
	if !supported {
		res.TranslatedContent = req.Content
		return res, nil
	}

	history := []llm.Message{
		{
			Role:    "system",
			Content: "You are a professional translator. Translate the given English text to " + language + ". Respond only with the translated text, nothing else.",
		},
		{
			Role:    "user",
			Content: "Translate the following text to " + language + ":\n\n" + req.Content,
		},
	}

	translated, err := s.llmProvider.Chat(ctx, history, llm.WithTemperature(0.3))
	if err != nil {
		s.log.Warn("translation", "Translation failed, returning original content", map[string]interface{}{
			"chapter_id": req.ChapterId,
			"error":      err.Error(),
		})
		res.TranslatedContent = req.Content
		return res, nil
	}

	res.TranslatedContent = strings.TrimSpace(translated)
	return res, nil
}
