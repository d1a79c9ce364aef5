package service

import (
	"context"
	"errors"
	"testing"

	"ai-textbook-be/internal/dto"
	"ai-textbook-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLLM struct {
	reply   string
	err     error
	history []llm.Message
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.history = history
	return f.reply, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func TestTranslateChapterToUrdu(t *testing.T) {
	provider := &fakeLLM{reply: "  ترجمہ شدہ متن  "}
	svc := NewTranslationService(provider, nopLogger{})

	res, err := svc.TranslateChapter(context.Background(), &dto.TranslateChapterRequest{
		ChapterId: "intro",
		Content:   "Physical AI combines AI with physical systems.",
	})
	require.NoError(t, err)

	assert.Equal(t, "intro", res.ChapterId)
	assert.Equal(t, "ur", res.TargetLanguage)
	assert.Equal(t, "ترجمہ شدہ متن", res.TranslatedContent)
	assert.Equal(t, "Physical AI combines AI with physical systems.", res.OriginalContent)

	require.Len(t, provider.history, 2)
	assert.Equal(t, "system", provider.history[0].Role)
	assert.Contains(t, provider.history[0].Content, "Urdu")
}

func TestTranslateChapterUnsupportedLanguageReturnsOriginal(t *testing.T) {
	provider := &fakeLLM{reply: "should not be used"}
	svc := NewTranslationService(provider, nopLogger{})

	res, err := svc.TranslateChapter(context.Background(), &dto.TranslateChapterRequest{
		ChapterId:      "intro",
		Content:        "Some content",
		TargetLanguage: "fr",
	})
	require.NoError(t, err)

	assert.Equal(t, "Some content", res.TranslatedContent)
	assert.Empty(t, provider.history)
}

func TestTranslateChapterProviderFailureFallsBack(t *testing.T) {
	provider := &fakeLLM{err: errors.New("backend down")}
	svc := NewTranslationService(provider, nopLogger{})

	res, err := svc.TranslateChapter(context.Background(), &dto.TranslateChapterRequest{
		ChapterId: "intro",
		Content:   "Some content",
	})
	require.NoError(t, err)
	assert.Equal(t, "Some content", res.TranslatedContent)
}
