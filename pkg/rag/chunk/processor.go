package chunk

import (
	"fmt"
	"regexp"
	"strings"
)

// Metadata carries per-chunk bookkeeping that travels with the embedding payload.
type Metadata struct {
	ChapterOrder int `json:"chapter_order"`
	ChunkNumber  int `json:"chunk_number"`
	WordCount    int `json:"word_count"`
}

// Chunk is a bounded slice of chapter text prepared for embedding.
// ContentId is deterministic ("{chapterId}_chunk_{index}") so re-ingesting a
// chapter produces the same ids and never accumulates stale duplicates.
type Chunk struct {
	ContentId  string
	ChapterId  string
	TextbookId string
	Title      string
	Text       string
	Metadata   Metadata
}

var sentenceSplitter = regexp.MustCompile(`[.!?]+\s+`)
var whitespaceCollapser = regexp.MustCompile(`\s+`)

// ChunkText splits text into chunks of at most maxLength characters,
// preserving sentence boundaries where possible. A sentence longer than
// maxLength is word-wrapped; a single word longer than maxLength is emitted
// whole rather than being cut mid-word.
func ChunkText(text string, maxLength int) []string {
	sentences := sentenceSplitter.Split(text, -1)

	var chunks []string
	current := ""

	for _, sentence := range sentences {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}

		if len(current)+len(sentence)+1 > maxLength {
			if current != "" {
				chunks = append(chunks, current)
				current = ""
			}

			if len(sentence) > maxLength {
				chunks = append(chunks, splitLongSentence(sentence, maxLength)...)
			} else {
				current = sentence
			}
		} else {
			if current != "" {
				current += " " + sentence
			} else {
				current = sentence
			}
		}
	}

	if current != "" {
		chunks = append(chunks, current)
	}

	return chunks
}

// splitLongSentence word-wraps a sentence that exceeds maxLength.
func splitLongSentence(sentence string, maxLength int) []string {
	words := strings.Fields(sentence)

	var chunks []string
	current := ""

	for _, word := range words {
		if len(current)+len(word)+1 <= maxLength {
			if current != "" {
				current += " " + word
			} else {
				current = word
			}
		} else {
			if current != "" {
				chunks = append(chunks, current)
			}
			current = word
		}
	}

	if current != "" {
		chunks = append(chunks, current)
	}

	return chunks
}

// ProcessChapter chunks a chapter and assigns stable content ids and metadata.
func ProcessChapter(chapterId, content, chapterTitle, textbookId string, maxLength int) []Chunk {
	texts := ChunkText(content, maxLength)

	chunks := make([]Chunk, 0, len(texts))
	for i, text := range texts {
		title := fmt.Sprintf("Chapter %s - Part %d", chapterId, i+1)
		if chapterTitle != "" {
			title = fmt.Sprintf("%s - Part %d", chapterTitle, i+1)
		}
		chunks = append(chunks, Chunk{
			ContentId:  fmt.Sprintf("%s_chunk_%d", chapterId, i),
			ChapterId:  chapterId,
			TextbookId: textbookId,
			Title:      title,
			Text:       text,
			Metadata: Metadata{
				ChapterOrder: i,
				ChunkNumber:  i,
				WordCount:    len(strings.Fields(text)),
			},
		})
	}

	return chunks
}

// PreprocessForSearch normalizes text for lexical indexing: whitespace is
// collapsed and the result lowercased.
func PreprocessForSearch(text string) string {
	return strings.ToLower(strings.TrimSpace(whitespaceCollapser.ReplaceAllString(text, " ")))
}
