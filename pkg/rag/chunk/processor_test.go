package chunk

import (
	"strings"
	"testing"
)

func TestChunkText(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		maxLength int
		want      []string
	}{
		{
			name:      "empty input",
			text:      "",
			maxLength: 50,
			want:      nil,
		},
		{
			name:      "whitespace only",
			text:      "   \n\t  ",
			maxLength: 50,
			want:      nil,
		},
		{
			name:      "single short sentence",
			text:      "Hello world.",
			maxLength: 50,
			want:      []string{"Hello world."},
		},
		{
			name:      "two sentences fit in one chunk",
			text:      "One fish. Two fish.",
			maxLength: 50,
			want:      []string{"One fish Two fish."},
		},
		{
			name:      "sentences split across chunks",
			text:      "Physical AI combines AI with physical systems. It requires sensors and actuators.",
			maxLength: 50,
			want: []string{
				"Physical AI combines AI with physical systems",
				"It requires sensors and actuators.",
			},
		},
		{
			name:      "oversized word emitted whole",
			text:      "supercalifragilisticexpialidocious",
			maxLength: 10,
			want:      []string{"supercalifragilisticexpialidocious"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChunkText(tt.text, tt.maxLength)
			if len(got) != len(tt.want) {
				t.Fatalf("ChunkText() = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("chunk[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestChunkTextBounds(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog. " +
		"Pack my box with five dozen liquor jugs! " +
		"How vexingly quick daft zebras jump? " +
		"Sphinx of black quartz, judge my vow."

	for _, maxLength := range []int{10, 25, 60, 200} {
		chunks := ChunkText(text, maxLength)
		for i, c := range chunks {
			if len(c) > maxLength && len(strings.Fields(c)) > 1 {
				t.Errorf("maxLength=%d: chunk[%d] has length %d: %q", maxLength, i, len(c), c)
			}
		}

		// Word content must survive chunking, modulo whitespace and the
		// terminal punctuation consumed by the sentence splitter.
		joined := strings.Join(chunks, " ")
		wantWords := strings.Fields(sentenceSplitter.ReplaceAllString(text, " "))
		gotWords := strings.Fields(joined)
		if len(gotWords) != len(wantWords) {
			t.Errorf("maxLength=%d: word count %d, want %d", maxLength, len(gotWords), len(wantWords))
		}
	}
}

func TestProcessChapter(t *testing.T) {
	content := "Physical AI combines AI with physical systems. It requires sensors and actuators."

	chunks := ProcessChapter("intro", content, "Introduction", "physical-ai", 50)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}

	if chunks[0].ContentId != "intro_chunk_0" || chunks[1].ContentId != "intro_chunk_1" {
		t.Errorf("unexpected content ids: %s, %s", chunks[0].ContentId, chunks[1].ContentId)
	}
	if chunks[0].Title != "Introduction - Part 1" {
		t.Errorf("unexpected title: %s", chunks[0].Title)
	}
	if chunks[1].Metadata.ChunkNumber != 1 || chunks[1].Metadata.ChapterOrder != 1 {
		t.Errorf("unexpected metadata: %+v", chunks[1].Metadata)
	}
	if chunks[0].Metadata.WordCount != len(strings.Fields(chunks[0].Text)) {
		t.Errorf("word count mismatch: %d", chunks[0].Metadata.WordCount)
	}

	// Replayable: a second run yields identical ids.
	again := ProcessChapter("intro", content, "Introduction", "physical-ai", 50)
	for i := range chunks {
		if chunks[i].ContentId != again[i].ContentId {
			t.Errorf("content id not stable at %d: %s vs %s", i, chunks[i].ContentId, again[i].ContentId)
		}
	}
}

func TestProcessChapterTitleFallback(t *testing.T) {
	chunks := ProcessChapter("c9", "Short text.", "", "", 100)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Title != "Chapter c9 - Part 1" {
		t.Errorf("unexpected fallback title: %s", chunks[0].Title)
	}
}

func TestPreprocessForSearch(t *testing.T) {
	got := PreprocessForSearch("  Physical   AI\n\tSystems  ")
	if got != "physical ai systems" {
		t.Errorf("PreprocessForSearch() = %q", got)
	}
}
