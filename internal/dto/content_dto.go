package dto

type CreateTextbookRequest struct {
	Id          string `json:"id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

type UpsertChapterRequest struct {
	Id         string `json:"id" validate:"required"`
	TextbookId string `json:"textbook_id" validate:"required"`
	Title      string `json:"title" validate:"required"`
	Content    string `json:"content"`
	Order      int    `json:"order"`
}

type UpsertChapterResponse struct {
	Id string `json:"id"`
}

type ReindexChapterResponse struct {
	ChapterId string `json:"chapter_id"`
	Chunks    int    `json:"chunks"`
}

// PublishEmbedChapterMessage is the payload queued for the embedding worker.
type PublishEmbedChapterMessage struct {
	ChapterId string `json:"chapter_id"`
}
