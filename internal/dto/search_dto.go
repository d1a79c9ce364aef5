package dto

type SearchRequest struct {
	Query     string `json:"query" validate:"required"`
	ChapterId string `json:"chapter_id"`
	Limit     int    `json:"limit" validate:"omitempty,min=0,max=50"`
	Offset    int    `json:"offset" validate:"omitempty,min=0"`
}

type SearchResultItem struct {
	Id         string  `json:"id"`
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	Score      float64 `json:"score"`
	ChapterId  string  `json:"chapter_id"`
	TextbookId string  `json:"textbook_id"`
}

type SearchResponse struct {
	Results     []SearchResultItem `json:"results"`
	Total       int                `json:"total"`
	QueryTimeMs float64            `json:"query_time_ms"`
	Cached      bool               `json:"cached"`
}
