package dto

import "time"

type TextbookResponse struct {
	Id          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type ChapterSummary struct {
	Id    string `json:"id"`
	Title string `json:"title"`
	Order int    `json:"order"`
}

type TextbookDetailResponse struct {
	Id          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Chapters    []ChapterSummary `json:"chapters"`
}

type ChapterResponse struct {
	Id         string     `json:"id"`
	TextbookId string     `json:"textbook_id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Order      int        `json:"order"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}
