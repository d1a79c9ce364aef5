package entity

import (
	"time"
)

type Textbook struct {
	Id          string
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

type Chapter struct {
	Id         string
	TextbookId string
	Title      string
	Content    string
	Order      int
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
