package models

import "time"

type AIIdeaSet struct {
	ID         string    `json:"id"`
	Prompt     string    `json:"prompt"`
	RoomType   string    `json:"room_type"`
	Style      string    `json:"style"`
	Images     []string  `json:"images"`
	CreatedAt  time.Time `json:"created_at"`
	SavedItems []string  `json:"saved_items"`
}
