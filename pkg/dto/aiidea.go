package dto

type GenerateIdeasRequest struct {
	Prompt   string `json:"prompt"`
	RoomType string `json:"room_type"`
	Style    string `json:"style"`
}

type SaveIdeaItemRequest struct {
	Item string `json:"item"`
}
