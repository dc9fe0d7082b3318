package models

import "time"

// GuestbookEntry is a flat visitor message with no relationships.
type GuestbookEntry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// GuestbookEntryUpdate carries a partial update of an entry.
type GuestbookEntryUpdate struct {
	Name    *string `json:"name"`
	Message *string `json:"message"`
}
