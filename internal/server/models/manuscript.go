// Package models defines the catalog entities stored in PostgreSQL:
// manuscripts, blog posts with their comments, and guestbook entries.
// The store assigns identity and creation timestamps for all of them.
package models

import "time"

// ManuscriptStatus is the closed set of loan states a manuscript can be in.
type ManuscriptStatus string

const (
	StatusAvailable ManuscriptStatus = "Available"
	StatusOnLoan    ManuscriptStatus = "OnLoan"
	StatusDamaged   ManuscriptStatus = "Damaged"
)

// Valid reports whether s is one of the three known states.
func (s ManuscriptStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusOnLoan, StatusDamaged:
		return true
	}
	return false
}

// Manuscript is one catalogued manuscript record.
type Manuscript struct {
	ID                string           `json:"id"`
	Title             string           `json:"title"`
	Author            string           `json:"author"`
	InventoryCode     string           `json:"inventoryCode"`
	DigitalCode       string           `json:"digitalCode"`
	Status            ManuscriptStatus `json:"status"`
	Copyist           string           `json:"copyist,omitempty"`
	CopyYear          int              `json:"copyYear,omitempty"`
	PageCount         int              `json:"pageCount"`
	Ink               string           `json:"ink,omitempty"`
	Category          string           `json:"category"`
	Language          string           `json:"language"`
	Script            string           `json:"script"`
	Size              string           `json:"size"`
	Description       string           `json:"description"`
	Condition         string           `json:"condition"`
	Readability       string           `json:"readability"`
	Colophon          string           `json:"colophon,omitempty"`
	CoverImageURL     string           `json:"coverImageUrl"`
	ExternalFolderURL string           `json:"externalFolderUrl,omitempty"`
	CreatedAt         time.Time        `json:"createdAt"`
}

// ManuscriptUpdate carries a partial update. Nil fields keep the stored
// values; id and creation timestamp can never be changed.
type ManuscriptUpdate struct {
	Title             *string           `json:"title"`
	Author            *string           `json:"author"`
	InventoryCode     *string           `json:"inventoryCode"`
	DigitalCode       *string           `json:"digitalCode"`
	Status            *ManuscriptStatus `json:"status"`
	Copyist           *string           `json:"copyist"`
	CopyYear          *int              `json:"copyYear"`
	PageCount         *int              `json:"pageCount"`
	Ink               *string           `json:"ink"`
	Category          *string           `json:"category"`
	Language          *string           `json:"language"`
	Script            *string           `json:"script"`
	Size              *string           `json:"size"`
	Description       *string           `json:"description"`
	Condition         *string           `json:"condition"`
	Readability       *string           `json:"readability"`
	Colophon          *string           `json:"colophon"`
	CoverImageURL     *string           `json:"coverImageUrl"`
	ExternalFolderURL *string           `json:"externalFolderUrl"`
}
