package domain

import "time"

// Collection is a curated set of products. It is local-only: there is no
// remote persistence for collections.
//
// ProductIDs are referential with no cascade delete; ProductNames is a
// denormalized cache of the member product names captured at save time.
type Collection struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	ProductIDs   []string  `json:"productIds"`
	ProductNames []string  `json:"productNames"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CollectionInput carries the fields submitted when creating or editing a
// collection. An empty ID means a new collection.
type CollectionInput struct {
	ID          string
	Name        string
	Description string
	Image       string
	ProductIDs  []string
}
