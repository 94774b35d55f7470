package domain

import "time"

// CatalogSnapshot is a last-known-good copy of the remote-synced slices,
// written after a successful hydration and replayed when the remote API is
// unreachable.
type CatalogSnapshot struct {
	Categories []Category `json:"categories"`
	Products   []Product  `json:"products"`
	FetchedAt  time.Time  `json:"fetchedAt"`
}
