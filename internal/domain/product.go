package domain

// ProductStatus is the lifecycle state of a product listing.
type ProductStatus string

const (
	ProductActive   ProductStatus = "active"
	ProductDraft    ProductStatus = "draft"
	ProductArchived ProductStatus = "archived"
)

// MaxProductImages is the number of discrete image slots the remote API
// exposes per product (image1..image4).
const MaxProductImages = 4

// Product is an admin catalog product. Category references a Category by
// name, not id; the reference is weak and a missing category is tolerated.
type Product struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Category        string        `json:"category"`
	SKU             string        `json:"sku"`
	Slug            string        `json:"slug"`
	Price           float64       `json:"price"`
	PreviousPrice   float64       `json:"previousPrice,omitempty"`
	Stock           int           `json:"stock"`
	Featured        bool          `json:"featured"`
	Image           string        `json:"image"`
	Images          []string      `json:"images"`
	Description     string        `json:"description"`
	MetaTitle       string        `json:"metaTitle,omitempty"`
	MetaDescription string        `json:"metaDescription,omitempty"`
	Keywords        []string      `json:"keywords"`
	Status          ProductStatus `json:"status"`
}

// ProductInput carries the fields an admin screen submits when creating a
// product. Images holds up to MaxProductImages entries; the wire layer maps
// them onto the remote image slots.
type ProductInput struct {
	Name            string
	Category        string
	SKU             string
	Slug            string
	Price           float64
	PreviousPrice   float64
	Stock           int
	Featured        bool
	Images          []string
	Description     string
	MetaTitle       string
	MetaDescription string
	Keywords        string
	Status          ProductStatus
}

// ProductPatch is a partial product update. Nil fields are not sent and do
// not participate in the merge.
type ProductPatch struct {
	Name            *string
	Category        *string
	SKU             *string
	Slug            *string
	Price           *float64
	PreviousPrice   *float64
	Stock           *int
	Featured        *bool
	Images          *[]string
	Description     *string
	MetaTitle       *string
	MetaDescription *string
	Keywords        *string
	Status          *ProductStatus
}

// ProductEcho is the decoded remote response for a product write. The remote
// API has no notion of Status, so it never appears here.
type ProductEcho struct {
	ID              *string
	Name            *string
	Category        *string
	SKU             *string
	Slug            *string
	Price           *float64
	PreviousPrice   *float64
	Stock           *int
	Featured        *bool
	Images          *[]string
	Description     *string
	MetaTitle       *string
	MetaDescription *string
	Keywords        *[]string
}
