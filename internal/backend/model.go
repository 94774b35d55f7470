// Package backend is a reference implementation of the catalog API the sync
// layer consumes. The sync layer treats it as an external collaborator; this
// package exists so the system runs end to end locally, backed by Mongo in
// cmd/catalogd or by the in-memory repository in tests and demos.
package backend

import "time"

// CategoryDoc is a category as stored and served by the catalog API. Field
// names follow the wire contract (image, mainHeading, content), not the
// admin layer's local vocabulary.
type CategoryDoc struct {
	ID              string    `bson:"_id,omitempty" json:"_id,omitempty"`
	Name            string    `bson:"name" json:"name"`
	Slug            string    `bson:"slug" json:"slug"`
	Image           string    `bson:"image,omitempty" json:"image,omitempty"`
	MainHeading     string    `bson:"mainHeading,omitempty" json:"mainHeading,omitempty"`
	Content         string    `bson:"content,omitempty" json:"content,omitempty"`
	MetaTitle       string    `bson:"metaTitle,omitempty" json:"metaTitle,omitempty"`
	MetaDescription string    `bson:"metaDescription,omitempty" json:"metaDescription,omitempty"`
	Keywords        []string  `bson:"keywords,omitempty" json:"keywords,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"-"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"-"`
}

// CategoryPatch is a partial category update; nil fields are untouched.
type CategoryPatch struct {
	Name            *string   `json:"name"`
	Slug            *string   `json:"slug"`
	Image           *string   `json:"image"`
	MainHeading     *string   `json:"mainHeading"`
	Content         *string   `json:"content"`
	MetaTitle       *string   `json:"metaTitle"`
	MetaDescription *string   `json:"metaDescription"`
	Keywords        *[]string `json:"keywords"`
}

// ProductDoc is a product as stored and served by the catalog API, with the
// four discrete image slots of the wire contract.
type ProductDoc struct {
	ID              string    `bson:"_id,omitempty" json:"_id,omitempty"`
	Name            string    `bson:"name" json:"name"`
	Category        string    `bson:"category" json:"category"`
	Slug            string    `bson:"slug,omitempty" json:"slug,omitempty"`
	SKU             string    `bson:"sku,omitempty" json:"sku,omitempty"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	Price           float64   `bson:"price" json:"price"`
	PreviousPrice   float64   `bson:"previousPrice,omitempty" json:"previousPrice,omitempty"`
	Stock           int       `bson:"stock" json:"stock"`
	Featured        bool      `bson:"featured" json:"featured"`
	Image1          string    `bson:"image1,omitempty" json:"image1,omitempty"`
	Image2          string    `bson:"image2,omitempty" json:"image2,omitempty"`
	Image3          string    `bson:"image3,omitempty" json:"image3,omitempty"`
	Image4          string    `bson:"image4,omitempty" json:"image4,omitempty"`
	MetaTitle       string    `bson:"metaTitle,omitempty" json:"metaTitle,omitempty"`
	MetaDescription string    `bson:"metaDescription,omitempty" json:"metaDescription,omitempty"`
	Keywords        []string  `bson:"keywords,omitempty" json:"keywords,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"-"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"-"`
}

// ProductPatch is a partial product update; nil fields are untouched.
type ProductPatch struct {
	Name            *string   `json:"name"`
	Category        *string   `json:"category"`
	Slug            *string   `json:"slug"`
	SKU             *string   `json:"sku"`
	Description     *string   `json:"description"`
	Price           *float64  `json:"price"`
	PreviousPrice   *float64  `json:"previousPrice"`
	Stock           *int      `json:"stock"`
	Featured        *bool     `json:"featured"`
	Image1          *string   `json:"image1"`
	Image2          *string   `json:"image2"`
	Image3          *string   `json:"image3"`
	Image4          *string   `json:"image4"`
	MetaTitle       *string   `json:"metaTitle"`
	MetaDescription *string   `json:"metaDescription"`
	Keywords        *[]string `json:"keywords"`
}
