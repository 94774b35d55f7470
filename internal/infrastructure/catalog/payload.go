package catalog

import (
	"encoding/json"

	"atelier-admin-core/internal/domain"
)

// Wire types for the catalog API. The remote vocabulary differs from the
// local one: the category icon travels as "image", h1Heading as
// "mainHeading", introParagraph as "content", and product images occupy four
// discrete slots image1..image4. Records may carry their id as "_id"
// (Mongo-style) or "id".

// keywordList tolerates the two keyword encodings the API is known to emit:
// a JSON array of strings or a single comma-separated string.
type keywordList []string

func (k *keywordList) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*k = keywordList(domain.SplitKeywords(s))
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*k = keywordList(list)
	return nil
}

type remoteCategory struct {
	MongoID         *string      `json:"_id"`
	ID              *string      `json:"id"`
	Name            *string      `json:"name"`
	Slug            *string      `json:"slug"`
	Image           *string      `json:"image"`
	MainHeading     *string      `json:"mainHeading"`
	Content         *string      `json:"content"`
	MetaTitle       *string      `json:"metaTitle"`
	MetaDescription *string      `json:"metaDescription"`
	Keywords        *keywordList `json:"keywords"`
}

func (r remoteCategory) id() *string {
	if r.MongoID != nil && *r.MongoID != "" {
		return r.MongoID
	}
	return r.ID
}

// toDomain maps a fetched record into the local shape with defaults for
// absent optional fields. The remote API has no notion of productCount,
// displayOrder or active; counts and order are assigned by the sync engine
// and fetched categories default to active.
func (r remoteCategory) toDomain() domain.Category {
	c := domain.Category{
		ID:              deref(r.id()),
		Name:            deref(r.Name),
		Slug:            deref(r.Slug),
		Icon:            deref(r.Image),
		MetaTitle:       deref(r.MetaTitle),
		MetaDescription: deref(r.MetaDescription),
		H1Heading:       deref(r.MainHeading),
		IntroParagraph:  deref(r.Content),
		Active:          true,
	}
	if r.Keywords != nil {
		c.Keywords = []string(*r.Keywords)
	}
	return c
}

// toEcho maps a write response into local vocabulary, keeping absent fields
// absent so reconciliation can tell omitted from empty.
func (r remoteCategory) toEcho() domain.CategoryEcho {
	echo := domain.CategoryEcho{
		ID:              r.id(),
		Name:            r.Name,
		Slug:            r.Slug,
		Icon:            r.Image,
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
		H1Heading:       r.MainHeading,
		IntroParagraph:  r.Content,
	}
	if r.Keywords != nil {
		kw := []string(*r.Keywords)
		echo.Keywords = &kw
	}
	return echo
}

type categoryPayload struct {
	Name            *string   `json:"name,omitempty"`
	Slug            *string   `json:"slug,omitempty"`
	Image           *string   `json:"image,omitempty"`
	MainHeading     *string   `json:"mainHeading,omitempty"`
	Content         *string   `json:"content,omitempty"`
	MetaTitle       *string   `json:"metaTitle,omitempty"`
	MetaDescription *string   `json:"metaDescription,omitempty"`
	Keywords        *[]string `json:"keywords,omitempty"`
}

func categoryPayloadFromInput(in domain.CategoryInput) categoryPayload {
	p := categoryPayload{
		Name:            ptr(in.Name),
		Slug:            ptr(in.Slug),
		Image:           opt(in.Icon),
		MainHeading:     opt(in.H1Heading),
		Content:         opt(in.IntroParagraph),
		MetaTitle:       opt(in.MetaTitle),
		MetaDescription: opt(in.MetaDescription),
	}
	if kw := domain.SplitKeywords(in.Keywords); kw != nil {
		p.Keywords = &kw
	}
	return p
}

func categoryPayloadFromPatch(patch domain.CategoryPatch) categoryPayload {
	p := categoryPayload{
		Name:            patch.Name,
		Slug:            patch.Slug,
		Image:           patch.Icon,
		MainHeading:     patch.H1Heading,
		Content:         patch.IntroParagraph,
		MetaTitle:       patch.MetaTitle,
		MetaDescription: patch.MetaDescription,
	}
	if patch.Keywords != nil {
		kw := domain.SplitKeywords(*patch.Keywords)
		p.Keywords = &kw
	}
	return p
}

type remoteProduct struct {
	MongoID         *string      `json:"_id"`
	ID              *string      `json:"id"`
	Name            *string      `json:"name"`
	Category        *string      `json:"category"`
	Slug            *string      `json:"slug"`
	SKU             *string      `json:"sku"`
	Price           *float64     `json:"price"`
	PreviousPrice   *float64     `json:"previousPrice"`
	Stock           *int         `json:"stock"`
	Featured        *bool        `json:"featured"`
	Image1          *string      `json:"image1"`
	Image2          *string      `json:"image2"`
	Image3          *string      `json:"image3"`
	Image4          *string      `json:"image4"`
	Description     *string      `json:"description"`
	MetaTitle       *string      `json:"metaTitle"`
	MetaDescription *string      `json:"metaDescription"`
	Keywords        *keywordList `json:"keywords"`
}

func (r remoteProduct) id() *string {
	if r.MongoID != nil && *r.MongoID != "" {
		return r.MongoID
	}
	return r.ID
}

// images collects the populated image slots in slot order, and reports
// whether any slot was present at all (present-but-empty differs from
// absent for echo purposes).
func (r remoteProduct) images() ([]string, bool) {
	slots := []*string{r.Image1, r.Image2, r.Image3, r.Image4}
	var out []string
	present := false
	for _, s := range slots {
		if s == nil {
			continue
		}
		present = true
		if *s != "" {
			out = append(out, *s)
		}
	}
	return out, present
}

// toDomain maps a fetched record into the local shape. Status never travels
// over the wire; fetched products default to active.
func (r remoteProduct) toDomain() domain.Product {
	images, _ := r.images()
	p := domain.Product{
		ID:              deref(r.id()),
		Name:            deref(r.Name),
		Category:        deref(r.Category),
		Slug:            deref(r.Slug),
		SKU:             deref(r.SKU),
		Description:     deref(r.Description),
		MetaTitle:       deref(r.MetaTitle),
		MetaDescription: deref(r.MetaDescription),
		Images:          images,
		Status:          domain.ProductActive,
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.PreviousPrice != nil {
		p.PreviousPrice = *r.PreviousPrice
	}
	if r.Stock != nil {
		p.Stock = *r.Stock
	}
	if r.Featured != nil {
		p.Featured = *r.Featured
	}
	if len(images) > 0 {
		p.Image = images[0]
	}
	if r.Keywords != nil {
		p.Keywords = []string(*r.Keywords)
	}
	return p
}

func (r remoteProduct) toEcho() domain.ProductEcho {
	echo := domain.ProductEcho{
		ID:              r.id(),
		Name:            r.Name,
		Category:        r.Category,
		SKU:             r.SKU,
		Slug:            r.Slug,
		Price:           r.Price,
		PreviousPrice:   r.PreviousPrice,
		Stock:           r.Stock,
		Featured:        r.Featured,
		Description:     r.Description,
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
	}
	if images, present := r.images(); present {
		echo.Images = &images
	}
	if r.Keywords != nil {
		kw := []string(*r.Keywords)
		echo.Keywords = &kw
	}
	return echo
}

type productPayload struct {
	Name            *string   `json:"name,omitempty"`
	Category        *string   `json:"category,omitempty"`
	Slug            *string   `json:"slug,omitempty"`
	SKU             *string   `json:"sku,omitempty"`
	Description     *string   `json:"description,omitempty"`
	Price           *float64  `json:"price,omitempty"`
	PreviousPrice   *float64  `json:"previousPrice,omitempty"`
	Stock           *int      `json:"stock,omitempty"`
	Image1          *string   `json:"image1,omitempty"`
	Image2          *string   `json:"image2,omitempty"`
	Image3          *string   `json:"image3,omitempty"`
	Image4          *string   `json:"image4,omitempty"`
	Featured        *bool     `json:"featured,omitempty"`
	MetaTitle       *string   `json:"metaTitle,omitempty"`
	MetaDescription *string   `json:"metaDescription,omitempty"`
	Keywords        *[]string `json:"keywords,omitempty"`
}

// setImageSlots spreads up to four image URLs over the discrete wire slots.
// Missing slots stay nil and are omitted from the payload entirely, never
// sent as empty strings.
func (p *productPayload) setImageSlots(images []string) {
	slots := []**string{&p.Image1, &p.Image2, &p.Image3, &p.Image4}
	for i, slot := range slots {
		if i < len(images) && images[i] != "" {
			*slot = ptr(images[i])
		}
	}
}

func productPayloadFromInput(in domain.ProductInput) productPayload {
	p := productPayload{
		Name:            ptr(in.Name),
		Category:        ptr(in.Category),
		Slug:            ptr(in.Slug),
		SKU:             ptr(in.SKU),
		Description:     opt(in.Description),
		Price:           ptr(in.Price),
		Stock:           ptr(in.Stock),
		Featured:        ptr(in.Featured),
		MetaTitle:       opt(in.MetaTitle),
		MetaDescription: opt(in.MetaDescription),
	}
	if in.PreviousPrice > 0 {
		p.PreviousPrice = ptr(in.PreviousPrice)
	}
	p.setImageSlots(in.Images)
	if kw := domain.SplitKeywords(in.Keywords); kw != nil {
		p.Keywords = &kw
	}
	return p
}

func productPayloadFromPatch(patch domain.ProductPatch) productPayload {
	p := productPayload{
		Name:            patch.Name,
		Category:        patch.Category,
		Slug:            patch.Slug,
		SKU:             patch.SKU,
		Description:     patch.Description,
		Price:           patch.Price,
		PreviousPrice:   patch.PreviousPrice,
		Stock:           patch.Stock,
		Featured:        patch.Featured,
		MetaTitle:       patch.MetaTitle,
		MetaDescription: patch.MetaDescription,
	}
	if patch.Images != nil {
		p.setImageSlots(*patch.Images)
	}
	if patch.Keywords != nil {
		kw := domain.SplitKeywords(*patch.Keywords)
		p.Keywords = &kw
	}
	return p
}

func ptr[T any](v T) *T { return &v }

func opt(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
