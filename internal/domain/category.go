package domain

import "strings"

// Category is an admin catalog category.
//
// ProductCount is derived: it always reflects the number of products whose
// Category field equals this category's Name at the moment the snapshot was
// taken. DisplayOrder is a dense 1..N permutation across all categories.
type Category struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Slug            string   `json:"slug"`
	Icon            string   `json:"icon"`
	Image           string   `json:"image,omitempty"`
	ProductCount    int      `json:"productCount"`
	MetaTitle       string   `json:"metaTitle,omitempty"`
	MetaDescription string   `json:"metaDescription,omitempty"`
	Keywords        []string `json:"keywords"`
	H1Heading       string   `json:"h1Heading,omitempty"`
	IntroParagraph  string   `json:"introParagraph,omitempty"`
	DisplayOrder    int      `json:"displayOrder"`
	Active          bool     `json:"active"`
}

// CategoryInput carries the fields an admin screen submits when creating a
// category. Keywords is the comma-separated string as typed; the wire layer
// splits it before sending.
type CategoryInput struct {
	Name            string
	Slug            string
	Icon            string
	MetaTitle       string
	MetaDescription string
	Keywords        string
	H1Heading       string
	IntroParagraph  string
	Active          bool
}

// CategoryPatch is a partial category update. Nil fields are not sent to the
// remote API and do not participate in the merge.
type CategoryPatch struct {
	Name            *string
	Slug            *string
	Icon            *string
	MetaTitle       *string
	MetaDescription *string
	Keywords        *string
	H1Heading       *string
	IntroParagraph  *string
	Active          *bool
}

// CategoryEcho is the decoded remote response for a category write, mapped
// into local field vocabulary. Nil fields were absent from the response;
// only present fields win during reconciliation.
type CategoryEcho struct {
	ID              *string
	Name            *string
	Slug            *string
	Icon            *string
	MetaTitle       *string
	MetaDescription *string
	Keywords        *[]string
	H1Heading       *string
	IntroParagraph  *string
}

// SplitKeywords turns a comma-separated keywords string into the list form
// used locally and on the wire. Blank entries are dropped.
func SplitKeywords(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		if kw := strings.TrimSpace(p); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}
