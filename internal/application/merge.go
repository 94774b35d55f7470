package application

import "atelier-admin-core/internal/domain"

// pick resolves one field of a reconciled record. Precedence is fixed: the
// server's response wins when present, then the caller's patch, then the
// prior local value. Every merged field goes through here; inline fallback
// chains are how this merge goes subtly wrong.
func pick[T any](server, patch *T, prior T) T {
	if server != nil {
		return *server
	}
	if patch != nil {
		return *patch
	}
	return prior
}

// valueOr is the create-time variant: server echo with caller-input fallback.
func valueOr[T any](server *T, fallback T) T {
	if server != nil {
		return *server
	}
	return fallback
}

// mergeCategory reconciles a category update. ID, ProductCount and
// DisplayOrder are never sent to the remote API and always carry over from
// the prior record. Active is local-only, so only the patch tier applies.
func mergeCategory(prior domain.Category, patch domain.CategoryPatch, echo domain.CategoryEcho) domain.Category {
	var patchKeywords *[]string
	if patch.Keywords != nil {
		kw := domain.SplitKeywords(*patch.Keywords)
		patchKeywords = &kw
	}

	merged := prior
	merged.Name = pick(echo.Name, patch.Name, prior.Name)
	merged.Slug = pick(echo.Slug, patch.Slug, prior.Slug)
	merged.Icon = pick(echo.Icon, patch.Icon, prior.Icon)
	merged.MetaTitle = pick(echo.MetaTitle, patch.MetaTitle, prior.MetaTitle)
	merged.MetaDescription = pick(echo.MetaDescription, patch.MetaDescription, prior.MetaDescription)
	merged.Keywords = pick(echo.Keywords, patchKeywords, prior.Keywords)
	merged.H1Heading = pick(echo.H1Heading, patch.H1Heading, prior.H1Heading)
	merged.IntroParagraph = pick(echo.IntroParagraph, patch.IntroParagraph, prior.IntroParagraph)
	merged.Active = pick(nil, patch.Active, prior.Active)
	return merged
}

// mergeProduct reconciles a product update. Status is unknown to the remote
// API, so only the patch tier applies to it. Image tracks the first entry of
// the merged image list.
func mergeProduct(prior domain.Product, patch domain.ProductPatch, echo domain.ProductEcho) domain.Product {
	var patchKeywords *[]string
	if patch.Keywords != nil {
		kw := domain.SplitKeywords(*patch.Keywords)
		patchKeywords = &kw
	}

	merged := prior
	merged.Name = pick(echo.Name, patch.Name, prior.Name)
	merged.Category = pick(echo.Category, patch.Category, prior.Category)
	merged.SKU = pick(echo.SKU, patch.SKU, prior.SKU)
	merged.Slug = pick(echo.Slug, patch.Slug, prior.Slug)
	merged.Price = pick(echo.Price, patch.Price, prior.Price)
	merged.PreviousPrice = pick(echo.PreviousPrice, patch.PreviousPrice, prior.PreviousPrice)
	merged.Stock = pick(echo.Stock, patch.Stock, prior.Stock)
	merged.Featured = pick(echo.Featured, patch.Featured, prior.Featured)
	merged.Images = pick(echo.Images, patch.Images, prior.Images)
	merged.Description = pick(echo.Description, patch.Description, prior.Description)
	merged.MetaTitle = pick(echo.MetaTitle, patch.MetaTitle, prior.MetaTitle)
	merged.MetaDescription = pick(echo.MetaDescription, patch.MetaDescription, prior.MetaDescription)
	merged.Keywords = pick(echo.Keywords, patchKeywords, prior.Keywords)
	merged.Status = pick(nil, patch.Status, prior.Status)
	if len(merged.Images) > 0 {
		merged.Image = merged.Images[0]
	}
	return merged
}

// categoryFromEcho builds the local record for a freshly created category:
// server-assigned fields win, with the request input filling anything the
// server omitted. DisplayOrder is assigned by the store on insert.
func categoryFromEcho(echo domain.CategoryEcho, input domain.CategoryInput) domain.Category {
	return domain.Category{
		ID:              valueOr(echo.ID, ""),
		Name:            valueOr(echo.Name, input.Name),
		Slug:            valueOr(echo.Slug, input.Slug),
		Icon:            valueOr(echo.Icon, input.Icon),
		MetaTitle:       valueOr(echo.MetaTitle, input.MetaTitle),
		MetaDescription: valueOr(echo.MetaDescription, input.MetaDescription),
		Keywords:        valueOr(echo.Keywords, domain.SplitKeywords(input.Keywords)),
		H1Heading:       valueOr(echo.H1Heading, input.H1Heading),
		IntroParagraph:  valueOr(echo.IntroParagraph, input.IntroParagraph),
		Active:          input.Active,
	}
}

// productFromEcho builds the local record for a freshly created product.
func productFromEcho(echo domain.ProductEcho, input domain.ProductInput) domain.Product {
	status := input.Status
	if status == "" {
		status = domain.ProductActive
	}
	p := domain.Product{
		ID:              valueOr(echo.ID, ""),
		Name:            valueOr(echo.Name, input.Name),
		Category:        valueOr(echo.Category, input.Category),
		SKU:             valueOr(echo.SKU, input.SKU),
		Slug:            valueOr(echo.Slug, input.Slug),
		Price:           valueOr(echo.Price, input.Price),
		PreviousPrice:   valueOr(echo.PreviousPrice, input.PreviousPrice),
		Stock:           valueOr(echo.Stock, input.Stock),
		Featured:        valueOr(echo.Featured, input.Featured),
		Images:          valueOr(echo.Images, input.Images),
		Description:     valueOr(echo.Description, input.Description),
		MetaTitle:       valueOr(echo.MetaTitle, input.MetaTitle),
		MetaDescription: valueOr(echo.MetaDescription, input.MetaDescription),
		Keywords:        valueOr(echo.Keywords, domain.SplitKeywords(input.Keywords)),
		Status:          status,
	}
	if len(p.Images) > 0 {
		p.Image = p.Images[0]
	}
	return p
}
