// Package api exposes the admin state layer over HTTP: reads come from the
// state facade, catalog mutations go through the sync service, and
// local-only entities go through the local service.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"atelier-admin-core/internal/application"
	"atelier-admin-core/internal/domain"
	"atelier-admin-core/internal/state"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler serves the admin API routes.
type Handler struct {
	reads  state.Facade
	sync   *application.SyncService
	local  *application.LocalService
	logger zerolog.Logger
}

// NewHandler creates an admin API handler.
func NewHandler(reads state.Facade, sync *application.SyncService, local *application.LocalService, logger zerolog.Logger) *Handler {
	return &Handler{reads: reads, sync: sync, local: local, logger: logger}
}

// Routes mounts the admin endpoints on a fresh router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.listCategories)
		r.Post("/", h.createCategory)
		r.Post("/reorder", h.reorderCategories)
		r.Put("/{id}", h.updateCategory)
		r.Delete("/{id}", h.deleteCategory)
	})
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.listProducts)
		r.Post("/", h.createProduct)
		r.Put("/{id}", h.updateProduct)
		r.Delete("/{id}", h.deleteProduct)
	})
	r.Route("/collections", func(r chi.Router) {
		r.Get("/", h.listCollections)
		r.Post("/", h.saveCollection)
		r.Delete("/{id}", h.deleteCollection)
	})
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.listOrders)
		r.Post("/", h.createOrder)
		r.Put("/{id}/status", h.updateOrderStatus)
		r.Put("/{id}/payment", h.updateOrderPayment)
		r.Put("/{id}/tracking", h.updateOrderTracking)
	})
	r.Route("/notifications", func(r chi.Router) {
		r.Get("/", h.listNotifications)
		r.Get("/unread-count", h.unreadCount)
		r.Post("/read-all", h.markAllRead)
		r.Post("/{id}/read", h.markRead)
	})
	r.Get("/profile", h.getProfile)
	r.Put("/profile", h.updateProfile)
	r.Get("/payment-methods", h.getPaymentMethods)
	r.Put("/payment-methods", h.updatePaymentMethods)
	r.Get("/social-accounts", h.getSocialAccounts)
	r.Put("/social-accounts", h.saveSocialAccounts)
	r.Post("/sync", h.resync)

	return r
}

type categoryRequest struct {
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	Icon            string `json:"icon"`
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
	Keywords        string `json:"keywords"`
	H1Heading       string `json:"h1Heading"`
	IntroParagraph  string `json:"introParagraph"`
	Active          bool   `json:"active"`
}

type categoryPatchRequest struct {
	Name            *string `json:"name"`
	Slug            *string `json:"slug"`
	Icon            *string `json:"icon"`
	MetaTitle       *string `json:"metaTitle"`
	MetaDescription *string `json:"metaDescription"`
	Keywords        *string `json:"keywords"`
	H1Heading       *string `json:"h1Heading"`
	IntroParagraph  *string `json:"introParagraph"`
	Active          *bool   `json:"active"`
}

type productRequest struct {
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	SKU             string   `json:"sku"`
	Slug            string   `json:"slug"`
	Price           float64  `json:"price"`
	PreviousPrice   float64  `json:"previousPrice"`
	Stock           int      `json:"stock"`
	Featured        bool     `json:"featured"`
	Images          []string `json:"images"`
	Description     string   `json:"description"`
	MetaTitle       string   `json:"metaTitle"`
	MetaDescription string   `json:"metaDescription"`
	Keywords        string   `json:"keywords"`
	Status          string   `json:"status"`
}

type productPatchRequest struct {
	Name            *string   `json:"name"`
	Category        *string   `json:"category"`
	SKU             *string   `json:"sku"`
	Slug            *string   `json:"slug"`
	Price           *float64  `json:"price"`
	PreviousPrice   *float64  `json:"previousPrice"`
	Stock           *int      `json:"stock"`
	Featured        *bool     `json:"featured"`
	Images          *[]string `json:"images"`
	Description     *string   `json:"description"`
	MetaTitle       *string   `json:"metaTitle"`
	MetaDescription *string   `json:"metaDescription"`
	Keywords        *string   `json:"keywords"`
	Status          *string   `json:"status"`
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.reads.Categories())
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	created, err := h.sync.CreateCategory(r.Context(), domain.CategoryInput{
		Name:            req.Name,
		Slug:            req.Slug,
		Icon:            req.Icon,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Keywords:        req.Keywords,
		H1Heading:       req.H1Heading,
		IntroParagraph:  req.IntroParagraph,
		Active:          req.Active,
	})
	if err != nil {
		h.writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.sync.UpdateCategory(r.Context(), chi.URLParam(r, "id"), domain.CategoryPatch{
		Name:            req.Name,
		Slug:            req.Slug,
		Icon:            req.Icon,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Keywords:        req.Keywords,
		H1Heading:       req.H1Heading,
		IntroParagraph:  req.IntroParagraph,
		Active:          req.Active,
	})
	if err != nil {
		h.writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.sync.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "category deleted"})
}

func (h *Handler) reorderCategories(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []string `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.sync.ReorderCategories(req.IDs)
	writeJSON(w, http.StatusOK, h.reads.Categories())
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.reads.Products())
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Category == "" {
		writeError(w, http.StatusBadRequest, "name and category are required")
		return
	}
	created, err := h.sync.CreateProduct(r.Context(), domain.ProductInput{
		Name:            req.Name,
		Category:        req.Category,
		SKU:             req.SKU,
		Slug:            req.Slug,
		Price:           req.Price,
		PreviousPrice:   req.PreviousPrice,
		Stock:           req.Stock,
		Featured:        req.Featured,
		Images:          req.Images,
		Description:     req.Description,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Keywords:        req.Keywords,
		Status:          domain.ProductStatus(req.Status),
	})
	if err != nil {
		h.writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var req productPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	patch := domain.ProductPatch{
		Name:            req.Name,
		Category:        req.Category,
		SKU:             req.SKU,
		Slug:            req.Slug,
		Price:           req.Price,
		PreviousPrice:   req.PreviousPrice,
		Stock:           req.Stock,
		Featured:        req.Featured,
		Images:          req.Images,
		Description:     req.Description,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Keywords:        req.Keywords,
	}
	if req.Status != nil {
		status := domain.ProductStatus(*req.Status)
		patch.Status = &status
	}
	updated, err := h.sync.UpdateProduct(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		h.writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.sync.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "product deleted"})
}

func (h *Handler) listCollections(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.reads.Collections())
}

func (h *Handler) saveCollection(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID          string   `json:"id"`
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Image       string   `json:"image"`
		ProductIDs  []string `json:"productIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	coll := h.local.SaveCollection(domain.CollectionInput{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		ProductIDs:  req.ProductIDs,
	})
	writeJSON(w, http.StatusOK, coll)
}

func (h *Handler) deleteCollection(w http.ResponseWriter, r *http.Request) {
	if err := h.local.DeleteCollection(chi.URLParam(r, "id")); err != nil {
		h.writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "collection deleted"})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.reads.Orders())
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderNumber     string             `json:"orderNumber"`
		CustomerName    string             `json:"customerName"`
		Email           string             `json:"email"`
		Phone           string             `json:"phone"`
		Total           float64            `json:"total"`
		Items           []domain.OrderItem `json:"items"`
		ShippingAddress string             `json:"shippingAddress"`
		CustomerType    string             `json:"customerType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	order := h.local.CreateOrder(domain.OrderInput{
		OrderNumber:     req.OrderNumber,
		CustomerName:    req.CustomerName,
		Email:           req.Email,
		Phone:           req.Phone,
		Total:           req.Total,
		Items:           req.Items,
		ShippingAddress: req.ShippingAddress,
		CustomerType:    req.CustomerType,
	})
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	order, err := h.local.UpdateOrderStatus(chi.URLParam(r, "id"), req.Status)
	if err != nil {
		h.writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderPayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PaymentStatus domain.PaymentStatus `json:"paymentStatus"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	order, err := h.local.UpdateOrderPayment(chi.URLParam(r, "id"), req.PaymentStatus)
	if err != nil {
		h.writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderTracking(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CourierName    string `json:"courierName"`
		TrackingNumber string `json:"trackingNumber"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	order, err := h.local.UpdateOrderTracking(chi.URLParam(r, "id"), req.CourierName, req.TrackingNumber)
	if err != nil {
		h.writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.reads.Notifications())
}

func (h *Handler) unreadCount(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]int{"unread": h.reads.UnreadCount()})
}

func (h *Handler) markRead(w http.ResponseWriter, r *http.Request) {
	if err := h.local.MarkNotificationRead(chi.URLParam(r, "id")); err != nil {
		h.writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "notification read"})
}

func (h *Handler) markAllRead(w http.ResponseWriter, r *http.Request) {
	h.local.MarkAllNotificationsRead()
	writeJSON(w, http.StatusOK, map[string]string{"message": "all notifications read"})
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.reads.Profile())
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var p domain.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.local.UpdateProfile(p)
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) getPaymentMethods(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.reads.PaymentMethods())
}

func (h *Handler) updatePaymentMethods(w http.ResponseWriter, r *http.Request) {
	var pm domain.PaymentMethods
	if err := json.NewDecoder(r.Body).Decode(&pm); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.local.UpdatePaymentMethods(pm)
	writeJSON(w, http.StatusOK, pm)
}

func (h *Handler) getSocialAccounts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.reads.SocialAccounts())
}

func (h *Handler) saveSocialAccounts(w http.ResponseWriter, r *http.Request) {
	var accounts []domain.SocialAccount
	if err := json.NewDecoder(r.Body).Decode(&accounts); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.local.SaveSocialAccounts(accounts)
	writeJSON(w, http.StatusOK, accounts)
}

// resync re-runs hydration on demand. Hydration never fails; the response
// reflects whatever the store holds afterwards.
func (h *Handler) resync(w http.ResponseWriter, r *http.Request) {
	h.sync.Hydrate(r.Context())
	writeJSON(w, http.StatusOK, map[string]int{
		"categories": len(h.reads.Categories()),
		"products":   len(h.reads.Products()),
	})
}

func (h *Handler) writeFailure(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	h.logger.Error().Err(err).Msg("Admin request failed")
	writeError(w, http.StatusBadGateway, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
