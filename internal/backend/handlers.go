package backend

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler serves the catalog API routes over a Repository.
type Handler struct {
	repo   Repository
	logger zerolog.Logger
}

// NewHandler creates a catalog API handler.
func NewHandler(repo Repository, logger zerolog.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// Routes mounts the catalog endpoints on a fresh router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.listCategories)
		r.Post("/", h.createCategory)
		r.Put("/{id}", h.updateCategory)
		r.Delete("/{id}", h.deleteCategory)
	})
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.listProducts)
		r.Post("/", h.createProduct)
		r.Put("/{id}", h.updateProduct)
		r.Delete("/{id}", h.deleteProduct)
	})
	return r
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	docs, err := h.repo.ListCategories(r.Context())
	if err != nil {
		h.serverError(w, err)
		return
	}
	if docs == nil {
		docs = []CategoryDoc{}
	}
	writeJSON(w, http.StatusOK, docs)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var doc CategoryDoc
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if doc.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	created, err := h.repo.InsertCategory(r.Context(), doc)
	if err != nil {
		h.serverError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	var patch CategoryPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	doc, err := h.repo.UpdateCategory(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		h.serverError(w, err)
		return
	}
	if doc == nil {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	ok, err := h.repo.DeleteCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.serverError(w, err)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "category deleted"})
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	docs, err := h.repo.ListProducts(r.Context())
	if err != nil {
		h.serverError(w, err)
		return
	}
	if docs == nil {
		docs = []ProductDoc{}
	}
	writeJSON(w, http.StatusOK, docs)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var doc ProductDoc
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if doc.Name == "" || doc.Category == "" {
		writeError(w, http.StatusBadRequest, "name and category are required")
		return
	}
	created, err := h.repo.InsertProduct(r.Context(), doc)
	if err != nil {
		h.serverError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var patch ProductPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	doc, err := h.repo.UpdateProduct(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		h.serverError(w, err)
		return
	}
	if doc == nil {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	ok, err := h.repo.DeleteProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.serverError(w, err)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "product deleted"})
}

func (h *Handler) serverError(w http.ResponseWriter, err error) {
	h.logger.Error().Err(err).Msg("catalog request failed")
	writeError(w, http.StatusInternalServerError, "internal server error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
