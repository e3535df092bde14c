package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/launchdeck/launchdeck/internal/application/product"
)

// maxLogoBytes caps logo uploads at 5 MiB.
const maxLogoBytes = 5 << 20

// ProductHandler handles the product read and asset endpoints. Product
// creation and publishing live in the external product surface.
type ProductHandler struct {
	svc product.Service
}

func NewProductHandler(svc product.Service) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	body := http.MaxBytesReader(w, r.Body, maxLogoBytes)
	p, err := h.svc.UploadLogo(r.Context(), chi.URLParam(r, "id"), body, contentType)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
