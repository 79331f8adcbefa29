package handler

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-event-checkin/internal/infrastructure/qr"
)

// QRHandler serves check-in badge images. The badge is a pure function of
// the mobile number: no registrant lookup happens here, so codes can be
// printed before the roster is finalised.
type QRHandler struct {
	gen   *qr.Generator
	store ObjectStore
}

func NewQRHandler(gen *qr.Generator, store ObjectStore) *QRHandler {
	return &QRHandler{gen: gen, store: store}
}

func (h *QRHandler) Badge(w http.ResponseWriter, r *http.Request) {
	mobile := chi.URLParam(r, "mobile")

	png, err := h.gen.CheckInPNG(mobile)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to render qr code")
		return
	}

	// Keep a copy in the object store for the badge-printing pipeline.
	if h.store != nil {
		key := fmt.Sprintf("qrcodes/qr_code_%s.png", mobile)
		if _, err := h.store.Upload(r.Context(), key, bytes.NewReader(png), "image/png"); err != nil {
			log.Printf("WARN: failed to store qr code %s: %v", key, err)
		}
	}

	writeJSON(w, http.StatusOK, QREnvelope{
		Mobile:     mobile,
		CheckInURL: h.gen.CheckInURL(mobile),
		PNGBase64:  base64.StdEncoding.EncodeToString(png),
	})
}
