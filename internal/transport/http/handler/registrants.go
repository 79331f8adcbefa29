package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-event-checkin/internal/application/registrant"
	"github.com/go-event-checkin/internal/domain"
	"github.com/go-event-checkin/internal/infrastructure/excel"
	"github.com/go-event-checkin/internal/pkg/id"
	"github.com/go-event-checkin/internal/transport/http/middleware"
)

// 10 MiB is plenty for an attendee roster spreadsheet.
const maxImportBytes = 10 << 20

// ObjectStore is the minimal interface for archiving uploaded import files.
type ObjectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
}

// RegistrantHandler handles registrant creation, import and listing endpoints.
type RegistrantHandler struct {
	svc     registrant.Service
	archive ObjectStore
}

func NewRegistrantHandler(svc registrant.Service, archive ObjectStore) *RegistrantHandler {
	return &RegistrantHandler{svc: svc, archive: archive}
}

func (h *RegistrantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateRegistrantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	reg, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, reg)
}

// BulkImport ingests a multipart .xlsx upload. The whole file is validated
// and inserted in one transaction; afterwards the original upload is
// archived to the object store so staff can audit what was imported.
func (h *RegistrantHandler) BulkImport(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportBytes); err != nil {
		writeError(w, http.StatusBadRequest, "expected multipart form upload")
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImportBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	rows, err := excel.ParseRegistrants(bytes.NewReader(data))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	inserted, err := h.svc.BulkImport(r.Context(), rows)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if h.archive != nil {
		key := fmt.Sprintf("imports/%s.xlsx", id.New())
		if _, err := h.archive.Upload(r.Context(), key, bytes.NewReader(data), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"); err != nil {
			log.Printf("WARN: failed to archive import file: %v", err)
		}
	}

	writeJSON(w, http.StatusCreated, ImportEnvelope{
		Message:  "Batch employees data insert successfully",
		Inserted: inserted,
	})
}

func (h *RegistrantHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	regs, err := h.svc.ListAll(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, regs)
}

func (h *RegistrantHandler) ListByGroup(w http.ResponseWriter, r *http.Request) {
	regs, err := h.svc.ListByGroup(r.Context(), chi.URLParam(r, "group"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, regs)
}

func (h *RegistrantHandler) Get(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.MobileFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	reg, err := h.svc.GetByMobile(r.Context(), caller, chi.URLParam(r, "mobile"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reg)
}
