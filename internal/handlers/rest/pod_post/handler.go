package pod_post

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"podservice/internal/entities"
	"podservice/internal/workflow"
	"podservice/internal/workflow/capture"
	"podservice/internal/workflow/commit"
	"podservice/internal/workflow/scanner"
	"podservice/pkg/logger"
)

const maxUploadSize = 32 << 20 // 32 MiB

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// DeliveryRecordResponse - ответ на успешный коммит доставки.
type DeliveryRecordResponse struct {
	ID          string    `json:"id"`
	AWBNumber   string    `json:"awb_number"`
	MediaURL    string    `json:"media_url"`
	MediaType   string    `json:"media_type"`
	DriverNotes *string   `json:"driver_notes,omitempty"`
	DeliveredAt time.Time `json:"delivered_at"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(maxUploadSize)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	awbNumber := r.FormValue("awb_number")
	notes := r.FormValue("notes")

	blob, err := readMediaBlob(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// Буфер на запрос: классификация по MIME и отсев пустых блобов.
	buffer := capture.New(h.log, nil, nil)
	media, err := buffer.Capture(blob)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	defer buffer.Clear()

	session := workflow.NewSession(awbNumber)
	session.SetNotes(notes)

	record, err := h.service.Submit(r.Context(), session, media)
	if err != nil {
		switch {
		case errors.Is(err, commit.ErrMissingInput),
			errors.Is(err, scanner.ErrEmptyIdentifier):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, commit.ErrCommitInFlight):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := DeliveryRecordResponse{
		ID:          record.ID,
		AWBNumber:   record.AWBNumber,
		MediaURL:    record.MediaURL,
		MediaType:   record.MediaType.String(),
		DriverNotes: record.DriverNotes,
		DeliveredAt: record.DeliveredAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func readMediaBlob(r *http.Request) (entities.MediaBlob, error) {
	file, header, err := r.FormFile("media")
	if err != nil {
		return entities.MediaBlob{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return entities.MediaBlob{}, err
	}

	return entities.MediaBlob{
		Name: header.Filename,
		MIME: header.Header.Get("Content-Type"),
		Data: data,
	}, nil
}
