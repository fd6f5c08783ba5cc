package deliveries_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"podservice/internal/service/history"
	"podservice/pkg/logger"
)

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

type DeliveryRecordItem struct {
	ID          string    `json:"id"`
	AWBNumber   string    `json:"awb_number"`
	MediaURL    string    `json:"media_url"`
	MediaType   string    `json:"media_type"`
	DriverNotes *string   `json:"driver_notes,omitempty"`
	DeliveredAt time.Time `json:"delivered_at"`
}

type DeliveriesResponse struct {
	Deliveries []DeliveryRecordItem `json:"deliveries"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var limit uint64
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.ParseUint(limitStr, 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	records, err := h.service.Recent(r.Context(), limit)
	if err != nil {
		if errors.Is(err, history.ErrQuery) {
			h.log.With(
				logger.NewField("error", err),
			).Error("delivery history query failed")
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := DeliveriesResponse{
		Deliveries: make([]DeliveryRecordItem, 0, len(records)),
	}
	for _, record := range records {
		response.Deliveries = append(response.Deliveries, DeliveryRecordItem{
			ID:          record.ID,
			AWBNumber:   record.AWBNumber,
			MediaURL:    record.MediaURL,
			MediaType:   record.MediaType.String(),
			DriverNotes: record.DriverNotes,
			DeliveredAt: record.DeliveredAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
