package pod_event

import (
	"time"

	"podservice/internal/entities"
)

// deliveryCommittedEvent - wire-формат события pod.delivery_committed.
type deliveryCommittedEvent struct {
	EventType   string    `json:"event_type"`
	RecordID    string    `json:"record_id"`
	AWBNumber   string    `json:"awb_number"`
	MediaURL    string    `json:"media_url"`
	MediaType   string    `json:"media_type"`
	DriverNotes *string   `json:"driver_notes,omitempty"`
	DeliveredAt time.Time `json:"delivered_at"`
}

func fromDomain(record *entities.DeliveryRecord) deliveryCommittedEvent {
	return deliveryCommittedEvent{
		EventType:   eventTypeDeliveryCommitted,
		RecordID:    record.ID,
		AWBNumber:   record.AWBNumber,
		MediaURL:    record.MediaURL,
		MediaType:   record.MediaType.String(),
		DriverNotes: record.DriverNotes,
		DeliveredAt: record.DeliveredAt,
	}
}
