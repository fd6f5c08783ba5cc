package delivery

import "time"

type DeliveryRecordDB struct {
	ID          string
	AWBNumber   string
	MediaURL    string
	MediaType   string
	DriverNotes *string
	DeliveredAt time.Time
}

type DeliveryRecordModifyDB struct {
	AWBNumber   *string
	MediaURL    *string
	MediaType   *string
	DriverNotes *string
}
