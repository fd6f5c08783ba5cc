package entities

import "time"

// DeliveryRecord - подтверждение доставки. ID и DeliveredAt назначаются
// хранилищем при вставке и после этого неизменны.
type DeliveryRecord struct {
	ID          string
	AWBNumber   string
	MediaURL    string
	MediaType   MediaType
	DriverNotes *string
	DeliveredAt time.Time
}

type DeliveryRecordModify struct {
	AWBNumber   *string
	MediaURL    *string
	MediaType   *MediaType
	DriverNotes *string
}
