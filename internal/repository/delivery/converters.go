package delivery

import "podservice/internal/entities"

func ToDomain(d *DeliveryRecordDB) *entities.DeliveryRecord {
	if d == nil {
		return nil
	}
	return &entities.DeliveryRecord{
		ID:          d.ID,
		AWBNumber:   d.AWBNumber,
		MediaURL:    d.MediaURL,
		MediaType:   entities.MediaType(d.MediaType),
		DriverNotes: d.DriverNotes,
		DeliveredAt: d.DeliveredAt,
	}
}

func FromDomainModify(d *entities.DeliveryRecordModify) *DeliveryRecordModifyDB {
	if d == nil {
		return nil
	}
	recordModifyDB := &DeliveryRecordModifyDB{}

	if d.AWBNumber != nil {
		recordModifyDB.AWBNumber = d.AWBNumber
	}
	if d.MediaURL != nil {
		recordModifyDB.MediaURL = d.MediaURL
	}
	if d.MediaType != nil {
		mediaType := d.MediaType.String()
		recordModifyDB.MediaType = &mediaType
	}
	if d.DriverNotes != nil {
		recordModifyDB.DriverNotes = d.DriverNotes
	}

	return recordModifyDB
}
