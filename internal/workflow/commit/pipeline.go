package commit

import (
	"context"
	"strings"

	"github.com/AlekSi/pointer"
	"podservice/internal/entities"
	"podservice/internal/workflow"
	"podservice/pkg/logger"
)

// Pipeline - коммит доставки: загрузка блоба в BlobStore, вычисление
// публичной ссылки, затем вставка метаданных в RecordStore. Фазы строго
// последовательны,
// автоматических ретраев нет - повторный сабмит запускает пользователь.
type Pipeline struct {
	log     handlerLogger
	blobs   BlobStore
	records RecordStore
	keys    KeyFactory
	events  EventPublisher // может быть nil
	notify  workflow.Notifier
}

func New(
	log handlerLogger,
	blobs BlobStore,
	records RecordStore,
	keys KeyFactory,
	events EventPublisher,
	notify workflow.Notifier,
) *Pipeline {
	return &Pipeline{
		log:     log.With(),
		blobs:   blobs,
		records: records,
		keys:    keys,
		events:  events,
		notify:  notify,
	}
}

// Submit прогоняет полный коммит для сессии. Прекондиции проверяются до
// какого-либо сетевого эффекта; статус Committing на сессии не пускает
// параллельный сабмит той же сессии.
func (p *Pipeline) Submit(ctx context.Context, session *workflow.Session, media *entities.CapturedMedia) (*entities.DeliveryRecord, error) {
	if session == nil || strings.TrimSpace(session.AWBNumber()) == "" || media == nil {
		return nil, ErrMissingInput
	}

	if !session.TryBeginCommit() {
		return nil, ErrCommitInFlight
	}

	record, err := p.run(ctx, session, media)
	if err != nil {
		session.Fail()
		workflow.Notify(p.notify, workflow.Event{
			Kind:    workflow.EventCommitFailed,
			Message: "Failed to upload. Please try again.",
			Err:     err,
		})
		return nil, err
	}

	session.Complete()
	workflow.Notify(p.notify, workflow.Event{
		Kind:    workflow.EventCommitSucceeded,
		Message: "Delivery recorded successfully!",
	})

	p.publishCommitted(ctx, record)
	return record, nil
}

func (p *Pipeline) run(ctx context.Context, session *workflow.Session, media *entities.CapturedMedia) (*entities.DeliveryRecord, error) {
	awbNumber := session.AWBNumber()
	key := p.keys.MediaKey(awbNumber, media.Blob.Name)

	// Фаза 1: загрузка блоба. При отказе record store не трогаем вовсе -
	// частичной записи не существует.
	if err := p.blobs.Put(ctx, key, media.Blob.Data); err != nil {
		p.log.With(
			logger.NewField("awb_number", awbNumber),
			logger.NewField("key", key),
			logger.NewField("error", err),
		).Error("blob upload failed")
		return nil, ErrUpload
	}

	// Фаза 2: публичная ссылка на только что записанный ключ.
	mediaURL := p.blobs.PublicURL(key)
	if mediaURL == "" {
		p.log.With(
			logger.NewField("key", key),
		).Error("blob store produced no public url")
		return nil, ErrUpload
	}

	// Фаза 3: вставка записи. Блоб уже durably сохранен: при отказе здесь
	// остается осиротевший объект без записи. Компенсирующее удаление
	// сознательно не выполняется, повторный сабмит зальет блоб заново
	// под новым ключом.
	recordModify := entities.DeliveryRecordModify{
		AWBNumber: pointer.To(awbNumber),
		MediaURL:  pointer.To(mediaURL),
		MediaType: pointer.To(media.Kind),
	}
	if notes := strings.TrimSpace(session.Notes()); notes != "" {
		recordModify.DriverNotes = pointer.To(notes)
	}

	record, err := p.records.Create(ctx, recordModify)
	if err != nil {
		p.log.With(
			logger.NewField("awb_number", awbNumber),
			logger.NewField("media_url", mediaURL),
			logger.NewField("error", err),
		).Error("delivery record insert failed")
		return nil, ErrRecord
	}

	return record, nil
}

func (p *Pipeline) publishCommitted(ctx context.Context, record *entities.DeliveryRecord) {
	if p.events == nil {
		return
	}
	if err := p.events.DeliveryCommitted(ctx, record); err != nil {
		p.log.With(
			logger.NewField("record_id", record.ID),
			logger.NewField("error", err),
		).Error("publish delivery committed event")
	}
}
