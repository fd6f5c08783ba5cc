package workflow

type EventKind string

const (
	EventScanStarted     EventKind = "scan.started"
	EventScanDecoded     EventKind = "scan.decoded"
	EventCameraFailed    EventKind = "scan.camera_failed"
	EventMediaCaptured   EventKind = "capture.media_captured"
	EventMediaCleared    EventKind = "capture.media_cleared"
	EventCommitSucceeded EventKind = "commit.succeeded"
	EventCommitFailed    EventKind = "commit.failed"
)

// Event - уведомление о переходе конечного автомата. Вместо глобальных
// toast-вызовов автоматы шлют события, а презентационный слой сам решает,
// как их показывать.
type Event struct {
	Kind    EventKind
	Message string
	Err     error
}

type Notifier interface {
	Notify(Event)
}

type NotifierFunc func(Event)

func (f NotifierFunc) Notify(e Event) {
	f(e)
}

// Notify шлет событие, если подписчик задан. nil-подписчик допустим.
func Notify(n Notifier, e Event) {
	if n != nil {
		n.Notify(e)
	}
}
