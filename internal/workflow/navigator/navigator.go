package navigator

import (
	"context"
	"sync"

	"podservice/internal/entities"
	"podservice/internal/workflow"
	"podservice/pkg/logger"
)

type Step string

const (
	StepHome    Step = "home"
	StepScan    Step = "scan"
	StepCapture Step = "capture"
	StepSuccess Step = "success"
)

func (s Step) String() string {
	return string(s)
}

// Navigator ведет линейный flow Home -> Scan -> Capture -> Success и несет
// идентификатор между шагами внутри сессии. У каждого шага ровно один переход
// вперед (успех) и один назад (явная отмена).
type Navigator struct {
	log       handlerLogger
	scanner   IdentifierSource
	buffer    MediaBuffer
	committer CommitService
	notify    workflow.Notifier

	mu      sync.Mutex
	step    Step
	session *workflow.Session
}

func New(
	log handlerLogger,
	scanner IdentifierSource,
	buffer MediaBuffer,
	committer CommitService,
	notify workflow.Notifier,
) *Navigator {
	return &Navigator{
		log:       log.With(),
		scanner:   scanner,
		buffer:    buffer,
		committer: committer,
		notify:    notify,
		step:      StepHome,
	}
}

func (n *Navigator) Step() Step {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.step
}

// Session возвращает активную сессию или nil вне шага Capture.
func (n *Navigator) Session() *workflow.Session {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.session
}

// StartFlow переводит Home|Success -> Scan.
func (n *Navigator) StartFlow() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.step != StepHome && n.step != StepSuccess {
		return ErrInvalidStep
	}
	n.step = StepScan
	return nil
}

// OnIdentifier - колбэк источника идентификаторов: Scan -> Capture,
// здесь рождается сессия. Идентификатор в сессии дальше неизменен.
func (n *Navigator) OnIdentifier(awbNumber string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.step != StepScan {
		n.log.With(
			logger.NewField("step", n.step.String()),
			logger.NewField("awb_number", awbNumber),
		).Warn("identifier arrived outside scan step, ignoring")
		return
	}

	n.session = workflow.NewSession(awbNumber)
	n.step = StepCapture
}

// Submit запускает коммит текущей сессии; успех уничтожает сессию со снятым
// медиа и переводит на терминальный шаг Success.
func (n *Navigator) Submit(ctx context.Context) (*entities.DeliveryRecord, error) {
	n.mu.Lock()
	if n.step != StepCapture || n.session == nil {
		n.mu.Unlock()
		return nil, ErrInvalidStep
	}
	session := n.session
	n.mu.Unlock()

	record, err := n.committer.Submit(ctx, session, n.buffer.Current())
	if err != nil {
		return nil, err
	}

	n.mu.Lock()
	n.step = StepSuccess
	n.session = nil
	n.mu.Unlock()
	n.buffer.Clear()

	return record, nil
}

// Back - единственный обратный переход текущего шага. Уход с шага
// сканирования останавливает камеру, уход с capture уничтожает сессию
// и снятое медиа.
func (n *Navigator) Back() {
	n.mu.Lock()
	defer n.mu.Unlock()

	switch n.step {
	case StepScan:
		n.scanner.Close()
		n.step = StepHome
	case StepCapture:
		n.buffer.Clear()
		n.session = nil
		n.step = StepScan
	case StepSuccess:
		n.step = StepHome
	case StepHome:
	}
}

// Reset возвращает flow на Home из любого шага, освобождая камеру,
// медиа и сессию.
func (n *Navigator) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.scanner.Close()
	n.buffer.Clear()
	n.session = nil
	n.step = StepHome
}
