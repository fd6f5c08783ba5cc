package scanner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"podservice/internal/workflow"
	"podservice/pkg/logger"
)

type State string

const (
	StateIdle         State = "idle"
	StateScanning     State = "scanning"
	StateDecoded      State = "decoded"
	StateCameraFailed State = "camera_failed"
)

func (s State) String() string {
	return string(s)
}

const (
	DefaultFramesPerSecond = 10
	DefaultRegionWidth     = 250
	DefaultRegionHeight    = 250
)

type Config struct {
	FramesPerSecond int
	Region          DecodeRegion
}

// Scanner получает номер AWB: либо непрерывным декодированием с камеры,
// либо ручным вводом. Автомат: Idle -> Scanning -> (Decoded | CameraFailed),
// ручной ввод доступен из любого состояния.
type Scanner struct {
	log       handlerLogger
	camera    Camera
	onDecoded func(string)
	notify    workflow.Notifier
	cfg       Config

	mu     sync.Mutex
	state  State
	stream Stream
	cancel context.CancelFunc
}

// New создает сканер. onDecoded вызывается ровно один раз на успешное
// распознавание (или ручной ввод) и передает идентификатор дальше по flow.
func New(log handlerLogger, camera Camera, onDecoded func(string), notify workflow.Notifier, cfg Config) *Scanner {
	if cfg.FramesPerSecond <= 0 {
		cfg.FramesPerSecond = DefaultFramesPerSecond
	}
	if cfg.Region.Width <= 0 {
		cfg.Region.Width = DefaultRegionWidth
	}
	if cfg.Region.Height <= 0 {
		cfg.Region.Height = DefaultRegionHeight
	}

	return &Scanner{
		log:       log.With(),
		camera:    camera,
		onDecoded: onDecoded,
		notify:    notify,
		cfg:       cfg,
		state:     StateIdle,
	}
}

func (s *Scanner) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// StartScanning захватывает камеру и запускает цикл декодирования.
// Отказ камеры (нет устройства, нет разрешения) переводит автомат в
// CameraFailed; повторный вызов из CameraFailed - это retry.
// Вызов во время активного сканирования - no-op.
func (s *Scanner) StartScanning(ctx context.Context) error {
	s.mu.Lock()
	if s.state == StateScanning {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	stream, err := s.camera.Start(ctx)
	if err != nil {
		s.mu.Lock()
		s.state = StateCameraFailed
		s.mu.Unlock()

		s.log.With(
			logger.NewField("error", err),
		).Warn("camera start failed")
		workflow.Notify(s.notify, workflow.Event{
			Kind:    workflow.EventCameraFailed,
			Message: "Unable to access camera. Please enter AWB manually or check permissions.",
			Err:     err,
		})
		return fmt.Errorf("start camera: %w", ErrCameraUnavailable)
	}

	loopCtx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	s.state = StateScanning
	s.stream = stream
	s.cancel = cancel
	s.mu.Unlock()

	workflow.Notify(s.notify, workflow.Event{Kind: workflow.EventScanStarted})

	go s.decodeLoop(loopCtx, stream)
	return nil
}

// StopScanning идемпотентен: вызов вне сканирования - это no-op.
func (s *Scanner) StopScanning() {
	s.mu.Lock()
	if s.state != StateScanning {
		s.mu.Unlock()
		return
	}
	s.state = StateIdle
	stream := s.stream
	cancel := s.cancel
	s.stream = nil
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.releaseStream(stream)
}

// SubmitManual принимает номер AWB, введенный вручную, минуя камеру.
// Пустой (после trim) ввод отклоняется без смены состояния.
func (s *Scanner) SubmitManual(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrEmptyIdentifier
	}

	// Ручной ввод доступен и во время сканирования - камеру обязаны отпустить.
	s.StopScanning()

	s.mu.Lock()
	s.state = StateDecoded
	s.mu.Unlock()

	workflow.Notify(s.notify, workflow.Event{Kind: workflow.EventScanDecoded})
	if s.onDecoded != nil {
		s.onDecoded(trimmed)
	}
	return trimmed, nil
}

// Close - контракт teardown: уход с шага сканирования обязан освободить
// камеру, каким бы путем его ни покинули. Безопасен в любом состоянии.
func (s *Scanner) Close() {
	s.StopScanning()
}

func (s *Scanner) decodeLoop(ctx context.Context, stream Stream) {
	interval := time.Second / time.Duration(s.cfg.FramesPerSecond)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		text, err := stream.Decode(ctx, s.cfg.Region)
		if err == nil {
			s.handleDecoded(text)
			return
		}
		if !errors.Is(err, ErrNoCodeFound) && !errors.Is(err, context.Canceled) {
			// Промахи происходят непрерывно во время сканирования,
			// пользователю их не показываем.
			s.log.With(
				logger.NewField("error", err),
			).Warn("frame decode error")
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *Scanner) handleDecoded(text string) {
	s.mu.Lock()
	if s.state != StateScanning {
		// Сканирование уже остановили, результат опоздал.
		s.mu.Unlock()
		return
	}
	s.state = StateDecoded
	stream := s.stream
	cancel := s.cancel
	s.stream = nil
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.releaseStream(stream)

	workflow.Notify(s.notify, workflow.Event{
		Kind:    workflow.EventScanDecoded,
		Message: "AWB scanned successfully",
	})
	if s.onDecoded != nil {
		s.onDecoded(text)
	}
}

// releaseStream останавливает камеру. Ошибка остановки логируется и не
// всплывает: ресурс считается освобожденным в любом случае.
func (s *Scanner) releaseStream(stream Stream) {
	if stream == nil {
		return
	}
	if err := stream.Stop(); err != nil {
		s.log.With(
			logger.NewField("error", err),
		).Error("stop camera stream")
	}
}
