package camera

import (
	"context"
	"errors"
	"sync"

	"podservice/internal/workflow/scanner"
)

var ErrAlreadyStarted = errors.New("camera already started")

// ScriptedCamera проигрывает заранее заданную последовательность кадров:
// пустая строка - кадр без кода, непустая - распознанный текст.
// После исчерпания скрипта кадры считаются промахами.
type ScriptedCamera struct {
	frames   []string
	startErr error

	mu     sync.Mutex
	active bool
}

func NewScripted(frames []string) *ScriptedCamera {
	return &ScriptedCamera{
		frames: frames,
	}
}

// NewFailing имитирует недоступную камеру: Start всегда возвращает ошибку.
func NewFailing(err error) *ScriptedCamera {
	return &ScriptedCamera{
		startErr: err,
	}
}

func (c *ScriptedCamera) Start(ctx context.Context) (scanner.Stream, error) {
	if c.startErr != nil {
		return nil, c.startErr
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active {
		return nil, ErrAlreadyStarted
	}
	c.active = true

	return &scriptedStream{camera: c, frames: c.frames}, nil
}

type scriptedStream struct {
	camera *ScriptedCamera

	mu     sync.Mutex
	frames []string
	pos    int
}

func (s *scriptedStream) Decode(ctx context.Context, region scanner.DecodeRegion) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pos >= len(s.frames) {
		return "", scanner.ErrNoCodeFound
	}

	frame := s.frames[s.pos]
	s.pos++
	if frame == "" {
		return "", scanner.ErrNoCodeFound
	}
	return frame, nil
}

func (s *scriptedStream) Stop() error {
	s.camera.mu.Lock()
	defer s.camera.mu.Unlock()
	s.camera.active = false
	return nil
}
