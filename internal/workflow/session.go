package workflow

import (
	"sync"
)

type CommitStatus string

const (
	CommitReady      CommitStatus = "ready"
	CommitCommitting CommitStatus = "committing"
	CommitCommitted  CommitStatus = "committed"
	CommitFailed     CommitStatus = "failed"
)

func (s CommitStatus) String() string {
	return string(s)
}

// Session - эфемерное состояние одной доставки между шагами workflow:
// номер AWB (неизменен после создания), заметки водителя и статус коммита.
// Снятый blob сессии живет в capture.Buffer, а не здесь.
type Session struct {
	mu        sync.Mutex
	awbNumber string
	notes     string
	status    CommitStatus
}

func NewSession(awbNumber string) *Session {
	return &Session{
		awbNumber: awbNumber,
		status:    CommitReady,
	}
}

func (s *Session) AWBNumber() string {
	return s.awbNumber
}

func (s *Session) SetNotes(notes string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = notes
}

func (s *Session) Notes() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notes
}

func (s *Session) Status() CommitStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// TryBeginCommit переводит Ready|Failed -> Committing и возвращает true.
// Пока коммит идет (или уже завершился) возвращает false: статус Committing -
// единственный источник истины для защиты от повторного сабмита,
// а не задизейбленная кнопка в UI.
func (s *Session) TryBeginCommit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == CommitCommitting || s.status == CommitCommitted {
		return false
	}
	s.status = CommitCommitting
	return true
}

// Complete фиксирует успешный коммит (Committing -> Committed).
func (s *Session) Complete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = CommitCommitted
}

// Fail фиксирует неуспешный коммит (Committing -> Failed).
// Повторный сабмит из Failed разрешен и прогоняет все фазы заново.
func (s *Session) Fail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = CommitFailed
}
