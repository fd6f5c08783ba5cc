package scanner

import "errors"

var (
	// ErrNoCodeFound возвращает Stream.Decode, когда в кадре нет кода.
	// Промахи ожидаемы на каждом кадре и никогда не всплывают наружу.
	ErrNoCodeFound = errors.New("no code found in frame")

	ErrCameraUnavailable = errors.New("camera unavailable")
	ErrEmptyIdentifier   = errors.New("empty identifier")
)
