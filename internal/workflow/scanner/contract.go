//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=scanner_test
package scanner

import (
	"context"

	"podservice/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// DecodeRegion - размер центральной области кадра, в которой ищется код.
type DecodeRegion struct {
	Width  int
	Height int
}

// Camera - абстракция над физической камерой и алгоритмом декодирования.
// Start захватывает камеру (environment-facing) и отдает живой поток.
type Camera interface {
	Start(ctx context.Context) (Stream, error)
}

// Stream - захваченный видеопоток. Decode пытается распознать код на текущем
// кадре; промах возвращается как ErrNoCodeFound. Stop освобождает камеру.
type Stream interface {
	Decode(ctx context.Context, region DecodeRegion) (string, error)
	Stop() error
}
