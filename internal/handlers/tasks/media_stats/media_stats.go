package media_stats

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"podservice/pkg/logger"
)

var (
	MediaStoreObjects = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "media_store_objects_total",
			Help: "Number of blobs in the media store",
		},
	)

	MediaStoreBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "media_store_bytes_total",
			Help: "Total size of the media store in bytes",
		},
	)
)

// MediaStats периодически обходит каталог медиа-хранилища и выставляет
// gauge-метрики по количеству и объему блобов. Задача только наблюдает:
// осиротевшие блобы (загруженные без записи о доставке) здесь видны как
// расхождение с БД, но никогда не удаляются.
type MediaStats struct {
	log      logger.Logger
	root     string
	interval time.Duration
}

func NewMediaStats(log logger.Logger, root string, interval time.Duration) *MediaStats {
	return &MediaStats{
		log:      log,
		root:     root,
		interval: interval,
	}
}

func (m *MediaStats) TTL() time.Duration {
	return m.interval
}

func (m *MediaStats) Do(ctx context.Context) error {
	var (
		objects int64
		bytes   int64
	)

	err := filepath.WalkDir(m.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		objects++
		bytes += info.Size()
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			// Хранилище еще не создано: первый коммит сделает MkdirAll.
			MediaStoreObjects.Set(0)
			MediaStoreBytes.Set(0)
			return nil
		}
		return err
	}

	MediaStoreObjects.Set(float64(objects))
	MediaStoreBytes.Set(float64(bytes))

	m.log.With(
		logger.NewField("objects", objects),
		logger.NewField("bytes", bytes),
	).Info("media store stats")

	return nil
}

func (m *MediaStats) Info() string {
	return "media store stats"
}
