//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	podEventGateway "podservice/internal/gateway/kafka/pod_event"
	"podservice/internal/handlers/rest/deliveries_get"
	"podservice/internal/handlers/rest/pod_post"
	"podservice/internal/handlers/tasks/media_stats"
	"podservice/internal/pkg/config"
	"podservice/internal/pkg/factory/storage_key"

	deliveryRepo "podservice/internal/repository/delivery"
	mediaRepo "podservice/internal/repository/media"
	historyService "podservice/internal/service/history"
	"podservice/internal/workflow/commit"

	"podservice/pkg/background"
	"podservice/pkg/logger"
	"podservice/pkg/querier"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	MediaStatsInterval time.Duration
)

type Application struct {
	ServicePOD        ServicePOD
	ServiceHistory    ServiceHistory
	BackgroundWorkers *background.Worker
}

type ServicePOD interface {
	pod_post.Service
}

type ServiceHistory interface {
	deliveries_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideQuerier,
		provideMediaStatsInterval,

		provideDeliveryRepository,
		provideMediaStore,
		storage_key.New,

		providePodEventGateway,
		provideCommitPipeline,
		provideHistoryService,

		provideMediaStatsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServicePOD), new(*commit.Pipeline)),
		wire.Bind(new(ServiceHistory), new(*historyService.Service)),

		wire.Bind(new(commit.BlobStore), new(*mediaRepo.Store)),
		wire.Bind(new(commit.RecordStore), new(*deliveryRepo.Repository)),
		wire.Bind(new(commit.KeyFactory), new(*storage_key.MediaKeyFactory)),
		wire.Bind(new(commit.EventPublisher), new(*podEventGateway.Gateway)),

		wire.Bind(new(historyService.RecordSource), new(*deliveryRepo.Repository)),
	)
	return &Application{}, nil
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideMediaStore(cfg *config.Config) *mediaRepo.Store {
	return mediaRepo.New(cfg.MediaStore.Path, cfg.MediaStore.PublicBaseURL)
}

func providePodEventGateway(producer sarama.SyncProducer, cfg *config.Config) *podEventGateway.Gateway {
	return podEventGateway.New(producer, cfg.Kafka.Topic)
}

func provideCommitPipeline(
	log logger.Logger,
	blobs commit.BlobStore,
	records commit.RecordStore,
	keys commit.KeyFactory,
	events commit.EventPublisher,
) *commit.Pipeline {
	// Уведомления workflow на сервере не нужны: клиент получает исход по HTTP.
	return commit.New(log, blobs, records, keys, events, nil)
}

func provideHistoryService(records historyService.RecordSource) *historyService.Service {
	return historyService.New(records)
}

func provideMediaStatsInterval(cfg *config.Config) MediaStatsInterval {
	return MediaStatsInterval(cfg.Tasks.MediaStatsInterval)
}

func provideMediaStatsTask(
	log logger.Logger,
	cfg *config.Config,
	interval MediaStatsInterval,
) *media_stats.MediaStats {
	return media_stats.NewMediaStats(log, cfg.MediaStore.Path, time.Duration(interval))
}

func provideTaskList(
	mediaStatsTask *media_stats.MediaStats,
) []background.Task {
	return []background.Task{
		mediaStatsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
