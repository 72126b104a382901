// Package cron runs the scheduled calendar cache warm. Cold calendar reads
// go out to the Google API and can take seconds; the warm keeps today's and
// tomorrow's events primed in the cache on a fixed schedule.
package cron

import (
	"context"
	"time"

	"eventhorizon/config"
	"eventhorizon/services/calendar"
	"eventhorizon/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeCalendarWarm is the task type for a cache warm run.
const TypeCalendarWarm = "calendar:warm"

// InitCacheWarmWorker starts the asynq server and scheduler for the warm
// task. Both need Redis; without it, or without a configured schedule, the
// worker stays off and the app serves cold reads.
func InitCacheWarmWorker(svc calendar.Service) {
	logger := utils.GetLogger()

	if config.AppConfig.RedisAddr == "" || config.AppConfig.CacheWarmSchedule == "" {
		logger.Info("cache warm worker disabled")
		return
	}

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	}

	srv := asynq.NewServer(redisOpts, asynq.Config{
		Concurrency: 2,
		Queues: map[string]int{
			"default": 1,
		},
	})
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCalendarWarm, handleCalendarWarm(svc))

	go func() {
		logger.Info("starting cache warm worker")
		if err := srv.Run(mux); err != nil {
			logger.Error("cache warm worker stopped", zap.Error(err))
		}
	}()

	scheduler := asynq.NewScheduler(redisOpts, nil)
	entryID, err := scheduler.Register(config.AppConfig.CacheWarmSchedule, asynq.NewTask(TypeCalendarWarm, nil))
	if err != nil {
		logger.Error("failed to register cache warm schedule",
			zap.String("schedule", config.AppConfig.CacheWarmSchedule), zap.Error(err))
		return
	}
	go func() {
		logger.Info("cache warm scheduled",
			zap.String("schedule", config.AppConfig.CacheWarmSchedule),
			zap.String("entry_id", entryID))
		if err := scheduler.Run(); err != nil {
			logger.Error("cache warm scheduler stopped", zap.Error(err))
		}
	}()
}

// handleCalendarWarm fetches today's and tomorrow's events through the
// calendar service, which stores the formatted result in the cache.
func handleCalendarWarm(svc calendar.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()
		runID := uuid.NewString()

		loc, err := time.LoadLocation(config.AppConfig.Timezone)
		if err != nil {
			loc = time.UTC
		}
		today := time.Now().In(loc).Format(utils.DateLayout)
		tomorrow := time.Now().In(loc).AddDate(0, 0, 1).Format(utils.DateLayout)

		started := time.Now()
		events, err := svc.GetEvents(ctx, today, tomorrow)
		if err != nil {
			logger.Error("calendar cache warm failed",
				zap.String("run_id", runID), zap.Error(err))
			return err
		}
		logger.Info("calendar cache warmed",
			zap.String("run_id", runID),
			zap.String("from", today),
			zap.String("to", tomorrow),
			zap.Int("events", len(events)),
			zap.Duration("took", time.Since(started)))
		return nil
	}
}
