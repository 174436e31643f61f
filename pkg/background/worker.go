package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"marketplace/pkg/logger"
)

// Task периодическая задача. Info используется как метка в логах и метриках,
// поэтому должна быть короткой и стабильной.
type Task interface {
	TTL() time.Duration
	Do(context.Context) error
	Info() string
}

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

const (
	resultOK    = "ok"
	resultError = "error"
	resultPanic = "panic"
)

type Worker struct {
	log   handlerLogger
	tasks []Task
	wg    sync.WaitGroup
}

// New прогоняет все задачи один раз параллельно. Если прогрев прошёл без ошибок,
// каждая задача дальше выполняется по своему TTL до отмены ctx.
func New(ctx context.Context, log handlerLogger, tasks []Task) (*Worker, error) {
	w := &Worker{
		log:   log,
		tasks: tasks,
	}

	warmUp, warmUpCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		warmUp.Go(func() error {
			if err := w.runOnce(warmUpCtx, task); err != nil {
				return fmt.Errorf("warm-up %s: %w", task.Info(), err)
			}
			return nil
		})
	}
	if err := warmUp.Wait(); err != nil {
		return nil, fmt.Errorf("failed to initialize tasks: %w", err)
	}

	for _, task := range tasks {
		w.wg.Add(1)
		go w.schedule(ctx, task)
	}
	return w, nil
}

// Wait блокируется, пока все задачи не остановятся после отмены контекста New.
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) schedule(ctx context.Context, task Task) {
	defer w.wg.Done()

	taskLog := w.log.With(logger.NewField("task", task.Info()))

	ttl := task.TTL()
	if ttl <= 0 {
		taskLog.Warn("non-positive TTL, periodic runs disabled", logger.NewField("ttl", ttl))
		return
	}
	taskLog.Info("task scheduled", logger.NewField("ttl", ttl))

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			taskLog.Info("task stopped")
			return
		case <-ticker.C:
			if err := w.runOnce(ctx, task); err != nil {
				taskLog.Error("task failed", logger.NewField("error", err))
			}
		}
	}
}

// runOnce выполняет задачу, превращая панику в ошибку, и пишет метрики запуска.
func (w *Worker) runOnce(ctx context.Context, task Task) (err error) {
	name := task.Info()
	start := time.Now()
	result := resultOK

	defer func() {
		if r := recover(); r != nil {
			result = resultPanic
			err = fmt.Errorf("panic: %v\n%s", r, debug.Stack())
		}
		TaskDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
		TaskRunsTotal.WithLabelValues(name, result).Inc()
	}()

	w.log.Debug("task run", logger.NewField("task", name))
	if err = task.Do(ctx); err != nil {
		result = resultError
	}
	return err
}
