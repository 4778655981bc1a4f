package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	jobTracer          = otel.Tracer("budgea/scheduler")
	jobMeter           = otel.Meter("budgea/scheduler")
	jobDuration, _     = jobMeter.Float64Histogram("scheduler.job.duration", metric.WithDescription("Job execution duration in seconds"), metric.WithUnit("s"))
	jobTotal, _        = jobMeter.Int64Counter("scheduler.job.total", metric.WithDescription("Total jobs executed by status"))
	jobQueueDropped, _ = jobMeter.Int64Counter("scheduler.job.queue_dropped", metric.WithDescription("Jobs dropped due to full queue"))
)

var (
	// ErrQueueFull is returned by Submit when the job is dropped.
	ErrQueueFull  = errors.New("job queue full")
	ErrPoolClosed = errors.New("worker pool is shut down")
)

const defaultJobTimeout = 10 * time.Minute

// WorkerPool runs jobs on a fixed number of goroutines, pausing jobDelay
// between two jobs of the same worker.
type WorkerPool struct {
	workerCount int
	jobDelay    time.Duration
	jobTimeout  time.Duration
	jobs        chan Job
	wg          sync.WaitGroup
	ctx         context.Context
	cancel      context.CancelFunc
	log         logrus.FieldLogger

	mu     sync.RWMutex
	closed bool
}

func NewWorkerPool(workerCount int, jobDelay time.Duration, queueSize int, log logrus.FieldLogger) *WorkerPool {
	if workerCount < 1 {
		workerCount = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &WorkerPool{
		workerCount: workerCount,
		jobDelay:    jobDelay,
		jobTimeout:  defaultJobTimeout,
		jobs:        make(chan Job, queueSize),
		ctx:         ctx,
		cancel:      cancel,
		log:         log.WithField("component", "worker_pool"),
	}
}

func (wp *WorkerPool) Start() {
	wp.log.Infof("Starting worker pool with %d workers", wp.workerCount)
	for i := 1; i <= wp.workerCount; i++ {
		wp.wg.Add(1)
		go wp.worker(i)
	}
}

func (wp *WorkerPool) worker(id int) {
	defer wp.wg.Done()
	log := wp.log.WithField("worker", id)

	for {
		select {
		case <-wp.ctx.Done():
			log.Debug("Worker shutting down")
			return

		case job, ok := <-wp.jobs:
			if !ok {
				log.Debug("Job channel closed")
				return
			}
			wp.processJob(id, job)

			if wp.jobDelay > 0 {
				select {
				case <-time.After(wp.jobDelay):
				case <-wp.ctx.Done():
					return
				}
			}
		}
	}
}

// processJob runs one job under its own timeout, span and run id.
func (wp *WorkerPool) processJob(workerID int, job Job) {
	runID := uuid.NewString()
	log := wp.log.WithFields(logrus.Fields{
		"worker":  workerID,
		"user_id": job.UserID(),
		"run_id":  runID,
	})
	log.Infof("Processing %s", job.Description())

	ctx, cancel := context.WithTimeout(wp.ctx, wp.jobTimeout)
	defer cancel()

	ctx, span := jobTracer.Start(ctx, "job.execute",
		trace.WithAttributes(
			attribute.Int("worker.id", workerID),
			attribute.String("job.description", job.Description()),
			attribute.Int64("job.user_id", job.UserID()),
			attribute.String("job.run_id", runID),
		),
	)
	defer span.End()

	start := time.Now()
	err := job.Execute(ctx)
	status := "success"
	if err != nil {
		status = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	jobTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
	jobDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(attribute.String("status", status)))

	if err != nil {
		log.WithError(err).Errorf("Failed %s", job.Description())
		return
	}
	log.WithField("duration", time.Since(start).String()).Infof("Completed %s", job.Description())
}

// Submit queues a job without blocking.
func (wp *WorkerPool) Submit(job Job) error {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	if wp.closed {
		return ErrPoolClosed
	}

	select {
	case wp.jobs <- job:
		return nil
	default:
		jobQueueDropped.Add(context.Background(), 1)
		return ErrQueueFull
	}
}

// SubmitBatch queues jobs and returns how many were accepted.
func (wp *WorkerPool) SubmitBatch(jobs []Job) int {
	submitted := 0
	for _, job := range jobs {
		if err := wp.Submit(job); err != nil {
			wp.log.WithError(err).WithField("user_id", job.UserID()).Warn("Failed to submit job")
			continue
		}
		submitted++
	}
	wp.log.Infof("Submitted %d/%d jobs to worker pool", submitted, len(jobs))
	return submitted
}

// ShutdownWithTimeout stops accepting jobs and waits for the queue to drain.
// Running jobs are cancelled when the timeout expires.
func (wp *WorkerPool) ShutdownWithTimeout(timeout time.Duration) {
	wp.log.Infof("Initiating graceful shutdown with %v timeout", timeout)
	wp.mu.Lock()
	if !wp.closed {
		wp.closed = true
		close(wp.jobs)
	}
	wp.mu.Unlock()

	done := make(chan struct{})
	go func() {
		wp.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		wp.log.Info("All workers finished gracefully")
	case <-time.After(timeout):
		wp.log.Warn("Timeout reached, forcing shutdown")
		wp.cancel()
		<-done
	}
	wp.cancel()
}
