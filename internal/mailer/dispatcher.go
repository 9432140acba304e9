package mailer

import (
	"context"
	"log/slog"
	"sync"
)

// Dispatcher owns the background delivery workers. Jobs are handed off
// through a bounded queue; the request that enqueued a job returns
// immediately and never learns whether delivery succeeded. Delivery is
// best-effort: one attempt per job, failures are logged and discarded.
type Dispatcher struct {
	sender Sender
	logger *slog.Logger

	jobs chan Job

	// Worker lifecycle. The dispatcher context is independent of any
	// request context; queued jobs carry only immutable snapshots.
	ctx     context.Context //nolint:containedctx // Context needed for worker lifecycle management
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	workers int

	mu      sync.Mutex
	stopped bool
}

// NewDispatcher creates a dispatcher with the given queue capacity and
// worker count.
func NewDispatcher(sender Sender, queueSize, workers int, logger *slog.Logger) *Dispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		sender:  sender,
		logger:  logger,
		jobs:    make(chan Job, queueSize),
		ctx:     ctx,
		cancel:  cancel,
		workers: workers,
	}
}

// Start launches the delivery workers.
func (d *Dispatcher) Start() {
	d.logger.Info("starting export delivery workers", slog.Int("workers", d.workers))
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(i)
	}
}

// Enqueue hands a job to the background workers without blocking. A
// full queue drops the job: delivery is best-effort and the caller has
// already been acknowledged.
func (d *Dispatcher) Enqueue(job Job) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		d.logger.Warn("export delivery dispatcher stopped, dropping job",
			slog.String("job_id", job.ID))
		return
	}

	select {
	case d.jobs <- job:
		d.logger.Info("export delivery queued",
			slog.String("job_id", job.ID),
			slog.String("recipient", job.Recipient))
	default:
		d.logger.Warn("export delivery queue full, dropping job",
			slog.String("job_id", job.ID),
			slog.String("recipient", job.Recipient))
	}
}

// Stop closes intake, drains queued jobs, and waits for the workers to
// finish. Implements do.Shutdownable for the DI container.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	d.mu.Unlock()

	close(d.jobs)
	d.wg.Wait()
	d.cancel()
	d.logger.Info("export delivery workers stopped")
}

// Shutdown implements do.Shutdownable.
func (d *Dispatcher) Shutdown() error {
	d.Stop()
	return nil
}

// worker consumes jobs until the queue closes. Every failure is caught
// here; nothing propagates past this point.
func (d *Dispatcher) worker(id int) {
	defer d.wg.Done()
	d.logger.Debug("export delivery worker started", slog.Int("worker_id", id))

	for job := range d.jobs {
		if err := d.sender.Send(d.ctx, job); err != nil {
			d.logger.Error("failed to send export email",
				slog.String("job_id", job.ID),
				slog.String("recipient", job.Recipient),
				slog.Any("error", err))
			continue
		}
		d.logger.Info("export email sent",
			slog.String("job_id", job.ID),
			slog.String("recipient", job.Recipient))
	}

	d.logger.Debug("export delivery worker stopping", slog.Int("worker_id", id))
}
