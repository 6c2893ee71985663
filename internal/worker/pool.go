// Package worker implements the buffered worker pool that records API
// token usage off the request path:
// - Load shedding when the queue is full
// - Batched, de-duplicated UPDATEs of api_tokens.last_used_at
// - Graceful shutdown with a final flush
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// Execer is satisfied by *pgxpool.Pool.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Job is one observed use of a token.
type Job struct {
	TokenID int64
	UsedAt  time.Time
}

// PoolConfig configures the worker pool
type PoolConfig struct {
	WorkerCount   int
	QueueSize     int
	BatchSize     int
	FlushInterval time.Duration
	Postgres      Execer
	Logger        *zap.Logger
	// Registerer defaults to prometheus.DefaultRegisterer.
	Registerer prometheus.Registerer
}

type poolMetrics struct {
	enqueued   prometheus.Counter
	written    prometheus.Counter
	failed     prometheus.Counter
	loadShed   prometheus.Counter
	queueDepth prometheus.Gauge
	flushTime  prometheus.Histogram
}

func newPoolMetrics(reg prometheus.Registerer) *poolMetrics {
	f := promauto.With(reg)
	return &poolMetrics{
		enqueued: f.NewCounter(prometheus.CounterOpts{
			Name: "roster_token_touch_enqueued_total",
			Help: "Token uses queued for last_used_at bookkeeping",
		}),
		written: f.NewCounter(prometheus.CounterOpts{
			Name: "roster_token_touch_written_total",
			Help: "Distinct tokens whose last_used_at was updated",
		}),
		failed: f.NewCounter(prometheus.CounterOpts{
			Name: "roster_token_touch_failed_total",
			Help: "Tokens whose last_used_at update failed",
		}),
		loadShed: f.NewCounter(prometheus.CounterOpts{
			Name: "roster_token_touch_load_shed_total",
			Help: "Token uses dropped because the queue was full or stopped",
		}),
		queueDepth: f.NewGauge(prometheus.GaugeOpts{
			Name: "roster_token_touch_queue_depth",
			Help: "Current depth of the token usage queue",
		}),
		flushTime: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "roster_token_touch_flush_duration_seconds",
			Help:    "Duration of batched last_used_at updates",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// Pool manages a pool of workers for async token bookkeeping
type Pool struct {
	config   PoolConfig
	jobQueue chan Job
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	logger   *zap.SugaredLogger
	metrics  *poolMetrics
	now      func() time.Time

	mu      sync.RWMutex
	stopped bool
}

// NewPool creates a new worker pool
func NewPool(cfg PoolConfig) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1000
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = 5 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Registerer == nil {
		cfg.Registerer = prometheus.DefaultRegisterer
	}

	return &Pool{
		config:   cfg,
		jobQueue: make(chan Job, cfg.QueueSize),
		logger:   cfg.Logger.Sugar(),
		metrics:  newPoolMetrics(cfg.Registerer),
		now:      time.Now,
	}
}

// Start launches the worker goroutines
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	go p.reportQueueDepth()

	p.logger.Infow("Token usage pool started",
		"workers", p.config.WorkerCount,
		"queueSize", p.config.QueueSize,
		"batchSize", p.config.BatchSize,
	)
}

// Stop drains the queue, flushes pending batches and waits for the workers.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobQueue)
	p.mu.Unlock()

	p.wg.Wait()
	if p.cancel != nil {
		p.cancel()
	}
	p.logger.Info("Token usage pool stopped")
}

// Touch records a token use. It never blocks: when the queue is full or
// the pool is stopped the use is dropped and false is returned.
func (p *Pool) Touch(tokenID int64) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		p.metrics.loadShed.Inc()
		return false
	}

	select {
	case p.jobQueue <- Job{TokenID: tokenID, UsedAt: p.now()}:
		p.metrics.enqueued.Inc()
		return true
	default:
		p.metrics.loadShed.Inc()
		return false
	}
}

// QueueDepth returns current queue size
func (p *Pool) QueueDepth() int {
	return len(p.jobQueue)
}

// worker collects jobs into batches and flushes on size or interval
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	batch := make([]Job, 0, p.config.BatchSize)
	ticker := time.NewTicker(p.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}

		start := time.Now()
		ids, usedAt := latestUses(batch)
		if err := p.processBatch(ids, usedAt); err != nil {
			p.logger.Errorw("Token usage batch failed",
				"worker", id,
				"tokens", len(ids),
				"error", err,
			)
			p.metrics.failed.Add(float64(len(ids)))
		} else {
			p.logger.Debugw("Token usage batch written", "worker", id, "tokens", len(ids), "duration", time.Since(start))
			p.metrics.written.Add(float64(len(ids)))
		}
		p.metrics.flushTime.Observe(time.Since(start).Seconds())

		batch = batch[:0]
	}

	for {
		select {
		case job, ok := <-p.jobQueue:
			if !ok {
				flush()
				return
			}
			batch = append(batch, job)
			if len(batch) >= p.config.BatchSize {
				flush()
			}

		case <-ticker.C:
			flush()
		}
	}
}

// processBatch stamps ids[i] with usedAt[i]. A newer stored value is kept.
func (p *Pool) processBatch(ids []int64, usedAt []time.Time) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := p.config.Postgres.Exec(ctx, `UPDATE api_tokens AS t SET last_used_at = u.used_at
FROM unnest($1::bigint[], $2::timestamptz[]) AS u(id, used_at)
WHERE t.id = u.id AND (t.last_used_at IS NULL OR t.last_used_at < u.used_at)`, ids, usedAt)
	return err
}

func (p *Pool) reportQueueDepth() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.metrics.queueDepth.Set(float64(len(p.jobQueue)))
		case <-p.ctx.Done():
			return
		}
	}
}

// latestUses dedupes a batch, keeping first-seen token order and the
// latest use of each token.
func latestUses(batch []Job) ([]int64, []time.Time) {
	index := make(map[int64]int, len(batch))
	ids := make([]int64, 0, len(batch))
	usedAt := make([]time.Time, 0, len(batch))
	for _, job := range batch {
		if i, dup := index[job.TokenID]; dup {
			if job.UsedAt.After(usedAt[i]) {
				usedAt[i] = job.UsedAt
			}
			continue
		}
		index[job.TokenID] = len(ids)
		ids = append(ids, job.TokenID)
		usedAt = append(usedAt, job.UsedAt)
	}
	return ids, usedAt
}
