package middleware

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/yard-service/internal/domain/model"
	"github.com/guttosm/yard-service/internal/logger"
	"github.com/guttosm/yard-service/internal/metrics"
	"github.com/guttosm/yard-service/internal/service"
)

// AsyncLoggerConfig holds configuration for the async log writer.
type AsyncLoggerConfig struct {
	// BufferSize is the capacity of the entry queue.
	BufferSize int
	// NumWorkers is the number of goroutines draining the queue.
	NumWorkers int
	// WriteTimeout bounds a single database write.
	WriteTimeout time.Duration
}

// DefaultAsyncLoggerConfig returns the defaults used at startup.
func DefaultAsyncLoggerConfig() AsyncLoggerConfig {
	return AsyncLoggerConfig{
		BufferSize:   1000,
		NumWorkers:   4,
		WriteTimeout: 5 * time.Second,
	}
}

// AsyncLogger moves request and audit log writes off the request path. A
// bounded queue and a fixed worker pool keep a slow Mongo write from ever
// delaying a resolution response; when the queue is full, entries are dropped
// and counted rather than blocking the caller.
type AsyncLogger struct {
	logs         service.LoggingService
	queue        chan *model.LogEntry
	workers      sync.WaitGroup
	quit         chan struct{}
	stopped      atomic.Bool
	writeTimeout time.Duration

	enqueued int64
	dropped  int64
	written  int64
	failed   int64
}

// NewAsyncLogger starts the worker pool. A nil logging service yields a nil
// logger, which callers treat as "async logging disabled".
func NewAsyncLogger(logs service.LoggingService, cfg AsyncLoggerConfig) *AsyncLogger {
	if logs == nil {
		return nil
	}

	al := &AsyncLogger{
		logs:         logs,
		queue:        make(chan *model.LogEntry, cfg.BufferSize),
		quit:         make(chan struct{}),
		writeTimeout: cfg.WriteTimeout,
	}

	for i := 0; i < cfg.NumWorkers; i++ {
		al.workers.Add(1)
		go al.drain()
	}

	return al
}

// Log enqueues an entry for background persistence. It never blocks: when
// the queue is full or the logger is stopped the entry is dropped and false
// is returned.
func (al *AsyncLogger) Log(entry *model.LogEntry) bool {
	if al.stopped.Load() {
		atomic.AddInt64(&al.dropped, 1)
		metrics.AsyncLogDroppedTotal.Inc()
		return false
	}

	select {
	case al.queue <- entry:
		atomic.AddInt64(&al.enqueued, 1)
		metrics.AsyncLogQueueDepth.Set(float64(len(al.queue)))
		return true
	default:
		atomic.AddInt64(&al.dropped, 1)
		metrics.AsyncLogDroppedTotal.Inc()
		return false
	}
}

// Stop flushes the queue and waits for the workers to finish. Entries logged
// after Stop are dropped. Safe to call more than once.
func (al *AsyncLogger) Stop() {
	if !al.stopped.CompareAndSwap(false, true) {
		return
	}
	close(al.quit)
	al.workers.Wait()
}

// Stats reports lifetime counters for enqueued, dropped, written, and failed
// entries.
func (al *AsyncLogger) Stats() (enqueued, dropped, written, failed int64) {
	return atomic.LoadInt64(&al.enqueued),
		atomic.LoadInt64(&al.dropped),
		atomic.LoadInt64(&al.written),
		atomic.LoadInt64(&al.failed)
}

// drain is the worker loop. On shutdown it empties whatever is still queued
// before returning, so accepted entries are not lost.
func (al *AsyncLogger) drain() {
	defer al.workers.Done()

	for {
		select {
		case entry := <-al.queue:
			al.persist(entry)
		case <-al.quit:
			for {
				select {
				case entry := <-al.queue:
					al.persist(entry)
				default:
					return
				}
			}
		}
	}
}

// persist writes one entry with a bounded context. Failures are counted and
// reported to the local logger; they never propagate.
func (al *AsyncLogger) persist(entry *model.LogEntry) {
	metrics.AsyncLogQueueDepth.Set(float64(len(al.queue)))

	ctx, cancel := context.WithTimeout(context.Background(), al.writeTimeout)
	defer cancel()

	if err := al.logs.CreateLog(ctx, entry); err != nil {
		atomic.AddInt64(&al.failed, 1)
		log := logger.Logger()
		log.Warn().Err(err).Msg("Failed to write async log entry")
		return
	}
	atomic.AddInt64(&al.written, 1)
}

var (
	globalAsyncLogger   *AsyncLogger
	globalAsyncLoggerMu sync.RWMutex
)

// InitAsyncLogger installs the process-wide async logger, stopping any
// previous instance first. Called once from application startup.
func InitAsyncLogger(logs service.LoggingService, cfg AsyncLoggerConfig) {
	globalAsyncLoggerMu.Lock()
	defer globalAsyncLoggerMu.Unlock()

	if globalAsyncLogger != nil {
		globalAsyncLogger.Stop()
	}
	globalAsyncLogger = NewAsyncLogger(logs, cfg)
}

// GetAsyncLogger returns the process-wide async logger, or nil when async
// logging is disabled.
func GetAsyncLogger() *AsyncLogger {
	globalAsyncLoggerMu.RLock()
	defer globalAsyncLoggerMu.RUnlock()
	return globalAsyncLogger
}

// StopAsyncLogger flushes and clears the process-wide async logger.
func StopAsyncLogger() {
	globalAsyncLoggerMu.Lock()
	defer globalAsyncLoggerMu.Unlock()

	if globalAsyncLogger != nil {
		globalAsyncLogger.Stop()
		globalAsyncLogger = nil
	}
}
