// Package tasks executa efeitos colaterais em segundo plano (auditoria,
// e-mail). Falhas aqui nunca voltam para quem enfileirou.
package tasks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type Job struct {
	Name string
	Run  func(ctx context.Context) error
}

type Queue struct {
	log     zerolog.Logger
	queue   chan Job
	timeout time.Duration

	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

func NewQueue(log zerolog.Logger, size, workers int) *Queue {
	if size <= 0 {
		size = 100
	}
	if workers <= 0 {
		workers = 1
	}

	q := &Queue{
		log:     log,
		queue:   make(chan Job, size),
		timeout: 30 * time.Second,
	}

	for i := 0; i < workers; i++ {
		q.wg.Add(1)
		go q.worker()
	}
	return q
}

func (q *Queue) worker() {
	defer q.wg.Done()
	for job := range q.queue {
		q.run(job)
	}
}

func (q *Queue) run(job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			q.log.Error().
				Str("job", job.Name).
				Err(fmt.Errorf("panic: %v", r)).
				Msg("background job panicked")
		}
	}()

	if err := job.Run(ctx); err != nil {
		q.log.Error().Err(err).Str("job", job.Name).Msg("background job failed")
	}
}

// Enqueue nunca bloqueia: com a fila cheia (ou fechada) o job é descartado.
func (q *Queue) Enqueue(job Job) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		q.log.Warn().Str("job", job.Name).Msg("queue closed, dropping job")
		return false
	}

	select {
	case q.queue <- job:
		return true
	default:
		q.log.Warn().Str("job", job.Name).Msg("queue full, dropping job")
		return false
	}
}

// Close para de aceitar jobs e espera os pendentes terminarem.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.queue)
	q.mu.Unlock()

	q.wg.Wait()
}
