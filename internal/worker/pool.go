package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueAlertaEstoque = "jobs:alerta_estoque"

	maxAttempts = 3
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Attempts int             `json:"attempts"`
}

// AlertaEstoquePayload is queued whenever a stock movement leaves a product
// at or below its reorder threshold.
type AlertaEstoquePayload struct {
	ProdutoID     string `json:"produto_id"`
	Nome          string `json:"nome"`
	EstoqueAtual  int    `json:"estoque_atual"`
	EstoqueMinimo int    `json:"estoque_minimo"`
}

// Handler processes one dequeued job. A returned error triggers a retry;
// after maxAttempts the job lands in the DLQ.
type Handler interface {
	Process(ctx context.Context, payload json.RawMessage) error
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueAlertaEstoque pushes a low-stock alert job to Redis.
func (d *Dispatcher) EnqueueAlertaEstoque(ctx context.Context, payload AlertaEstoquePayload) error {
	return d.enqueue(ctx, QueueAlertaEstoque, "alerta_estoque", payload)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// Pool consumes jobs from Redis lists and routes them to registered handlers.
type Pool struct {
	rdb      *redis.Client
	handlers map[string]Handler
	queues   []string
}

func NewPool(rdb *redis.Client) *Pool {
	return &Pool{rdb: rdb, handlers: make(map[string]Handler)}
}

// Register binds a handler to a queue. Must be called before Start.
func (p *Pool) Register(queue string, h Handler) {
	p.handlers[queue] = h
	p.queues = append(p.queues, queue)
}

// Start launches numWorkers goroutines consuming all registered queues.
// Each goroutine blocks on BRPOP, so an idle pool costs no CPU.
func (p *Pool) Start(ctx context.Context, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go p.run(ctx, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func (p *Pool) run(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop waits up to 5s then loops to check ctx.
			result, err := p.rdb.BRPop(ctx, 5*time.Second, p.queues...).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			p.processJob(ctx, result[0], result[1])
		}
	}
}

func (p *Pool) processJob(ctx context.Context, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		return
	}

	handler, ok := p.handlers[queue]
	if !ok {
		log.Error().Str("queue", queue).Str("type", job.Type).Msg("no handler registered")
		return
	}

	if err := handler.Process(ctx, job.Payload); err != nil {
		job.Attempts++
		if job.Attempts >= maxAttempts {
			SendToDLQ(ctx, p.rdb, queue, job.Type, job.Payload, err.Error(), job.Attempts)
			return
		}
		encoded, marshalErr := json.Marshal(job)
		if marshalErr != nil {
			log.Error().Err(marshalErr).Str("queue", queue).Msg("failed to re-enqueue job")
			return
		}
		if pushErr := p.rdb.LPush(ctx, queue, encoded).Err(); pushErr != nil {
			log.Error().Err(pushErr).Str("queue", queue).Msg("failed to re-enqueue job")
		}
		return
	}
	log.Debug().Str("type", job.Type).Str("queue", queue).Msg("job processed")
}
