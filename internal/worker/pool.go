package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// QueueRecibos is the Redis list receipt jobs are pushed to.
const QueueRecibos = "queue:recibos"

// Job is the envelope every queued task travels in.
type Job struct {
	ID      string          `json:"id"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Dispatcher pushes jobs onto Redis queues.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueRecibo queues a receipt delivery for the given sale.
func (d *Dispatcher) EnqueueRecibo(ctx context.Context, ventaID uuid.UUID, correo string) error {
	payload, err := json.Marshal(ReciboPayload{VentaID: ventaID.String(), Correo: correo})
	if err != nil {
		return err
	}
	job := Job{
		ID:      uuid.NewString(),
		Type:    "recibo",
		Payload: payload,
	}
	raw, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, QueueRecibos, raw).Err()
}

// Handlers bundles the job processors the pool dispatches to.
type Handlers struct {
	Recibo *ReciboWorker
}

// StartPool launches n workers that block on the receipt queue until the
// context is cancelled.
func StartPool(ctx context.Context, rdb *redis.Client, n int, handlers Handlers) {
	if n < 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		go runWorker(ctx, rdb, i, handlers)
	}
	log.Info().Int("workers", n).Msg("worker pool iniciado")
}

func runWorker(ctx context.Context, rdb *redis.Client, id int, handlers Handlers) {
	logger := log.With().Int("worker", id).Logger()
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		res, err := rdb.BRPop(ctx, 5*time.Second, QueueRecibos).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
				continue
			}
			logger.Warn().Err(err).Msg("error leyendo la cola")
			time.Sleep(time.Second)
			continue
		}
		if len(res) < 2 {
			continue
		}

		var job Job
		if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
			logger.Error().Err(err).Msg("job ilegible, descartado")
			continue
		}

		if err := dispatch(ctx, job, handlers); err != nil {
			logger.Error().Err(err).Str("job_id", job.ID).Str("type", job.Type).Msg("job fallido")
		}
	}
}

func dispatch(ctx context.Context, job Job, handlers Handlers) error {
	switch job.Type {
	case "recibo":
		if handlers.Recibo == nil {
			return errors.New("sin handler para recibos")
		}
		return handlers.Recibo.Process(ctx, job.Payload)
	default:
		return fmt.Errorf("tipo de job desconocido: %s", job.Type)
	}
}
