package audit

import (
	"context"

	"github.com/BruksfildServices01/agenda-pro/internal/tasks"
)

type Event struct {
	ProfessionalID *uint
	UserID         *uint
	TraceID        string
	Action         string
	Entity         string
	EntityID       *uint
	Metadata       any
}

type Dispatcher struct {
	logger *Logger
	queue  *tasks.Queue
}

func NewDispatcher(logger *Logger, queue *tasks.Queue) *Dispatcher {
	return &Dispatcher{logger: logger, queue: queue}
}

// Dispatch nunca bloqueia nem falha para quem chama; auditoria perdida
// aparece apenas no log da aplicação.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	d.queue.Enqueue(tasks.Job{
		Name: "audit:" + ev.Action,
		Run: func(ctx context.Context) error {
			return d.logger.Log(ctx, ev)
		},
	})
}
