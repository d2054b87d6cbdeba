// Package actor define quem está agindo numa requisição. O papel é resolvido
// uma única vez na borda (middleware) e repassado explicitamente.
package actor

import "context"

// Actor é Client ou Professional; nenhum outro tipo implementa a interface.
type Actor interface {
	ID() uint
	isActor()
}

type Client struct {
	UserID uint
}

func (c Client) ID() uint { return c.UserID }
func (Client) isActor() {}

type Professional struct {
	UserID         uint
	ProfessionalID uint
}

func (p Professional) ID() uint { return p.UserID }
func (Professional) isActor() {}

// AsProfessional devolve o perfil profissional quando o ator for um.
func AsProfessional(a Actor) (Professional, bool) {
	p, ok := a.(Professional)
	return p, ok
}

func Role(a Actor) string {
	switch a.(type) {
	case Professional:
		return "professional"
	case Client:
		return "client"
	default:
		return "anonymous"
	}
}

type ctxKey int

const (
	actorKey ctxKey = iota
	traceKey
)

func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey, a)
}

func FromContext(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(actorKey).(Actor)
	return a, ok
}

func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceKey, id)
}

func TraceID(ctx context.Context) string {
	id, _ := ctx.Value(traceKey).(string)
	return id
}
