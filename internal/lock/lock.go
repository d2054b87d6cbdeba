// Package lock serializa a criação de agendamentos por profissional.
package lock

import (
	"context"
	"errors"
	"fmt"
)

// ErrTimeout indica que o lock não foi obtido dentro do prazo.
var ErrTimeout = errors.New("lock: timeout acquiring lock")

type Locker interface {
	// Lock bloqueia até obter a chave ou o ctx expirar. unlock pode ser
	// chamado mais de uma vez.
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

func BookingKey(professionalID uint) string {
	return fmt.Sprintf("agenda:booking:professional:%d", professionalID)
}
