// Package notification envia avisos de agendamento ao cliente.
// O envio roda em segundo plano e nunca afeta a resposta da API.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/agenda-pro/internal/tasks"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// LogSender apenas registra a mensagem; usado enquanto não há provedor de e-mail.
type LogSender struct {
	log zerolog.Logger
}

func NewLogSender(log zerolog.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.log.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Msg("email sent")
	return nil
}

type AppointmentConfirmation struct {
	ClientName       string
	ClientEmail      string
	ServiceName      string
	ProfessionalName string
	DateTime         time.Time
	DurationMin      int
}

var (
	weekdaysBR = [...]string{
		"Domingo", "Segunda-feira", "Terça-feira", "Quarta-feira",
		"Quinta-feira", "Sexta-feira", "Sábado",
	}
	monthsBR = [...]string{
		"janeiro", "fevereiro", "março", "abril", "maio", "junho",
		"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
	}
)

// FormatDateTimeBR: "Segunda-feira, 15 de janeiro de 2024 às 09:30"
func FormatDateTimeBR(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d às %s",
		weekdaysBR[t.Weekday()],
		t.Day(),
		monthsBR[t.Month()-1],
		t.Year(),
		t.Format("15:04"),
	)
}

func (c AppointmentConfirmation) Message() Message {
	body := fmt.Sprintf(
		"Olá, %s!\n\nSeu agendamento foi registrado.\n\nServiço: %s\nProfissional: %s\nData: %s\nDuração: %d minutos\n",
		c.ClientName,
		c.ServiceName,
		c.ProfessionalName,
		FormatDateTimeBR(c.DateTime),
		c.DurationMin,
	)

	return Message{
		To:      c.ClientEmail,
		Subject: "Confirmação de Agendamento - " + c.ServiceName,
		Body:    body,
	}
}

type Dispatcher struct {
	sender Sender
	queue  *tasks.Queue
}

func NewDispatcher(sender Sender, queue *tasks.Queue) *Dispatcher {
	return &Dispatcher{sender: sender, queue: queue}
}

func (d *Dispatcher) AppointmentCreated(c AppointmentConfirmation) {
	if d == nil || c.ClientEmail == "" {
		return
	}

	msg := c.Message()
	d.queue.Enqueue(tasks.Job{
		Name: "email:appointment_confirmation",
		Run: func(ctx context.Context) error {
			return d.sender.Send(ctx, msg)
		},
	})
}
