package dispatch

import (
	"context"
	"encoding/json"
	"time"

	"booking-intake/internal/domain/outbound"
	"booking-intake/internal/pkg/config"
	"booking-intake/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// publisher is the part of *amqp.Channel used here.
type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQP hands email jobs to a mail worker through a topic exchange.
// Routing key is <key>.<template>.
type AMQP struct {
	ch       publisher
	exchange string
	key      string
}

// Job is the message body consumed by the mail worker.
type Job struct {
	Template outbound.Template    `json:"template"`
	Params   outbound.EmailParams `json:"params"`
}

func NewAMQP(ch publisher, cfg config.AMQPConfig) *AMQP {
	return &AMQP{ch: ch, exchange: cfg.Exchange, key: cfg.Key}
}

func (a *AMQP) Send(ctx context.Context, tpl outbound.Template, params outbound.EmailParams) error {
	body, err := json.Marshal(Job{Template: tpl, Params: params})
	if err != nil {
		return errs.Wrap(err, "encode email job")
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if ref, ok := params["reference"].(string); ok {
		msg.MessageId = ref + "-" + string(tpl)
	}

	if err := a.ch.PublishWithContext(ctx, a.exchange, a.key+"."+string(tpl), false, false, msg); err != nil {
		return errs.Mark(errs.Wrapf(err, "publish %s email", tpl), errs.ErrDispatchFailed)
	}
	return nil
}

// DialAMQP connects, opens a channel and declares the durable topic exchange.
func DialAMQP(cfg config.AMQPConfig) (*amqp.Channel, func(), error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, nil, errs.Wrap(err, "amqp dial")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, errs.Wrap(err, "amqp channel")
	}
	if err := ch.ExchangeDeclare(cfg.Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, errs.Wrapf(err, "declare exchange %s", cfg.Exchange)
	}

	cleanup := func() {
		_ = ch.Close()
		_ = conn.Close()
	}
	return ch, cleanup, nil
}
