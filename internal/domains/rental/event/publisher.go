package event

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=../mocks/publisher_mock.go -package=mocks

import (
	"context"
	"strconv"

	"ehotels/config"
	"ehotels/infras/kafka"
	"ehotels/infras/otel"
	"ehotels/internal/domains/rental/model/dto"
	"ehotels/shared/constant"

	"github.com/rs/zerolog/log"
)

// Publisher announces committed rentals. Publishing is best effort: a failure
// is logged and traced but never undoes the rental.
type Publisher interface {
	RentalCreated(ctx context.Context, event dto.RentalCreatedEvent)
}

type publisherImpl struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

func New(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		topic:  cfg.Kafka.Topics.Rental,
		otel:   otel,
	}
}

func (p *publisherImpl) RentalCreated(ctx context.Context, event dto.RentalCreatedEvent) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".RentalCreated")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"topic":     p.topic,
		"rental_id": event.RentalID,
	})

	message := kafka.Message{
		Key:   strconv.FormatInt(event.RentalID, 10),
		Value: event,
	}

	if err := p.client.SendMessages(ctx, p.topic, message); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Int64("rental_id", event.RentalID).Msg("failed to publish rental created event")
	}
}
