package kafka_test

import (
	"context"
	"testing"

	"ehotels/config"
	"ehotels/infras/kafka"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rentalEvent struct {
	RentalID  int64  `json:"rental_id"`
	BookingID *int64 `json:"booking_id"`
}

func TestMessage_ToKafkaMessage(t *testing.T) {
	bookingID := int64(10)
	msg := kafka.Message{Key: "rental:55", Value: rentalEvent{RentalID: 55, BookingID: &bookingID}}

	kmsg, err := msg.ToKafkaMessage("ehotels.rental")
	require.NoError(t, err)
	assert.Equal(t, "ehotels.rental", kmsg.Topic)
	assert.Equal(t, []byte("rental:55"), kmsg.Key)
	assert.JSONEq(t, `{"rental_id":55,"booking_id":10}`, string(kmsg.Value))

}

func TestMessage_UnmarshalableValue(t *testing.T) {
	msg := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := msg.ToKafkaMessage("topic")
	assert.Error(t, err)
}

func TestNew_Disabled(t *testing.T) {
	client := kafka.New(&config.Config{})

	assert.NoError(t, client.SendMessages(context.Background(), "ehotels.rental", kafka.Message{Key: "k", Value: 1}))
	assert.NoError(t, client.Close())
}
