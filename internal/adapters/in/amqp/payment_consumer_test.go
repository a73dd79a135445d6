package amqp_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	payments "quickbite/internal/adapters/in/amqp"
	"quickbite/internal/core/application/usecases/commands"
	"quickbite/internal/core/domain/model/cart"
	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/core/domain/model/order"
	"quickbite/internal/pkg/errs"

	amqp091 "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderCreator struct {
	mock.Mock
}

func (m *MockOrderCreator) Handle(ctx context.Context, cmd commands.CreateOrderFromCartCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

type fakeSource struct {
	deliveries chan amqp091.Delivery
	err        error
}

func (s *fakeSource) Consume(string, string, bool, bool, bool, bool, amqp091.Table) (<-chan amqp091.Delivery, error) {
	return s.deliveries, s.err
}

// recordingAcknowledger stands in for the broker channel behind a delivery.
type recordingAcknowledger struct {
	mu     sync.Mutex
	acks   []uint64
	nacks  []uint64
	settle chan struct{}
}

func (a *recordingAcknowledger) Ack(tag uint64, _ bool) error {
	a.mu.Lock()
	a.acks = append(a.acks, tag)
	a.mu.Unlock()
	a.settle <- struct{}{}
	return nil
}

func (a *recordingAcknowledger) Nack(tag uint64, _ bool, requeue bool) error {
	a.mu.Lock()
	if requeue {
		a.nacks = append(a.nacks, tag)
	}
	a.mu.Unlock()
	a.settle <- struct{}{}
	return nil
}

func (a *recordingAcknowledger) Reject(tag uint64, requeue bool) error {
	return a.Nack(tag, false, requeue)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func paidOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), customerID, []order.Snapshot{
		{MenuItemID: kernel.NewUUID(), RestaurantID: kernel.NewUUID(), Quantity: 1, UnitPrice: kernel.MustMoney("15.00")},
	}, time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return o
}

func TestProcess(t *testing.T) {
	customerID := kernel.NewUUID()
	succeeded := []byte(`{"event":"payment_intent.succeeded","customer_id":"` + customerID.String() + `"}`)

	tests := []struct {
		name       string
		body       []byte
		result     error
		expectCall bool
		want       payments.Outcome
	}{
		{name: "order created", body: succeeded, expectCall: true, want: payments.Acked},
		{name: "malformed json", body: []byte(`{"event":`), want: payments.Acked},
		{name: "other event type", body: []byte(`{"event":"payment_intent.created","customer_id":"` + customerID.String() + `"}`), want: payments.Acked},
		{name: "bad customer id", body: []byte(`{"event":"payment_intent.succeeded","customer_id":"nope"}`), want: payments.Acked},
		{name: "missing customer id", body: []byte(`{"event":"payment_intent.succeeded"}`), want: payments.Acked},
		{name: "empty cart", body: succeeded, result: cart.ErrCartIsEmpty, expectCall: true, want: payments.Requeued},
		{name: "menu item gone", body: succeeded, result: errs.NewObjectNotFoundError("menu item", "x"), expectCall: true, want: payments.Requeued},
		{name: "mixed restaurants", body: succeeded, result: order.ErrMixedRestaurants, expectCall: true, want: payments.Requeued},
		{name: "database down", body: succeeded, result: errors.New("connection refused"), expectCall: true, want: payments.Requeued},
		{name: "lock conflict", body: succeeded, result: errs.NewConflictError("cart"), expectCall: true, want: payments.Requeued},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creator := new(MockOrderCreator)
			if tt.expectCall {
				var created *order.Order
				if tt.result == nil {
					created = paidOrder(t, customerID)
				}
				creator.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderFromCartCommand) bool {
					return cmd.CustomerID().IsEqual(customerID)
				})).Return(created, tt.result).Once()
			}
			consumer := payments.NewPaymentConsumer(creator, "payments", quietLogger())

			got := consumer.Process(context.Background(), tt.body)

			assert.Equal(t, tt.want, got)
			creator.AssertExpectations(t)
			if !tt.expectCall {
				creator.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestRun_SettlesEachDelivery(t *testing.T) {
	customerID := kernel.NewUUID()
	creator := new(MockOrderCreator)
	creator.On("Handle", mock.Anything, mock.Anything).Return(paidOrder(t, customerID), nil).Once()
	creator.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("timeout")).Once()

	ack := &recordingAcknowledger{settle: make(chan struct{}, 3)}
	source := &fakeSource{deliveries: make(chan amqp091.Delivery, 3)}
	body := []byte(`{"event":"payment_intent.succeeded","customer_id":"` + customerID.String() + `"}`)
	source.deliveries <- amqp091.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: body}
	source.deliveries <- amqp091.Delivery{Acknowledger: ack, DeliveryTag: 2, Body: body}
	source.deliveries <- amqp091.Delivery{Acknowledger: ack, DeliveryTag: 3, Body: []byte("garbage")}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- payments.NewPaymentConsumer(creator, "payments", quietLogger()).Run(ctx, source)
	}()

	for range 3 {
		select {
		case <-ack.settle:
		case <-time.After(5 * time.Second):
			t.Fatal("delivery was never settled")
		}
	}
	cancel()
	require.NoError(t, <-done)

	ack.mu.Lock()
	defer ack.mu.Unlock()
	assert.Equal(t, []uint64{1, 3}, ack.acks)
	assert.Equal(t, []uint64{2}, ack.nacks)
	creator.AssertExpectations(t)
}

func TestRun_ClosedChannel(t *testing.T) {
	source := &fakeSource{deliveries: make(chan amqp091.Delivery)}
	close(source.deliveries)

	err := payments.NewPaymentConsumer(new(MockOrderCreator), "payments", quietLogger()).Run(context.Background(), source)

	require.Error(t, err)
}

func TestRun_ConsumeFails(t *testing.T) {
	source := &fakeSource{err: amqp091.ErrClosed}

	err := payments.NewPaymentConsumer(new(MockOrderCreator), "payments", quietLogger()).Run(context.Background(), source)

	require.ErrorIs(t, err, amqp091.ErrClosed)
}
