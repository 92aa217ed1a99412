package notification_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"

	"github.com/Henry-Iheonu/Events/internal/domain"
	"github.com/Henry-Iheonu/Events/internal/notification"
	"github.com/Henry-Iheonu/Events/internal/notification/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func fastStrategy() retry.Strategy {
	return retry.Strategy{Attempts: 3, Delay: 5 * time.Millisecond, Backoff: 2}
}

func testRegistration() (*domain.Registration, *domain.Event) {
	userID := "u1"
	reg := &domain.Registration{
		ID:       "r1",
		UserID:   &userID,
		EventID:  "e1",
		FullName: "Ada Obi",
		Email:    "ada@example.com",
	}
	event := &domain.Event{ID: "e1", Title: "Go Meetup", Organizer: "GoLagos"}
	return reg, event
}

func TestDispatcher_DeliversEnqueuedMessage(t *testing.T) {
	sender := mocks.NewMockSender(t)
	d := notification.NewDispatcher(sender, 4, time.Second, newTestLogger(t))

	delivered := make(chan notification.Message, 1)
	sender.EXPECT().Send(mock.Anything, mock.Anything).Run(func(_ context.Context, msg notification.Message) {
		delivered <- msg
	}).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go d.Start(ctx)

	reg, event := testRegistration()
	d.RegistrationCreated(context.Background(), reg, event)

	select {
	case msg := <-delivered:
		assert.Equal(t, "r1", msg.RegistrationID)
		assert.Equal(t, "ada@example.com", msg.To)
	case <-time.After(time.Second):
		t.Fatal("message was not delivered")
	}
}

func TestDispatcher_RetriesFailedSend(t *testing.T) {
	sender := mocks.NewMockSender(t)
	d := notification.NewDispatcher(sender, 4, time.Second, newTestLogger(t))
	d.SetStrategy(fastStrategy())

	delivered := make(chan struct{})
	sender.EXPECT().Send(mock.Anything, mock.Anything).Return(errors.New("smtp down")).Twice()
	sender.EXPECT().Send(mock.Anything, mock.Anything).Run(func(_ context.Context, _ notification.Message) {
		close(delivered)
	}).Return(nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go d.Start(ctx)

	reg, event := testRegistration()
	d.RegistrationCreated(context.Background(), reg, event)

	select {
	case <-delivered:
	case <-time.After(time.Second):
		t.Fatal("message was not retried to success")
	}
}

func TestDispatcher_GivesUpAfterAttempts(t *testing.T) {
	sender := mocks.NewMockSender(t)
	d := notification.NewDispatcher(sender, 4, time.Second, newTestLogger(t))
	d.SetStrategy(fastStrategy())

	done := make(chan struct{})
	var calls int
	sender.EXPECT().Send(mock.Anything, mock.Anything).Run(func(_ context.Context, _ notification.Message) {
		calls++
		if calls == 3 {
			close(done)
		}
	}).Return(errors.New("smtp down")).Times(3)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go d.Start(ctx)

	reg, event := testRegistration()
	d.RegistrationCreated(context.Background(), reg, event)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sender was not retried the expected number of times")
	}
}

func TestDispatcher_DropsWhenQueueFull(t *testing.T) {
	sender := mocks.NewMockSender(t)
	d := notification.NewDispatcher(sender, 1, time.Second, newTestLogger(t))

	// Worker never started, so the second message finds the queue full.
	reg, event := testRegistration()
	d.RegistrationCreated(context.Background(), reg, event)
	d.RegistrationCreated(context.Background(), reg, event)

	assert.Len(t, d.Queue(), 1)
}

func TestDispatcher_StopsOnContextCancel(t *testing.T) {
	sender := mocks.NewMockSender(t)
	d := notification.NewDispatcher(sender, 1, time.Second, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		d.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("dispatcher did not stop on context cancel")
	}
}
