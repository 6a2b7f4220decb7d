package bus

import (
	"bytes"
	"context"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logpanel/internal/app/errors"
	"logpanel/internal/app/message"
	"logpanel/internal/config"
	"logpanel/internal/config/logger"
)

func Test_New(t *testing.T) {
	b := New(10, nil)

	assert.NotNil(t, b)
	assert.Equal(t, uint64(0), b.Dropped())
}

func Test_Bus_PublishSubscribe(t *testing.T) {
	b := New(10, nil)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := b.Subscribe(ctx)

	require.NoError(t, b.Publish(message.New(message.Warn, "low disk")))

	select {
	case msg := <-ch:
		assert.Equal(t, message.Warn, msg.Level)
		assert.Equal(t, "low disk", msg.Text)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Expected message")
	}
}

func Test_Bus_Publish_StampsMissingTimestamp(t *testing.T) {
	b := New(10, nil)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := b.Subscribe(ctx)

	require.NoError(t, b.Publish(message.Message{Text: "x", Level: message.Info}))

	msg := <-ch
	assert.False(t, msg.Timestamp.IsZero())
}

func Test_Bus_Publish_PreservesOrder(t *testing.T) {
	b := New(10, nil)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := b.Subscribe(ctx)

	for _, text := range []string{"a", "b", "c"} {
		require.NoError(t, b.Publish(message.New(message.Info, text)))
	}

	assert.Equal(t, "a", (<-ch).Text)
	assert.Equal(t, "b", (<-ch).Text)
	assert.Equal(t, "c", (<-ch).Text)
}

func Test_Bus_MultipleSubscribers(t *testing.T) {
	b := New(10, nil)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch1 := b.Subscribe(ctx)
	ch2 := b.Subscribe(ctx)

	require.NoError(t, b.Publish(message.New(message.Error, "boom")))

	for _, ch := range []<-chan message.Message{ch1, ch2} {
		select {
		case msg := <-ch:
			assert.Equal(t, "boom", msg.Text)
		case <-time.After(100 * time.Millisecond):
			t.Fatal("Expected message on subscriber")
		}
	}
}

func Test_Bus_FullSubscriberBlocks(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		b := New(1, nil)
		defer b.Close()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		ch := b.Subscribe(ctx)

		require.NoError(t, b.Publish(message.New(message.Info, "first")))

		published := make(chan error, 1)

		go func() {
			published <- b.Publish(message.New(message.Info, "second"))
		}()

		synctest.Wait()

		select {
		case <-published:
			t.Fatal("Publish should wait while the subscriber is full")
		default:
		}

		assert.Equal(t, "first", (<-ch).Text)
		assert.NoError(t, <-published)
		assert.Equal(t, "second", (<-ch).Text)
		assert.Equal(t, uint64(0), b.Dropped())
	})
}

func Test_Bus_BlockedPublish_ReleasedOnEnd(t *testing.T) {
	tests := []struct {
		name string
		end  func(b Bus, cancel context.CancelFunc)
	}{
		{
			name: "Bus closed",
			end:  func(b Bus, _ context.CancelFunc) { b.Close() },
		},
		{
			name: "Subscription cancelled",
			end:  func(_ Bus, cancel context.CancelFunc) { cancel() },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			synctest.Test(t, func(t *testing.T) {
				b := New(1, nil)
				defer b.Close()

				ctx, cancel := context.WithCancel(context.Background())
				defer cancel()

				ch := b.Subscribe(ctx)

				require.NoError(t, b.Publish(message.New(message.Info, "buffered")))

				published := make(chan error, 1)

				go func() {
					published <- b.Publish(message.New(message.Info, "stuck"))
				}()

				synctest.Wait()
				tt.end(b, cancel)

				assert.ErrorIs(t, <-published, errors.ErrStreamClosed)
				assert.Equal(t, uint64(1), b.Dropped())

				assert.Equal(t, "buffered", (<-ch).Text)

				_, ok := <-ch
				assert.False(t, ok, "Channel should be closed")
			})
		})
	}
}

func Test_Bus_Unsubscribe_OnContextCancel(t *testing.T) {
	b := New(10, nil)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch := b.Subscribe(ctx)

	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "Channel should be closed after context cancel")
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Expected channel to close")
	}
}

func Test_Bus_Close(t *testing.T) {
	b := New(10, nil)

	ch := b.Subscribe(context.Background())

	b.Close()

	_, ok := <-ch
	assert.False(t, ok, "Channel should be closed")

	assert.ErrorIs(t, b.Publish(message.New(message.Info, "late")), errors.ErrStreamClosed)
}

func Test_Bus_Subscribe_AfterClose(t *testing.T) {
	b := New(10, nil)
	b.Close()

	_, ok := <-b.Subscribe(context.Background())
	assert.False(t, ok)
}

func Test_Bus_Close_AlreadyClosed(t *testing.T) {
	b := New(10, nil)

	b.Close()
	b.Close()
}

func Test_Bus_Publish_WithLogger(t *testing.T) {
	var buf bytes.Buffer

	cfg := config.DefaultConfig()
	cfg.Logging.Level = logger.DebugLevel

	b := New(10, logger.NewLoggerWithOutput(cfg, &buf))
	defer b.Close()

	require.NoError(t, b.Publish(message.New(message.Warn, "traced")))

	assert.Contains(t, buf.String(), "traced")
	assert.Contains(t, buf.String(), "WARN")
}

func Test_NewFactory(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Stream.Buffer = 2

	factory := NewFactory(cfg, logger.NewLoggerWithOutput(cfg, &bytes.Buffer{}))

	first := factory()
	second := factory()
	defer first.Close()
	defer second.Close()

	assert.NotSame(t, first, second)

	first.Close()
	assert.NoError(t, second.Publish(message.New(message.Info, "independent")))
}
