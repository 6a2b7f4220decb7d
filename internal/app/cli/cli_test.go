package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"logpanel/internal/app/bus"
	"logpanel/internal/app/diag"
	"logpanel/internal/app/errors"
	"logpanel/internal/app/message"
	"logpanel/internal/app/panel"
	"logpanel/internal/app/source"
	"logpanel/internal/app/ui"
	"logpanel/internal/config"
	"logpanel/internal/config/logger"
)

// syncBuffer is written by the pipeline goroutine and read by the test
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func newTestCLI(cfg *config.Config, sources source.Factory, out io.Writer, args ...string) *cli {
	log := logger.NewLoggerWithOutput(cfg, io.Discard)

	return &cli{
		args:    args,
		cfg:     cfg,
		panels:  panel.NewBuilder(bus.NewFactory(cfg, log), diag.NoOp(), log),
		screen:  ui.NewScreen(),
		sources: sources,
		out:     out,
		log:     log,
	}
}

func Test_Execute_Version(t *testing.T) {
	var out bytes.Buffer

	c := newTestCLI(config.DefaultConfig(), nil, &out, "version")

	code, err := c.Execute()

	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), config.Version)
}

func Test_Execute_Help(t *testing.T) {
	var out bytes.Buffer

	c := newTestCLI(config.DefaultConfig(), nil, &out, "--help")

	code, err := c.Execute()

	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Usage:")
}

func Test_Execute_UnknownCommand(t *testing.T) {
	var out bytes.Buffer

	c := newTestCLI(config.DefaultConfig(), nil, &out, "stop")

	code, err := c.Execute()

	assert.Equal(t, 1, code)
	assert.ErrorIs(t, err, errors.ErrUnknownCommand)
	assert.Contains(t, out.String(), "Error:")
}

func Test_Execute_BuildFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := source.NewMockFactory(ctrl)
	factory.EXPECT().Build(gomock.Any()).Return(nil, errors.ErrInvalidGlobPattern)

	var out bytes.Buffer

	c := newTestCLI(config.DefaultConfig(), factory, &out, "--no-ui")

	code, err := c.Execute()

	assert.Equal(t, 1, code)
	assert.ErrorIs(t, err, errors.ErrInvalidGlobPattern)
}

func Test_handleRun_NoUI(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := source.NewMockFactory(ctrl)
	src := source.NewMockSource(ctrl)

	src.EXPECT().Name().Return("fake").AnyTimes()
	src.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, sink source.Sink) error {
		if err := sink.Log(message.Warn, "from source"); err != nil {
			return err
		}

		<-ctx.Done()

		return nil
	})
	factory.EXPECT().Build(gomock.Any()).Return([]source.Source{src}, nil)

	out := &syncBuffer{}
	c := newTestCLI(config.DefaultConfig(), factory, out)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- c.handleRun(ctx, &Options{Type: CommandRun, NoUI: true})
	}()

	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "from source")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	assert.Contains(t, out.String(), "[WARN]")
	assert.Contains(t, out.String(), "attached")
}

func Test_handleRun_SourceFailureIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := source.NewMockFactory(ctrl)
	src := source.NewMockSource(ctrl)

	src.EXPECT().Name().Return("broken").AnyTimes()
	src.EXPECT().Run(gomock.Any(), gomock.Any()).Return(errors.New("disk gone"))
	factory.EXPECT().Build(gomock.Any()).Return([]source.Source{src}, nil)

	out := &syncBuffer{}
	c := newTestCLI(config.DefaultConfig(), factory, out)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- c.handleRun(ctx, &Options{Type: CommandRun, NoUI: true})
	}()

	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "source broken failed: disk gone")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	assert.Contains(t, out.String(), "[ERROR]")
}

func Test_handleRun_InvalidPanelConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := source.NewMockFactory(ctrl)
	factory.EXPECT().Build(gomock.Any()).Return(nil, nil)

	cfg := config.DefaultConfig()
	cfg.Panel.MinLevel = "verbose"

	c := newTestCLI(cfg, factory, io.Discard)

	err := c.handleRun(context.Background(), &Options{NoUI: true})

	assert.ErrorIs(t, err, errors.ErrInvalidSeverity)
}

func Test_sourceConfig(t *testing.T) {
	tests := []struct {
		name       string
		configured config.Sources
		opts       Options
		wantTail   *config.Tail
		wantStats  *config.Stats
	}{
		{
			name: "Nothing configured or requested",
		},
		{
			name:      "Flags only",
			opts:      Options{Tail: "./logs", Stats: true},
			wantTail:  &config.Tail{Dir: "./logs", Include: []string{config.TailInclude}},
			wantStats: &config.Stats{Interval: config.StatsInterval},
		},
		{
			name: "Tail flag keeps configured patterns",
			configured: config.Sources{
				Tail:  &config.Tail{Dir: "/srv", Include: []string{"*.txt"}, Ignore: []string{"old.txt"}},
				Stats: &config.Stats{Interval: time.Minute},
			},
			opts:      Options{Tail: "./logs", Stats: true},
			wantTail:  &config.Tail{Dir: "./logs", Include: []string{"*.txt"}, Ignore: []string{"old.txt"}},
			wantStats: &config.Stats{Interval: time.Minute},
		},
		{
			name: "Configured sources without flags",
			configured: config.Sources{
				Tail: &config.Tail{Dir: "/srv", Include: []string{"*.log"}},
			},
			wantTail: &config.Tail{Dir: "/srv", Include: []string{"*.log"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Sources = tt.configured

			c := newTestCLI(cfg, nil, io.Discard)
			got := c.sourceConfig(&tt.opts)

			assert.Equal(t, tt.wantTail, got.Tail)
			assert.Equal(t, tt.wantStats, got.Stats)
		})
	}
}
