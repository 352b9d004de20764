package input

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoller_ForwardsAndStops(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()

	p := NewPoller(screen, 4)
	go func() { _ = p.Run(context.Background()) }()

	screen.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)

	select {
	case ev := <-p.Events():
		k, ok := ev.(*tcell.EventKey)
		require.True(t, ok)
		assert.Equal(t, 'w', k.Rune())
	case <-time.After(2 * time.Second):
		t.Fatal("no event forwarded")
	}

	p.Stop()
	select {
	case <-p.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not stop")
	}
	p.Stop()
}

func TestPoller_StopsOnContext(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()

	ctx, cancel := context.WithCancel(context.Background())
	p := NewPoller(screen, 1)
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("poller ignored cancellation")
	}
}
