package goroutine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecoverableGoNormalExit(t *testing.T) {
	req := require.New(t)
	done := make(chan struct{})
	ch := RecoverableGo(func() { close(done) })
	<-done
	ev, ok := <-ch
	req.Nil(ev)
	req.False(ok)
}

func TestRecoverableGoPanic(t *testing.T) {
	req := require.New(t)
	ch := RecoverableGo(func() { panic("boom") })
	ev := <-ch
	req.NotNil(ev)
	req.Equal("boom", ev.Panic)
	req.NotEmpty(ev.Stack)
}
