package ctx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWithValue(t *testing.T) {
	req := require.New(t)
	c := WithValue(Background(), "requestID", "abc-123")
	req.Equal("abc-123", c.Value("requestID"))
}

func TestWithTimeout(t *testing.T) {
	req := require.New(t)
	c, cancel := WithTimeout(Background(), time.Millisecond)
	defer cancel()
	<-c.Done()
	req.Equal(context.DeadlineExceeded, c.Err())
}

func TestWithCancel(t *testing.T) {
	req := require.New(t)
	c, cancel := WithCancel(Background())
	cancel()
	req.Equal(context.Canceled, c.Err())
}
