package math

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCeilInt(t *testing.T) {
	req := require.New(t)
	req.Equal(0, CeilInt(0, 6))
	req.Equal(1, CeilInt(1, 6))
	req.Equal(1, CeilInt(6, 6))
	req.Equal(2, CeilInt(7, 6))
	req.Equal(2, CeilInt(12, 6))
	req.Equal(3, CeilInt(13, 6))
}

func TestClampInt(t *testing.T) {
	req := require.New(t)
	req.Equal(1, ClampInt(0, 1, 5))
	req.Equal(5, ClampInt(9, 1, 5))
	req.Equal(3, ClampInt(3, 1, 5))
}
