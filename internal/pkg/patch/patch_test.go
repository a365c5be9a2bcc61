//go:build unit

package patch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNonZero(t *testing.T) {
	assert.Equal(t, 30*time.Second, NonZero(time.Duration(0), 30*time.Second))
	assert.Equal(t, 5*time.Second, NonZero(5*time.Second, 30*time.Second))
	assert.Equal(t, "TRIP", NonZero("", "TRIP"))
	assert.Equal(t, "BARI", NonZero("BARI", "TRIP"))
}
