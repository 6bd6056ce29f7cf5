package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitAndLocation(t *testing.T) {
	t.Cleanup(func() { display.Store(nil) })

	assert.Equal(t, time.UTC, Location())

	require.NoError(t, Init("Europe/Berlin"))
	assert.Equal(t, "Europe/Berlin", Location().String())

	assert.Error(t, Init("Mars/Olympus"))
	assert.Equal(t, "Europe/Berlin", Location().String(), "a bad zone keeps the previous one")

	require.NoError(t, Init(""))
	assert.Equal(t, time.UTC, Location())
}

func TestNowUTC_MillisecondPrecision(t *testing.T) {
	now := NowUTC()
	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond()%int(time.Millisecond))
}
