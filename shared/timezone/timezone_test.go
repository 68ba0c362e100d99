package timezone_test

import (
	"testing"
	"time"

	"reserve/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useLocation(t *testing.T, name string) *time.Location {
	t.Helper()

	previous := timezone.GetLocation()
	t.Cleanup(func() { timezone.Set(previous) })

	loc := timezone.Load(name)
	timezone.Set(loc)

	return loc
}

func TestLoad(t *testing.T) {
	assert.Equal(t, time.UTC, timezone.Load(""))
	assert.Equal(t, time.UTC, timezone.Load("Mars/Olympus_Mons"))
	assert.Equal(t, "America/New_York", timezone.Load("America/New_York").String())
}

func TestNowUsesLocation(t *testing.T) {
	loc := useLocation(t, "America/New_York")

	assert.Equal(t, loc, timezone.Now().Location())
}

func TestFormatAndParse(t *testing.T) {
	useLocation(t, "America/New_York")

	noonUTC := time.Date(2024, 7, 1, 16, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-07-01 12:00", timezone.Format(noonUTC, "2006-01-02 15:04"))

	parsed, err := timezone.Parse("2006-01-02 15:04", "2024-07-01 12:00")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(noonUTC))

	withOffset, err := timezone.Parse(time.RFC3339, "2024-07-01T12:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 12, withOffset.UTC().Hour())
}
