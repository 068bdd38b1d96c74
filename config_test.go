package malloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelc1231/mymalloc/arena"
)

func TestDefaultSettingsRoundTrip(t *testing.T) {
	setts := DefaultSettings()
	assert.Equal(t, int64(wordSize), setts.Int64("wordsize"))
	assert.False(t, setts.Bool("verbose"))

	thresholds := settingsThresholds(setts)
	assert.True(t, validateThresholds(thresholds))
	assert.Equal(t, len(defaultClassThresholds()), len(thresholds))
}

func TestSettingsIntBoolDefaults(t *testing.T) {
	assert.Equal(t, int64(42), settingsInt64(nil, "missing", 42))
	assert.True(t, settingsBool(nil, "missing", true))
}

func TestNewHeapRejectsNonMonotoneThresholds(t *testing.T) {
	a, err := arena.NewSliceArena(1 << 16)
	require.NoError(t, err)

	setts := DefaultSettings()
	setts["classthresholds"] = []int64{128, 64}

	_, err = NewHeap(a, setts)
	assert.ErrorIs(t, err, ErrorBadSettings)
}
