package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		errSub string
	}{
		{
			name:   "consistency cutoff out of range",
			mutate: func(c *Config) { c.ConsistencyCutoff = 101 },
			errSub: "consistency_cutoff",
		},
		{
			name:   "negative weekend min days",
			mutate: func(c *Config) { c.WeekendMinDays = -1 },
			errSub: "weekend_min_days",
		},
		{
			name:   "zero sleep cutoff",
			mutate: func(c *Config) { c.SleepCutoffHours = 0 },
			errSub: "sleep_cutoff_hours",
		},
		{
			name:   "zero sleep min nights",
			mutate: func(c *Config) { c.SleepMinNights = 0 },
			errSub: "sleep_min_nights",
		},
		{
			name:   "zero high effort days",
			mutate: func(c *Config) { c.HighEffortDays = 0 },
			errSub: "high_effort_days",
		},
		{
			name:   "high effort rate out of range",
			mutate: func(c *Config) { c.HighEffortRate = 101 },
			errSub: "high_effort_rate",
		},
		{
			name:   "zero smoothing window",
			mutate: func(c *Config) { c.SmoothingWindow = 0 },
			errSub: "smoothing_window",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errSub)
		})
	}
}
