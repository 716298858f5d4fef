package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testConfig(ops int64) *Config {
	cfg := DefaultConfig()
	cfg.Ops = ops
	cfg.Seed = 1
	cfg.KeyMin = 0
	cfg.KeyMax = 1000
	cfg.Verify = true
	return cfg
}

func TestRunnerRun(t *testing.T) {
	r := NewRunner(testConfig(2000))
	assert.NotEmpty(t, r.ID)

	report, err := r.Run()
	assert.NoError(t, err)
	assert.NotNil(t, report)
	assert.EqualValues(t, 2000, report.Ops)
	assert.Equal(t, r.ID, report.RunID)
	assert.Positive(t, report.Rate)

	stats := r.Stats()
	assert.EqualValues(t, 2000, stats["cycles"])
	assert.Positive(t, stats["inserts"])

	var total int64
	for _, name := range []string{"inserts", "delete_mins", "decrease_keys", "deletes", "melds"} {
		total += stats[name]
	}
	assert.EqualValues(t, 2000, total)
}

func TestRunnerDeterministic(t *testing.T) {
	a := NewRunner(testConfig(1000))
	b := NewRunner(testConfig(1000))

	ra, err := a.Run()
	assert.NoError(t, err)
	rb, err := b.Run()
	assert.NoError(t, err)

	assert.Equal(t, ra.FinalSize, rb.FinalSize)
	assert.Equal(t, ra.Trees, rb.Trees)
	assert.Equal(t, a.Stats(), b.Stats())
}

func TestRunnerStop(t *testing.T) {
	r := NewRunner(testConfig(1 << 40))
	r.Stop()
	report, err := r.Run()
	assert.NoError(t, err)
	assert.EqualValues(t, 0, report.Ops)
}

func TestRunnerRejectsBadConfig(t *testing.T) {
	cfg := testConfig(100)
	cfg.Mix.Insert = 0
	r := NewRunner(cfg)
	_, err := r.Run()
	assert.Error(t, err)
}
