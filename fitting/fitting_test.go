package fitting_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stimwave/carrier"
	"github.com/katalvlaran/stimwave/fitting"
)

// validDoc is a complete 16-channel fitting record used across tests.
const validDoc = `
strategy:
  n_chan: 16
  sample_rate: 17400
  pulse_width_us: 18
  hop_size: 20
  stim_rate: 1800
modulation:
  f_mod_on: 0.1
  f_mod_off: 0.5
  max_mod_depth: 0.9
  delta_phase_max: 0.5
`

// TestParse_Valid checks field-by-field mapping of a complete document.
func TestParse_Valid(t *testing.T) {
	p, err := fitting.Parse([]byte(validDoc))
	require.NoError(t, err)

	want := carrier.Params{
		NChan:         16,
		Fs:            17400,
		PulseWidth:    18,
		NHop:          20,
		StimRate:      1800,
		FModOn:        0.1,
		FModOff:       0.5,
		MaxModDepth:   0.9,
		DeltaPhaseMax: 0.5,
	}
	assert.Equal(t, want, p, "every schema field must land in its Params slot")
}

// TestParse_InvalidRecord ensures validation runs at the boundary: a
// syntactically fine document with an out-of-domain field must surface
// carrier.ErrInvalidConfig, not reach the kernel later.
func TestParse_InvalidRecord(t *testing.T) {
	doc := `
strategy:
  n_chan: 0
  sample_rate: 17400
  pulse_width_us: 18
  hop_size: 20
modulation:
  f_mod_on: 0.1
  f_mod_off: 0.5
  max_mod_depth: 0.9
  delta_phase_max: 0.5
`
	_, err := fitting.Parse([]byte(doc))
	assert.ErrorIs(t, err, carrier.ErrInvalidConfig, "zero channels must be rejected on load")
}

// TestParse_MissingSection verifies that an absent modulation section
// fails validation (the zero ramp has FModOn == FModOff).
func TestParse_MissingSection(t *testing.T) {
	doc := `
strategy:
  n_chan: 16
  sample_rate: 17400
  pulse_width_us: 18
  hop_size: 20
`
	_, err := fitting.Parse([]byte(doc))
	assert.ErrorIs(t, err, carrier.ErrInvalidConfig, "missing modulation section leaves a degenerate ramp")
}

// TestParse_MalformedYAML wraps the unmarshal error.
func TestParse_MalformedYAML(t *testing.T) {
	_, err := fitting.Parse([]byte("strategy: [not: a map"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fitting: unmarshal", "unmarshal failures carry the fitting prefix")
}

// TestLoad_RoundTrip writes a document to disk and loads it back.
func TestLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strategy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validDoc), 0o600))

	p, err := fitting.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 16, p.NChan)
	assert.Equal(t, 17400.0, p.Fs)
}

// TestLoad_MissingFile keeps the underlying os error reachable.
func TestLoad_MissingFile(t *testing.T) {
	_, err := fitting.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist, "read failures must wrap the fs error")
}

// TestLoad_FeedsSynthesize runs the loaded record end-to-end through the
// carrier transform to guard the package boundary.
func TestLoad_FeedsSynthesize(t *testing.T) {
	p, err := fitting.Parse([]byte(validDoc))
	require.NoError(t, err)

	peaks := make([][]float64, p.NChan)
	for c := range peaks {
		peaks[c] = []float64{1000, 2000, 3000, 4000}
	}

	wave, idx, err := carrier.Synthesize(p, peaks, nil)
	require.NoError(t, err)
	assert.Len(t, wave, p.NChan)
	assert.NotEmpty(t, idx)
}
