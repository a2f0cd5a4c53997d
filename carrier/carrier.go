package carrier

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// DeriveTiming computes the stimulation-cycle timing for one synthesis
// call from the strategy record and the number of available audio frames.
//
// Derivation:
//
//	DurFrame     = NHop / Fs
//	DurStimCycle = 2 · PulseWidth · NChan · 1e-6
//	RateFT       = round(1 / DurStimCycle)
//	NOut         = ceil(DurFrame · nAudioFrame / DurStimCycle) − 1
//
// Errors:
//   - ErrInvalidConfig     — a field needed for the derivation is out of domain.
//   - ErrInvalidInput      — nAudioFrame < 1.
//   - ErrDegenerateTiming  — RateFT rounds below 1 Hz, or NOut < 1 (the
//     audio material is too short to fill a single output frame).
//
// Complexity: O(1).
func DeriveTiming(p Params, nAudioFrame int) (Timing, error) {
	if err := p.Validate(); err != nil {
		return Timing{}, err
	}
	if nAudioFrame < minAudioFrames {
		return Timing{}, wrapf(methodDeriveTiming, fmt.Sprintf("nAudioFrame=%d: need at least %d audio frame", nAudioFrame, minAudioFrames), ErrInvalidInput)
	}

	t := Timing{
		DurFrame:     float64(p.NHop) / p.Fs,
		DurStimCycle: phasesPerPulse * p.PulseWidth * float64(p.NChan) * secondsPerMicrosecond,
	}
	t.RateFT = math.Round(1.0 / t.DurStimCycle)
	if t.RateFT < 1 {
		return Timing{}, wrapf(methodDeriveTiming, fmt.Sprintf("forward-telemetry rate rounds to %v Hz (stimulation cycle %vs)", t.RateFT, t.DurStimCycle), ErrDegenerateTiming)
	}

	t.NOut = int(math.Ceil(t.DurFrame*float64(nAudioFrame)/t.DurStimCycle)) - 1
	if t.NOut < 1 {
		return Timing{}, wrapf(methodDeriveTiming, fmt.Sprintf("nOutFrame=%d: %d audio frames of %vs cover no more than one stimulation cycle", t.NOut, nAudioFrame, t.DurFrame), ErrDegenerateTiming)
	}

	return t, nil
}

// Synthesize — peak frequencies → square-wave carrier
//
// Description:
//
//	Synthesize maps a per-channel, per-audio-frame peak-frequency matrix
//	onto the forward-telemetry grid and produces one carrier value per
//	channel per stimulation cycle. The carrier alternates between full
//	scale and a dipped level 1−depth; the switching rate follows the
//	peak frequency and the dip depth shrinks linearly as the peak
//	frequency rises between the two modulation thresholds.
//
// Algorithm outline:
//  1. Derive timing (DeriveTiming): frame durations, RateFT, NOut.
//  2. Resample by zero-order hold: for each output frame k with nominal
//     start t = k·DurStimCycle, pick the latest audio frame whose start
//     is ≤ t, i.e. index ⌊t/DurFrame⌋, clamped to the last valid frame.
//  3. Per channel, in increasing k (the only sequential dependency):
//     Δφ = min(f/RateFT, DeltaPhaseMax);  φ ← (φ+Δφ) mod 1, from φ=0.
//  4. Depth ramp: with fOn = RateFT·FModOn and fOff = RateFT·FModOff,
//     depth(f) = MaxModDepth·(fOff − clamp(f, fOn, fOff))/(fOff − fOn).
//  5. Combine: carrier = 1 − depth while φ < 0.5, else 1.
//
// Returns (carrier, frameIndex, error). carrier is NChan×NOut with every
// entry in [1−MaxModDepth, 1]; frameIndex has length NOut.
//
// NOTE: frameIndex is the 0-based audio-frame index map used in step 2,
// returned in place of the nominal frame start times. The fitting chain's
// telemetry tooling reads this map to line stimulation frames up with the
// analysis frames that produced them, so the substitution is load-bearing
// and kept as-is. Use Timing.FrameTimes for start times in seconds.
//
// Errors: ErrInvalidConfig, ErrInvalidInput, ErrDegenerateTiming — all
// detected before or during the single pass; on error both outputs are nil.
//
// Complexity:
//
//	Time   = O(NChan · NOut)
//	Memory = O(NChan · NOut)
func Synthesize(p Params, peak [][]float64, opts *Options) ([][]float64, []int, error) {
	// Apply options or defaults (nil means DefaultOptions, dtw-style).
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validateOptions(o); err != nil {
		return nil, nil, err
	}

	// Stage 1: Params-only sanity, before any data is touched.
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}

	// Stage 2: matrix envelope (entry values are checked in the row kernel).
	nAudio, err := validatePeakShape(p.NChan, peak)
	if err != nil {
		return nil, nil, err
	}

	// Stage 3: derived timing (re-validates Params, which is O(1)).
	tm, err := DeriveTiming(p, nAudio)
	if err != nil {
		return nil, nil, err
	}

	frameIndex := resampleIndexMap(tm, nAudio)
	ramp := newDepthRamp(p, tm.RateFT)

	wave := make([][]float64, p.NChan)
	if o.Workers > 1 {
		// Channels are mutually independent; fan rows out, bounded.
		var g errgroup.Group
		g.SetLimit(o.Workers)
		for c := 0; c < p.NChan; c++ {
			g.Go(func() error {
				row, rowErr := synthesizeRow(c, peak[c], frameIndex, tm, p, ramp)
				if rowErr != nil {
					return rowErr
				}
				wave[c] = row

				return nil
			})
		}
		if err = g.Wait(); err != nil {
			return nil, nil, err
		}
	} else {
		for c := 0; c < p.NChan; c++ {
			if wave[c], err = synthesizeRow(c, peak[c], frameIndex, tm, p, ramp); err != nil {
				return nil, nil, err
			}
		}
	}

	return wave, frameIndex, nil
}

// resampleIndexMap builds the zero-order-hold map from output frames to
// audio frames: index k holds ⌊k·DurStimCycle/DurFrame⌋, the latest audio
// frame whose start time does not exceed the output frame's nominal start.
// The clamp guards the float round-off at the very end of the material.
func resampleIndexMap(t Timing, nAudio int) []int {
	idx := make([]int, t.NOut)
	last := nAudio - 1
	for k := range idx {
		i := int(float64(k) * t.DurStimCycle / t.DurFrame) // floor: operands are non-negative
		if i > last {
			i = last
		}
		idx[k] = i
	}

	return idx
}

// depthRamp is the precomputed piecewise-linear modulation-depth ramp.
// Depth is maxDepth at or below onAbs, 0 at or above offAbs, and linear
// in between. Validation guarantees onAbs < offAbs.
type depthRamp struct {
	onAbs    float64 // RateFT · FModOn, Hz
	offAbs   float64 // RateFT · FModOff, Hz
	maxDepth float64
}

func newDepthRamp(p Params, rateFT float64) depthRamp {
	return depthRamp{
		onAbs:    rateFT * p.FModOn,
		offAbs:   rateFT * p.FModOff,
		maxDepth: p.MaxModDepth,
	}
}

// depth returns the modulation depth for one peak frequency.
func (r depthRamp) depth(f float64) float64 {
	if f <= r.onAbs {
		return r.maxDepth
	}
	if f >= r.offAbs {
		return 0
	}

	return r.maxDepth * (r.offAbs - f) / (r.offAbs - r.onAbs)
}

// synthesizeRow runs steps 3–5 for one channel. Output frames must be
// visited in increasing k: each phase value depends on the previous one.
func synthesizeRow(ch int, row []float64, frameIndex []int, t Timing, p Params, ramp depthRamp) ([]float64, error) {
	// Pre-scan the whole row: every audio frame must be well-formed,
	// including frames the zero-order hold skips when the stimulation
	// cycle outlasts the audio frame. Checking here (once per audio
	// frame) also keeps the synthesis loop free of repeated validation
	// when the index map repeats entries.
	for i, f := range row {
		if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, wrapf(methodSynthesize, fmt.Sprintf("peak[%d][%d]=%v: frequencies must be finite and non-negative", ch, i, f), ErrInvalidInput)
		}
	}

	out := make([]float64, len(frameIndex))

	var phi float64 // accumulated phase in whole turns, always in [0,1)
	for k, ai := range frameIndex {
		f := row[ai]

		delta := f / t.RateFT
		if delta > p.DeltaPhaseMax {
			delta = p.DeltaPhaseMax
		}
		phi = math.Mod(phi+delta, phaseWrap)

		// Square wave: dip during the first half turn, full scale after.
		if phi < dutyHalf {
			out[k] = fullScale - ramp.depth(f)
		} else {
			out[k] = fullScale
		}
	}

	return out, nil
}
