// Package carrier types: the external parameter record, derived timing
// scalars and synthesis options.
package carrier

// ---------- Named numeric constants (no magic numbers) ----------

const (
	// phasesPerPulse is the number of phases in one biphasic stimulation
	// pulse; one stimulation cycle delivers one such pulse per channel.
	phasesPerPulse = 2.0

	// secondsPerMicrosecond converts the µs pulse width into seconds.
	secondsPerMicrosecond = 1e-6

	// phaseWrap is the modulus of the phase accumulator (whole turns).
	phaseWrap = 1.0

	// dutyHalf splits the phase cycle: the carrier dips while phase < dutyHalf
	// and sits at full scale for the remaining half turn.
	dutyHalf = 0.5

	// fullScale is the undipped carrier amplitude.
	fullScale = 1.0

	// minChannels, minHop and minAudioFrames are the smallest meaningful
	// dimensions for a synthesis call.
	minChannels    = 1
	minHop         = 1
	minAudioFrames = 1
)

// Canonical method names used in wrapped error context.
const (
	methodValidate     = "Params.Validate"
	methodDeriveTiming = "DeriveTiming"
	methodSynthesize   = "Synthesize"
)

// Params is the flat strategy record consumed by Synthesize. It mirrors
// the fitting software's per-patient map: rates and widths that fix the
// stimulation-cycle timing, plus the modulation thresholds.
//
// Fields:
//   - NChan         — analysis/stimulation channel count (≥ 1).
//   - Fs            — audio sample rate in Hz (> 0).
//   - PulseWidth    — per-phase pulse width in microseconds (> 0).
//   - NHop          — audio analysis hop size in samples (≥ 1).
//   - StimRate      — per-channel stimulation rate in Hz. Carried for
//     downstream pulse encoders; the carrier transform itself never
//     reads it beyond validation.
//   - FModOn        — modulation ramp start as a fraction of the
//     forward-telemetry rate, in [0,1]. At or below the absolute
//     threshold RateFT·FModOn the carrier dips by the full MaxModDepth.
//   - FModOff       — ramp end as a fraction of the forward-telemetry
//     rate, in (FModOn, 1]. At or above RateFT·FModOff the dip vanishes.
//   - MaxModDepth   — deepest fractional amplitude dip, in [0,1].
//   - DeltaPhaseMax — cap on the phase advance per output frame, in
//     whole turns, in [0,1].
type Params struct {
	NChan         int
	Fs            float64
	PulseWidth    float64
	NHop          int
	StimRate      float64
	FModOn        float64
	FModOff       float64
	MaxModDepth   float64
	DeltaPhaseMax float64
}

// Timing bundles the scalars derived from Params for one synthesis call.
//
//   - DurFrame     — audio analysis frame duration, seconds (NHop/Fs).
//   - DurStimCycle — duration of one stimulation cycle across all
//     channels, seconds (2·PulseWidth·NChan·1e-6).
//   - RateFT       — forward-telemetry (output frame) rate in Hz,
//     round(1/DurStimCycle); always integer-valued and ≥ 1.
//   - NOut         — output frame count,
//     ceil(DurFrame·nAudioFrame/DurStimCycle) − 1; always ≥ 1.
type Timing struct {
	DurFrame     float64
	DurStimCycle float64
	RateFT       float64
	NOut         int
}

// FrameTimes returns the nominal start time of each output frame in
// seconds, starting at 0: t[k] = k·DurStimCycle for k = 0…NOut−1.
//
// This is the *documented* companion of the carrier matrix. Synthesize
// deliberately returns the audio-frame index map in its place (see the
// note there), so downstream code that genuinely wants start times
// derives them here.
func (t Timing) FrameTimes() []float64 {
	times := make([]float64, t.NOut)
	for k := range times {
		times[k] = float64(k) * t.DurStimCycle
	}

	return times
}

// Options configures a synthesis call.
//
// Fields:
//   - Workers — upper bound on channels processed concurrently.
//     0 or 1 ⇒ plain sequential pass; > 1 ⇒ rows fan out over an
//     errgroup with that limit. The output is bit-identical either way,
//     since channels never share state.
//
// Example:
//
//	opts := carrier.DefaultOptions()
//	opts.Workers = runtime.NumCPU()
//	wave, idx, err := carrier.Synthesize(p, peaks, &opts)
type Options struct {
	Workers int
}

// DefaultOptions returns the sequential-processing defaults.
func DefaultOptions() Options {
	return Options{Workers: 0}
}
