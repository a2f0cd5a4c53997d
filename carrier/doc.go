// Package carrier computes the time-varying square-wave carrier that
// drives per-channel stimulation pulses in a multi-channel
// sound-processing strategy.
//
// 🚀 What does it do?
//
//	Given per-channel peak-frequency estimates sampled at the audio
//	analysis rate, Synthesize produces one carrier value per channel per
//	stimulation cycle (forward-telemetry frame). The carrier is a square
//	wave whose switching phase tracks the estimated peak frequency and
//	whose dip amplitude (modulation depth) shrinks linearly as the peak
//	frequency rises between two thresholds. Typical home: the carrier
//	stage of a cochlear-implant-style processing chain, between the peak
//	estimator and the stimulation-pulse encoder.
//
// ✨ Key properties:
//   - zero-order-hold resampling from the audio-frame grid onto the
//     stimulation-cycle grid
//   - per-channel phase accumulator, wrapped mod 1, with a configurable
//     per-frame advance cap (DeltaPhaseMax)
//   - piecewise-linear modulation-depth ramp between FModOn and FModOff
//     (fractions of the forward-telemetry rate)
//   - every output value lies in [1−MaxModDepth, 1]
//   - referentially transparent: identical inputs ⇒ bit-identical outputs
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/stimwave/carrier"
//
//	p := carrier.Params{
//	  NChan:         16,
//	  Fs:            17400,  // audio sample rate, Hz
//	  PulseWidth:    18,     // µs per pulse phase
//	  NHop:          20,     // audio hop, samples
//	  FModOn:        0.1,    // ramp start, fraction of FT rate
//	  FModOff:       0.5,    // ramp end, fraction of FT rate
//	  MaxModDepth:   0.9,
//	  DeltaPhaseMax: 0.5,
//	}
//
//	wave, frameIndex, err := carrier.Synthesize(p, peakFreq, nil)
//
// NOTE on the second return: it is the audio-frame index map used during
// resampling, not the nominal frame start times — see Synthesize for the
// compatibility rationale. Start times are available separately via
// Timing.FrameTimes.
//
// Performance:
//
//   - Time:   O(NChan · NOut)
//   - Memory: O(NChan · NOut)
//   - Channels are mutually independent; Options.Workers > 1 fans rows
//     out over an errgroup. Output is identical either way.
//
// See examples in example_test.go and the scenario files under examples/.
package carrier
