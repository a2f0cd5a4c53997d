// SPDX-License-Identifier: MIT
// Package: stimwave/carrier
//
// validate.go — staged validation shared by Synthesize and the fitting loader.
//
// Purpose:
//  - Provide a single, canonical source of truth for precondition checks.
//  - Keep the synthesis kernel minimal by delegating field/shape checks here.
//  - Wrap sentinel errors with the offending field so call sites and tests
//    can branch with errors.Is and still see what went wrong.
//
// Staging (fixed sequence, first failure wins):
//  1. Params fields            → ErrInvalidConfig
//  2. Matrix shape             → ErrInvalidInput
//  3. Derived timing           → ErrDegenerateTiming
//
// Entry-level value checks (negative / NaN / Inf peak frequencies) are a
// per-row pre-scan inside the per-channel kernel: every audio frame is
// covered — including frames the resampler skips — and the error carries
// exact (channel, frame) coordinates.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocation-free on success.
//  - Params checks are O(1); shape checks are O(NChan).

package carrier

import (
	"fmt"
	"math"
)

// Validate reports the first Params field outside its documented domain.
// It is the same check Synthesize runs up front, exported so that config
// loaders (e.g. stimwave/fitting) can reject a bad strategy record before
// any audio arrives.
func (p Params) Validate() error {
	if p.NChan < minChannels {
		return wrapf(methodValidate, fmt.Sprintf("NChan=%d: need at least %d channel", p.NChan, minChannels), ErrInvalidConfig)
	}
	if !(p.Fs > 0) || math.IsInf(p.Fs, 0) {
		return wrapf(methodValidate, fmt.Sprintf("Fs=%v: sample rate must be finite and positive", p.Fs), ErrInvalidConfig)
	}
	if !(p.PulseWidth > 0) || math.IsInf(p.PulseWidth, 0) {
		return wrapf(methodValidate, fmt.Sprintf("PulseWidth=%v: pulse width must be finite and positive", p.PulseWidth), ErrInvalidConfig)
	}
	if p.NHop < minHop {
		return wrapf(methodValidate, fmt.Sprintf("NHop=%d: hop size must be at least %d sample", p.NHop, minHop), ErrInvalidConfig)
	}
	// StimRate is carried, not consumed; still reject nonsense so a broken
	// fitting record cannot travel further down the chain.
	if p.StimRate < 0 || math.IsNaN(p.StimRate) || math.IsInf(p.StimRate, 0) {
		return wrapf(methodValidate, fmt.Sprintf("StimRate=%v: must be finite and non-negative", p.StimRate), ErrInvalidConfig)
	}
	if math.IsNaN(p.FModOn) || p.FModOn < 0 || p.FModOn > 1 {
		return wrapf(methodValidate, fmt.Sprintf("FModOn=%v: must lie in [0,1]", p.FModOn), ErrInvalidConfig)
	}
	if math.IsNaN(p.FModOff) || p.FModOff < 0 || p.FModOff > 1 {
		return wrapf(methodValidate, fmt.Sprintf("FModOff=%v: must lie in [0,1]", p.FModOff), ErrInvalidConfig)
	}
	// Equality would divide by zero in the depth ramp; an inverted ramp has
	// no defined meaning. Require strict ordering.
	if p.FModOn >= p.FModOff {
		return wrapf(methodValidate, fmt.Sprintf("FModOn=%v, FModOff=%v: ramp requires FModOn < FModOff", p.FModOn, p.FModOff), ErrInvalidConfig)
	}
	if math.IsNaN(p.MaxModDepth) || p.MaxModDepth < 0 || p.MaxModDepth > 1 {
		return wrapf(methodValidate, fmt.Sprintf("MaxModDepth=%v: must lie in [0,1]", p.MaxModDepth), ErrInvalidConfig)
	}
	if math.IsNaN(p.DeltaPhaseMax) || p.DeltaPhaseMax < 0 || p.DeltaPhaseMax > 1 {
		return wrapf(methodValidate, fmt.Sprintf("DeltaPhaseMax=%v: must lie in [0,1]", p.DeltaPhaseMax), ErrInvalidConfig)
	}

	return nil
}

// validatePeakShape checks the peak-frequency matrix envelope (row count,
// non-empty and rectangular rows) and returns the audio-frame count.
// Entry values are checked later, inside the row kernel.
func validatePeakShape(nChan int, peak [][]float64) (int, error) {
	if len(peak) != nChan {
		return 0, wrapf(methodSynthesize, fmt.Sprintf("peak matrix has %d rows, Params.NChan=%d", len(peak), nChan), ErrInvalidInput)
	}

	nAudio := len(peak[0])
	if nAudio < minAudioFrames {
		return 0, wrapf(methodSynthesize, "peak matrix has zero audio frames", ErrInvalidInput)
	}
	for c := 1; c < nChan; c++ {
		if len(peak[c]) != nAudio {
			return 0, wrapf(methodSynthesize, fmt.Sprintf("row %d has %d frames, row 0 has %d: matrix must be rectangular", c, len(peak[c]), nAudio), ErrInvalidInput)
		}
	}

	return nAudio, nil
}

// validateOptions rejects meaningless concurrency settings.
func validateOptions(o Options) error {
	if o.Workers < 0 {
		return wrapf(methodSynthesize, fmt.Sprintf("Options.Workers=%d: must be non-negative", o.Workers), ErrInvalidConfig)
	}

	return nil
}
