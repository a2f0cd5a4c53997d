// SPDX-License-Identifier: MIT
// Package: stimwave/signal
//
// signal.go — deterministic peak-frequency matrix generators.
//
// Purpose (single responsibility):
//   • Provide reproducible nChan×nFrame frequency matrices for tests,
//     demos and benchmarks of the carrier transform.
//   • Shapes: constant hold, linear sweep, Gaussian-jittered hold.
//
// Contract:
//   • Every generator returns a fully allocated matrix or a sentinel error.
//   • Strict determinism per (arguments, seed); no global state; no panics.
//   • All emitted frequencies are finite and ≥ 0 — valid carrier input
//     by construction.
//
// Determinism policy:
//   • NoisyPeaks draws from rand.New(rand.NewSource(seed)); the same seed
//     always yields the same matrix, row by row, frame by frame.
//
// AI-Hints:
//   • Need an exponential sweep? Swap the linear fi interpolation for a
//     geometric one; the frame loop stays identical.
//   • For channel-correlated jitter, draw one noise stream and reuse it
//     across rows instead of consuming the stream row-major.

package signal

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// -----------------------------------------------------------------------------
// Sentinel errors (branch with errors.Is, never string matching).
// -----------------------------------------------------------------------------

// ErrBadSize indicates nChan or nFrame below 1.
var ErrBadSize = errors.New("signal: invalid matrix size")

// ErrBadValue indicates a negative or non-finite frequency/sigma argument.
var ErrBadValue = errors.New("signal: invalid frequency or sigma")

// -----------------------------------------------------------------------------
// File-local minimums (no magic numbers).
// -----------------------------------------------------------------------------

const (
	minChannels = 1
	minFrames   = 1
)

// checkSize guards the common matrix dimensions.
func checkSize(nChan, nFrame int) error {
	if nChan < minChannels || nFrame < minFrames {
		return fmt.Errorf("nChan=%d, nFrame=%d: %w", nChan, nFrame, ErrBadSize)
	}

	return nil
}

// checkFreq guards a single frequency argument.
func checkFreq(name string, hz float64) error {
	if hz < 0 || math.IsNaN(hz) || math.IsInf(hz, 0) {
		return fmt.Errorf("%s=%v: %w", name, hz, ErrBadValue)
	}

	return nil
}

// ConstantPeaks returns an nChan×nFrame matrix with every entry equal to hz.
//
// Complexity: O(nChan·nFrame) time and memory.
func ConstantPeaks(nChan, nFrame int, hz float64) ([][]float64, error) {
	if err := checkSize(nChan, nFrame); err != nil {
		return nil, err
	}
	if err := checkFreq("hz", hz); err != nil {
		return nil, err
	}

	peaks := make([][]float64, nChan)
	for c := range peaks {
		row := make([]float64, nFrame)
		for k := range row {
			row[k] = hz
		}
		peaks[c] = row
	}

	return peaks, nil
}

// SweepPeaks returns an nChan×nFrame matrix where every channel sweeps
// linearly from f0 at frame 0 to f1 at frame nFrame−1:
//
//	fi = f0 + (f1 − f0) · i/(nFrame−1)
//
// A single-frame matrix holds f0. f1 < f0 yields a downward sweep.
//
// Complexity: O(nChan·nFrame) time and memory.
func SweepPeaks(nChan, nFrame int, f0, f1 float64) ([][]float64, error) {
	if err := checkSize(nChan, nFrame); err != nil {
		return nil, err
	}
	if err := checkFreq("f0", f0); err != nil {
		return nil, err
	}
	if err := checkFreq("f1", f1); err != nil {
		return nil, err
	}

	span := f1 - f0
	denom := float64(nFrame - 1)
	peaks := make([][]float64, nChan)
	for c := range peaks {
		row := make([]float64, nFrame)
		for i := range row {
			if nFrame == 1 {
				row[i] = f0

				continue
			}
			row[i] = f0 + span*float64(i)/denom
		}
		peaks[c] = row
	}

	return peaks, nil
}

// NoisyPeaks returns an nChan×nFrame matrix of hz plus Gaussian jitter
// with standard deviation sigma, drawn from a seeded stream and clamped
// at 0 so the result is always a valid peak-frequency matrix.
//
// Determinism: the stream is consumed row-major, so the same
// (nChan, nFrame, hz, sigma, seed) tuple reproduces the matrix exactly.
//
// Complexity: O(nChan·nFrame) time and memory.
func NoisyPeaks(nChan, nFrame int, hz, sigma float64, seed int64) ([][]float64, error) {
	if err := checkSize(nChan, nFrame); err != nil {
		return nil, err
	}
	if err := checkFreq("hz", hz); err != nil {
		return nil, err
	}
	if sigma < 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		return nil, fmt.Errorf("sigma=%v: %w", sigma, ErrBadValue)
	}

	rng := rand.New(rand.NewSource(seed))
	peaks := make([][]float64, nChan)
	for c := range peaks {
		row := make([]float64, nFrame)
		for k := range row {
			f := hz + rng.NormFloat64()*sigma
			if f < 0 {
				f = 0 // peak frequencies are non-negative
			}
			row[k] = f
		}
		peaks[c] = row
	}

	return peaks, nil
}
