// SPDX-License-Identifier: MIT
// Package: stimwave/carrier
//
// errors.go — sentinel errors for the carrier package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context (method, offending field, coordinates)
//     via %w wrapping — see wrapf below.
//   • No panics on user input anywhere in the package; every failure mode
//     is a validation error surfaced before or during the single pass,
//     with no partial results.

package carrier

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates a Params field (or an Options field) outside
// its documented domain: non-positive NChan/Fs/PulseWidth/NHop, a
// modulation ramp violating 0 ≤ FModOn < FModOff ≤ 1, MaxModDepth or
// DeltaPhaseMax outside [0,1], negative Workers.
// Usage: if errors.Is(err, ErrInvalidConfig) { /* fix the fitting record */ }.
var ErrInvalidConfig = errors.New("carrier: invalid configuration")

// ErrInvalidInput indicates a malformed peak-frequency matrix: row count
// differing from NChan, zero audio frames, ragged rows, or a negative /
// non-finite frequency entry (reported with its channel and frame).
// Usage: if errors.Is(err, ErrInvalidInput) { /* inspect the estimator */ }.
var ErrInvalidInput = errors.New("carrier: invalid peak-frequency input")

// ErrDegenerateTiming indicates that the derived timing admits no output:
// the forward-telemetry rate rounds below 1 Hz, or the output frame count
// ceil(durFrame·nAudioFrame/durStimCycle)−1 falls below 1.
// Usage: if errors.Is(err, ErrDegenerateTiming) { /* supply more audio frames */ }.
var ErrDegenerateTiming = errors.New("carrier: degenerate timing")

// wrapf attaches method and detail context to a sentinel while keeping it
// reachable through errors.Is. The resulting message reads
// "<Method>: <detail>: <sentinel>".
func wrapf(method, detail string, err error) error {
	return fmt.Errorf("%s: %s: %w", method, detail, err)
}
