// Package signal builds deterministic peak-frequency matrices for tests,
// examples and benchmarks of the carrier transform.
//
// 🚀 What is signal?
//
//	Three tiny, reproducible generators of nChan × nFrame matrices in Hz:
//		• ConstantPeaks — every channel holds one steady frequency
//		• SweepPeaks    — per-channel linear sweep from f0 to f1
//		• NoisyPeaks    — steady frequency plus seeded Gaussian jitter,
//		  clamped at 0 (peak frequencies are never negative)
//
// ✨ Guarantees:
//   - Strict determinism per (arguments, seed); no global state.
//   - O(nChan·nFrame) time and memory; no panics on user input.
//   - Sentinel errors only (ErrBadSize, ErrBadValue) — branch with errors.Is.
//
// ⚙️ Usage:
//
//	peaks, err := signal.NoisyPeaks(16, 870, 2500, 300, 42)
//	if err != nil { ... }
//	wave, idx, err := carrier.Synthesize(p, peaks, nil)
package signal
