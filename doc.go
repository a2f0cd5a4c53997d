// Package stimwave synthesizes the per-channel carrier signals that drive
// stimulation pulses in multi-channel sound-processing strategies.
//
// 🚀 What is stimwave?
//
//	A small, deterministic library that turns per-channel peak-frequency
//	estimates (sampled at the audio analysis rate) into forward-telemetry
//	rate carrier values:
//		• carrier/ — the core transform: zero-order-hold resampling,
//		  per-channel phase accumulation, frequency-dependent modulation
//		  depth, square-wave combination
//		• fitting/ — YAML strategy-file loading into carrier.Params
//		• signal/  — deterministic peak-frequency fixtures for tests & demos
//
// ✨ Why choose stimwave?
//
//   - Referentially transparent — identical inputs give bit-identical output
//   - Strict validation — sentinel errors name the offending field
//   - Pure Go numeric kernel — no cgo, no hidden deps
//   - Channel-parallel — rows fan out over an errgroup when you ask for it
//
// Quick sketch of the pipeline:
//
//	peakFreq (nChan × nAudioFrame)
//	    │  zero-order hold onto the stimulation-cycle grid
//	    ▼
//	phase accumulation (mod 1, Δφ capped)  +  modulation-depth ramp
//	    │
//	    ▼
//	carrier (nChan × nOutFrame) ∈ [1−MaxModDepth, 1]
//
// Dive into carrier/doc.go for the full contract and examples/ for
// end-to-end scenarios.
//
//	go get github.com/katalvlaran/stimwave/carrier
package stimwave
