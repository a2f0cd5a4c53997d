// Package fitting loads strategy parameter records from YAML fitting
// files into carrier.Params.
//
// 🚀 What is fitting?
//
//	Strategy parameters travel between fitting software and processors as
//	small YAML documents. This package parses the two-section schema and
//	validates the result before it can reach the synthesis kernel:
//
//	strategy:
//	  n_chan: 16
//	  sample_rate: 17400      # Hz
//	  pulse_width_us: 18      # µs per pulse phase
//	  hop_size: 20            # samples
//	  stim_rate: 1800         # Hz, carried for the pulse encoder
//	modulation:
//	  f_mod_on: 0.1           # fraction of the forward-telemetry rate
//	  f_mod_off: 0.5
//	  max_mod_depth: 0.9
//	  delta_phase_max: 0.5
//
// ✨ Guarantees:
//   - Parse and Load never return an unvalidated Params: every record
//     passes carrier.Params.Validate() first, so carrier.ErrInvalidConfig
//     surfaces here, at the boundary, with the offending field named.
//   - Read and unmarshal failures wrap the underlying error (%w), so
//     errors.Is(err, os.ErrNotExist) and friends keep working.
//
// ⚙️ Usage:
//
//	p, err := fitting.Load("strategy.yaml")
//	if err != nil { ... }
//	wave, idx, err := carrier.Synthesize(p, peaks, nil)
package fitting
