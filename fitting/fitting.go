package fitting

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stimwave/carrier"
)

// fileSchema mirrors the on-disk fitting document. Field names follow the
// fitting software's snake_case convention; see doc.go for a full sample.
type fileSchema struct {
	Strategy struct {
		NChan      int     `yaml:"n_chan"`
		SampleRate float64 `yaml:"sample_rate"`
		PulseWidth float64 `yaml:"pulse_width_us"`
		HopSize    int     `yaml:"hop_size"`
		StimRate   float64 `yaml:"stim_rate"`
	} `yaml:"strategy"`

	Modulation struct {
		FModOn        float64 `yaml:"f_mod_on"`
		FModOff       float64 `yaml:"f_mod_off"`
		MaxModDepth   float64 `yaml:"max_mod_depth"`
		DeltaPhaseMax float64 `yaml:"delta_phase_max"`
	} `yaml:"modulation"`
}

// Parse unmarshals a YAML fitting document and validates the resulting
// record. On any failure the zero Params is returned alongside the error.
func Parse(data []byte) (carrier.Params, error) {
	var doc fileSchema
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return carrier.Params{}, fmt.Errorf("fitting: unmarshal: %w", err)
	}

	p := carrier.Params{
		NChan:         doc.Strategy.NChan,
		Fs:            doc.Strategy.SampleRate,
		PulseWidth:    doc.Strategy.PulseWidth,
		NHop:          doc.Strategy.HopSize,
		StimRate:      doc.Strategy.StimRate,
		FModOn:        doc.Modulation.FModOn,
		FModOff:       doc.Modulation.FModOff,
		MaxModDepth:   doc.Modulation.MaxModDepth,
		DeltaPhaseMax: doc.Modulation.DeltaPhaseMax,
	}
	if err := p.Validate(); err != nil {
		return carrier.Params{}, fmt.Errorf("fitting: %w", err)
	}

	return p, nil
}

// Load reads a YAML fitting file from disk and parses it via Parse.
func Load(path string) (carrier.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return carrier.Params{}, fmt.Errorf("fitting: read %s: %w", path, err)
	}

	return Parse(data)
}
