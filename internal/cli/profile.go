// ABOUTME: Optional YAML profiles carrying codec parameters
// ABOUTME: Absent fields stay nil so explicit flags keep precedence
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is a saved set of codec parameters. Every field is optional;
// a nil field means the profile does not set it, so a value from the
// command line (or its default) applies. Fields mirror the flag names
// of lpcenc and lpcdec.
type Profile struct {
	Order            *int  `yaml:"order"`
	FrameSize        *int  `yaml:"frame_size"`
	Overlap          *int  `yaml:"overlap"`
	Workers          *int  `yaml:"workers"`
	CarryEmphasis    *bool `yaml:"carry_emphasis"`
	NormalizeOverlap *bool `yaml:"normalize_overlap"`
}

// LoadProfile reads and validates the profile file at path.
func LoadProfile(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("profile: open %q: %w", path, err)
	}
	defer f.Close()

	p, err := ReadProfile(f)
	if err != nil {
		return nil, fmt.Errorf("profile: parse %q: %w", path, err)
	}
	return p, nil
}

// ReadProfile decodes a profile from r. Unknown keys are rejected so a
// typo cannot silently fall back to a default. An empty file is a
// valid profile that sets nothing.
func ReadProfile(r io.Reader) (*Profile, error) {
	p := &Profile{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil {
		if errors.Is(err, io.EOF) {
			return p, nil
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// validate checks every field the profile sets. All failures are
// reported together.
func (p *Profile) validate() error {
	var errs []error
	if p.Order != nil && *p.Order < 1 {
		errs = append(errs, fmt.Errorf("order %d must be at least 1", *p.Order))
	}
	if p.FrameSize != nil && *p.FrameSize < 0 {
		errs = append(errs, fmt.Errorf("frame_size %d must not be negative", *p.FrameSize))
	}
	if p.Overlap != nil && (*p.Overlap < 0 || *p.Overlap >= 100) {
		errs = append(errs, fmt.Errorf("overlap %d%% is out of range [0, 100)", *p.Overlap))
	}
	if p.Workers != nil && *p.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers %d must be at least 1", *p.Workers))
	}
	return errors.Join(errs...)
}
