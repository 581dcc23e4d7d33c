package sweettest

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Script is a sequence of scripted frames, loaded from YAML:
//
//	frames:
//	  - click: [Quality]
//	  - close: [Settings]
//	    hover: true
type Script struct {
	Frames []Frame `yaml:"frames"`
}

// Frame lists the interactions of one frame.
type Frame struct {
	// Click queues one interaction per label.
	Click []string `yaml:"click"`
	// Close makes begins with these labels return false for this frame.
	Close []string `yaml:"close"`
	// Hover is returned by IsItemHovered.
	Hover bool `yaml:"hover"`
}

// LoadScript decodes a script. Unknown keys are rejected.
func LoadScript(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("sweettest: decode script: %w", err)
	}
	return &s, nil
}

// Apply resets r for a new frame and arms it with the frame's interactions.
func (f Frame) Apply(r *Recorder) {
	r.Reset()
	r.Reopen()
	r.Close(f.Close...)
	r.Click(f.Click...)
	r.SetHovered(f.Hover)
}
