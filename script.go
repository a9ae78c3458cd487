package scrolldeck

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	Amount float64 `json:"amount,omitempty"`
	Dir    string  `json:"dir,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// inputScript is the top-level JSON structure for an input script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences injected input across updates for automated demos and
// interaction tests. Attach to a Carousel via SetScript.
//
// Supported actions: "wheel" (amount = notches, positive forward), "swipe"
// (amount = pixels over frames updates), "key" (dir = "forward" or
// "backward"), and "wait" (frames updates of no input).
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script.
func LoadScript(jsonData []byte) (*Script, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	return &Script{steps: script.Steps}, nil
}

// Done reports whether all steps in the script have been executed.
func (s *Script) Done() bool {
	return s.done
}

// step advances the script by one update. Called from Carousel.Update.
func (s *Script) step(c *Carousel) {
	if s.done {
		return
	}
	// Let pending injections drain before advancing.
	if len(c.injectQueue) > 0 {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "wheel":
		c.InjectWheel(st.Amount)
	case "swipe":
		frames := st.Frames
		if frames < 1 {
			frames = 1
		}
		c.InjectSwipe(st.Amount, frames)
	case "key":
		dir := Forward
		if st.Dir == "backward" {
			dir = Backward
		}
		c.InjectKeyStep(dir)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this update counts as one
		}
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 && len(c.injectQueue) == 0 {
		s.done = true
	}
}
