// Package content defines the section data the carousel renders: ordered
// sections with headings, rich text bodies, and background image references,
// plus the carousel tuning config. Data arrives from a CMS export on disk
// (YAML, see Load) or from the built-in Sample fallback; the carousel itself
// never fetches anything.
package content

import (
	"fmt"
	"time"
)

// Image is a background image reference for one section. Ref is the asset
// identifier from the CMS; URL is the resolved location when known. Either
// may be used by the host's ImageSource to locate the pixels.
type Image struct {
	Ref string `yaml:"ref"`
	URL string `yaml:"url,omitempty"`
	Alt string `yaml:"alt,omitempty"`
}

// Section is one page of carousel content. Order is 1-based and must match
// the section's position in the sequence (see Data.Validate).
type Section struct {
	ID         string  `yaml:"id"`
	Heading    string  `yaml:"heading"`
	Subheading string  `yaml:"subheading,omitempty"`
	Body       []Block `yaml:"body,omitempty"`
	Background Image   `yaml:"background"`
	Order      int     `yaml:"order"`
}

// Config tunes the carousel. TransitionDuration is in milliseconds.
// Zero values are replaced with defaults by Normalize.
type Config struct {
	TransitionDuration int     `yaml:"transitionDuration"`
	ScrollSensitivity  float64 `yaml:"scrollSensitivity"`
}

// Default config values, applied by Normalize when a field is zero.
const (
	DefaultTransitionDuration = 800 // ms
	DefaultScrollSensitivity  = 1.0
)

// Normalize returns c with zero fields replaced by defaults.
func (c Config) Normalize() Config {
	if c.TransitionDuration == 0 {
		c.TransitionDuration = DefaultTransitionDuration
	}
	if c.ScrollSensitivity == 0 {
		c.ScrollSensitivity = DefaultScrollSensitivity
	}
	return c
}

// Transition returns the transition duration as a time.Duration.
func (c Config) Transition() time.Duration {
	return time.Duration(c.TransitionDuration) * time.Millisecond
}

// Data is the aggregate the host hands to the carousel: the ordered section
// sequence plus config. It is created once per mount and treated as
// immutable for the lifetime of that mount.
type Data struct {
	Sections []Section `yaml:"sections"`
	Config   Config    `yaml:"config"`
}

// Validate checks the invariants the carousel relies on: at least one
// section, Order contiguous from 1 and matching slice position, unique IDs,
// and positive config values. A Data that fails Validate may still be
// rendered statically, but must not drive the scroll-locked transitions.
func (d Data) Validate() error {
	if len(d.Sections) == 0 {
		return fmt.Errorf("content: no sections")
	}
	seen := make(map[string]struct{}, len(d.Sections))
	for i, s := range d.Sections {
		if s.ID == "" {
			return fmt.Errorf("content: section %d has no id", i)
		}
		if _, ok := seen[s.ID]; ok {
			return fmt.Errorf("content: duplicate section id %q", s.ID)
		}
		seen[s.ID] = struct{}{}
		if s.Order != i+1 {
			return fmt.Errorf("content: section %q has order %d, want %d", s.ID, s.Order, i+1)
		}
	}
	cfg := d.Config
	if cfg.TransitionDuration < 0 {
		return fmt.Errorf("content: transition duration %dms is negative", cfg.TransitionDuration)
	}
	if cfg.ScrollSensitivity < 0 {
		return fmt.Errorf("content: scroll sensitivity %v is negative", cfg.ScrollSensitivity)
	}
	return nil
}
