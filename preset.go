package motion

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

// ErrUnknownPreset is returned when a preset name is not in a PresetSet.
var ErrUnknownPreset = errors.New("motion: unknown preset")

// Preset is a reusable animation description, usually loaded from YAML:
//
//	slideIn:
//	  duration: 0.4
//	  ease: outCubic
//	  props:
//	    x: 50%
//	    rotation: 90deg
//	    scaleX: 1.5
//
// Props map component keys to literals. x and y accept percentages of the
// target's extent; skewX, skewY and rotation accept a "deg" or "rad" suffix
// (bare numbers are radians).
type Preset struct {
	Name     string            `yaml:"-"`
	Duration float32           `yaml:"duration"`
	Ease     string            `yaml:"ease"`
	Props    map[string]string `yaml:"props"`
}

// PresetSet is a collection of presets keyed by name.
type PresetSet map[string]*Preset

// ParsePresets decodes a YAML document of named presets and validates them.
func ParsePresets(data []byte) (PresetSet, error) {
	var set PresetSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	if err := set.validate(); err != nil {
		return nil, err
	}
	return set, nil
}

// LoadPresets reads and validates a YAML document of named presets from r.
func LoadPresets(r io.Reader) (PresetSet, error) {
	var set PresetSet
	if err := yaml.NewDecoder(r).Decode(&set); err != nil {
		return nil, fmt.Errorf("load presets: %w", err)
	}
	if err := set.validate(); err != nil {
		return nil, err
	}
	return set, nil
}

// validate names each preset and checks its ease and props.
func (s PresetSet) validate() error {
	for _, name := range s.Names() {
		p := s[name]
		if p == nil {
			return fmt.Errorf("preset %q: empty", name)
		}
		p.Name = name
		if p.Duration < 0 {
			return fmt.Errorf("preset %q: negative duration %v", name, p.Duration)
		}
		if _, err := LookupEase(p.Ease); err != nil {
			return fmt.Errorf("preset %q: %w", name, err)
		}
		for _, key := range p.keys() {
			if _, err := parsePresetProp(key, p.Props[key]); err != nil {
				return fmt.Errorf("preset %q: %w", name, err)
			}
		}
	}
	return nil
}

// Names returns the preset names in sorted order.
func (s PresetSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the named preset.
func (s PresetSet) Get(name string) (*Preset, error) {
	p, ok := s[name]
	if !ok || p == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

// Build creates an Updater on target, bound to cache (DefaultCache if nil),
// with every prop of the preset registered under the preset's ease.
func (p *Preset) Build(cache *Cache, target Target) (*Updater, error) {
	fn, err := LookupEase(p.Ease)
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", p.Name, err)
	}
	if cache == nil {
		cache = DefaultCache()
	}
	u := cache.NewUpdater(target)
	u.SetEase(fn)

	for _, key := range p.keys() {
		prop, err := parsePresetProp(key, p.Props[key])
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", p.Name, err)
		}
		if prop.percent {
			u.AddPropStr(key, prop.literal)
		} else {
			u.AddProp(key, prop.value)
		}
	}
	return u, nil
}

// Play builds p on target with the Animator's cache and adds it.
func (am *Animator) Play(p *Preset, target Target) (*Animation, error) {
	u, err := p.Build(am.cache, target)
	if err != nil {
		return nil, err
	}
	return am.Add(u, p.Duration, nil), nil
}

func (p *Preset) keys() []string {
	keys := make([]string, 0, len(p.Props))
	for k := range p.Props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// presetProp is one parsed prop literal.
type presetProp struct {
	value   float64
	percent bool
	literal string
}

func parsePresetProp(key, literal string) (presetProp, error) {
	c, ok := ParseComponent(key)
	if !ok {
		return presetProp{}, fmt.Errorf("unknown component %q", key)
	}
	s := strings.TrimSpace(literal)

	if pct, isPct := strings.CutSuffix(s, "%"); isPct {
		if c != ComponentX && c != ComponentY {
			return presetProp{}, fmt.Errorf("%s: percentages only apply to x and y", key)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(pct), 64)
		if err != nil {
			return presetProp{}, fmt.Errorf("%s: %w", key, err)
		}
		if !finite(f) {
			return presetProp{}, fmt.Errorf("%s: non-finite value %q", key, literal)
		}
		return presetProp{percent: true, literal: s}, nil
	}

	scale := 1.0
	if c.IsAngle() {
		if v, ok := strings.CutSuffix(s, "deg"); ok {
			s, scale = v, math.Pi/180
		} else if v, ok := strings.CutSuffix(s, "rad"); ok {
			s = v
		}
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return presetProp{}, fmt.Errorf("%s: %w", key, err)
	}
	if !finite(v) {
		return presetProp{}, fmt.Errorf("%s: non-finite value %q", key, literal)
	}
	return presetProp{value: v * scale, literal: literal}, nil
}
