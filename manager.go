// seehuhn.de/go/cms - colour management for graphics applications
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cms

import (
	"fmt"
	"sync"

	"seehuhn.de/go/cms/color"
	"seehuhn.de/go/cms/engine"
	"seehuhn.de/go/cms/logging"
)

// Manager converts colors and images between color models.
//
// A Manager owns one profile per process color model, and two caches of
// transforms built from these profiles.  It is safe for concurrent use.
type Manager struct {
	engine engine.Engine

	mu      sync.Mutex
	cfg     *Config
	handles map[color.Model]engine.Profile

	transforms      *lruCache[transformKey, engine.Transform]
	proofTransforms *lruCache[color.Model, engine.Transform]
}

// profileModels lists the color models which can have a configured profile.
var profileModels = []color.Model{color.RGB, color.CMYK, color.Lab, color.Gray, color.Display}

type transformKey struct {
	in, out color.Model
}

// NewManager creates a new color manager.
//
// If e is nil, the [engine.Builtin] engine is used.  If cfg is nil,
// [DefaultConfig] is used.  The configuration is copied.
func NewManager(e engine.Engine, cfg *Config) (*Manager, error) {
	if e == nil {
		e = engine.NewBuiltin()
	}
	m := &Manager{
		engine: e,
	}
	err := m.Update(cfg)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Update replaces the configuration and reloads all profiles.
// If cfg is nil, the current configuration is kept.
// All cached transforms are discarded.
//
// If a profile cannot be loaded, the manager is left unchanged.
func (m *Manager) Update(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		cfg = m.cfg
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg = cfg.clone()

	handles, err := m.loadProfiles(cfg)
	if err != nil {
		return err
	}

	m.cfg = cfg
	m.handles = handles
	m.clearTransforms()
	return nil
}

func (m *Manager) loadProfiles(cfg *Config) (map[color.Model]engine.Profile, error) {
	log := logging.Logger()

	handles := make(map[color.Model]engine.Profile, len(color.ProcessModels)+1)
	for _, model := range color.ProcessModels {
		p, err := m.engine.DefaultProfile(model)
		if err != nil {
			return nil, &ProfileCreationError{Model: model, Err: err}
		}
		handles[model] = p
	}

	for _, model := range profileModels {
		var p engine.Profile
		var err error
		var src string
		if data, ok := cfg.Profiles[model]; ok {
			p, err = m.engine.OpenProfile(data)
			src = fmt.Sprintf("%d bytes of ICC data", len(data))
		} else if path, ok := cfg.ProfileFiles[model]; ok {
			p, err = m.engine.OpenProfileFile(path)
			src = path
		} else {
			continue
		}
		if err != nil {
			return nil, &ProfileCreationError{Model: model, Err: err}
		}
		if pm := p.Model(); pm != model && !(model == color.Display && pm == color.RGB) {
			return nil, &ProfileCreationError{
				Model: model,
				Err:   fmt.Errorf("profile is for %s data", pm),
			}
		}
		handles[model] = p
		log.Debug("profile loaded", "model", model, "source", src)
	}

	return handles, nil
}

// clearTransforms empties both transform caches.
// The caller must hold m.mu.
func (m *Manager) clearTransforms() {
	size := m.cfg.cacheSize()
	if m.transforms == nil || m.transforms.capacity != size {
		m.transforms = newCache[transformKey, engine.Transform](size)
		m.proofTransforms = newCache[color.Model, engine.Transform](size)
	} else {
		m.transforms.Clear()
		m.proofTransforms.Clear()
	}
	logging.Logger().Debug("transform caches cleared")
}

// Config returns a copy of the current configuration.
func (m *Manager) Config() *Config {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cfg.clone()
}

// Engine returns the color management engine used by the manager.
func (m *Manager) Engine() engine.Engine {
	return m.engine
}

// Profile returns the profile used for the given color model.
func (m *Manager) Profile(model color.Model) (engine.Profile, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.handles[model]
	return p, ok
}

// hasDisplay reports whether on-screen rendering uses the display profile.
// The caller must hold m.mu.
func (m *Manager) hasDisplay() bool {
	if !m.cfg.UseDisplayProfile {
		return false
	}
	_, ok := m.handles[color.Display]
	return ok
}

// displayModel returns the color model used for on-screen rendering.
// The caller must hold m.mu.
func (m *Manager) displayModel() color.Model {
	if m.hasDisplay() {
		return color.Display
	}
	return color.RGB
}

// getTransform returns the transform from data in model in to data in
// model out, building it if needed.  The caller must hold m.mu.
func (m *Manager) getTransform(in, out color.Model) (engine.Transform, error) {
	key := transformKey{in, out}
	if tr, ok := m.transforms.Get(key); ok {
		return tr, nil
	}

	intent := m.intentFor(out)
	hIn, ok := m.handles[in]
	if !ok {
		return nil, &TransformUnavailableError{In: in, Out: out, Err: errNoProfile}
	}
	hOut, ok := m.handles[out]
	if !ok {
		return nil, &TransformUnavailableError{In: in, Out: out, Err: errNoProfile}
	}
	engineOut := out
	if out == color.Display {
		engineOut = color.RGB
	}

	tr, err := m.engine.NewTransform(hIn, in, hOut, engineOut, intent, m.cfg.Flags)
	if err != nil {
		return nil, &TransformUnavailableError{In: in, Out: out, Err: err}
	}
	logging.Logger().Debug("transform built",
		"in", in, "out", out, "intent", intent, "flags", fmt.Sprintf("%#x", m.cfg.Flags))
	m.transforms.Put(key, tr)
	return tr, nil
}

// getProofTransform returns the soft-proofing transform for data in model
// in, building it if needed.  The caller must hold m.mu.
func (m *Manager) getProofTransform(in color.Model) (engine.Transform, error) {
	if tr, ok := m.proofTransforms.Get(in); ok {
		return tr, nil
	}

	out := m.displayModel()
	hIn, okIn := m.handles[in]
	hOut, okOut := m.handles[out]
	hProof, okProof := m.handles[color.CMYK]
	if !okIn || !okOut || !okProof {
		return nil, &TransformUnavailableError{In: in, Out: out, Proofing: true, Err: errNoProfile}
	}

	flags := m.cfg.Flags | engine.FlagSoftProofing
	if m.cfg.GamutCheck {
		flags |= engine.FlagGamutCheck
	}
	tr, err := m.engine.NewProofingTransform(hIn, in, hOut, color.RGB, hProof,
		m.cfg.CMYKIntent, m.cfg.RGBIntent, flags)
	if err != nil {
		return nil, &TransformUnavailableError{In: in, Out: out, Proofing: true, Err: err}
	}
	logging.Logger().Debug("proofing transform built",
		"in", in, "out", out, "flags", fmt.Sprintf("%#x", flags))
	m.proofTransforms.Put(in, tr)
	return tr, nil
}
