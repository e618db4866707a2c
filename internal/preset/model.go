// Package preset persists the resolutions last applied per display device.
package preset

// Mode is a stored resolution as width/height in pixels.
type Mode struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Presets records per-device resolution history.
type Presets struct {
	LastApplied map[string]Mode `json:"last_applied,omitempty"`
}

// Set records the mode last applied to the named device.
func (p *Presets) Set(deviceName string, m Mode) {
	if p.LastApplied == nil {
		p.LastApplied = make(map[string]Mode)
	}
	p.LastApplied[deviceName] = m
}

// Get returns the mode last applied to the named device.
func (p Presets) Get(deviceName string) (Mode, bool) {
	m, ok := p.LastApplied[deviceName]
	return m, ok
}
