package config

import "sort"

// Presets are named starting points; flag and config-file values still
// override them.
var Presets = map[string]*Config{
	"classic": {
		Rows: 10, Cols: 10, BoundaryTemp: 100.0,
		Epsilon: 0.1, MaxIterations: 999999,
	},
	"fine": {
		Rows: 30, Cols: 30, BoundaryTemp: 100.0,
		Epsilon: 0.01, MaxIterations: 999999,
	},
	"coarse": {
		Rows: 5, Cols: 5, BoundaryTemp: 100.0,
		Epsilon: 0.5, MaxIterations: 999999,
	},
	"chilled": {
		Rows: 10, Cols: 10, BoundaryTemp: 20.0,
		Epsilon: 0.1, MaxIterations: 999999,
	},
}

// GetPreset returns a copy of the named preset with unset fields filled
// from defaults, or nil if the name is unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Rows = p.Rows
	cfg.Cols = p.Cols
	cfg.BoundaryTemp = p.BoundaryTemp
	cfg.Epsilon = p.Epsilon
	cfg.MaxIterations = p.MaxIterations
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
