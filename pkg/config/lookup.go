package config

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Lookup resolves a dotted key path (i.e. "platforms.linux.build_dir"). Keys known to Config are
// read from the loaded values, so VOXIUM_* overrides apply. Empty values and keys that aren't part
// of Config fall back to the raw config file.
func (p *Project) Lookup(key string) (string, bool) {
	if resolved, err := json.Marshal(&p.Config); err == nil {
		result := gjson.GetBytes(resolved, key)
		if result.Exists() && result.String() != "" {
			return result.String(), true
		}
	}

	result := gjson.GetBytes(p.raw, key)
	if !result.Exists() {
		return "", false
	}

	return result.String(), true
}

// Get is Lookup with a fallback value for missing keys
func (p *Project) Get(key, fallback string) string {
	value, ok := p.Lookup(key)
	if !ok {
		return fallback
	}

	return value
}
