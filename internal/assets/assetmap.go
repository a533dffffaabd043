package assets

import (
	"encoding/json"
	"fmt"
	"os"
)

// AssetMap maps original asset keys to optimized variants, as written by
// the offline optimizer.
type AssetMap map[string]string

// Resolve returns the optimized key for key, if one exists.
func (m AssetMap) Resolve(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	optimized, ok := m[key]
	if !ok || optimized == "" || optimized == key {
		return "", false
	}
	return optimized, true
}

// LoadAssetMap reads an asset map JSON file. A missing file yields an
// empty map.
func LoadAssetMap(path string) (AssetMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return AssetMap{}, nil
		}
		return nil, fmt.Errorf("failed to read asset map: %w", err)
	}

	var m AssetMap
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse asset map %s: %w", path, err)
	}
	return m, nil
}
