package config

import (
	"encoding/json"
	"fmt"
	"sort"

	"wallet-lifecycle-service/pkg/apperror"
)

// NpgAPIKeys resolves a per-PSP gateway credential from validated
// configuration. Build it once at startup with ParseNpgAPIKeys; construction
// fails closed on malformed JSON or a missing required PSP, so a
// misconfiguration can never become a per-request error.
type NpgAPIKeys struct {
	keys       map[string]string
	defaultKey string
}

// ParseNpgAPIKeys parses the JSON {pspId: apiKey} map and verifies every
// required PSP id is present. Error messages name ids only, never key values;
// the JSON parse error in particular is not propagated so that a malformed
// secret cannot leak into logs.
func ParseNpgAPIKeys(cfg NpgConfig) (*NpgAPIKeys, error) {
	keys := map[string]string{}
	if err := json.Unmarshal([]byte(cfg.APIKeysJSON), &keys); err != nil {
		return nil, fmt.Errorf("npg api keys: invalid json configuration map")
	}

	var missing []string
	for _, psp := range cfg.RequiredPsps {
		if _, ok := keys[psp]; !ok {
			missing = append(missing, psp)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("npg api keys: misconfigured api keys, missing psps: %v", missing)
	}

	return &NpgAPIKeys{keys: keys, defaultKey: cfg.DefaultAPIKey}, nil
}

// Get returns the API key for the given PSP id, or a missing-PSP error that
// enumerates the configured ids for diagnostics.
func (k *NpgAPIKeys) Get(pspID string) (string, error) {
	key, ok := k.keys[pspID]
	if !ok {
		return "", apperror.ErrMissingPspAPIKey(pspID, k.ConfiguredPsps())
	}
	return key, nil
}

// DefaultKey returns the fallback credential.
func (k *NpgAPIKeys) DefaultKey() string {
	return k.defaultKey
}

// ConfiguredPsps lists the configured PSP ids, sorted.
func (k *NpgAPIKeys) ConfiguredPsps() []string {
	ids := make([]string, 0, len(k.keys))
	for id := range k.keys {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
