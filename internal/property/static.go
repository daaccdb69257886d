package property

import "context"

// StaticStore serves configurations from memory, for tests and embedded
// hosts. Defaults are applied on load, matching the database store.
type StaticStore struct {
	Configs map[int64]Config
}

// Load implements Store.
func (s StaticStore) Load(_ context.Context, propertyID int64) (Config, error) {
	cfg, ok := s.Configs[propertyID]
	if !ok {
		return Config{}, &ConfigurationError{PropertyID: propertyID, Err: ErrNotFound}
	}
	cfg.PropertyID = propertyID
	return ApplyDefaults(cfg), nil
}
