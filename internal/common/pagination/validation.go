package pagination

import "fmt"

// Validate validates pagination parameters against the configuration.
// Returns an error if:
//   - limit is less than 1 or greater than config.MaxLimit
//   - offset is negative
func (p Params) Validate(config Config) error {
	if p.Limit < 1 || p.Limit > config.MaxLimit {
		return fmt.Errorf("limit must be between 1 and %d", config.MaxLimit)
	}
	if p.Offset < 0 {
		return fmt.Errorf("offset must be a non-negative integer")
	}
	return nil
}

// WithDefaults applies default values from config to Params.
//
// Rules:
//   - If limit <= 0, set to config.DefaultLimit
//   - If limit > config.MaxLimit, cap to config.MaxLimit
//   - If offset < 0, set to 0
func (p Params) WithDefaults(config Config) Params {
	if p.Limit <= 0 {
		p.Limit = config.DefaultLimit
	}
	if p.Limit > config.MaxLimit {
		p.Limit = config.MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
