package options

import "github.com/cleared-dev/ledgercheck/internal/model"

// ValidateOptions checks a whole snapshot: every value must pass its
// option's validator and the five roots must be distinct. It does not
// modify cfg. Errors come back in registry order.
func ValidateOptions(cfg *Config) []model.Error {
	var errs []model.Error

	for _, d := range registry {
		if err := d.Check(cfg.Get(d.Key)); err != nil {
			errs = append(errs, model.Error{
				Kind:    model.ErrorInvalidOptionValue,
				Message: err.Error(),
			})
		}
	}

	owner := make(map[string]Key, len(rootKeys))
	for _, k := range rootKeys {
		root := cfg.Text(k)
		if prev, dup := owner[root]; dup {
			err := &ValueError{Option: k.String(), Value: root, Reason: "root already used by " + prev.String()}
			errs = append(errs, model.Error{Kind: model.ErrorInvalidOptionValue, Message: err.Error()})
			continue
		}
		owner[root] = k
	}

	return errs
}
