package transforms

import (
	"github.com/arthur-debert/spanwrap/pkg/errors"
)

// checkOptions rejects keys not in allowed.
func checkOptions(plugin string, options map[string]interface{}, allowed ...string) error {
	for key := range options {
		known := false
		for _, a := range allowed {
			if key == a {
				known = true
				break
			}
		}
		if !known {
			return errors.Newf(errors.ErrInvalidInput, "unknown option %q for %s", key, plugin).
				WithDetail("option", key)
		}
	}
	return nil
}

func stringOption(options map[string]interface{}, key string) (string, error) {
	v, ok := options[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.Newf(errors.ErrInvalidInput, "option %s must be a string", key).
			WithDetail("option", key)
	}
	return s, nil
}
