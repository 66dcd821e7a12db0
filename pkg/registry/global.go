package registry

import (
	"github.com/arthur-debert/spanwrap/pkg/errors"
	"github.com/arthur-debert/spanwrap/pkg/types"
)

var pluginRegistry Registry[types.Plugin]

func init() {
	pluginRegistry = New[types.Plugin]()
}

// GetRegistry returns the global registry for the specified type.
// Types without a global registry get a fresh, empty one.
func GetRegistry[T any]() Registry[T] {
	var zero T
	switch any(zero).(type) {
	case types.Plugin:
		return any(pluginRegistry).(Registry[T])
	default:
		return New[T]()
	}
}

// RegisterPlugin adds a transform plugin to the global registry.
func RegisterPlugin(p types.Plugin) error {
	if p.Factory == nil {
		return errors.Newf(errors.ErrPluginInvalid, "plugin %q has no factory", p.Name)
	}
	return pluginRegistry.Register(p.Name, p)
}

// MustRegisterPlugin registers p and panics on failure.
func MustRegisterPlugin(p types.Plugin) {
	if err := RegisterPlugin(p); err != nil {
		panic("failed to register plugin " + p.Name + ": " + err.Error())
	}
}

// GetPlugin retrieves a plugin by name.
func GetPlugin(name string) (types.Plugin, error) {
	p, err := pluginRegistry.Get(name)
	if err != nil {
		return types.Plugin{}, errors.Wrapf(err, errors.ErrPluginNotFound, "transform plugin %q is not registered", name).
			WithDetail("plugin", name)
	}
	return p, nil
}

// ListPlugins returns every registered plugin ordered by name.
func ListPlugins() []types.Plugin {
	return pluginRegistry.Values()
}

// NewTransform creates a transform instance by plugin name with the given options.
func NewTransform(name string, options map[string]interface{}) (types.Transform, error) {
	p, err := GetPlugin(name)
	if err != nil {
		return nil, err
	}

	t, err := p.Factory(options)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPluginInvalid, "failed to create transform %s", name).
			WithDetail("plugin", name)
	}
	if t == nil {
		return nil, errors.Newf(errors.ErrPluginInvalid, "factory for %s returned no transform", name)
	}
	return t, nil
}
