package registry

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/spanwrap/pkg/errors"
	"github.com/arthur-debert/spanwrap/pkg/hast"
	"github.com/arthur-debert/spanwrap/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withCleanPlugins swaps in an empty plugin registry for the test.
func withCleanPlugins(t *testing.T) {
	orig := pluginRegistry
	pluginRegistry = New[types.Plugin]()
	t.Cleanup(func() { pluginRegistry = orig })
}

func noopPlugin(name string) types.Plugin {
	return types.Plugin{
		Name:        name,
		Description: "does nothing",
		Factory: func(map[string]interface{}) (types.Transform, error) {
			return types.TransformFunc{
				TransformName: name,
				Fn:            func(context.Context, *hast.Root) error { return nil },
			}, nil
		},
	}
}

func TestGetRegistry(t *testing.T) {
	withCleanPlugins(t)
	require.NoError(t, RegisterPlugin(noopPlugin("a")))

	assert.True(t, GetRegistry[types.Plugin]().Has("a"))

	type unknownType struct{}
	other := GetRegistry[unknownType]()
	require.NotNil(t, other)
	assert.Equal(t, 0, other.Count())
}

func TestRegisterPlugin(t *testing.T) {
	withCleanPlugins(t)

	require.NoError(t, RegisterPlugin(noopPlugin("b")))
	require.NoError(t, RegisterPlugin(noopPlugin("a")))

	err := RegisterPlugin(noopPlugin("a"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

	err = RegisterPlugin(types.Plugin{Name: "nofactory"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrPluginInvalid))

	var names []string
	for _, p := range ListPlugins() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"a", "b"}, names)

	assert.Panics(t, func() { MustRegisterPlugin(noopPlugin("a")) })
}

func TestGetPlugin(t *testing.T) {
	withCleanPlugins(t)
	require.NoError(t, RegisterPlugin(noopPlugin("a")))

	p, err := GetPlugin("a")
	require.NoError(t, err)
	assert.Equal(t, "does nothing", p.Description)

	_, err = GetPlugin("missing")
	assert.True(t, errors.IsErrorCode(err, errors.ErrPluginNotFound))
	assert.Equal(t, "missing", errors.GetErrorDetails(err)["plugin"])
}

func TestNewTransform(t *testing.T) {
	withCleanPlugins(t)
	require.NoError(t, RegisterPlugin(noopPlugin("a")))
	require.NoError(t, RegisterPlugin(types.Plugin{
		Name: "broken",
		Factory: func(map[string]interface{}) (types.Transform, error) {
			return nil, stderrors.New("bad option")
		},
	}))
	require.NoError(t, RegisterPlugin(types.Plugin{
		Name:    "empty",
		Factory: func(map[string]interface{}) (types.Transform, error) { return nil, nil },
	}))

	tr, err := NewTransform("a", nil)
	require.NoError(t, err)
	assert.Equal(t, "a", tr.Name())
	assert.NoError(t, tr.Apply(context.Background(), hast.NewRoot()))

	_, err = NewTransform("broken", nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPluginInvalid))
	assert.Contains(t, err.Error(), "bad option")

	_, err = NewTransform("empty", nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPluginInvalid))

	_, err = NewTransform("missing", nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPluginNotFound))
}
