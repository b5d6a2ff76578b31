package fixture

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heathj/domevents/event"
)

func TestLoadFileClosedShadow(t *testing.T) {
	fx, err := LoadFile("./tests/closed_shadow.yaml")
	require.NoError(t, err)

	e := fx.Event()
	assert.Equal(t, "click", string(e.Type()))
	assert.True(t, e.Bubbles())
	assert.True(t, e.Cancelable())
	assert.True(t, e.Composed())

	path := fx.Path()
	require.Len(t, path, 6)
	assert.True(t, path[0].InShadowTree)
	assert.True(t, path[1].RootOfClosedTree)
	assert.False(t, path[2].RootOfClosedTree)

	rows, err := fx.ComposedPaths()
	require.NoError(t, err)
	var expected = []Row{
		{"window", []string{"host", "body", "document", "window"}},
		{"document", []string{"host", "body", "document", "window"}},
		{"body", []string{"host", "body", "document", "window"}},
		{"host", []string{"host", "body", "document", "window"}},
		{"shadow-root", []string{"button", "shadow-root", "host", "body", "document", "window"}},
		{"button", []string{"button", "shadow-root", "host", "body", "document", "window"}},
	}
	assert.Equal(t, expected, rows)
}

func TestLoadFileClosedSlot(t *testing.T) {
	fx, err := LoadFile("./tests/closed_slot.yaml")
	require.NoError(t, err)

	path := fx.Path()
	require.Len(t, path, 5)
	finger, ok := fx.Target("finger")
	require.True(t, ok)
	assert.True(t, event.SameTarget(finger, path[1].RelatedTarget))
	require.Len(t, path[0].TouchTargets, 2)
	assert.True(t, event.SameTarget(finger, path[0].TouchTargets[0]))
	assert.Nil(t, path[0].TouchTargets[1])
	assert.True(t, event.SameTarget(path[3].InvocationTarget, path[3].ShadowAdjustedTarget))

	row, err := fx.ComposedPathFrom("span")
	require.NoError(t, err)
	assert.Equal(t, []string{"span", "host", "document"}, row.Path)

	row, err = fx.ComposedPathFrom("slot")
	require.NoError(t, err)
	assert.Equal(t, []string{"span", "slot", "shadow-root", "host", "document"}, row.Path)

	_, err = fx.ComposedPathFrom("finger")
	assert.Equal(t, event.ErrTargetNotInPath, errors.Cause(err))
}

func TestLoadEmptyTouchTargets(t *testing.T) {
	fx, err := Load(strings.NewReader(`
event: {type: touchstart}
path:
  - {name: f, touchTargets: [f, ~, ""]}
`))
	require.NoError(t, err)

	path := fx.Path()
	require.Len(t, path[0].TouchTargets, 3)
	assert.True(t, event.SameTarget(path[0].InvocationTarget, path[0].TouchTargets[0]))
	assert.Nil(t, path[0].TouchTargets[1])
	assert.Nil(t, path[0].TouchTargets[2])
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("./tests/does_not_exist.yaml")
	assert.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	var tests = []struct {
		name string
		in   string
	}{
		{"missing type", "path:\n  - name: a\n"},
		{"empty path", "event:\n  type: click\n"},
		{"unnamed entry", "event:\n  type: click\npath:\n  - shadowTree: true\n"},
		{"duplicate entry", "event:\n  type: click\npath:\n  - name: a\n  - name: a\n"},
		{"duplicate extra target", "event:\n  type: click\ntargets: [a]\npath:\n  - name: a\n"},
		{"unknown related target", "event:\n  type: click\npath:\n  - name: a\n    relatedTarget: b\n"},
		{"unknown touch target", "event:\n  type: click\npath:\n  - name: a\n    touchTargets: [b]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.in))
			assert.Equal(t, ErrInvalidFixture, errors.Cause(err))
		})
	}
}

func TestLoadUnknownField(t *testing.T) {
	_, err := Load(strings.NewReader("event:\n  type: click\n  bubble: true\npath:\n  - name: a\n"))
	require.Error(t, err)
	assert.NotEqual(t, ErrInvalidFixture, errors.Cause(err))
}

func TestFixtureEventsAreIndependent(t *testing.T) {
	fx, err := LoadFile("./tests/closed_shadow.yaml")
	require.NoError(t, err)

	a := fx.Event()
	a.PreventDefault()
	assert.False(t, fx.Event().DefaultPrevented())

	p := fx.Path()
	p[0].RootOfClosedTree = true
	assert.False(t, fx.Path()[0].RootOfClosedTree)
}
