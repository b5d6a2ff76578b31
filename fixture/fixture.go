// Package fixture loads event paths described in YAML, so composed paths can
// be inspected without building a tree.
package fixture

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/heathj/domevents/event"
	"github.com/heathj/domevents/webidl"
)

var ErrInvalidFixture = errors.New("invalid fixture")

type document struct {
	Event   eventDoc   `yaml:"event"`
	Targets []string   `yaml:"targets"`
	Path    []entryDoc `yaml:"path"`
}

type eventDoc struct {
	Type       string `yaml:"type"`
	Bubbles    bool   `yaml:"bubbles"`
	Cancelable bool   `yaml:"cancelable"`
	Composed   bool   `yaml:"composed"`
}

type entryDoc struct {
	Name                 string    `yaml:"name"`
	ShadowTree           bool      `yaml:"shadowTree"`
	ShadowAdjustedTarget string    `yaml:"shadowAdjustedTarget"`
	RelatedTarget        string    `yaml:"relatedTarget"`
	TouchTargets         []*string `yaml:"touchTargets"`
	RootOfClosedTree     bool      `yaml:"rootOfClosedTree"`
	SlotInClosedTree     bool      `yaml:"slotInClosedTree"`
}

// Fixture is a loaded event description: the event's type and init
// dictionary plus its path, ordered from the event's target outward.
type Fixture struct {
	eventType webidl.DOMString
	init      event.EventInit
	targets   map[string]*Target
	path      []event.PathTarget
}

// Row is the composed path seen from one current target.
type Row struct {
	Current string
	Path    []string
}

func LoadFile(name string) (*Fixture, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "open fixture")
	}
	defer f.Close()

	fx, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", name)
	}
	return fx, nil
}

func Load(r io.Reader) (*Fixture, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode fixture")
	}
	return build(doc)
}

func build(doc document) (*Fixture, error) {
	if doc.Event.Type == "" {
		return nil, errors.Wrap(ErrInvalidFixture, "event.type is required")
	}
	if len(doc.Path) == 0 {
		return nil, errors.Wrap(ErrInvalidFixture, "path is empty")
	}

	fx := &Fixture{
		eventType: webidl.DOMString(doc.Event.Type),
		init: event.EventInit{
			Bubbles:    doc.Event.Bubbles,
			Cancelable: doc.Event.Cancelable,
			Composed:   doc.Event.Composed,
		},
		targets: map[string]*Target{},
	}

	for i, e := range doc.Path {
		if e.Name == "" {
			return nil, errors.Wrapf(ErrInvalidFixture, "path[%d]: name is required", i)
		}
		if _, ok := fx.targets[e.Name]; ok {
			return nil, errors.Wrapf(ErrInvalidFixture, "path[%d]: duplicate name %q", i, e.Name)
		}
		fx.targets[e.Name] = NewTarget(e.Name)
	}
	for i, name := range doc.Targets {
		if name == "" {
			return nil, errors.Wrapf(ErrInvalidFixture, "targets[%d]: name is required", i)
		}
		if _, ok := fx.targets[name]; ok {
			return nil, errors.Wrapf(ErrInvalidFixture, "targets[%d]: duplicate name %q", i, name)
		}
		fx.targets[name] = NewTarget(name)
	}

	for i, e := range doc.Path {
		pt := event.PathTarget{
			InvocationTarget: fx.targets[e.Name],
			InShadowTree:     e.ShadowTree,
			RootOfClosedTree: e.RootOfClosedTree,
			SlotInClosedTree: e.SlotInClosedTree,
		}

		var err error
		if pt.ShadowAdjustedTarget, err = fx.lookup(e.ShadowAdjustedTarget); err != nil {
			return nil, errors.Wrapf(err, "path[%d].shadowAdjustedTarget", i)
		}
		if pt.RelatedTarget, err = fx.lookup(e.RelatedTarget); err != nil {
			return nil, errors.Wrapf(err, "path[%d].relatedTarget", i)
		}
		// a null entry is kept as an empty touch target
		for j, name := range e.TouchTargets {
			var ref string
			if name != nil {
				ref = *name
			}
			t, err := fx.lookup(ref)
			if err != nil {
				return nil, errors.Wrapf(err, "path[%d].touchTargets[%d]", i, j)
			}
			pt.TouchTargets = append(pt.TouchTargets, t)
		}
		fx.path = append(fx.path, pt)
	}

	logrus.WithFields(logrus.Fields{
		"type":    fx.eventType,
		"path":    len(fx.path),
		"targets": len(fx.targets),
	}).Debug("fixture loaded")
	return fx, nil
}

// lookup resolves an optional target reference. An empty name is no target.
func (fx *Fixture) lookup(name string) (event.EventTarget, error) {
	if name == "" {
		return nil, nil
	}
	t, ok := fx.targets[name]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidFixture, "unknown target %q", name)
	}
	return t, nil
}

// Event creates a new event from the fixture's type and init dictionary.
func (fx *Fixture) Event() *event.Event {
	init := fx.init
	return event.New(fx.eventType, &init)
}

// Path returns a copy of the fixture's path.
func (fx *Fixture) Path() []event.PathTarget {
	return append([]event.PathTarget(nil), fx.path...)
}

func (fx *Fixture) Target(name string) (*Target, bool) {
	t, ok := fx.targets[name]
	return t, ok
}

// ComposedPaths dispatches a fresh event over the path and records the
// composed path seen at every entry, outermost first as during capture.
// No listeners are run.
func (fx *Fixture) ComposedPaths() ([]Row, error) {
	path := fx.Path()
	e := fx.Event()
	d, err := event.BeginDispatch(e, path[0].InvocationTarget, path, false)
	if err != nil {
		return nil, err
	}
	defer d.End()

	rows := make([]Row, 0, len(path))
	for i := len(path) - 1; i >= 0; i-- {
		phase := event.CapturingPhase
		if i == 0 {
			phase = event.AtTargetPhase
		}
		current := path[i].InvocationTarget
		if err := d.Invoke(current, phase); err != nil {
			return nil, err
		}
		rows = append(rows, Row{
			Current: current.(*Target).Name(),
			Path:    Names(e.ComposedPath()),
		})
	}
	return rows, nil
}

// ComposedPathFrom returns the composed path seen from the named target.
func (fx *Fixture) ComposedPathFrom(name string) (Row, error) {
	rows, err := fx.ComposedPaths()
	if err != nil {
		return Row{}, err
	}
	for _, row := range rows {
		if row.Current == name {
			return row, nil
		}
	}
	return Row{}, errors.Wrapf(event.ErrTargetNotInPath, "target %q", name)
}
