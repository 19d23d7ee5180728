package haxe

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fieldSpec struct {
	name, typ, comment string
	meta               []string
}

func buildHierarchy(t *testing.T, classes map[string]string, order []string, fields map[string][]fieldSpec) *Model {
	t.Helper()
	b := NewBuilder()
	for _, name := range order {
		require.NoError(t, b.EnterClass(name))
		if h := classes[name]; h != "" {
			require.NoError(t, b.SetHeritage(h))
		}
		for _, f := range fields[name] {
			require.NoError(t, b.AddProperty(f.name))
			require.NoError(t, b.SetType(f.typ))
			for _, m := range f.meta {
				require.NoError(t, b.AddMetadata(m))
			}
			if f.comment != "" {
				require.NoError(t, b.SetComment(f.comment))
			}
		}
		require.NoError(t, b.ExitClass())
	}
	m, err := b.Finish()
	require.NoError(t, err)
	return m
}

func TestResolveHeritageIdenticalFieldDeleted(t *testing.T) {
	m := buildHierarchy(t,
		map[string]string{"Sub": "extends Base"},
		[]string{"Base", "Sub"},
		map[string][]fieldSpec{
			"Base": {{name: "color", typ: "String", comment: "The color."}},
			"Sub":  {{name: "color", typ: "String", comment: "The color."}, {name: "size", typ: "Float"}},
		})

	report, err := m.ResolveHeritage()
	require.NoError(t, err)
	assert.Equal(t, HeritageReport{Deleted: 1}, report)
	assert.Equal(t, []string{"size"}, m.Lookup("Sub").Members.Names())
}

func TestResolveHeritageDifferentFieldRenamed(t *testing.T) {
	m := buildHierarchy(t,
		map[string]string{"Sub": "extends Base"},
		[]string{"Base", "Sub"},
		map[string][]fieldSpec{
			"Base": {{name: "color", typ: "String"}},
			"Sub":  {{name: "color", typ: "Float"}},
		})

	report, err := m.ResolveHeritage()
	require.NoError(t, err)
	assert.Equal(t, 1, report.Renamed)

	sub := m.Lookup("Sub")
	assert.Equal(t, []string{"Sub_color"}, sub.Members.Names())
	f := sub.Members.Get("Sub_color").(*Field)
	assert.Equal(t, "Sub_color", f.Name)
	assert.Equal(t, []string{`:native("color")`}, f.Metadata)

	again, err := m.ResolveHeritage()
	require.NoError(t, err)
	assert.Equal(t, HeritageReport{}, again)
	assert.Equal(t, []string{`:native("color")`}, f.Metadata)
}

func TestResolveHeritageMetadataOrderIgnored(t *testing.T) {
	m := buildHierarchy(t,
		map[string]string{"Sub": "extends Base"},
		[]string{"Base", "Sub"},
		map[string][]fieldSpec{
			"Base": {{name: "x", typ: "Float", meta: []string{":optional", ":keep"}}},
			"Sub":  {{name: "x", typ: "Float", meta: []string{":keep", ":optional"}}},
		})
	_, err := m.ResolveHeritage()
	require.NoError(t, err)
	assert.Equal(t, 0, m.Lookup("Sub").Members.Len())
}

func TestResolveHeritageExistingNativeAliasKept(t *testing.T) {
	m := buildHierarchy(t,
		map[string]string{"Sub": "extends Base"},
		[]string{"Base", "Sub"},
		map[string][]fieldSpec{
			"Base": {{name: "x", typ: "Float"}},
			"Sub":  {{name: "x", typ: "Int", meta: []string{`:native("y")`}}},
		})
	report, err := m.ResolveHeritage()
	require.NoError(t, err)
	assert.Equal(t, 0, report.Renamed)
	assert.Equal(t, []string{"x"}, m.Lookup("Sub").Members.Names())
}

func TestResolveHeritageGrandparent(t *testing.T) {
	m := buildHierarchy(t,
		map[string]string{"Mid": "extends Base", "Leaf": "extends Mid"},
		[]string{"Base", "Mid", "Leaf"},
		map[string][]fieldSpec{
			"Base": {{name: "alpha", typ: "Float"}, {name: "name", typ: "String"}},
			"Mid":  {{name: "speed", typ: "Float"}},
			"Leaf": {{name: "alpha", typ: "Float"}, {name: "name", typ: "Int"}, {name: "speed", typ: "Float"}},
		})

	_, err := m.ResolveHeritage()
	require.NoError(t, err)
	assert.Equal(t, []string{"Leaf_name"}, m.Lookup("Leaf").Members.Names())
}

func TestResolveHeritageCaseTransforms(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.EnterClass("PIXI"))
	require.NoError(t, b.EnterClass("Sprite"))
	require.NoError(t, b.AddProperty("x"))
	require.NoError(t, b.SetType("Float"))
	require.NoError(t, b.ExitClass())
	require.NoError(t, b.ExitClass())
	require.NoError(t, b.EnterClass("Phaser"))
	require.NoError(t, b.EnterClass("Image"))
	require.NoError(t, b.SetHeritage("extends pixi.Sprite"))
	require.NoError(t, b.AddProperty("x"))
	require.NoError(t, b.SetType("Float"))
	require.NoError(t, b.ExitClass())
	require.NoError(t, b.EnterClass("Text"))
	require.NoError(t, b.SetHeritage("extends image<T> implements Foo"))
	require.NoError(t, b.AddProperty("y"))
	require.NoError(t, b.SetType("Float"))
	require.NoError(t, b.ExitClass())
	require.NoError(t, b.ExitClass())
	m, err := b.Finish()
	require.NoError(t, err)

	report, err := m.ResolveHeritage()
	require.NoError(t, err)
	assert.Equal(t, HeritageReport{Deleted: 1}, report)
	assert.Equal(t, 0, m.Lookup("Phaser.Image").Members.Len())
}

func TestResolveHeritageUnresolved(t *testing.T) {
	m := buildHierarchy(t,
		map[string]string{"Sub": "extends Missing", "Other": "implements Iface"},
		[]string{"Sub", "Other"},
		map[string][]fieldSpec{"Sub": {{name: "x", typ: "Float"}}})

	report, err := m.ResolveHeritage()
	require.NoError(t, err)
	assert.Equal(t, HeritageReport{Unresolved: 1}, report)
	assert.Equal(t, []string{"x"}, m.Lookup("Sub").Members.Names())
}

func TestResolveHeritageMethods(t *testing.T) {
	b := NewBuilder()
	addMethod := func(name, ret string, params ...string) {
		require.NoError(t, b.AddMethod(name))
		require.NoError(t, b.SetType(ret))
		for i, p := range params {
			require.NoError(t, b.AddParameter(string(rune('a'+i)), p, false))
		}
	}
	require.NoError(t, b.EnterClass("Base"))
	addMethod("new", "Void")
	addMethod("update", "Void", "Float")
	addMethod("render", "Void", "Float")
	addMethod("kill", "Void")
	require.NoError(t, b.ExitClass())
	require.NoError(t, b.EnterClass("Sub"))
	require.NoError(t, b.SetHeritage("extends Base"))
	addMethod("new", "Void")
	addMethod("update", "Void", "Float")
	addMethod("render", "Void", "String")
	require.NoError(t, b.AddProperty("kill"))
	require.NoError(t, b.SetType("Void"))
	require.NoError(t, b.ExitClass())
	m, err := b.Finish()
	require.NoError(t, err)

	_, err = m.ResolveHeritage()
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "Sub_render"}, m.Lookup("Sub").Members.Names())
	render := m.Lookup("Sub").Members.Get("Sub_render").(*Method)
	assert.Equal(t, []string{`:native("render")`}, render.Primary().Metadata)
}

func TestResolveHeritageFieldOverMethod(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.EnterClass("Base"))
	require.NoError(t, b.AddMethod("kill"))
	require.NoError(t, b.SetType("Void"))
	require.NoError(t, b.ExitClass())
	require.NoError(t, b.EnterClass("Sub"))
	require.NoError(t, b.SetHeritage("extends Base"))
	require.NoError(t, b.AddProperty("kill"))
	require.NoError(t, b.SetType("Void"))
	require.NoError(t, b.ExitClass())
	m, err := b.Finish()
	require.NoError(t, err)

	report, err := m.ResolveHeritage()
	require.NoError(t, err)
	assert.Equal(t, HeritageReport{Deleted: 1}, report)
	assert.Empty(t, m.Lookup("Sub").Members.Names())
	assert.Equal(t, []string{"kill"}, m.Lookup("Base").Members.Names())
}

func TestResolveHeritageRenameCollision(t *testing.T) {
	m := buildHierarchy(t,
		map[string]string{"Sub": "extends Base"},
		[]string{"Base", "Sub"},
		map[string][]fieldSpec{
			"Base": {{name: "x", typ: "Float"}},
			"Sub":  {{name: "x", typ: "Int"}, {name: "Sub_x", typ: "Int"}},
		})
	_, err := m.ResolveHeritage()
	assert.True(t, errors.Is(err, ErrNameCollision))
}

func TestResolveHeritageCycle(t *testing.T) {
	m := buildHierarchy(t,
		map[string]string{"A": "extends B", "B": "extends A"},
		[]string{"A", "B"},
		map[string][]fieldSpec{
			"A": {{name: "x", typ: "Float"}},
			"B": {{name: "y", typ: "Float"}},
		})
	_, err := m.ResolveHeritage()
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, m.Lookup("A").Members.Names())
}
