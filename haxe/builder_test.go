package haxe

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderClassPaths(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.EnterClass("phaser"))
	require.NoError(t, b.EnterClass("physics"))
	require.NoError(t, b.EnterClass("body"))
	require.NoError(t, b.ExitClass())
	require.NoError(t, b.ExitClass())
	require.NoError(t, b.ExitClass())

	m, err := b.Finish()
	require.NoError(t, err)

	body := m.Lookup("Phaser.Physics.Body")
	require.NotNil(t, body)
	assert.Equal(t, "Body", body.Name)
	assert.Equal(t, "Phaser.Physics.body", body.FullPath)
	assert.Equal(t, ClassKindClass, body.Kind)
}

func TestBuilderReentersNamespace(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.EnterClass("Phaser"))
	require.NoError(t, b.EnterClass("Sprite"))
	require.NoError(t, b.ExitClass())
	require.NoError(t, b.ExitClass())
	require.NoError(t, b.EnterClass("Phaser"))
	require.NoError(t, b.EnterClass("Image"))
	require.NoError(t, b.ExitClass())
	require.NoError(t, b.ExitClass())

	m, err := b.Finish()
	require.NoError(t, err)
	require.Equal(t, 1, m.Classes.Len())

	var names []string
	for _, c := range m.Lookup("Phaser").Classes.All() {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Sprite", "Image"}, names)
}

func TestBuilderDuplicateClassSpelling(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.EnterClass("Phaser"))
	require.NoError(t, b.ExitClass())
	err := b.EnterClass("phaser")
	assert.True(t, errors.Is(err, ErrDuplicateClass), "got %v", err)
}

func TestBuilderExitAtTopLevel(t *testing.T) {
	b := NewBuilder()
	assert.True(t, errors.Is(b.ExitClass(), ErrNoCurrentClass))
}

func TestBuilderUnclosedClass(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.EnterClass("Foo"))
	_, err := b.Finish()
	assert.True(t, errors.Is(err, ErrUnclosedClass))
}

func TestBuilderKinds(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.EnterClass("Shape"))
	require.NoError(t, b.MarkInterface())
	require.NoError(t, b.ExitClass())
	require.NoError(t, b.EnterClass("Color"))
	require.NoError(t, b.MarkEnum())
	require.NoError(t, b.SetClassTypeParameter("T"))
	require.NoError(t, b.ExitClass())
	m, err := b.Finish()
	require.NoError(t, err)

	assert.True(t, m.Lookup("Shape").IsInterface())
	assert.True(t, m.Lookup("Color").IsEnum())
	assert.Equal(t, "T", m.Lookup("Color").TypeParameter)
}

func TestBuilderMembers(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.EnterClass("Foo"))

	t.Run("duplicate property", func(t *testing.T) {
		require.NoError(t, b.AddProperty("x"))
		require.NoError(t, b.SetType("Float"))
		err := b.AddProperty("x")
		assert.True(t, errors.Is(err, ErrDuplicateMember))
	})

	t.Run("method over property", func(t *testing.T) {
		err := b.AddMethod("x")
		assert.True(t, errors.Is(err, ErrNameCollision))
	})

	t.Run("parameter on property", func(t *testing.T) {
		require.NoError(t, b.AddProperty("y"))
		err := b.AddParameter("a", "String", false)
		assert.True(t, errors.Is(err, ErrNotAMethod))
		assert.True(t, errors.Is(b.SetTypeParameter("T"), ErrNotAMethod))
	})

	t.Run("type twice", func(t *testing.T) {
		require.NoError(t, b.SetType("Bool"))
		assert.True(t, errors.Is(b.SetType("Bool"), ErrTypeAlreadySet))
	})

	t.Run("empty type", func(t *testing.T) {
		require.NoError(t, b.AddProperty("z"))
		assert.True(t, errors.Is(b.SetType(""), ErrEmptyType))
	})

	t.Run("overloads", func(t *testing.T) {
		require.NoError(t, b.AddMethod("draw"))
		require.NoError(t, b.SetType("Void"))
		require.NoError(t, b.AddParameter("a", "String", false))
		require.NoError(t, b.AddMethod("draw"))
		require.NoError(t, b.SetType("Void"))
		require.NoError(t, b.AddModifier(ModifierStatic))
		require.NoError(t, b.AddParameter("b", "Float", true))
		require.NoError(t, b.SetTypeParameter("T"))
	})

	require.NoError(t, b.ExitClass())
	m, err := b.Finish()
	require.NoError(t, err)

	foo := m.Lookup("Foo")
	assert.Equal(t, []string{"x", "y", "z", "draw"}, foo.Members.Names())

	draw, ok := foo.Members.Get("draw").(*Method)
	require.True(t, ok)
	require.Len(t, draw.Overloads, 2)
	assert.Equal(t, []Parameter{{Name: "a", Type: "String"}}, draw.Overloads[0].Parameters)
	assert.Equal(t, []Parameter{{Name: "b", Type: "Float", Nullable: true}}, draw.Overloads[1].Parameters)
	assert.False(t, draw.Overloads[0].IsStatic())
	assert.True(t, draw.Overloads[1].IsStatic())
	assert.Equal(t, "T", draw.Overloads[1].TypeParameter)
}

func TestBuilderNoCurrentMember(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.EnterClass("Foo"))
	assert.True(t, errors.Is(b.AddModifier(ModifierStatic), ErrNoCurrentMember))
	assert.True(t, errors.Is(b.AddMetadata(":optional"), ErrNoCurrentMember))
	assert.True(t, errors.Is(b.SetType("Float"), ErrNoCurrentMember))
}

func TestBuilderComments(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.EnterClass("Foo"))
	require.NoError(t, b.SetComment("A foo."))

	require.NoError(t, b.AddMethod("draw"))
	require.NoError(t, b.SetComment("Draws."))
	require.NoError(t, b.AddModifier(ModifierStatic))
	require.NoError(t, b.AddMethod("draw"))
	require.NoError(t, b.SetComment("Draws."))

	require.NoError(t, b.AddMethod("draw"))
	err := b.SetComment("Something else.")
	assert.True(t, errors.Is(err, ErrConflictingComment))

	require.NoError(t, b.AddProperty("x"))
	require.NoError(t, b.SetComment("The x."))
	assert.True(t, errors.Is(b.SetComment("The y."), ErrConflictingComment))

	require.NoError(t, b.ExitClass())
	assert.True(t, errors.Is(b.SetComment("Orphan."), ErrNoCommentTarget))

	m, err := b.Finish()
	require.NoError(t, err)
	foo := m.Lookup("Foo")
	assert.Equal(t, "A foo.", foo.Comment)

	draw := foo.Members.Get("draw").(*Method)
	assert.Equal(t, "Draws.", draw.Overloads[0].Comment)
	assert.Equal(t, "Draws.", draw.Overloads[1].Comment)
	assert.Equal(t, "", draw.Overloads[2].Comment)
	assert.Equal(t, "The x.", foo.Members.Get("x").(*Field).Comment)
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Phaser", Capitalize("phaser"))
	assert.Equal(t, "Über", Capitalize("über"))
	assert.Equal(t, "Game", Capitalize("Game"))
	assert.Equal(t, "", Capitalize(""))
}
