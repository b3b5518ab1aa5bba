package class_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/oopconcepts/internal/class"
)

func TestIsChildOf(t *testing.T) {
	t.Parallel()

	base := class.New("Base", nil)
	mid := class.New("Mid", base)
	leaf := class.New("Leaf", mid)
	other := class.New("Other", nil)

	assert.True(t, mid.IsChildOf(base))
	assert.True(t, leaf.IsChildOf(base), "grandparent must be found")
	assert.False(t, base.IsChildOf(base), "a class is not its own child")
	assert.False(t, other.IsChildOf(base))
	assert.False(t, (*class.Info)(nil).IsChildOf(base))
}

func TestGuard(t *testing.T) {
	t.Parallel()

	abstract := class.New("AbstractClass", nil)
	concrete := class.New("ConcreteClass", abstract)
	unrelated := class.New("Unrelated", nil)

	tests := []struct {
		name    string
		target  *class.Info
		wantErr bool
	}{
		{"abstract itself", abstract, true},
		{"subtype", concrete, false},
		{"unrelated type", unrelated, true},
		{"nil tag", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := class.Guard(tt.target, abstract)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, class.ErrInstantiation)
		})
	}
}

func TestErrorMessagesAndUnwrap(t *testing.T) {
	t.Parallel()

	c := class.New("InterfaceClass", nil)

	err := class.NotImplemented(c, "InterfaceMethod")
	assert.Equal(t, "call InterfaceClass.InterfaceMethod: must override abstract method", err.Error())
	assert.ErrorIs(t, err, class.ErrNotImplemented)

	var ce *class.Error
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "InterfaceMethod", ce.Member)

	err = class.UninitializedBase(class.New("Child2", nil))
	assert.Equal(t, "new Child2: must call super constructor in derived class before accessing 'this'", err.Error())
	assert.ErrorIs(t, err, class.ErrUninitializedBase)

	err = class.AccessViolation("WithPrivate", "privateField")
	assert.ErrorIs(t, err, class.ErrAccessViolation)
	assert.NotErrorIs(t, err, class.ErrInstantiation)
}
