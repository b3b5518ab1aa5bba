package statics

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/oopconcepts/internal/console"
)

// These tests touch the package-level counter, so none of them run in
// parallel.

func TestStaticMethodWithoutInstance(t *testing.T) {
	var buf bytes.Buffer
	StaticClass.StaticMethod(console.New(&buf))
	assert.Equal(t, "This is static method\n", buf.String())
}

func TestInheritedStaticMethod(t *testing.T) {
	var base, child bytes.Buffer
	StaticClass.StaticMethod(console.New(&base))
	ChildStaticClass.StaticMethod(console.New(&child))

	assert.Equal(t, base.Bytes(), child.Bytes())

	child.Reset()
	ChildStaticClass.ChildStaticMethod(console.New(&child))
	assert.Equal(t, "This is child static method\n", child.String())
}

func TestPublicFieldIsPerInstance(t *testing.T) {
	a := NewWithPublicField()
	b := NewWithPublicField()

	assert.Equal(t, 1, a.PublicCount)
	assert.Equal(t, 1, b.PublicCount)
}

func TestStaticCountProgression(t *testing.T) {
	staticCount.Store(0)

	got := []int64{StaticCount()}
	NewWithStaticField()
	got = append(got, StaticCount())
	NewWithStaticField()
	got = append(got, StaticCount())

	assert.Equal(t, []int64{0, 1, 2}, got)
}

func TestStaticCountSharedWithDerived(t *testing.T) {
	before := StaticCount()

	const n = 7
	var last *WithStaticField
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			last = NewWithStaticField()
		} else {
			last = NewDerivedWithStaticField().WithStaticField
		}
	}

	require.Equal(t, before+n, StaticCount())
	assert.Equal(t, before+n, last.Serial())
}
