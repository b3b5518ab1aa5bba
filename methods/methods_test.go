package methods_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcodamonte/oopconcepts/internal/console"
	"github.com/marcodamonte/oopconcepts/methods"
)

func TestMyClass3(t *testing.T) {
	var buf bytes.Buffer
	c := methods.NewMyClass3(console.New(&buf), 10)

	c.Method1()
	c.Method2()

	assert.Equal(t, "method1\n10\n", buf.String())
}

func TestMyClass3NilLoggerUsesStdout(t *testing.T) {
	c := methods.NewMyClass3(nil, 1)
	assert.NotPanics(t, c.Method1)
}
