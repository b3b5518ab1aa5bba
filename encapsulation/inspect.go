package encapsulation

import (
	"errors"
	"fmt"
	"go/token"
	"reflect"

	"github.com/marcodamonte/oopconcepts/internal/class"
)

// ErrNoMember is returned by Inspect when the name matches nothing on the
// value.
var ErrNoMember = errors.New("no such member")

// Inspect looks a member up by name at runtime, applying the same rule the
// compiler applies to source: unexported names fail with an AccessViolation,
// whether or not they exist. Exported fields are returned by value, exported
// methods as bound method values.
func Inspect(v any, member string) (any, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, fmt.Errorf("inspect %q: nil value", member)
	}
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, fmt.Errorf("inspect %s.%s: nil pointer", rv.Type().Elem().Name(), member)
	}
	typeName := reflect.Indirect(rv).Type().Name()

	if !token.IsExported(member) {
		return nil, class.AccessViolation(typeName, member)
	}

	if m := rv.MethodByName(member); m.IsValid() {
		return m.Interface(), nil
	}

	sv := reflect.Indirect(rv)
	if sv.Kind() == reflect.Struct {
		if f := sv.FieldByName(member); f.IsValid() {
			return f.Interface(), nil
		}
	}

	return nil, fmt.Errorf("inspect %s.%s: %w", typeName, member, ErrNoMember)
}
