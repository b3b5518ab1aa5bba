package demo

import (
	"github.com/marcodamonte/oopconcepts/abstract"
	"github.com/marcodamonte/oopconcepts/accessors"
	"github.com/marcodamonte/oopconcepts/encapsulation"
	"github.com/marcodamonte/oopconcepts/inheritance"
	"github.com/marcodamonte/oopconcepts/methods"
	"github.com/marcodamonte/oopconcepts/statics"
)

// registry is the script, top to bottom.
var registry = []Demo{
	{Name: "object-literal", Title: "Getter y setter en un literal", Run: demoObjectLiteral},
	{Name: "class", Title: "Getter y setter en una clase", Run: demoClass},
	{Name: "constructor-param", Title: "Parámetro del constructor", Run: demoConstructorParam},
	{Name: "methods", Title: "Métodos", Run: demoMethods},
	{Name: "inheritance", Title: "Herencia por embedding", Run: demoInheritance},
	{Name: "static-method", Title: "Método estático", Run: demoStaticMethod},
	{Name: "inherited-static", Title: "Método estático heredado", Run: demoInheritedStatic},
	{Name: "private", Title: "Campos y métodos privados", Run: demoPrivate, Failures: failPrivate},
	{Name: "public-field", Title: "Campo público", Run: demoPublicField},
	{Name: "static-field", Title: "Campo estático", Run: demoStaticField},
	{Name: "abstract", Title: "Clase abstracta", Run: demoAbstract, Failures: failAbstract},
	{Name: "interface", Title: "Interfaz", Run: demoInterface, Failures: failInterface},
	{Name: "super", Title: "Constructor que llama al padre", Run: demoSuper},
	{Name: "super-required", Title: "Constructor sin llamar al padre", Run: demoSuperRequired, Failures: failSuperRequired},
	{Name: "implicit-constructor", Title: "Constructor implícito", Run: demoImplicitConstructor},
	{Name: "constructor-return", Title: "Constructor que devuelve otro valor", Run: demoConstructorReturn},
}

func demoObjectLiteral(env *Env) error {
	obj := accessors.NewProperty(accessors.DefaultValue, accessors.Hooks[int]{
		OnGet: func() { env.Log.Println("get value") },
		OnSet: func(v int) { env.Log.Println("Setting value to", v) },
	})

	env.Log.Println(obj.Get())
	obj.Set(env.Values.Update)
	env.Log.Println(obj.Get())
	return nil
}

func demoClass(env *Env) error {
	c := accessors.NewMyClass(env.Log)
	env.Log.Println(c.Value())
	c.SetValue(env.Values.Update)
	env.Log.Println(c.Value())
	return nil
}

func demoConstructorParam(env *Env) error {
	c := accessors.NewMyClass2(env.Log, env.Values.ConstructorArg)
	env.Log.Println(c.Value())
	c.SetValue(env.Values.Assigned)
	env.Log.Println(c.Value())
	return nil
}

func demoMethods(env *Env) error {
	c := methods.NewMyClass3(env.Log, accessors.DefaultValue)
	c.Method1()
	c.Method2()
	return nil
}

func demoInheritance(env *Env) error {
	c := inheritance.NewChildClass(env.Log)
	c.ParentMethod()
	c.ChildMethod()
	return nil
}

func demoStaticMethod(env *Env) error {
	statics.StaticClass.StaticMethod(env.Log)
	return nil
}

func demoInheritedStatic(env *Env) error {
	statics.ChildStaticClass.StaticMethod(env.Log)
	statics.ChildStaticClass.ChildStaticMethod(env.Log)
	return nil
}

func demoPrivate(env *Env) error {
	w := encapsulation.NewWithPrivate(env.Log, env.Values.Private)
	w.GetPrivateField()
	w.PublicMethod()
	return nil
}

// failPrivate is the runtime stand-in for w.privateField and
// w.privateMethod(), which would not compile.
func failPrivate(env *Env) []error {
	w := encapsulation.NewWithPrivate(env.Log, env.Values.Private)
	_, errField := encapsulation.Inspect(w, "privateField")
	_, errMethod := encapsulation.Inspect(w, "privateMethod")
	return []error{errField, errMethod}
}

func demoPublicField(env *Env) error {
	w := statics.NewWithPublicField()
	env.Log.Println("with public field: ", w.PublicCount)
	return nil
}

func demoStaticField(env *Env) error {
	env.Log.Println(statics.StaticCount())
	statics.NewWithStaticField()
	env.Log.Println(statics.StaticCount())
	statics.NewWithStaticField()
	env.Log.Println(statics.StaticCount())
	return nil
}

func demoAbstract(env *Env) error {
	c, err := abstract.NewConcreteClass(env.Log)
	if err != nil {
		return err
	}
	return c.AbstractMethod()
}

func failAbstract(env *Env) []error {
	_, err := abstract.NewAbstractClass(env.Log)
	// The script also calls the placeholder; reach it through a subtype since
	// the base itself cannot be built.
	c, cerr := abstract.NewConcreteClass(env.Log)
	if cerr != nil {
		return []error{err, cerr}
	}
	return []error{err, c.AbstractClass.AbstractMethod()}
}

func demoInterface(env *Env) error {
	_ = abstract.NewInterfaceClass(env.Log)
	var impl abstract.Interface = abstract.NewConcreteClass2(env.Log)
	return impl.InterfaceMethod()
}

func failInterface(env *Env) []error {
	return []error{abstract.NewInterfaceClass(env.Log).InterfaceMethod()}
}

func demoSuper(env *Env) error {
	c := inheritance.NewChild(env.Log)
	c.SayHello()
	return nil
}

// demoSuperRequired has nothing to run: the only thing Child2 does is fail.
func demoSuperRequired(*Env) error { return nil }

func failSuperRequired(env *Env) []error {
	_, err := inheritance.NewChild2(env.Log)
	return []error{err}
}

func demoImplicitConstructor(env *Env) error {
	inheritance.NewChild3(env.Log)
	return nil
}

func demoConstructorReturn(env *Env) error {
	r := inheritance.NewChild4(env.Log)
	env.Log.Println(r.SomeProp)
	return nil
}
