package bridge

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

var (
	ErrUnknownClass  = errors.New("bridge: unknown class")
	ErrUnknownField  = errors.New("bridge: unknown field")
	ErrUnknownMethod = errors.New("bridge: unknown method")
	ErrDuplicate     = errors.New("bridge: class already registered")
)

// Constructor builds a new instance from positional arguments.
type Constructor func(args ...any) (any, error)

// Method is an instance method. self is the receiver as returned by the
// class constructor.
type Method func(self any, args ...any) (any, error)

// ClassMethod is a class-level accessor.
type ClassMethod func(args ...any) (any, error)

// Field exposes one field for reading and writing.
type Field struct {
	Name string
	Get  func(self any) (any, error)
	Set  func(self, value any) error
}

// Class describes a registered model type.
type Class struct {
	Name         string // type name as seen by the foreign runtime
	Package      string // Go import path, used to disambiguate names
	New          Constructor
	Fields       []Field
	Methods      map[string]Method
	ClassMethods map[string]ClassMethod
}

// QualifiedName returns Package.Name, or Name when Package is empty.
func (c *Class) QualifiedName() string {
	if c.Package == "" {
		return c.Name
	}

	return c.Package + "." + c.Name
}

func (c *Class) field(name string) (*Field, error) {
	for i := range c.Fields {
		if c.Fields[i].Name == name {
			return &c.Fields[i], nil
		}
	}

	return nil, fmt.Errorf("%w: %s.%s", ErrUnknownField, c.Name, name)
}

// Registry is a table of classes keyed by qualified name.
type Registry struct {
	mu      sync.RWMutex
	classes map[string]*Class
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{classes: make(map[string]*Class)}
}

// Default is the registry generated models register with.
var Default = NewRegistry()

// Register adds c to the default registry.
func Register(c *Class) error { return Default.Register(c) }

// MustRegister adds c to the default registry and panics on failure.
func MustRegister(c *Class) { Default.MustRegister(c) }

// Register adds c. Registering a qualified name twice fails.
func (r *Registry) Register(c *Class) error {
	if c == nil || c.Name == "" {
		return errors.New("bridge: class without name")
	}

	if c.New == nil {
		return fmt.Errorf("bridge: class %s has no constructor", c.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := c.QualifiedName()
	if _, ok := r.classes[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, key)
	}

	r.classes[key] = c

	return nil
}

// MustRegister is like Register but panics on failure.
func (r *Registry) MustRegister(c *Class) {
	if err := r.Register(c); err != nil {
		panic(err)
	}
}

// Lookup finds a class by qualified name, or by bare name when exactly one
// registered class has it.
func (r *Registry) Lookup(name string) (*Class, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if c, ok := r.classes[name]; ok {
		return c, nil
	}

	var found *Class
	for _, c := range r.classes {
		if c.Name != name {
			continue
		}

		if found != nil {
			return nil, fmt.Errorf("%w: %s is ambiguous, use the qualified name", ErrUnknownClass, name)
		}

		found = c
	}

	if found == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownClass, name)
	}

	return found, nil
}

// Names returns the qualified names of all registered classes, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.classes))
	for name := range r.classes {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// New constructs an instance of the named class.
func (r *Registry) New(class string, args ...any) (any, error) {
	c, err := r.Lookup(class)
	if err != nil {
		return nil, err
	}

	return c.New(args...)
}

// Get reads a field of an instance of the named class.
func (r *Registry) Get(class string, self any, field string) (any, error) {
	c, err := r.Lookup(class)
	if err != nil {
		return nil, err
	}

	f, err := c.field(field)
	if err != nil {
		return nil, err
	}

	return f.Get(self)
}

// Set writes a field of an instance of the named class.
func (r *Registry) Set(class string, self any, field string, value any) error {
	c, err := r.Lookup(class)
	if err != nil {
		return err
	}

	f, err := c.field(field)
	if err != nil {
		return err
	}

	return f.Set(self, value)
}

// Call invokes an instance method.
func (r *Registry) Call(class string, self any, method string, args ...any) (any, error) {
	c, err := r.Lookup(class)
	if err != nil {
		return nil, err
	}

	m, ok := c.Methods[method]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownMethod, c.Name, method)
	}

	return m(self, args...)
}

// CallClass invokes a class-level accessor.
func (r *Registry) CallClass(class, method string, args ...any) (any, error) {
	c, err := r.Lookup(class)
	if err != nil {
		return nil, err
	}

	m, ok := c.ClassMethods[method]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownMethod, c.Name, method)
	}

	return m(args...)
}

// FieldNames returns the exposed field names of the named class in
// declaration order.
func (r *Registry) FieldNames(class string) ([]string, error) {
	c, err := r.Lookup(class)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(c.Fields))
	for i, f := range c.Fields {
		names[i] = f.Name
	}

	return names, nil
}
