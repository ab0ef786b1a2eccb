// Package typedesc describes Go types, including instantiated generic
// types, as explicit descriptors. Describe resolves the type arguments a
// generic type was instantiated with, in declaration order, from the type's
// reflected identity. Descriptors are capabilities handed to APIs that need
// type information, rather than those APIs reflecting over values
// themselves.
package typedesc

import (
	"errors"
	"reflect"
	"strings"
)

// ErrNilValue is returned by DescribeValue for an untyped nil.
var ErrNilValue = errors.New("typedesc: cannot describe untyped nil")

// Descriptor describes a single type. Descriptors for a type's arguments
// carry the argument's name only: Go erases no types, but reflect exposes
// instantiated arguments solely through the type's printed identity.
type Descriptor struct {
	t        reflect.Type
	name     string
	typeArgs []Descriptor
}

// Describe returns the Descriptor for T.
func Describe[T any]() Descriptor {
	return describeType(reflect.TypeOf((*T)(nil)).Elem())
}

// DescribeValue returns the Descriptor for v's dynamic type.
func DescribeValue(v any) (Descriptor, error) {
	if v == nil {
		return Descriptor{}, ErrNilValue
	}
	return describeType(reflect.TypeOf(v)), nil
}

func describeType(t reflect.Type) Descriptor {
	name := t.Name()
	if name == "" {
		// Unnamed composite type (slice, map, pointer, ...).
		return Descriptor{t: t, name: t.String()}
	}
	base, args := splitTypeArgs(name)
	d := Descriptor{t: t, name: base}
	for _, arg := range args {
		d.typeArgs = append(d.typeArgs, describeName(arg))
	}
	return d
}

// describeName builds a name-only descriptor for a type-argument string,
// recursing when the argument is itself an instantiated generic.
func describeName(name string) Descriptor {
	base, args := splitTypeArgs(name)
	d := Descriptor{name: base}
	for _, arg := range args {
		d.typeArgs = append(d.typeArgs, describeName(arg))
	}
	return d
}

// splitTypeArgs splits "Pair[K,V]" into "Pair" and ["K", "V"]. Nested
// brackets (generic arguments, maps, arrays) are kept intact.
func splitTypeArgs(name string) (base string, args []string) {
	open := strings.IndexByte(name, '[')
	if open < 0 || !strings.HasSuffix(name, "]") {
		return name, nil
	}
	base = name[:open]
	inner := name[open+1 : len(name)-1]

	depth, start := 0, 0
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '[':
			depth++
		case ']':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(inner[start:i]))
				start = i + 1
			}
		}
	}
	if start < len(inner) {
		args = append(args, strings.TrimSpace(inner[start:]))
	}
	return base, args
}

// Name returns the type's name without type arguments. For unnamed types
// it is the type's printed form.
func (d Descriptor) Name() string {
	return d.name
}

// PkgPath returns the defining package's import path, or "" for builtins,
// unnamed types and name-only argument descriptors.
func (d Descriptor) PkgPath() string {
	if d.t == nil {
		return ""
	}
	return d.t.PkgPath()
}

// Kind returns the reflect kind, or reflect.Invalid for name-only argument
// descriptors.
func (d Descriptor) Kind() reflect.Kind {
	if d.t == nil {
		return reflect.Invalid
	}
	return d.t.Kind()
}

// TypeArgs returns descriptors for the type arguments the described generic
// type was instantiated with, in declaration order. Non-generic types
// return nil.
func (d Descriptor) TypeArgs() []Descriptor {
	return d.typeArgs
}

// Generic reports whether the described type is an instantiated generic.
func (d Descriptor) Generic() bool {
	return len(d.typeArgs) > 0
}

func (d Descriptor) String() string {
	if !d.Generic() {
		return d.name
	}
	parts := make([]string, len(d.typeArgs))
	for i, a := range d.typeArgs {
		parts[i] = a.String()
	}
	return d.name + "[" + strings.Join(parts, ",") + "]"
}
