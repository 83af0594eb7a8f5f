package cmds

import (
	"fmt"
	"slices"
	"strings"
)

// Var defines name to set a value and name+"." to reset it to zero.
func Var[T any](name string) *T {
	var value T

	// set
	Define(name, Func(func(v T) {
		value = v
	}))

	// set zero
	var zero T
	Define(name+".", Func(func() {
		value = zero
	}))

	return &value
}

func Switch(name string) *bool {
	var value bool

	// set true
	Define(name, Func(func() {
		value = true
	}))

	// set false
	Define("!"+name, Func(func() {
		value = false
	}))

	return &value
}

// Collect defines name to append a value and name+"." to drop what was collected so far.
func Collect[T any](name string) *[]T {
	var value []T

	// append
	Define(name, Func(func(v T) {
		value = append(value, v)
	}))

	// clear
	Define(name+".", Func(func() {
		value = value[:0]
	}))

	return &value
}

// Choice is a string Var restricted to options.
func Choice[T ~string](name string, options ...T) *T {
	var value T

	Define(name, Func(func(v T) error {
		if !slices.Contains(options, v) {
			return fmt.Errorf("%s: bad value %q, expecting one of %s", name, v, joinOptions(options))
		}
		value = v
		return nil
	}).Desc("one of "+joinOptions(options)))

	// set zero
	Define(name+".", Func(func() {
		value = ""
	}))

	return &value
}

func joinOptions[T ~string](options []T) string {
	strs := make([]string, 0, len(options))
	for _, option := range options {
		strs = append(strs, string(option))
	}
	return strings.Join(strs, ", ")
}
