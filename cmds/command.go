package cmds

import (
	"fmt"
	"reflect"
)

type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

// Func wraps fn as a command. Arguments are parsed from the following words, so each
// parameter must be a bool, number, string, or a pointer to one for an optional argument.
func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)

	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}
	fnType := fnValue.Type()

	for i := range fnType.NumIn() {
		if !argSupported(fnType.In(i)) {
			panic(fmt.Errorf("unsupported argument %d of %v", i, fnType))
		}
	}

	numRets := fnType.NumOut()
	if numRets >= 2 {
		panic(fmt.Errorf("must return 0 or 1 value, got %v", fnType))
	}
	if numRets == 1 && fnType.Out(0) != errorType {
		panic(fmt.Errorf("must return error, got %v", fnType))
	}

	command := &Command{
		Func: fnValue,
	}

	return command
}

func argSupported(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// Sub groups commands that become available after the parent word.
func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}
