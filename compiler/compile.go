package compiler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/reusee/brainvm/layout"
	"github.com/reusee/brainvm/smir"
	"github.com/reusee/brainvm/tape"
)

var ErrStackOverflow = errors.New("stack capacity exceeded")

type Options struct {
	// number of user variables, at addresses layout.FirstVar and up
	Vars int
	// triples in the stack region; 0 selects the smallest capacity the program needs
	StackCapacity int
}

type template struct {
	emit func(arg int) string
	// triples above the resulting top that the template widens into
	scratch int
}

var templates = [smir.NumOps]template{
	smir.OpPush:     {emit: push},
	smir.OpPop:      {emit: pop},
	smir.OpAdd:      {emit: add},
	smir.OpSubtract: {emit: subtract},
	smir.OpBNot:     {emit: bnot, scratch: 1},
	smir.OpBAnd:     {emit: band},
	smir.OpGte:      {emit: gte},
	smir.OpPrnt:     {emit: prnt},
	smir.OpRead:     {emit: read},
	smir.OpLoad:     {emit: load},
	smir.OpStore:    {emit: store},
	smir.OpLoadRB:   {emit: loadrb},
	smir.OpStoreRB:  {emit: storerb},
	smir.OpJfz:      {emit: jfz},
	smir.OpJbnz:     {emit: jbnz},
}

func init() {
	for op, t := range templates {
		if t.emit == nil {
			panic(fmt.Errorf("no template for %v", smir.Op(op)))
		}
	}
}

// Emit returns the tape-language fragment of one instruction.
func Emit(instr smir.Instr) string {
	return templates[instr.Op].emit(instr.Arg)
}

func label(instr smir.Instr) string {
	switch instr.Op {
	case smir.OpPush:
		return "push_" + strconv.Itoa(instr.Arg)
	case smir.OpLoad, smir.OpStore:
		return instr.Op.String() + "_addr_" + strconv.Itoa(instr.Arg)
	}
	return instr.Op.String()
}

type Output struct {
	Layout   layout.Layout
	Analysis *smir.Analysis
	Segments []tape.Segment
}

// Code is the compiled program without annotations.
func (o *Output) Code() string {
	var b strings.Builder
	for _, seg := range o.Segments {
		b.WriteString(seg.Code)
	}
	return b.String()
}

// Annotated renders one `label: code` line per segment.
func (o *Output) Annotated() string {
	var b strings.Builder
	for _, seg := range o.Segments {
		b.WriteString(seg.Label)
		b.WriteString(": ")
		b.WriteString(seg.Code)
		b.WriteByte('\n')
	}
	return b.String()
}

// Program builds the executable tape program with its source map.
func (o *Output) Program() (*tape.Program, error) {
	return tape.Assemble(o.Segments...)
}

// RequiredCapacity is the smallest stack region that holds every depth the program
// reaches, including transient widening inside templates.
func RequiredCapacity(program smir.Program, analysis *smir.Analysis) int {
	peak := 0
	for i, instr := range program {
		after := analysis.Depths[i] + instr.Op.Delta()
		peak = max(peak, after+templates[instr.Op].scratch)
	}
	return peak + 1
}

// Compile lowers program to tape language. The first segment initializes the layout;
// each instruction follows as its own segment.
func Compile(program smir.Program, options Options) (*Output, error) {
	if options.Vars < 0 {
		return nil, fmt.Errorf("negative variable count: %d", options.Vars)
	}
	if options.StackCapacity < 0 {
		return nil, fmt.Errorf("negative stack capacity: %d", options.StackCapacity)
	}

	analysis, err := smir.Analyze(program, options.Vars)
	if err != nil {
		return nil, err
	}

	required := RequiredCapacity(program, analysis)
	capacity := options.StackCapacity
	if capacity == 0 {
		capacity = required
	} else if capacity < required {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrStackOverflow, required, capacity)
	}

	plan := layout.Plan(options.Vars, capacity)
	segments := make([]tape.Segment, 0, len(program)+1)
	segments = append(segments, tape.Segment{
		Label: plan.Label(),
		Code:  plan.InitCode(),
	})
	for _, instr := range program {
		segments = append(segments, tape.Segment{
			Label: label(instr),
			Code:  Emit(instr),
		})
	}

	return &Output{
		Layout:   plan,
		Analysis: analysis,
		Segments: segments,
	}, nil
}
