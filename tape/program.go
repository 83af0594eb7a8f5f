package tape

import (
	"fmt"
	"strings"
)

// Alphabet holds the eight instructions of the tape language.
const Alphabet = "<>+-.,[]"

func isInstruction(b byte) bool {
	return strings.IndexByte(Alphabet, b) >= 0
}

// Segment is a labeled piece of code.
type Segment struct {
	Label string
	Code  string
}

// Span marks the start of a labeled region in a program. A span extends to the start
// of the next one.
type Span struct {
	Start int
	Label string
}

type Program struct {
	Code []byte
	// matching bracket index for '[' and ']', -1 elsewhere
	Brackets []int
	Spans    []Span
}

// Parse loads plain tape-language code. Bytes outside the alphabet are ignored.
func Parse(code string) (*Program, error) {
	program := &Program{
		Code: filter(nil, code),
	}
	if err := program.mapBrackets(); err != nil {
		return nil, err
	}
	return program, nil
}

// ParseAnnotated loads code written as `label: code` lines. Each line is split at its
// first alphabet symbol; the text before it, without the trailing colon, labels the
// rest of the line. Blank lines are skipped.
func ParseAnnotated(text string) (*Program, error) {
	var segments []Segment
	for line := range strings.Lines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		idx := strings.IndexAny(line, Alphabet)
		if idx < 0 {
			idx = len(line)
		}
		label := strings.TrimSpace(line[:idx])
		label = strings.TrimSpace(strings.TrimSuffix(label, ":"))
		segments = append(segments, Segment{
			Label: label,
			Code:  line[idx:],
		})
	}
	return Assemble(segments...)
}

// Assemble joins segments into one program, recording a span per segment.
func Assemble(segments ...Segment) (*Program, error) {
	program := &Program{
		Spans: make([]Span, 0, len(segments)),
	}
	for _, seg := range segments {
		program.Spans = append(program.Spans, Span{
			Start: len(program.Code),
			Label: seg.Label,
		})
		program.Code = filter(program.Code, seg.Code)
	}
	if err := program.mapBrackets(); err != nil {
		return nil, err
	}
	return program, nil
}

func filter(dst []byte, code string) []byte {
	for i := 0; i < len(code); i++ {
		if isInstruction(code[i]) {
			dst = append(dst, code[i])
		}
	}
	return dst
}

func (p *Program) mapBrackets() error {
	p.Brackets = make([]int, len(p.Code))
	var open []int
	for i, c := range p.Code {
		p.Brackets[i] = -1
		switch c {
		case '[':
			open = append(open, i)
		case ']':
			if len(open) == 0 {
				return fmt.Errorf("%w: ']' at %d%s", ErrUnmatchedBracket, i, p.where(i))
			}
			start := open[len(open)-1]
			open = open[:len(open)-1]
			p.Brackets[start] = i
			p.Brackets[i] = start
		}
	}
	if len(open) > 0 {
		i := open[len(open)-1]
		return fmt.Errorf("%w: '[' at %d%s", ErrUnmatchedBracket, i, p.where(i))
	}
	return nil
}

// SpanAt returns the index of the span containing code offset pos, or -1.
func (p *Program) SpanAt(pos int) int {
	ret := -1
	for i, span := range p.Spans {
		if span.Start > pos {
			break
		}
		ret = i
	}
	return ret
}

func (p *Program) where(pos int) string {
	if i := p.SpanAt(pos); i >= 0 && p.Spans[i].Label != "" {
		return " in " + p.Spans[i].Label
	}
	return ""
}

// SpanEnd returns the end offset of span i.
func (p *Program) SpanEnd(i int) int {
	if i+1 < len(p.Spans) {
		return p.Spans[i+1].Start
	}
	return len(p.Code)
}

func (p *Program) String() string {
	return string(p.Code)
}
