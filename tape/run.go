package tape

import (
	"context"
	"iter"

	"github.com/reusee/brainvm/logs"
)

// DefaultYieldEvery is the interrupt interval Execute uses for cancelable contexts
// when the config sets none.
const DefaultYieldEvery = 1 << 16

// Run executes until the end of the program, a fatal error, or a yield that returns
// false. Fatal errors are yielded once and halt the machine. A machine stopped by its
// caller at an interrupt can be run again to resume.
func (m *Machine) Run(yield func(*Interrupt, error) bool) {
	m.run(m.Config.YieldEvery, yield)
}

func (m *Machine) runEvery(n int) iter.Seq2[*Interrupt, error] {
	return func(yield func(*Interrupt, error) bool) {
		m.run(n, yield)
	}
}

func (m *Machine) run(yieldEvery int, yield func(*Interrupt, error) bool) {
	if m.Halted {
		return
	}
	code := m.Program.Code
	brackets := m.Program.Brackets
	sinceYield := 0

	m.Logger.Debug("machine run",
		"ip", m.IP,
		"code_size", len(code),
		"mode", m.Config.Mode,
	)

	for m.IP < len(code) {
		if yieldEvery > 0 {
			if sinceYield == yieldEvery {
				sinceYield = 0
				if !yield(InterruptYield, nil) {
					return
				}
			}
			sinceYield++
		}

		if m.Visits != nil {
			m.Visits[m.IP]++
		}
		m.Steps++

		switch code[m.IP] {

		case '>':
			m.Pointer++

		case '<':
			if m.Pointer == 0 {
				yield(nil, m.fail(ErrPointerUnderflow))
				return
			}
			m.Pointer--

		case '+':
			v, err := m.Config.Mode.normalize(m.current() + 1)
			if err != nil {
				yield(nil, m.fail(err))
				return
			}
			m.setCurrent(v)

		case '-':
			v, err := m.Config.Mode.normalize(m.current() - 1)
			if err != nil {
				yield(nil, m.fail(err))
				return
			}
			m.setCurrent(v)

		case '.':
			m.Output = append(m.Output, m.current())

		case ',':
			if len(m.Input) == 0 {
				yield(nil, m.fail(ErrInputExhausted))
				return
			}
			v, err := m.Config.Mode.normalize(m.Input[0])
			if err != nil {
				yield(nil, m.fail(err))
				return
			}
			m.Input = m.Input[1:]
			m.setCurrent(v)

		case '[':
			if m.current() == 0 {
				m.IP = brackets[m.IP] + 1
				continue
			}

		case ']':
			if m.current() != 0 {
				m.IP = brackets[m.IP]
				continue
			}

		}
		m.IP++
	}

	m.Halted = true
	m.Logger.Debug("machine halted",
		"steps", m.Steps,
		"outputs", len(m.Output),
	)
}

// Execute runs the machine to completion. The context is checked at interrupts.
func (m *Machine) Execute(ctx context.Context) error {
	every := m.Config.YieldEvery
	if every == 0 && ctx.Done() != nil {
		every = DefaultYieldEvery
	}
	for _, err := range m.runEvery(every) {
		if err != nil {
			return logs.WrapSpan(ctx, err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}
