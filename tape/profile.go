package tape

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

type SpanCount struct {
	Label      string
	Start, End int
	Count      int
}

type Profile struct {
	Spans   []SpanCount
	ByLabel map[string]int
	ByOp    map[byte]int
	Total   int
}

// Profile aggregates visit counters over the program's spans.
func (m *Machine) Profile() (*Profile, error) {
	if m.Visits == nil {
		return nil, ErrNotProfiling
	}
	program := m.Program
	p := &Profile{
		ByLabel: make(map[string]int),
		ByOp:    make(map[byte]int),
		Total:   lo.Sum(m.Visits),
	}
	for i, span := range program.Spans {
		end := program.SpanEnd(i)
		count := lo.Sum(m.Visits[span.Start:end])
		p.Spans = append(p.Spans, SpanCount{
			Label: span.Label,
			Start: span.Start,
			End:   end,
			Count: count,
		})
		p.ByLabel[span.Label] += count
	}
	for i, n := range m.Visits {
		if n > 0 {
			p.ByOp[program.Code[i]] += n
		}
	}
	return p, nil
}

func (p *Profile) String() string {
	var sb strings.Builder
	labels := lo.Keys(p.ByLabel)
	slices.SortFunc(labels, func(a, b string) int {
		if d := p.ByLabel[b] - p.ByLabel[a]; d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})
	for _, label := range labels {
		fmt.Fprintf(&sb, "%-24s %12d\n", label, p.ByLabel[label])
	}
	for i := 0; i < len(Alphabet); i++ {
		op := Alphabet[i]
		if n := p.ByOp[op]; n > 0 {
			fmt.Fprintf(&sb, "%-24c %12d\n", op, n)
		}
	}
	fmt.Fprintf(&sb, "%-24s %12d\n", "total", p.Total)
	return sb.String()
}
