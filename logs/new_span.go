package logs

import (
	"context"
	"crypto/rand"
)

// NewSpan starts a span under parent, or under the span carried by ctx when parent is empty.
// attrs are logged with the span start.
type NewSpan func(ctx context.Context, parent Span, attrs ...any) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, parent Span, attrs ...any) (context.Context, Span) {

		// creator
		var creatorSpan Span
		if v := ctx.Value(SpanKey); v != nil {
			creatorSpan = v.(Span)
		}
		if parent == "" {
			parent = creatorSpan
		}

		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)

		args := make([]any, 0, len(attrs)+4)
		if creatorSpan != "" && creatorSpan != parent {
			args = append(args, "creator", creatorSpan)
		}
		if parent != "" {
			args = append(args, "parent", parent)
		}
		args = append(args, attrs...)
		logger.InfoContext(ctx, "new span", args...)

		return ctx, span
	}
}
