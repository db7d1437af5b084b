package convergence

import (
	"context"
	"log/slog"
)

// TraceFunc receives one progress record per solver iteration.
type TraceFunc func(iter int, attrs ...slog.Attr)

// Trace returns a TraceFunc that writes a Debug record named "iteration" to l,
// tagged with the solver method and the iteration index. A nil logger yields
// a no-op. Logging never feeds back into the solver.
func Trace(l *slog.Logger, method string) TraceFunc {
	if l == nil {
		return func(int, ...slog.Attr) {}
	}
	l = l.With(slog.String("method", method))

	return func(iter int, attrs ...slog.Attr) {
		ctx := context.Background()
		if !l.Enabled(ctx, slog.LevelDebug) {
			return
		}
		all := make([]slog.Attr, 0, len(attrs)+1)
		all = append(all, slog.Int("iter", iter))
		all = append(all, attrs...)
		l.LogAttrs(ctx, slog.LevelDebug, "iteration", all...)
	}
}
