package notifier

import (
	"context"
	"log/slog"
)

type SLogNotifier struct {
	Logger *slog.Logger
}

var _ Notifier = &SLogNotifier{}

func (s SLogNotifier) Notify(ctx context.Context, event Event) {
	s.Logger.InfoContext(ctx, event.Message(),
		slog.String("id", event.UniqueID),
		slog.String("kind", event.Kind.String()),
		slog.String("raw", event.Raw),
	)
}
