package match

import (
	"context"

	"github.com/KirkDiggler/ludo/internal/models"
)

// MultiNotifier fans an event out to every notifier in order
type MultiNotifier []Notifier

// Notify implements Notifier
func (m MultiNotifier) Notify(ctx context.Context, event *models.Event) {
	for _, n := range m {
		if n != nil {
			n.Notify(ctx, event)
		}
	}
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, *models.Event) {}
