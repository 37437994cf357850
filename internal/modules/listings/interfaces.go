package listings

import (
	"context"

	"github.com/criscode097/vacarent/internal/listing"
	"github.com/criscode097/vacarent/internal/notify"
)

// SnapshotStore persists the whole collection on every mutation and loads
// it permissively on startup.
type SnapshotStore interface {
	Load(ctx context.Context) []listing.Item
	Save(ctx context.Context, items []listing.Item) error
}

// ChangeNotifier pushes collection-changed events to connected viewers.
type ChangeNotifier interface {
	Broadcast(event notify.ChangeEvent)
}
