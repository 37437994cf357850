package catalog

import (
	"github.com/criscode097/vacarent/internal/domain"
	"github.com/criscode097/vacarent/internal/notify"
	"github.com/criscode097/vacarent/internal/registry"
)

// Catalog is the slice of the registry the catalog service uses.
type Catalog interface {
	AddProperty(p *domain.Property) domain.Result
	RemoveProperty(id string) domain.Result
	FindProperty(id string) *domain.Property
	ListProperties() []*domain.Property
	ToggleProperty(id string) domain.Result
	ListUsers() []*domain.Person
	FindUserByEmail(email string) *domain.Person
	Snapshot() registry.Stats
}

// ChangeNotifier pushes collection-changed events to connected viewers.
type ChangeNotifier interface {
	Broadcast(event notify.ChangeEvent)
}
