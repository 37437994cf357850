package auth

import (
	"github.com/criscode097/vacarent/internal/domain"
	"github.com/criscode097/vacarent/internal/notify"
)

// UserDirectory is the slice of the registry the auth service needs.
type UserDirectory interface {
	AddUser(u *domain.Person) domain.Result
	FindUser(id string) *domain.Person
	FindUserByEmail(email string) *domain.Person
}

type jwtService interface {
	GenerateToken(userID, role string) (string, error)
}

// ChangeNotifier pushes collection-changed events to connected viewers.
type ChangeNotifier interface {
	Broadcast(event notify.ChangeEvent)
}
