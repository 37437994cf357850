package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/criscode097/vacarent/internal/domain"
	"github.com/criscode097/vacarent/internal/notify"
)

// Service holds the account logic: building the person entity, hashing the
// password and registering the account in the directory.
type Service struct {
	users    UserDirectory
	jwt      jwtService
	notifier ChangeNotifier
}

func NewService(users UserDirectory, jwt jwtService, notifier ChangeNotifier) *Service {
	return &Service{users: users, jwt: jwt, notifier: notifier}
}

// Register creates a guest or host account. Malformed input fails with a
// domain.ValidationError; a taken email fails with ErrEmailAlreadyExists.
func (s *Service) Register(req RegisterRequest) (*AuthResponse, error) {
	var (
		person *domain.Person
		err    error
	)
	switch req.Role {
	case string(domain.RoleHost):
		person, err = domain.NewHost(req.Name, req.Email, req.Rating)
	default:
		person, err = domain.NewGuest(req.Name, req.Email, req.Country)
	}
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	person.SetPasswordHash(string(hash))

	if res := s.users.AddUser(person); !res.Success {
		return nil, ErrEmailAlreadyExists
	}
	s.notifier.Broadcast(notify.Changed(notify.ScopeUsers))

	token, err := s.jwt.GenerateToken(person.ID(), string(person.Role()))
	if err != nil {
		return nil, err
	}

	return &AuthResponse{User: person.Info(), Token: token}, nil
}

// Login verifies the password for an exact email match and issues a token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *Service) Login(req LoginRequest) (*AuthResponse, error) {
	person := s.users.FindUserByEmail(req.Email)
	if person == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(person.PasswordHash()), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(person.ID(), string(person.Role()))
	if err != nil {
		return nil, err
	}

	return &AuthResponse{User: person.Info(), Token: token}, nil
}

// CurrentUser resolves the authenticated account.
func (s *Service) CurrentUser(userID string) (domain.PersonInfo, error) {
	person := s.users.FindUser(userID)
	if person == nil {
		return domain.PersonInfo{}, ErrUserNotFound
	}
	return person.Info(), nil
}
