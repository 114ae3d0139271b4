package session

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/pehchaan/marketplace-demo/internal/localstore"
)

// Storage keys match what the original storefront wrote to localStorage.
const (
	userKey     = "pehchaan_user"
	authFlagKey = "pehchaan_authenticated"
	accountsKey = "pehchaan_accounts"
)

// Demo credentials accepted out of the box.
const (
	demoBuyerEmail  = "buyer@demo.com"
	demoSellerEmail = "seller@demo.com"
	demoPassword    = "demo123"
)

var (
	ErrInvalidCredentials = errors.New("session: invalid credentials")
	ErrEmailExists        = errors.New("session: email already registered")
)

// account is a signup record kept in local persistence. The password is
// stored only as a bcrypt hash.
type account struct {
	User         User   `json:"user"`
	Phone        string `json:"phone"`
	BusinessName string `json:"business_name,omitempty"`
	PasswordHash string `json:"password_hash"`
}

// Service owns the session state: who is logged in, restored from local
// persistence at startup.
type Service struct {
	mu      sync.Mutex
	current *User
	store   localstore.Store
}

func NewService(store localstore.Store) *Service {
	s := &Service{store: store}
	s.restore()
	return s
}

func (s *Service) restore() {
	var flag string
	if _, err := s.store.Get(authFlagKey, &flag); err != nil {
		log.Warn().Err(err).Msg("session: failed to read auth flag")
		return
	}
	if flag != "true" {
		return
	}

	var u User
	found, err := s.store.Get(userKey, &u)
	if err != nil || !found {
		log.Warn().Err(err).Msg("session: auth flag set but no usable user record")
		return
	}

	s.current = &u
	log.Info().Str("email", u.Email).Str("type", string(u.Type)).Msg("session: restored")
}

// Login resolves the form to a user. Demo credentials map to the demo buyer
// and seller; a stored account must match its bcrypt hash; any other
// submission becomes the generic demo user, mirroring the original demo's
// permissive behavior.
func (s *Service) Login(form LoginForm) (User, error) {
	email := strings.ToLower(strings.TrimSpace(form.Email))

	u, err := s.resolve(email, form)
	if err != nil {
		return User{}, err
	}

	s.mu.Lock()
	s.current = &u
	s.persistLocked(u)
	s.mu.Unlock()

	log.Info().Str("email", u.Email).Str("type", string(u.Type)).Msg("session: logged in")

	return u, nil
}

func (s *Service) resolve(email string, form LoginForm) (User, error) {
	if form.Password == demoPassword {
		switch email {
		case demoBuyerEmail:
			return User{Name: "Demo Buyer", Email: email, Type: TypeBuyer}, nil
		case demoSellerEmail:
			return User{Name: "Demo Seller", Email: email, Type: TypeSeller}, nil
		}
	}

	if acc, ok := s.findAccount(email); ok {
		if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(form.Password)) != nil {
			return User{}, ErrInvalidCredentials
		}
		return acc.User, nil
	}

	return User{Name: "Demo User", Email: email, Type: form.Type}, nil
}

// Signup stores an account record and logs the new user in.
func (s *Service) Signup(form SignupForm) (User, error) {
	email := strings.ToLower(strings.TrimSpace(form.Email))

	if _, exists := s.findAccount(email); exists {
		return User{}, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("session: failed to hash password: %w", err)
	}

	u := User{Name: form.Name, Email: email, Type: form.Type}
	acc := account{
		User:         u,
		Phone:        form.Phone,
		BusinessName: form.BusinessName,
		PasswordHash: string(hash),
	}

	s.mu.Lock()
	s.appendAccountLocked(acc)
	s.current = &u
	s.persistLocked(u)
	s.mu.Unlock()

	log.Info().Str("email", u.Email).Str("type", string(u.Type)).Msg("session: account created")

	return u, nil
}

func (s *Service) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.store.Delete(userKey); err != nil {
		log.Warn().Err(err).Msg("session: failed to clear user record")
	}
	if err := s.store.Delete(authFlagKey); err != nil {
		log.Warn().Err(err).Msg("session: failed to clear auth flag")
	}

	log.Info().Msg("session: logged out")
}

// Current returns the logged-in user, if any.
func (s *Service) Current() (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return User{}, false
	}
	return *s.current, true
}

// persistLocked writes the session keys best-effort: a failed write leaves
// the in-memory session authoritative.
func (s *Service) persistLocked(u User) {
	if err := s.store.Put(userKey, u); err != nil {
		log.Warn().Err(err).Msg("session: failed to persist user record")
	}
	if err := s.store.Put(authFlagKey, "true"); err != nil {
		log.Warn().Err(err).Msg("session: failed to persist auth flag")
	}
}

func (s *Service) findAccount(email string) (account, bool) {
	var accounts []account
	if _, err := s.store.Get(accountsKey, &accounts); err != nil {
		log.Warn().Err(err).Msg("session: failed to read accounts")
		return account{}, false
	}

	for _, acc := range accounts {
		if acc.User.Email == email {
			return acc, true
		}
	}
	return account{}, false
}

func (s *Service) appendAccountLocked(acc account) {
	var accounts []account
	if _, err := s.store.Get(accountsKey, &accounts); err != nil {
		log.Warn().Err(err).Msg("session: failed to read accounts, starting a new list")
		accounts = nil
	}

	accounts = append(accounts, acc)
	if err := s.store.Put(accountsKey, accounts); err != nil {
		log.Warn().Err(err).Msg("session: failed to persist accounts")
	}
}
