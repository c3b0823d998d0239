package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/recipebook/recipe-api/internal/core/domain"
	"github.com/recipebook/recipe-api/internal/core/ports"
)

// UserService implements registration, lookup, and credential verification.
type UserService struct {
	repo       ports.UserRepository
	bcryptCost int
	jwtSecret  string
	tokenTTL   time.Duration
}

func NewUserService(repo ports.UserRepository, bcryptCost int, jwtSecret string, tokenTTL time.Duration) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &UserService{repo: repo, bcryptCost: bcryptCost, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Register hashes the raw password and persists a new user with the default
// role and active flag. The caller checks username uniqueness up front; the
// store's unique index still turns a race into domain.ErrUserExists.
func (s *UserService) Register(ctx context.Context, userName, rawPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), s.bcryptCost)
	if err != nil {
		return err
	}

	user := &domain.User{
		UserName:     userName,
		PasswordHash: string(hash),
		Active:       true,
		Roles:        domain.RoleUser,
	}

	_, err = s.repo.Create(ctx, user)
	return err
}

func (s *UserService) FindByUserName(ctx context.Context, userName string) (*domain.User, error) {
	return s.repo.FindByUserName(ctx, userName)
}

func (s *UserService) Exists(ctx context.Context, userName string) (bool, error) {
	return s.repo.Exists(ctx, userName)
}

// Authenticate verifies the password against the stored bcrypt hash. Unknown
// usernames and wrong passwords both come back as ErrInvalidCredentials so the
// response does not reveal which accounts exist.
func (s *UserService) Authenticate(ctx context.Context, userName, password string) (*domain.User, error) {
	user, err := s.repo.FindByUserName(ctx, userName)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.Active {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// Login authenticates and issues an HS256 token carrying username and roles.
func (s *UserService) Login(ctx context.Context, userName, password string) (string, *domain.User, error) {
	user, err := s.Authenticate(ctx, userName, password)
	if err != nil {
		return "", nil, err
	}

	claims := jwt.MapClaims{
		"username": user.UserName,
		"roles":    user.Roles,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err := t.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
