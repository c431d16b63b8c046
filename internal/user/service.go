package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MikeMC777/pos-service/internal/apperr"
)

var ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", apperr.ErrUnauthorized)

type Service struct {
	repo   Repository
	tokens *TokenIssuer
}

func NewService(repo Repository, tokens *TokenIssuer) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// Login checks username, password and the role the user picked on the login
// screen. All three must match.
func (s *Service) Login(ctx context.Context, in LoginRequest) (*User, string, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" || in.Role == "" {
		return nil, "", fmt.Errorf("%w: username, password and role are required", apperr.ErrValidation)
	}
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("%w: login: %v", apperr.ErrInternal, err)
	}
	if !CheckPassword(u.PasswordHash, in.Password) || u.Role != in.Role {
		return nil, "", ErrInvalidCredentials
	}
	tok, err := s.tokens.Issue(u)
	if err != nil {
		return nil, "", fmt.Errorf("%w: sign token: %v", apperr.ErrInternal, err)
	}
	return u, tok, nil
}

// Authorize verifies a bearer token, that the account behind it still exists
// with the same role, and that the role is one of allowed. An empty allowed
// list accepts any staff role.
func (s *Service) Authorize(ctx context.Context, raw string, allowed ...Role) (*Claims, error) {
	claims, err := s.tokens.Parse(raw)
	if err != nil {
		return nil, err
	}
	id, err := claims.UserID()
	if err != nil {
		return nil, fmt.Errorf("%w: malformed token subject", apperr.ErrUnauthorized)
	}
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: account no longer exists", apperr.ErrUnauthorized)
		}
		return nil, fmt.Errorf("%w: authorize: %v", apperr.ErrInternal, err)
	}
	if u.Role != claims.Role {
		return nil, fmt.Errorf("%w: role changed since login", apperr.ErrUnauthorized)
	}
	if len(allowed) == 0 {
		return claims, nil
	}
	for _, r := range allowed {
		if claims.Role == r {
			return claims, nil
		}
	}
	return nil, fmt.Errorf("%w: role %s may not do this", apperr.ErrForbidden, claims.Role)
}

// DefaultStaff are the demo accounts, one per role.
func DefaultStaff(adminPass, cashierPass, kitchenPass string) []Credential {
	return []Credential{
		{ID: 1, Username: "admin", Password: adminPass, Role: RoleAdmin},
		{ID: 2, Username: "cashier", Password: cashierPass, Role: RoleCashier},
		{ID: 3, Username: "kitchen", Password: kitchenPass, Role: RoleKitchen},
	}
}
