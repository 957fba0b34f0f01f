package commands

import (
	"context"

	"timeshare-portal/internal/domain/owner"
	"timeshare-portal/internal/infra"
	"timeshare-portal/internal/pkg/errs"
	"timeshare-portal/internal/pkg/jwt"
	"timeshare-portal/internal/pkg/password"
	"timeshare-portal/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	OwnerID   uuid.UUID
	Role      string
	TokenPair *TokenPair
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	owners     queries.OwnerReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(owners queries.OwnerReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		owners:     owners,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	view, err := a.owners.FindAuthorizedByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if err := password.ComparePassword(view.PasswordHash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := owner.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	pair, err := a.generatePair(view.ID, role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		OwnerID:   view.ID,
		Role:      role.String(),
		TokenPair: pair,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := owner.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// Confirm the owner still exists before minting fresh tokens.
	if _, err := a.owners.FindAuthorizedByID(ctx, claims.OwnerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTokenValidation
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	return a.generatePair(claims.OwnerID, role)
}

func (a *authCommandsImpl) generatePair(ownerID uuid.UUID, role owner.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(ownerID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(ownerID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
