package commands

import (
	"context"

	"staybook/internal/domain/guest"
	"staybook/internal/infra"
	"staybook/internal/pkg/errs"
	"staybook/internal/pkg/jwt"
	"staybook/internal/pkg/password"
	"staybook/internal/usecase/queries"
)

var (
	ErrEmailTaken         = errs.New("email already registered")
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrWeakCredentials    = errs.New("invalid sign-up data")
)

type SignUpInput struct {
	Email       string
	Password    string
	DisplayName string
}

type AuthResult struct {
	Token string
	Guest *queries.GuestView
}

type AuthCommands interface {
	SignUp(ctx context.Context, in SignUpInput) (*AuthResult, error)
	SignIn(ctx context.Context, email, rawPassword string) (*AuthResult, error)
}

type authCommandsImpl struct {
	guestRepo GuestRepository
	jwtSvc    *jwt.Service
}

func NewAuthCommands(guestRepo GuestRepository, jwtSvc *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		guestRepo: guestRepo,
		jwtSvc:    jwtSvc,
	}
}

func (c *authCommandsImpl) SignUp(ctx context.Context, in SignUpInput) (*AuthResult, error) {
	email, err := guest.NewEmail(in.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrWeakCredentials)
	}
	pw, err := guest.NewPassword(in.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrWeakCredentials)
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	guestEntity := guest.NewGuest(email, hash, in.DisplayName)
	if err := c.guestRepo.Insert(ctx, guestEntity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrEmailTaken)
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	return c.issueToken(guestEntity)
}

func (c *authCommandsImpl) SignIn(ctx context.Context, email, rawPassword string) (*AuthResult, error) {
	guestEntity, err := c.guestRepo.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	if err := password.ComparePassword(guestEntity.PasswordHash(), rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	return c.issueToken(guestEntity)
}

func (c *authCommandsImpl) issueToken(g *guest.Guest) (*AuthResult, error) {
	token, err := c.jwtSvc.GenerateToken(g.ID(), g.Email().Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &AuthResult{
		Token: token,
		Guest: &queries.GuestView{
			ID:          g.ID(),
			Email:       g.Email().Value(),
			DisplayName: g.DisplayName(),
			CreatedAt:   g.CreatedAt(),
		},
	}, nil
}
