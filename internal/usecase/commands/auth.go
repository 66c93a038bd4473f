package commands

import (
	"context"

	"bidloop/internal/domain/user"
	"bidloop/internal/infra"
	"bidloop/internal/pkg/errs"
	"bidloop/internal/pkg/jwt"
	"bidloop/internal/pkg/password"
	"bidloop/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken         = errs.New("email already registered")
	ErrInvalidCredentials = errs.New("invalid email or password")
)

type AuthCommands interface {
	Register(ctx context.Context, email, plainPassword, displayName string) (uuid.UUID, error)
	Login(ctx context.Context, email, plainPassword string) (string, error)
}

type authCommandsImpl struct {
	uow shared.UnitOfWork
	jwt *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow: uow,
		jwt: jwtService,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, email, plainPassword, displayName string) (uuid.UUID, error) {
	addr, err := user.NewEmail(email)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	hashed, err := password.Hash(plainPassword)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	entity, err := user.NewUser(addr, hashed, displayName)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, entity)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrEmailTaken
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return entity.ID(), nil
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (string, error) {
	addr, err := user.NewEmail(email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	var entity *user.User
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		entity, err = tx.Users().FindByEmail(ctx, addr)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.Compare(entity.PasswordHash(), plainPassword); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := a.jwt.GenerateToken(entity.ID())
	if err != nil {
		return "", errs.Wrap(err, "failed to sign token")
	}
	return token, nil
}
