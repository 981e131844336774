package commands

import (
	"context"
	"log/slog"

	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/domain/user"
	reqdto "restaurant-reservations/internal/handler/dto/request"
	"restaurant-reservations/internal/infra"
	"restaurant-reservations/internal/pkg/clock"
	"restaurant-reservations/internal/pkg/errs"
	"restaurant-reservations/internal/pkg/password"
	"restaurant-reservations/internal/usecase/queries"
	"restaurant-reservations/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	// ErrCurrentPasswordMismatch is a field error, not an authentication failure.
	ErrCurrentPasswordMismatch = errs.New("current password is incorrect")
	ErrNewPasswordTooWeak      = errs.New("new password must be at least 4 characters long")
)

type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, role user.Role) (string, error)
}

type AuthResult struct {
	User  *queries.UserView
	Token string
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error)
	// CreateStaff provisions a staff account. It has no HTTP route.
	CreateStaff(ctx context.Context, creds user.Credentials, profile user.Profile) (*user.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req reqdto.UpdateProfileRequest) (*queries.UserView, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req reqdto.ChangePasswordRequest) error
}

type authCommandsImpl struct {
	uow         shared.UnitOfWork
	readStore   queries.UserReadStore
	tokenIssuer TokenIssuer
	clock       clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, tokenIssuer TokenIssuer, clock clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:         uow,
		readStore:   readStore,
		tokenIssuer: tokenIssuer,
		clock:       clock,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error) {
	customer, err := req.ToDomain()
	if err != nil {
		return nil, err
	}

	u, err := a.createUser(ctx, customer.Credentials, customer.Profile, user.RoleCustomer)
	if err != nil {
		return nil, err
	}

	token, err := a.tokenIssuer.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &AuthResult{User: queries.NewUserView(u), Token: token}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		// Malformed credentials are reported like wrong ones.
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	view, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.tokenIssuer.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	now := a.clock.Now()
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), view.ID, now)
	})
	if err != nil {
		// Login already succeeded; only the last_login bookkeeping failed.
		slog.Warn("failed to update last login", "user_id", view.ID, "error", err.Error())
	} else {
		view.LastLogin = &now
	}

	return &AuthResult{User: view, Token: token}, nil
}

func (a *authCommandsImpl) CreateStaff(ctx context.Context, creds user.Credentials, profile user.Profile) (*user.User, error) {
	return a.createUser(ctx, creds, profile, user.RoleStaff)
}

// UpdateProfile replaces name and phone. Email and role are fixed at creation.
func (a *authCommandsImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req reqdto.UpdateProfileRequest) (*queries.UserView, error) {
	now := a.clock.Now()
	var updated *user.User
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := a.lockActiveUser(ctx, tx, userID)
		if err != nil {
			return err
		}
		profile, err := req.ToDomain(u.Role())
		if err != nil {
			return err
		}

		u.UpdateProfile(profile, now)
		if err := tx.Users().Update(ctx, tx.DB(), u); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return queries.NewUserView(updated), nil
}

func (a *authCommandsImpl) ChangePassword(ctx context.Context, userID uuid.UUID, req reqdto.ChangePasswordRequest) error {
	next, err := user.NewPassword(req.NewPassword)
	if err != nil {
		return errs.Mark(err, ErrNewPasswordTooWeak)
	}

	now := a.clock.Now()
	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := a.lockActiveUser(ctx, tx, userID)
		if err != nil {
			return err
		}
		if err := password.ComparePassword(u.PasswordHash(), req.CurrentPassword); err != nil {
			return ErrCurrentPasswordMismatch
		}

		hash, err := password.HashPassword(next.Value())
		if err != nil {
			return errs.Mark(err, ErrPasswordHashing)
		}
		u.ChangePassword(hash, now)
		if err := tx.Users().Update(ctx, tx.DB(), u); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		slog.Info("password changed", "user_id", userID)
		return nil
	})
}

func (a *authCommandsImpl) lockActiveUser(ctx context.Context, tx shared.Tx, userID uuid.UUID) (*user.User, error) {
	u, err := tx.Users().FindByIDForUpdate(ctx, tx.DB(), userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, queries.ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !u.IsActive() {
		return nil, ErrUserInactive
	}
	return u, nil
}

func (a *authCommandsImpl) createUser(ctx context.Context, creds user.Credentials, profile user.Profile, role user.Role) (*user.User, error) {
	exists, err := a.uow.CommandReads().EmailExists(ctx, creds.Email().Value())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := password.HashPassword(creds.Password().Value())
	if err != nil {
		return nil, errs.Mark(err, ErrPasswordHashing)
	}

	now := a.clock.Now()
	u, err := user.NewUser(creds.Email(), hash, role, profile, now)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Users().Create(ctx, tx.DB(), u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrEmailAlreadyExists
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return enqueueCustomerEvent(ctx, tx, u, reservation.Actor{ID: u.ID(), Role: role}, now)
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.UserView, error) {
	view, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Return same error as password mismatch to prevent user enumeration attacks
		return nil, ErrInvalidCredentials
	}

	if !view.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return view, nil
}
