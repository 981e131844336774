package queries

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/domain/user"
	"restaurant-reservations/internal/infra"
	"restaurant-reservations/internal/pkg/errs"
)

const (
	MinCustomerSearchLength = 2
	CustomerSearchLimit     = 10
	RecentReservationsLimit = 10
)

var (
	ErrUserNotFound = errs.New("user not found")
	ErrUserInactive = errs.New("user inactive")
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
	ListCustomers(ctx context.Context) ([]*CustomerListItem, error)
	SearchCustomers(ctx context.Context, term string) ([]*CustomerListItem, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (*CustomerDetail, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	// FindByEmail also returns the password hash for credential checks.
	FindByEmail(ctx context.Context, email string) (*UserView, string, error)
	// ListCustomers matches term against name, email and phone, ignoring
	// case. An empty term lists everyone; a zero limit means no limit.
	ListCustomers(ctx context.Context, term string, limit int) ([]*CustomerListItem, error)
	RecentReservations(ctx context.Context, customerID uuid.UUID, limit int) ([]*ReservationView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	user, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return user, nil
}

func (q *userQueriesImpl) ListCustomers(ctx context.Context) ([]*CustomerListItem, error) {
	return q.readStore.ListCustomers(ctx, "", 0)
}

func (q *userQueriesImpl) SearchCustomers(ctx context.Context, term string) ([]*CustomerListItem, error) {
	term = strings.TrimSpace(term)
	if utf8.RuneCountInString(term) < MinCustomerSearchLength {
		return nil, reservation.InvalidInput("q", "search term must be at least 2 characters")
	}
	return q.readStore.ListCustomers(ctx, term, CustomerSearchLimit)
}

// GetCustomer reports staff accounts as not found.
func (q *userQueriesImpl) GetCustomer(ctx context.Context, id uuid.UUID) (*CustomerDetail, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if view.Role != user.RoleCustomer.String() {
		return nil, ErrUserNotFound
	}

	recent, err := q.readStore.RecentReservations(ctx, id, RecentReservationsLimit)
	if err != nil {
		return nil, err
	}
	return &CustomerDetail{UserView: *view, RecentReservations: recent}, nil
}
