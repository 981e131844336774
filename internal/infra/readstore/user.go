package readstore

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"restaurant-reservations/internal/domain/user"
	"restaurant-reservations/internal/infra"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"
	"restaurant-reservations/internal/pkg/pgconv"
	"restaurant-reservations/internal/usecase/queries"
	"restaurant-reservations/internal/usecase/shared"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, lower string) (sqlc.Users, error)
	UserEmailExists(ctx context.Context, db sqlc.DBTX, lower string) (bool, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return toUserView(row), nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserView, string, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return toUserView(row), row.PasswordHash, nil
}

func (r *UserReadStore) EmailExists(ctx context.Context, email string) (bool, error) {
	exists, err := r.queries.UserEmailExists(ctx, r.db, email)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check email", err)
	}
	return exists, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// customerListQuery counts every reservation of the customer, cancelled ones included.
func customerListQuery(term string, limit int) sq.SelectBuilder {
	b := qb.Select(
		"u.id", "u.email", "u.first_name", "u.last_name", "u.phone", "u.created_at",
		"COUNT(r.id)",
	).
		From("users u").
		LeftJoin("reservations r ON r.customer_id = u.id").
		Where(sq.Eq{"u.role": user.RoleCustomer.String()})

	if term != "" {
		pattern := "%" + likeEscaper.Replace(term) + "%"
		b = b.Where(sq.Or{
			sq.ILike{"u.first_name": pattern},
			sq.ILike{"u.last_name": pattern},
			sq.ILike{"u.email": pattern},
			sq.ILike{"u.phone": pattern},
		})
	}

	b = b.GroupBy("u.id").OrderBy("u.first_name", "u.last_name", "u.email")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	return b
}

func (r *UserReadStore) ListCustomers(ctx context.Context, term string, limit int) ([]*queries.CustomerListItem, error) {
	q, args, err := customerListQuery(term, limit).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build customer list query", err)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}
	defer rows.Close()

	items := make([]*queries.CustomerListItem, 0)
	for rows.Next() {
		var (
			row   sqlc.Users
			count int64
		)
		if err := rows.Scan(&row.ID, &row.Email, &row.FirstName, &row.LastName, &row.Phone, &row.CreatedAt, &count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan customer", err)
		}
		items = append(items, &queries.CustomerListItem{
			ID:               row.ID,
			Email:            row.Email,
			FirstName:        row.FirstName,
			LastName:         row.LastName,
			Phone:            pgconv.StringFromPgtype(row.Phone),
			CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
			ReservationCount: int(count),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate customers", err)
	}
	return items, nil
}

func recentReservationsQuery(customerID uuid.UUID, limit int) sq.SelectBuilder {
	return qb.Select(
		"id", "customer_id", "date", "turn", "zone", "party_size", "notes", "status", "created_at", "updated_at",
	).
		From("reservations").
		Where(sq.Eq{"customer_id": customerID}).
		OrderBy("date DESC", "CASE turn WHEN 'LUNCH' THEN 0 ELSE 1 END DESC", "created_at DESC").
		Limit(uint64(limit))
}

func (r *UserReadStore) RecentReservations(ctx context.Context, customerID uuid.UUID, limit int) ([]*queries.ReservationView, error) {
	q, args, err := recentReservationsQuery(customerID, limit).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build recent reservations query", err)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recent reservations", err)
	}
	defer rows.Close()

	views := make([]*queries.ReservationView, 0, limit)
	for rows.Next() {
		var i sqlc.Reservations
		if err := rows.Scan(
			&i.ID,
			&i.CustomerID,
			&i.Date,
			&i.Turn,
			&i.Zone,
			&i.PartySize,
			&i.Notes,
			&i.Status,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		views = append(views, rowToView(i))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return views, nil
}

// Snapshot is the slice of the user the write side authorizes against.
func (r *UserReadStore) Snapshot(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	view, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.UserSnapshot{
		ID:       view.ID,
		Email:    view.Email,
		Role:     user.Role(view.Role),
		IsActive: view.IsActive,
	}, nil
}

func toUserView(row sqlc.Users) *queries.UserView {
	return &queries.UserView{
		ID:        row.ID,
		Email:     row.Email,
		Role:      row.Role,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Phone:     pgconv.StringFromPgtype(row.Phone),
		IsActive:  row.IsActive,
		LastLogin: pgconv.TimePtrFromPgtype(row.LastLogin),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
