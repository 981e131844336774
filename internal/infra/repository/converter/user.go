package converter

import (
	"fmt"

	"restaurant-reservations/internal/domain/user"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"
	"restaurant-reservations/internal/pkg/pgconv"
)

func UserFromRow(row sqlc.Users) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", row.ID, err)
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", row.ID, err)
	}
	profile, err := user.NewProfile(row.FirstName, row.LastName, pgconv.StringFromPgtype(row.Phone), false)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", row.ID, err)
	}

	return user.ReconstructUser(
		row.ID,
		email,
		row.PasswordHash,
		role,
		profile,
		pgconv.TimePtrFromPgtype(row.LastLogin),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func UserToUpdateParams(u *user.User) sqlc.UpdateUserParams {
	return sqlc.UpdateUserParams{
		ID:           u.ID(),
		FirstName:    u.Profile().FirstName(),
		LastName:     u.Profile().LastName(),
		Phone:        pgconv.StringToPgtype(u.Profile().Phone()),
		PasswordHash: u.PasswordHash(),
		UpdatedAt:    pgconv.TimeToPgtype(u.UpdatedAt()),
	}
}
