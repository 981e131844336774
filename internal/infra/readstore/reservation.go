package readstore

import (
	"context"

	"restaurant-reservations/internal/domain/calendar"
	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/infra"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"
	"restaurant-reservations/internal/pkg/pgconv"
	"restaurant-reservations/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	FindReservationWithCustomerByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindReservationWithCustomerByIDRow, error)
	ListReservationsByCustomer(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) ([]sqlc.Reservations, error)
	ListActiveReservationsForSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveReservationsForSlotParams) ([]sqlc.ListActiveReservationsForSlotRow, error)
}

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.FindReservationWithCustomerByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return rowWithCustomerToView(row), nil
}

func (r *ReservationReadStore) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationsByCustomer(ctx, r.db, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by customer", err)
	}

	views := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		views = append(views, rowToView(row))
	}
	return views, nil
}

// List builds its WHERE clause from the non-nil filter fields.
func (r *ReservationReadStore) List(ctx context.Context, filter queries.ReservationFilter) ([]*queries.ReservationView, error) {
	b := qb.Select(
		"r.id", "r.customer_id", "r.date", "r.turn", "r.zone", "r.party_size", "r.notes", "r.status",
		"r.created_at", "r.updated_at",
		"u.email", "u.first_name", "u.last_name", "u.phone",
	).
		From("reservations r").
		Join("users u ON u.id = r.customer_id")

	if filter.Date != nil {
		b = b.Where(sq.Eq{"r.date": pgconv.DateToPgtype(*filter.Date)})
	}
	if filter.Turn != nil {
		b = b.Where(sq.Eq{"r.turn": filter.Turn.String()})
	}
	if filter.Zone != nil {
		b = b.Where(sq.Eq{"r.zone": filter.Zone.String()})
	}
	if filter.Status != nil {
		b = b.Where(sq.Eq{"r.status": filter.Status.String()})
	}

	q, args, err := b.
		OrderBy("r.date", "CASE r.turn WHEN 'LUNCH' THEN 0 ELSE 1 END", "r.zone", "r.created_at").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build reservation list query", err)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var views []*queries.ReservationView
	for rows.Next() {
		var i sqlc.FindReservationWithCustomerByIDRow
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
			&i.CustomerEmail,
			&i.CustomerFirstName,
			&i.CustomerLastName,
			&i.CustomerPhone,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		views = append(views, rowWithCustomerToView(i))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return views, nil
}

func (r *ReservationReadStore) ListActiveForSlot(ctx context.Context, date calendar.Date, turn reservation.Turn) ([]reservation.PlanningEntry, error) {
	rows, err := r.queries.ListActiveReservationsForSlot(ctx, r.db, sqlc.ListActiveReservationsForSlotParams{
		Date: pgconv.DateToPgtype(date),
		Turn: turn.String(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations for slot", err)
	}

	entries := make([]reservation.PlanningEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, reservation.PlanningEntry{
			Zone:      reservation.Zone(row.Zone),
			PartySize: int(row.PartySize),
			HasNotes:  pgconv.StringFromPgtype(row.Notes) != "",
		})
	}
	return entries, nil
}

func rowToView(row sqlc.Reservations) *queries.ReservationView {
	return &queries.ReservationView{
		ID:         row.ID,
		CustomerID: row.CustomerID,
		Date:       pgconv.DateFromPgtype(row.Date),
		Turn:       reservation.Turn(row.Turn),
		Zone:       reservation.Zone(row.Zone),
		PartySize:  int(row.PartySize),
		Notes:      pgconv.StringPtrFromPgtype(row.Notes),
		Status:     reservation.Status(row.Status),
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func rowWithCustomerToView(row sqlc.FindReservationWithCustomerByIDRow) *queries.ReservationView {
	v := rowToView(sqlc.Reservations{
		ID:         row.ID,
		CustomerID: row.CustomerID,
		Date:       row.Date,
		Turn:       row.Turn,
		Zone:       row.Zone,
		PartySize:  row.PartySize,
		Notes:      row.Notes,
		Status:     row.Status,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	})
	v.Customer = &queries.CustomerSummary{
		Email:     row.CustomerEmail,
		FirstName: row.CustomerFirstName,
		LastName:  row.CustomerLastName,
		Phone:     pgconv.StringFromPgtype(row.CustomerPhone),
	}
	return v
}
