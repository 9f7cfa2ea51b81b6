package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/pickup-point-service/internal/entities"
	"github.com/SergeyBogomolovv/pickup-point-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

const defaultSearchLimit = 20

var pickupPointColumns = []string{
	"id", "name", "address_type", "receiver_name", "postal_code", "city",
	"state", "country", "street", "number", "neighborhood", "complement",
	"reference", "latitude", "longitude", "is_pickup_store", "friendly_name",
	"additional_info", "updated_at",
}

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SearchPickupPoints ищет пункты по адресу или, для запроса по геолокации, ближайшие к точке.
func (r *postgresRepo) SearchPickupPoints(ctx context.Context, query entities.SearchQuery) ([]entities.PickupPoint, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	q := r.qb.Select(pickupPointColumns...).
		From("pickup_points").
		Limit(uint64(limit))

	if query.Geolocation && query.Location != nil {
		q = q.OrderByClause(
			"power(latitude - ?, 2) + power(longitude - ?, 2)",
			query.Location.Latitude, query.Location.Longitude,
		)
	} else {
		if query.PostalCode != "" {
			q = q.Where(sq.Eq{"postal_code": query.PostalCode})
		}
		if query.City != "" {
			q = q.Where(sq.Eq{"lower(city)": strings.ToLower(query.City)})
		}
		if query.Street != "" {
			q = q.Where(sq.ILike{"street": "%" + query.Street + "%"})
		}
		q = q.OrderBy("name", "id")
	}

	sqlQuery, args := q.MustSql()

	var points []PickupPoint
	if err := r.selectContext(ctx, &points, sqlQuery, args...); err != nil {
		return nil, fmt.Errorf("failed to select pickup points: %w", err)
	}

	if len(points) == 0 {
		return []entities.PickupPoint{}, nil
	}

	ids := make([]string, len(points))
	for i, p := range points {
		ids[i] = p.ID
	}

	// Часы работы найденных пунктов одним запросом
	sqlQuery, args = r.qb.Select("pickup_point_id", "day_of_week", "opening_time", "closing_time").
		From("pickup_point_hours").
		Where(sq.Eq{"pickup_point_id": ids}).
		OrderBy("pickup_point_id", "day_of_week").
		MustSql()

	var hours []BusinessHour
	if err := r.selectContext(ctx, &hours, sqlQuery, args...); err != nil {
		return nil, fmt.Errorf("failed to select business hours: %w", err)
	}
	hoursMap := make(map[string][]BusinessHour, len(points))
	for _, h := range hours {
		hoursMap[h.PickupPointID] = append(hoursMap[h.PickupPointID], h)
	}

	result := make([]entities.PickupPoint, 0, len(points))
	for _, p := range points {
		result = append(result, PickupPointToEntity(p, hoursMap[p.ID]))
	}
	return result, nil
}

// UpsertPickupPoint идемпотентна: повторное сообщение каталога перезаписывает запись.
func (r *postgresRepo) UpsertPickupPoint(ctx context.Context, p entities.PickupPoint) error {
	var store entities.StoreInfo
	if p.StoreInfo != nil {
		store = *p.StoreInfo
	}

	query, args := r.qb.Insert("pickup_points").
		Columns(
			"id", "name", "address_type", "receiver_name", "postal_code", "city",
			"state", "country", "street", "number", "neighborhood", "complement",
			"reference", "latitude", "longitude", "is_pickup_store", "friendly_name",
			"additional_info", "updated_at",
		).
		Values(
			p.ID, p.Name, nullString(p.Address.AddressType), nullString(p.Address.ReceiverName),
			nullString(p.Address.PostalCode), nullString(p.Address.City), nullString(p.Address.State),
			nullString(p.Address.Country), nullString(p.Address.Street), nullString(p.Address.Number),
			nullString(p.Address.Neighborhood), nullString(p.Address.Complement), nullString(p.Address.Reference),
			p.Location.Latitude, p.Location.Longitude, store.IsPickupStore, nullString(store.FriendlyName),
			nullString(store.AdditionalInfo), sq.Expr("NOW()"),
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			address_type = EXCLUDED.address_type,
			receiver_name = EXCLUDED.receiver_name,
			postal_code = EXCLUDED.postal_code,
			city = EXCLUDED.city,
			state = EXCLUDED.state,
			country = EXCLUDED.country,
			street = EXCLUDED.street,
			number = EXCLUDED.number,
			neighborhood = EXCLUDED.neighborhood,
			complement = EXCLUDED.complement,
			reference = EXCLUDED.reference,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			is_pickup_store = EXCLUDED.is_pickup_store,
			friendly_name = EXCLUDED.friendly_name,
			additional_info = EXCLUDED.additional_info,
			updated_at = EXCLUDED.updated_at`).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert pickup point: %w", err)
	}
	return nil
}

func (r *postgresRepo) ReplaceBusinessHours(ctx context.Context, pointID string, hours []entities.BusinessHour) error {
	query, args := r.qb.Delete("pickup_point_hours").
		Where(sq.Eq{"pickup_point_id": pointID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete business hours: %w", err)
	}

	if len(hours) == 0 {
		return nil
	}

	q := r.qb.Insert("pickup_point_hours").
		Columns("pickup_point_id", "day_of_week", "opening_time", "closing_time").
		Suffix("ON CONFLICT (pickup_point_id, day_of_week) DO UPDATE SET opening_time = EXCLUDED.opening_time, closing_time = EXCLUDED.closing_time")

	for _, h := range hours {
		q = q.Values(pointID, int(h.DayOfWeek), h.OpeningTime, h.ClosingTime)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save business hours: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveShippingSelection(ctx context.Context, s entities.ShippingSelection) (int64, error) {
	address, err := json.Marshal(s.ResidentialAddress)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal address: %w", err)
	}
	logistics, err := json.Marshal(s.LogisticsInfo)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal logistics info: %w", err)
	}

	query, args := r.qb.Insert("shipping_selections").
		Columns("pickup_option_id", "pickup_point_id", "residential_address", "logistics_info").
		Values(s.PickupOptionID, s.PickupPointID, address, logistics).
		Suffix("RETURNING id").
		MustSql()

	var id int64
	if err := r.getContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("failed to save shipping selection: %w", err)
	}
	return id, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
