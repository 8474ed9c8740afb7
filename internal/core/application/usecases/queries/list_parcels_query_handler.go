package queries

import (
	"context"
	"database/sql"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/status"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListParcelsQueryHandler retrieves parcel read models from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListParcelsQueryHandler struct {
	db *gorm.DB
}

// NewListParcelsQueryHandler creates a handler for parcel listing queries.
// Requires a GORM database connection for query execution.
func NewListParcelsQueryHandler(db *gorm.DB) ListParcelsQueryHandler {
	return ListParcelsQueryHandler{db: db}
}

// Handle executes the listing query. Results are sorted newest first.
func (h ListParcelsQueryHandler) Handle(
	ctx context.Context,
	query ListParcelsQuery,
) ([]ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText, args := buildParcelSelect(query.Hydration())
	sqlText += ` WHERE 1=1`
	if id := query.RequesterID(); id != nil {
		sqlText += ` AND p.requester_id = ?`
		args = append(args, id.Bytes())
	}
	if id := query.ShopID(); id != nil {
		sqlText += ` AND p.shop_id = ?`
		args = append(args, id.Bytes())
	}
	if id := query.HandlerID(); id != nil {
		sqlText += ` AND p.handler_id = ?`
		args = append(args, id.Bytes())
	}
	if name := query.StatusName(); name != nil {
		sqlText += ` AND s.name = ?`
		args = append(args, string(*name))
	}
	sqlText += ` ORDER BY p.created_at DESC, p.id`

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parcels := make([]ParcelResponse, 0)
	for rows.Next() {
		resp, scanErr := scanParcelRow(rows, query.Hydration())
		if scanErr != nil {
			return nil, scanErr
		}
		parcels = append(parcels, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}

// buildParcelSelect assembles the SELECT and JOIN clauses for the parcel read
// model. Hydration flags append their columns and LEFT JOINs in a fixed
// order, which scanParcelRow mirrors.
func buildParcelSelect(hydration Hydration) (string, []any) {
	sqlText := `
		SELECT
			p.id,
			p.tracking_number,
			s.name,
			p.requester_id,
			p.shop_id,
			p.category_id,
			p.pickup_id,
			p.delivery_area_id,
			p.handler_id,
			p.created_at`

	if hydration.Pickup {
		sqlText += `,
			pa.address`
	}
	if hydration.Shop {
		sqlText += `,
			sh.name`
	}
	if hydration.DeliveryArea {
		sqlText += `,
			da.name, da.district, da.division`
	}
	if hydration.Requester {
		sqlText += `,
			u.name, u.phone`
	}

	sqlText += `
		FROM parcels p
		JOIN statuses s ON s.id = p.status_id`

	if hydration.Pickup {
		sqlText += `
		LEFT JOIN pickup_addresses pa ON pa.id = p.pickup_id`
	}
	if hydration.Shop {
		sqlText += `
		LEFT JOIN shops sh ON sh.id = p.shop_id`
	}
	if hydration.DeliveryArea {
		sqlText += `
		LEFT JOIN delivery_areas da ON da.id = p.delivery_area_id`
	}
	if hydration.Requester {
		sqlText += `
		LEFT JOIN users u ON u.id = p.requester_id`
	}

	return sqlText, nil
}

// scanParcelRow reads one result row in the column order produced by
// buildParcelSelect for the same hydration set.
func scanParcelRow(rows *sql.Rows, hydration Hydration) (ParcelResponse, error) {
	var (
		id, requesterID, shopID       uuid.UUID
		categoryID, pickupID          uuid.UUID
		deliveryAreaID                uuid.UUID
		handlerID                     *uuid.UUID
		trackingNumber, statusName    string
		createdAt                     time.Time
		pickupAddress                 sql.NullString
		shopName                      sql.NullString
		areaName, district, division  sql.NullString
		requesterName, requesterPhone sql.NullString
	)

	dests := []any{
		&id, &trackingNumber, &statusName,
		&requesterID, &shopID, &categoryID, &pickupID, &deliveryAreaID,
		&handlerID, &createdAt,
	}
	if hydration.Pickup {
		dests = append(dests, &pickupAddress)
	}
	if hydration.Shop {
		dests = append(dests, &shopName)
	}
	if hydration.DeliveryArea {
		dests = append(dests, &areaName, &district, &division)
	}
	if hydration.Requester {
		dests = append(dests, &requesterName, &requesterPhone)
	}

	if err := rows.Scan(dests...); err != nil {
		return ParcelResponse{}, err
	}

	resp := ParcelResponse{
		TrackingNumber: trackingNumber,
		Status:         status.Name(statusName),
		CreatedAt:      createdAt,
	}

	var err error
	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return ParcelResponse{}, err
	}
	if resp.RequesterID, err = kernel.UUIDFromBytes(requesterID[:]); err != nil {
		return ParcelResponse{}, err
	}
	if resp.ShopID, err = kernel.UUIDFromBytes(shopID[:]); err != nil {
		return ParcelResponse{}, err
	}
	if resp.CategoryID, err = kernel.UUIDFromBytes(categoryID[:]); err != nil {
		return ParcelResponse{}, err
	}
	if resp.PickupID, err = kernel.UUIDFromBytes(pickupID[:]); err != nil {
		return ParcelResponse{}, err
	}
	if resp.DeliveryAreaID, err = kernel.UUIDFromBytes(deliveryAreaID[:]); err != nil {
		return ParcelResponse{}, err
	}
	if handlerID != nil {
		hID, idErr := kernel.UUIDFromBytes((*handlerID)[:])
		if idErr != nil {
			return ParcelResponse{}, idErr
		}
		resp.HandlerID = &hID
	}

	if hydration.Pickup && pickupAddress.Valid {
		resp.Pickup = &PickupView{ID: resp.PickupID, Address: pickupAddress.String}
	}
	if hydration.Shop && shopName.Valid {
		resp.Shop = &ShopView{ID: resp.ShopID, Name: shopName.String}
	}
	if hydration.DeliveryArea && areaName.Valid {
		resp.DeliveryArea = &DeliveryAreaView{
			ID:       resp.DeliveryAreaID,
			Name:     areaName.String,
			District: district.String,
			Division: division.String,
		}
	}
	if hydration.Requester && requesterName.Valid {
		resp.Requester = &UserView{
			ID:    resp.RequesterID,
			Name:  requesterName.String,
			Phone: requesterPhone.String,
		}
	}

	return resp, nil
}
