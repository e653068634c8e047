package store

import (
	"context"
	"errors"

	"hotel-service/internal/model"
)

// ErrNotFound is returned when an operation targets a tenant id
// that does not resolve to an existing record.
var ErrNotFound = errors.New("record not found")

// HotelCounts carries a hotel together with its related-record counts.
// Rooms are attached for the admin detail overlay.
type HotelCounts struct {
	TenantID      uint         `json:"tenant_id"`
	HotelName     string       `json:"hotel_name"`
	Address       string       `json:"address"`
	ContactNumber string       `json:"contact_number"`
	RoomsCount    int64        `json:"rooms_count"`
	GuestsCount   int64        `json:"guests_count"`
	BookingsCount int64        `json:"bookings_count"`
	Rooms         []model.Room `json:"rooms"`
}

// HotelStore is the persistence surface for the hotel directory
// and the dashboard.
type HotelStore interface {
	// ListHotels returns all hotels ordered by tenant id, most recent first.
	ListHotels(ctx context.Context) ([]model.Tenant, error)

	// HotelsWithCounts returns all hotels with room/guest/booking counts
	// and their room lists.
	HotelsWithCounts(ctx context.Context) ([]HotelCounts, error)

	// HotelWithCounts returns a single hotel with its counts.
	// Returns ErrNotFound if the tenant id does not exist.
	HotelWithCounts(ctx context.Context, tenantID uint) (*HotelCounts, error)

	// CountManagers counts users with the manager role.
	CountManagers(ctx context.Context) (int64, error)

	// HotelNameTaken reports whether a hotel name is already in use by a
	// tenant other than excludeID. Pass excludeID 0 on create.
	HotelNameTaken(ctx context.Context, name string, excludeID uint) (bool, error)

	// CreateHotel persists a new hotel and fills in its generated id.
	CreateHotel(ctx context.Context, t *model.Tenant) error

	// FindHotel returns the hotel with the given tenant id.
	// Returns ErrNotFound if no such record exists.
	FindHotel(ctx context.Context, tenantID uint) (*model.Tenant, error)

	// UpdateHotel mutates an existing hotel record in place.
	UpdateHotel(ctx context.Context, t *model.Tenant) error
}
