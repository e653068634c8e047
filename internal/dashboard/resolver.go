package dashboard

import (
	"context"

	"hotel-service/internal/model"
	"hotel-service/internal/store"
)

// UnassignedMessage is shown to managers without a hotel assignment
const UnassignedMessage = "Please contact the administrator to assign you to a hotel."

// View is the dashboard view model: exactly one of AdminOverview,
// TenantOverview or UnassignedNotice.
type View interface {
	// Kind names the view for rendering and metrics
	Kind() string
}

// AdminOverview is the system-wide dashboard for admins
type AdminOverview struct {
	Hotels        []store.HotelCounts
	TotalHotels   int64
	TotalRooms    int64
	TotalGuests   int64
	TotalBookings int64
	TotalManagers int64
}

func (AdminOverview) Kind() string { return "admin" }

// TenantOverview is the dashboard for a manager assigned to one hotel
type TenantOverview struct {
	Hotel store.HotelCounts
}

func (TenantOverview) Kind() string { return "tenant" }

// UnassignedNotice is the dashboard for a user with no hotel assignment
type UnassignedNotice struct {
	Message string
}

func (UnassignedNotice) Kind() string { return "unassigned" }

// Resolver decides which dashboard a user sees and assembles its data
type Resolver struct {
	store store.HotelStore
}

// NewResolver creates a Resolver backed by the given store
func NewResolver(s store.HotelStore) *Resolver {
	return &Resolver{store: s}
}

// Resolve classifies the user and builds the matching view. The decision
// lives here and nowhere else: admins always get the admin overview, a
// missing tenant assignment means the unassigned notice, anything else is
// the tenant overview. A tenant id pointing at a deleted hotel surfaces
// store.ErrNotFound.
func (r *Resolver) Resolve(ctx context.Context, role string, tenantID *uint) (View, error) {
	switch {
	case role == model.RoleAdmin:
		return r.adminOverview(ctx)
	case tenantID == nil:
		return UnassignedNotice{Message: UnassignedMessage}, nil
	default:
		return r.tenantOverview(ctx, *tenantID)
	}
}

func (r *Resolver) adminOverview(ctx context.Context) (View, error) {
	hotels, err := r.store.HotelsWithCounts(ctx)
	if err != nil {
		return nil, err
	}

	managers, err := r.store.CountManagers(ctx)
	if err != nil {
		return nil, err
	}

	view := AdminOverview{
		Hotels:        hotels,
		TotalHotels:   int64(len(hotels)),
		TotalManagers: managers,
	}
	for _, h := range hotels {
		view.TotalRooms += h.RoomsCount
		view.TotalGuests += h.GuestsCount
		view.TotalBookings += h.BookingsCount
	}

	return view, nil
}

func (r *Resolver) tenantOverview(ctx context.Context, tenantID uint) (View, error) {
	hotel, err := r.store.HotelWithCounts(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return TenantOverview{Hotel: *hotel}, nil
}
