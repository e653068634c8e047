package store

import (
	"context"
	"errors"
	"time"

	"hotel-service/internal/model"
	"hotel-service/prometheus"

	"gorm.io/gorm"
)

// countsSelect mirrors an ORM withCount: one subquery per relation so a
// single statement returns every hotel with its three counts.
const countsSelect = `tenants.tenant_id, tenants.hotel_name, tenants.address, tenants.contact_number,
 (SELECT COUNT(*) FROM rooms WHERE rooms.tenant_id = tenants.tenant_id) AS rooms_count,
 (SELECT COUNT(*) FROM guests WHERE guests.tenant_id = tenants.tenant_id) AS guests_count,
 (SELECT COUNT(*) FROM bookings WHERE bookings.tenant_id = tenants.tenant_id) AS bookings_count`

// GormStore implements HotelStore on top of gorm/postgres
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a HotelStore backed by the given gorm database
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) ListHotels(ctx context.Context) ([]model.Tenant, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var hotels []model.Tenant
	result := s.db.WithContext(ctx).Order("tenant_id DESC").Find(&hotels)
	if result.Error != nil {
		return nil, result.Error
	}
	return hotels, nil
}

func (s *GormStore) HotelsWithCounts(ctx context.Context) ([]HotelCounts, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var hotels []HotelCounts
	result := s.db.WithContext(ctx).
		Model(&model.Tenant{}).
		Select(countsSelect).
		Order("tenants.tenant_id").
		Scan(&hotels)
	if result.Error != nil {
		return nil, result.Error
	}

	if err := s.attachRooms(ctx, hotels); err != nil {
		return nil, err
	}
	return hotels, nil
}

func (s *GormStore) HotelWithCounts(ctx context.Context, tenantID uint) (*HotelCounts, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var hotel HotelCounts
	result := s.db.WithContext(ctx).
		Model(&model.Tenant{}).
		Select(countsSelect).
		Where("tenants.tenant_id = ?", tenantID).
		Scan(&hotel)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	hotels := []HotelCounts{hotel}
	if err := s.attachRooms(ctx, hotels); err != nil {
		return nil, err
	}
	return &hotels[0], nil
}

// attachRooms loads the room lists for the given hotels in one query
func (s *GormStore) attachRooms(ctx context.Context, hotels []HotelCounts) error {
	if len(hotels) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(hotels))
	for _, h := range hotels {
		ids = append(ids, h.TenantID)
	}

	var rooms []model.Room
	result := s.db.WithContext(ctx).Where("tenant_id IN ?", ids).Find(&rooms)
	if result.Error != nil {
		return result.Error
	}

	byTenant := make(map[uint][]model.Room, len(hotels))
	for _, r := range rooms {
		byTenant[r.TenantID] = append(byTenant[r.TenantID], r)
	}
	for i := range hotels {
		hotels[i].Rooms = byTenant[hotels[i].TenantID]
	}
	return nil
}

func (s *GormStore) CountManagers(ctx context.Context) (int64, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("role = ?", model.RoleManager).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (s *GormStore) HotelNameTaken(ctx context.Context, name string, excludeID uint) (bool, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	// Self-exclusion kept explicit: absent on create, present on update
	query := s.db.WithContext(ctx).Model(&model.Tenant{}).Where("hotel_name = ?", name)
	if excludeID != 0 {
		query = query.Where("tenant_id != ?", excludeID)
	}

	var count int64
	if result := query.Count(&count); result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

func (s *GormStore) CreateHotel(ctx context.Context, t *model.Tenant) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	return s.db.WithContext(ctx).Create(t).Error
}

func (s *GormStore) FindHotel(ctx context.Context, tenantID uint) (*model.Tenant, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var hotel model.Tenant
	result := s.db.WithContext(ctx).First(&hotel, "tenant_id = ?", tenantID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &hotel, nil
}

func (s *GormStore) UpdateHotel(ctx context.Context, t *model.Tenant) error {
	defer prometheus.TrackDBOperation("update")(time.Now())

	return s.db.WithContext(ctx).
		Model(&model.Tenant{}).
		Where("tenant_id = ?", t.TenantID).
		Updates(map[string]interface{}{
			"hotel_name":     t.HotelName,
			"address":        t.Address,
			"contact_number": t.ContactNumber,
		}).Error
}
