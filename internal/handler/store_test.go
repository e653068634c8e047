package handler

import (
	"context"
	"sort"

	"hotel-service/internal/model"
	"hotel-service/internal/store"
)

// memStore is an in-memory HotelStore for handler tests
type memStore struct {
	hotels   map[uint]model.Tenant
	counts   map[uint]store.HotelCounts
	managers int64
	nextID   uint
	failWith error
}

func newMemStore() *memStore {
	return &memStore{
		hotels: make(map[uint]model.Tenant),
		counts: make(map[uint]store.HotelCounts),
		nextID: 1,
	}
}

func (m *memStore) seed(t model.Tenant) model.Tenant {
	t.TenantID = m.nextID
	m.nextID++
	m.hotels[t.TenantID] = t
	return t
}

func (m *memStore) ListHotels(ctx context.Context) ([]model.Tenant, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	hotels := make([]model.Tenant, 0, len(m.hotels))
	for _, h := range m.hotels {
		hotels = append(hotels, h)
	}
	sort.Slice(hotels, func(i, j int) bool { return hotels[i].TenantID > hotels[j].TenantID })
	return hotels, nil
}

func (m *memStore) HotelsWithCounts(ctx context.Context) ([]store.HotelCounts, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	hotels := make([]store.HotelCounts, 0, len(m.hotels))
	for id, h := range m.hotels {
		hc := m.counts[id]
		hc.TenantID = h.TenantID
		hc.HotelName = h.HotelName
		hc.Address = h.Address
		hc.ContactNumber = h.ContactNumber
		hotels = append(hotels, hc)
	}
	sort.Slice(hotels, func(i, j int) bool { return hotels[i].TenantID < hotels[j].TenantID })
	return hotels, nil
}

func (m *memStore) HotelWithCounts(ctx context.Context, tenantID uint) (*store.HotelCounts, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	h, ok := m.hotels[tenantID]
	if !ok {
		return nil, store.ErrNotFound
	}
	hc := m.counts[tenantID]
	hc.TenantID = h.TenantID
	hc.HotelName = h.HotelName
	hc.Address = h.Address
	hc.ContactNumber = h.ContactNumber
	return &hc, nil
}

func (m *memStore) CountManagers(ctx context.Context) (int64, error) {
	return m.managers, nil
}

func (m *memStore) HotelNameTaken(ctx context.Context, name string, excludeID uint) (bool, error) {
	if m.failWith != nil {
		return false, m.failWith
	}
	for id, h := range m.hotels {
		if h.HotelName == name && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) CreateHotel(ctx context.Context, t *model.Tenant) error {
	if m.failWith != nil {
		return m.failWith
	}
	t.TenantID = m.nextID
	m.nextID++
	m.hotels[t.TenantID] = *t
	return nil
}

func (m *memStore) FindHotel(ctx context.Context, tenantID uint) (*model.Tenant, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	h, ok := m.hotels[tenantID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &h, nil
}

func (m *memStore) UpdateHotel(ctx context.Context, t *model.Tenant) error {
	if m.failWith != nil {
		return m.failWith
	}
	if _, ok := m.hotels[t.TenantID]; !ok {
		return store.ErrNotFound
	}
	m.hotels[t.TenantID] = *t
	return nil
}
