package memory

import (
	"context"
	"sort"

	"github.com/Ka-few/Beauty-parlor-app/internal/domain"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain/catalog"
	"github.com/Ka-few/Beauty-parlor-app/internal/models"
)

type CatalogRepository struct {
	s *Store
}

// --------------------------------------------------
// helpers (caller holds s.mu)
// --------------------------------------------------

func (r *CatalogRepository) stylistsOf(serviceID uint) []models.Stylist {
	var out []models.Stylist
	for l := range r.s.d.links {
		if l.serviceID != serviceID {
			continue
		}
		if st, ok := r.s.d.stylists[l.stylistID]; ok {
			out = append(out, st)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *CatalogRepository) servicesOf(stylistID uint) []models.Service {
	var out []models.Service
	for l := range r.s.d.links {
		if l.stylistID != stylistID {
			continue
		}
		if sv, ok := r.s.d.services[l.serviceID]; ok {
			out = append(out, sv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func stripService(s models.Service) models.Service {
	s.Stylists, s.Bookings = nil, nil
	return s
}

func stripStylist(s models.Stylist) models.Stylist {
	s.Services, s.Bookings, s.Reviews = nil, nil, nil
	return s
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *CatalogRepository) ListServices(_ context.Context) ([]models.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	list := make([]models.Service, 0, len(r.s.d.services))
	for _, sv := range r.s.d.services {
		sv.Stylists = r.stylistsOf(sv.ID)
		list = append(list, sv)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *CatalogRepository) GetService(_ context.Context, id uint) (*models.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sv, ok := r.s.d.services[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	sv.Stylists = r.stylistsOf(id)
	return &sv, nil
}

func (r *CatalogRepository) CreateService(ctx context.Context, s *models.Service) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	s.ID = r.s.nextID("services")
	put(ctx, r.s.d.services, s.ID, stripService(*s))
	return nil
}

func (r *CatalogRepository) SaveService(ctx context.Context, s *models.Service) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.d.services[s.ID]; !ok {
		return domain.ErrNotFound
	}
	put(ctx, r.s.d.services, s.ID, stripService(*s))
	return nil
}

func (r *CatalogRepository) DeleteService(ctx context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.d.services[id]; !ok {
		return domain.ErrNotFound
	}
	for bid, b := range r.s.d.bookings {
		if b.ServiceID == id {
			del(ctx, r.s.d.bookings, bid)
		}
	}
	for l := range r.s.d.links {
		if l.serviceID == id {
			del(ctx, r.s.d.links, l)
		}
	}
	del(ctx, r.s.d.services, id)
	return nil
}

func (r *CatalogRepository) FindServicesByIDs(_ context.Context, ids []uint) ([]models.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	list := []models.Service{}
	seen := map[uint]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if sv, ok := r.s.d.services[id]; ok {
			list = append(list, sv)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// --------------------------------------------------
// Stylists
// --------------------------------------------------

func (r *CatalogRepository) ListStylists(_ context.Context) ([]models.Stylist, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	list := make([]models.Stylist, 0, len(r.s.d.stylists))
	for _, st := range r.s.d.stylists {
		st.Services = r.servicesOf(st.ID)
		list = append(list, st)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *CatalogRepository) GetStylist(_ context.Context, id uint) (*models.Stylist, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	st, ok := r.s.d.stylists[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	st.Services = r.servicesOf(id)
	return &st, nil
}

func (r *CatalogRepository) CreateStylist(
	ctx context.Context,
	s *models.Stylist,
	services []models.Service,
) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	s.ID = r.s.nextID("stylists")
	put(ctx, r.s.d.stylists, s.ID, stripStylist(*s))
	for _, sv := range services {
		put(ctx, r.s.d.links, link{stylistID: s.ID, serviceID: sv.ID}, struct{}{})
	}
	s.Services = services
	return nil
}

func (r *CatalogRepository) SaveStylist(ctx context.Context, s *models.Stylist) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.d.stylists[s.ID]; !ok {
		return domain.ErrNotFound
	}
	put(ctx, r.s.d.stylists, s.ID, stripStylist(*s))
	return nil
}

func (r *CatalogRepository) ReplaceStylistServices(
	ctx context.Context,
	stylistID uint,
	services []models.Service,
) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for l := range r.s.d.links {
		if l.stylistID == stylistID {
			del(ctx, r.s.d.links, l)
		}
	}
	for _, sv := range services {
		put(ctx, r.s.d.links, link{stylistID: stylistID, serviceID: sv.ID}, struct{}{})
	}
	return nil
}

func (r *CatalogRepository) DeleteStylist(ctx context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.d.stylists[id]; !ok {
		return domain.ErrNotFound
	}
	for rid, rv := range r.s.d.reviews {
		if rv.StylistID == id {
			del(ctx, r.s.d.reviews, rid)
		}
	}
	for bid, b := range r.s.d.bookings {
		if b.StylistID == id {
			del(ctx, r.s.d.bookings, bid)
		}
	}
	for l := range r.s.d.links {
		if l.stylistID == id {
			del(ctx, r.s.d.links, l)
		}
	}
	del(ctx, r.s.d.stylists, id)
	return nil
}

func (r *CatalogRepository) StylistOffersService(_ context.Context, stylistID, serviceID uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	_, ok := r.s.d.links[link{stylistID: stylistID, serviceID: serviceID}]
	return ok, nil
}

var _ catalog.Repository = (*CatalogRepository)(nil)
