package application

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/motorentals/moto-rentals-api/internal/domain/entity"
	repo "github.com/motorentals/moto-rentals-api/internal/domain/repository"
)

// In-memory repository fakes. They keep just enough behavior for the
// services under test, including the conditional transitions of the ledger.

type fakeUserRepo struct {
	users  map[string]*entity.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.nextID++
	u.ID = fmt.Sprintf("user-%d", f.nextID)
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) List(_ context.Context, fl repo.ListFilter) ([]entity.User, int64, error) {
	var out []entity.User
	for _, u := range f.users {
		if fl.Search == "" || strings.Contains(strings.ToLower(u.Email), strings.ToLower(fl.Search)) {
			out = append(out, *u)
		}
	}
	return paginate(out, fl), int64(len(out)), nil
}

func (f *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

type fakeMotorcycleRepo struct {
	motorcycles map[string]*entity.Motorcycle
	nextID      int
}

func newFakeMotorcycleRepo() *fakeMotorcycleRepo {
	return &fakeMotorcycleRepo{motorcycles: map[string]*entity.Motorcycle{}}
}

func (f *fakeMotorcycleRepo) Create(_ context.Context, m *entity.Motorcycle) error {
	f.nextID++
	m.ID = fmt.Sprintf("moto-%d", f.nextID)
	if m.Status == "" {
		m.Status = entity.MotorcycleAvailable
	}
	cp := *m
	f.motorcycles[m.ID] = &cp
	return nil
}

func (f *fakeMotorcycleRepo) GetByID(_ context.Context, id string) (*entity.Motorcycle, error) {
	m, ok := f.motorcycles[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeMotorcycleRepo) Update(_ context.Context, m *entity.Motorcycle) error {
	if _, ok := f.motorcycles[m.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *m
	f.motorcycles[m.ID] = &cp
	return nil
}

func (f *fakeMotorcycleRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.motorcycles[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.motorcycles, id)
	return nil
}

func (f *fakeMotorcycleRepo) List(_ context.Context, fl repo.ListFilter) ([]entity.Motorcycle, int64, error) {
	var out []entity.Motorcycle
	for _, m := range f.motorcycles {
		if fl.Search == "" || strings.Contains(strings.ToLower(m.Name), strings.ToLower(fl.Search)) {
			out = append(out, *m)
		}
	}
	return paginate(out, fl), int64(len(out)), nil
}

func (f *fakeMotorcycleRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.motorcycles)), nil
}

func (f *fakeMotorcycleRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	var n int64
	for _, m := range f.motorcycles {
		if m.Status == status {
			n++
		}
	}
	return n, nil
}

// fakeRentalRepo mirrors the real implementation's conditional transitions
// against the fake motorcycle store.
type fakeRentalRepo struct {
	motorcycles *fakeMotorcycleRepo
	rentals     map[string]*entity.Rental
	nextID      int
}

func newFakeRentalRepo(motorcycles *fakeMotorcycleRepo) *fakeRentalRepo {
	return &fakeRentalRepo{motorcycles: motorcycles, rentals: map[string]*entity.Rental{}}
}

func (f *fakeRentalRepo) CreateAndMarkRented(_ context.Context, r *entity.Rental) error {
	m, ok := f.motorcycles.motorcycles[r.MotorcycleID]
	if !ok || m.Status != entity.MotorcycleAvailable {
		return repo.ErrMotorcycleUnavailable
	}
	m.Status = entity.MotorcycleRented

	f.nextID++
	r.ID = fmt.Sprintf("rental-%d", f.nextID)
	r.Status = entity.RentalOngoing
	cp := *r
	f.rentals[r.ID] = &cp
	return nil
}

func (f *fakeRentalRepo) CompleteAndRelease(_ context.Context, id string) error {
	r, ok := f.rentals[id]
	if !ok || r.Status != entity.RentalOngoing {
		return repo.ErrRentalNotOngoing
	}
	r.Status = entity.RentalCompleted
	if m, ok := f.motorcycles.motorcycles[r.MotorcycleID]; ok {
		m.Status = entity.MotorcycleAvailable
	}
	return nil
}

func (f *fakeRentalRepo) GetByID(_ context.Context, id string) (*entity.Rental, error) {
	r, ok := f.rentals[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRentalRepo) ListByUser(_ context.Context, userID string) ([]entity.RentalEntry, error) {
	var out []entity.RentalEntry
	for _, r := range f.rentals {
		if r.UserID == userID {
			out = append(out, f.entry(r))
		}
	}
	return out, nil
}

func (f *fakeRentalRepo) ListAll(_ context.Context) ([]entity.RentalEntry, error) {
	var out []entity.RentalEntry
	for _, r := range f.rentals {
		out = append(out, f.entry(r))
	}
	return out, nil
}

func (f *fakeRentalRepo) entry(r *entity.Rental) entity.RentalEntry {
	name := "Unknown"
	company := "Unknown"
	image := ""
	if m, ok := f.motorcycles.motorcycles[r.MotorcycleID]; ok {
		name, company, image = m.Name, m.Company, m.Image
	}
	return entity.RentalEntry{
		ID:                r.ID,
		MotorcycleName:    name,
		MotorcycleCompany: company,
		MotorcycleImage:   image,
		StartDate:         r.StartDate,
		EndDate:           r.EndDate,
		Status:            r.Status,
		TotalPrice:        r.TotalPrice,
	}
}

// paginate applies LIMIT/OFFSET semantics the way the SQL stores do: a page
// past the end yields an empty slice, never an error.
func paginate[T any](items []T, f repo.ListFilter) []T {
	f = f.Normalize()
	off := f.Offset()
	if off >= len(items) {
		return []T{}
	}
	end := off + f.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[off:end]
}

// failingMotorcycleRepo simulates a store outage on reads and deletes.
type failingMotorcycleRepo struct {
	*fakeMotorcycleRepo
	err error
}

func (f *failingMotorcycleRepo) GetByID(context.Context, string) (*entity.Motorcycle, error) {
	return nil, f.err
}

func (f *failingMotorcycleRepo) Delete(context.Context, string) error {
	return f.err
}

type failingRentalRepo struct {
	*fakeRentalRepo
	err error
}

func (f *failingRentalRepo) GetByID(context.Context, string) (*entity.Rental, error) {
	return nil, f.err
}

type failingUserRepo struct {
	*fakeUserRepo
	err error
}

func (f *failingUserRepo) GetByID(context.Context, string) (*entity.User, error) {
	return nil, f.err
}

func (f *failingUserRepo) GetByEmail(context.Context, string) (*entity.User, error) {
	return nil, f.err
}

// duplicateUserRepo loses the insert race: Create always hits the unique
// email constraint.
type duplicateUserRepo struct {
	*fakeUserRepo
}

func (duplicateUserRepo) Create(context.Context, *entity.User) error {
	return repo.ErrDuplicate
}

// fakeUploader records uploads without touching storage.
type fakeUploader struct {
	uploads []string
	err     error
}

func (f *fakeUploader) Upload(_ context.Context, folder, filename, _ string, r io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	_, _ = io.Copy(io.Discard, r)
	path := "/uploads/" + folder + "/" + filename
	f.uploads = append(f.uploads, path)
	return path, nil
}
