package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/motorentals/moto-rentals-api/internal/domain/entity"
	repo "github.com/motorentals/moto-rentals-api/internal/domain/repository"
	"github.com/motorentals/moto-rentals-api/pkg/uploader"
)

// CatalogService manages the motorcycle catalog. Postgres is authoritative;
// when an Elasticsearch client is configured the catalog is mirrored there
// best-effort for the dedicated search endpoint.
type CatalogService struct {
	Motorcycles repo.MotorcycleRepository
	Uploads     uploader.Uploader
	Logger      *logrus.Logger
	ES          *elasticsearch.Client
	ESIndex     string
}

func NewCatalogService(motorcycles repo.MotorcycleRepository, up uploader.Uploader, logger *logrus.Logger, es *elasticsearch.Client, esIndex string) *CatalogService {
	return &CatalogService{Motorcycles: motorcycles, Uploads: up, Logger: logger, ES: es, ESIndex: esIndex}
}

// CreateMotorcycleInput is a validated add request; Image is optional.
type CreateMotorcycleInput struct {
	Name        string
	Description string
	Company     string
	Price       float64
	Image       *DocumentUpload
	AddedBy     string
}

func (s *CatalogService) Create(ctx context.Context, in CreateMotorcycleInput) (*entity.Motorcycle, error) {
	m := &entity.Motorcycle{
		Name:        in.Name,
		Description: in.Description,
		Company:     in.Company,
		Price:       in.Price,
		Status:      entity.MotorcycleAvailable,
		AddedBy:     in.AddedBy,
	}
	if in.Image != nil {
		path, err := s.Uploads.Upload(ctx, "motorcycles", in.Image.Filename, in.Image.ContentType, in.Image.Reader)
		if err != nil {
			return nil, err
		}
		m.Image = path
	}
	if err := s.Motorcycles.Create(ctx, m); err != nil {
		return nil, err
	}
	s.index(ctx, m)
	return m, nil
}

// MotorcyclePatch applies only present fields. Status is deliberately not
// patchable here; only the rental ledger transitions it.
type MotorcyclePatch struct {
	Name        *string
	Description *string
	Company     *string
	Price       *float64
	Image       *DocumentUpload
}

// Update edits catalog attributes without checking outstanding rentals;
// repricing does not touch the recorded cost of ongoing rentals.
func (s *CatalogService) Update(ctx context.Context, id string, patch MotorcyclePatch) (*entity.Motorcycle, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		m.Name = *patch.Name
	}
	if patch.Description != nil {
		m.Description = *patch.Description
	}
	if patch.Company != nil {
		m.Company = *patch.Company
	}
	if patch.Price != nil {
		m.Price = *patch.Price
	}
	if patch.Image != nil {
		path, err := s.Uploads.Upload(ctx, "motorcycles", patch.Image.Filename, patch.Image.ContentType, patch.Image.Reader)
		if err != nil {
			return nil, err
		}
		m.Image = path
	}
	if err := s.Motorcycles.Update(ctx, m); err != nil {
		return nil, err
	}
	s.index(ctx, m)
	return m, nil
}

// Delete removes a catalog entry even when an outstanding rental references
// it; the rental keeps its historical motorcycle id.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if err := s.Motorcycles.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrMotorcycleNotFound
		}
		return err
	}
	s.deleteFromIndex(ctx, id)
	return nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (*entity.Motorcycle, error) {
	m, err := s.Motorcycles.GetByID(ctx, id)
	if err != nil || m == nil {
		if err != nil && !errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}
		return nil, ErrMotorcycleNotFound
	}
	return m, nil
}

func (s *CatalogService) List(ctx context.Context, f repo.ListFilter) ([]entity.Motorcycle, int64, int64, error) {
	f = f.Normalize()
	items, total, err := s.Motorcycles.List(ctx, f)
	if err != nil {
		return nil, 0, 0, err
	}
	return items, total, f.TotalPages(total), nil
}

func (s *CatalogService) index(ctx context.Context, m *entity.Motorcycle) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"id":          m.ID,
		"name":        m.Name,
		"description": m.Description,
		"company":     m.Company,
		"price":       m.Price,
		"status":      m.Status,
		"image":       m.Image,
		"updated_at":  m.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: m.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("motorcycle_id", m.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("motorcycle_id", m.ID).Warn("es index response error")
	}
}

func (s *CatalogService) deleteFromIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("motorcycle_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search runs a multi_match query against the mirrored catalog index.
// Returns an empty result when Elasticsearch is not configured.
func (s *CatalogService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "company", "description"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
