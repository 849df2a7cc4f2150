package service

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/padaria-criativa/catalog/internal/catalog/model"
	"github.com/padaria-criativa/catalog/internal/catalog/store"
	errx "github.com/padaria-criativa/catalog/internal/core/error"
	logx "github.com/padaria-criativa/catalog/pkg/logger"
	"github.com/shopspring/decimal"
)

// CatalogStore is the persistence the service depends on.
type CatalogStore interface {
	Load() model.Catalog
	Save(c model.Catalog) error
	Export(c model.Catalog, dest string) error
	ReadRaw() (string, error)
	Path() string
}

var _ CatalogStore = (*store.Store)(nil)

// Service implements the bakery operations. Every call loads the catalog
// afresh; nothing is cached between calls.
type Service struct {
	store           CatalogStore
	validate        *validator.Validate
	cfg             model.CatalogConfig
	defaultDiscount decimal.Decimal
}

func New(s CatalogStore, cfg model.CatalogConfig) *Service {
	return &Service{
		store:           s,
		validate:        validator.New(validator.WithRequiredStructEnabled()),
		cfg:             cfg,
		defaultDiscount: decimal.NewFromFloat(cfg.DefaultDiscount),
	}
}

// Register validates the raw user input and appends the product to the
// catalog. Validation failures are KindValidation and leave the file alone;
// a failed save is reported with the store's KindIO error.
func (s *Service) Register(name, priceText, stockText string) (model.Product, error) {
	p, err := s.parseProduct(name, priceText, stockText)
	if err != nil {
		logx.Debug().Err(err).Str("name", name).Msg("registration rejected")
		return model.Product{}, err
	}

	c := s.store.Load()
	c = append(c, p)
	if err := s.store.Save(c); err != nil {
		return model.Product{}, fmt.Errorf("register %q: %w", p.Name, err)
	}

	logx.Info().Str("name", p.Name).Float64("price", p.Price).Int("stock", p.Stock).Msg("product registered")
	return p, nil
}

// parseProduct reports the first problem in field order: name, price, stock.
func (s *Service) parseProduct(name, priceText, stockText string) (model.Product, error) {
	price, priceErr := parsePrice(priceText)
	stock, stockErr := strconv.Atoi(strings.TrimSpace(stockText))

	p := model.Product{
		Name:  strings.TrimSpace(name),
		Price: price,
		Stock: stock,
	}

	failed := make(map[string]bool)
	if err := s.validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return model.Product{}, err
		}
		for _, fe := range verrs {
			failed[fe.StructField()] = true
		}
	}

	switch {
	case failed["Name"]:
		return model.Product{}, errx.Validation(errx.ErrEmptyName)
	case priceErr != nil || failed["Price"]:
		return model.Product{}, errx.Validation(errx.ErrInvalidPrice)
	case stockErr != nil || failed["Stock"]:
		return model.Product{}, errx.Validation(errx.ErrInvalidStock)
	}
	return p, nil
}

func parsePrice(text string) (float64, error) {
	d, err := model.ParseAmount(text)
	if err != nil {
		return 0, err
	}
	f, _ := d.Float64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("%w: %s", model.ErrAmountRange, text)
	}
	return f, nil
}

// List returns the catalog in file order. An empty result means there is
// nothing registered yet.
func (s *Service) List() model.Catalog {
	return s.store.Load()
}

// LowStockReport returns, in catalog order, every product whose stock is
// strictly below threshold.
func (s *Service) LowStockReport(threshold int) model.Catalog {
	low := s.store.Load().Below(threshold)
	logx.Debug().Int("threshold", threshold).Int("matches", len(low)).Msg("low stock report")
	return low
}

// ParseThreshold reads a low-stock threshold. Blank input gives the configured
// default; invalid input also gives the default and reports fellBack.
func (s *Service) ParseThreshold(text string) (threshold int, fellBack bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return s.cfg.LowStockThreshold, false
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return s.cfg.LowStockThreshold, true
	}
	return n, false
}

// RawDocument returns the catalog file as stored, without parsing it.
func (s *Service) RawDocument() (string, error) {
	return s.store.ReadRaw()
}

// Export copies the current catalog to dest, or to the configured export
// file when dest is empty.
func (s *Service) Export(dest string) error {
	if dest == "" {
		dest = s.cfg.ExportFile
	}
	return s.store.Export(s.store.Load(), dest)
}

// DataPath is the catalog file the store reads and rewrites.
func (s *Service) DataPath() string {
	return s.store.Path()
}

func (s *Service) ExportPath() string {
	return s.cfg.ExportFile
}
