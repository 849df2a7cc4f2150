package service

import (
	"strconv"
	"strings"

	"github.com/padaria-criativa/catalog/internal/catalog/model"
	logx "github.com/padaria-criativa/catalog/pkg/logger"
	"github.com/shopspring/decimal"
)

// CancelToken cancels the daily offer selection.
const CancelToken = "c"

// OfferOutcome says how a daily offer selection ended.
type OfferOutcome int

const (
	OfferSelected OfferOutcome = iota
	OfferNoCatalog
	OfferNoStock
	OfferCancelled
	OfferInvalidSelection
)

func (o OfferOutcome) String() string {
	switch o {
	case OfferSelected:
		return "selected"
	case OfferNoCatalog:
		return "no_catalog"
	case OfferNoStock:
		return "no_stock"
	case OfferCancelled:
		return "cancelled"
	case OfferInvalidSelection:
		return "invalid_selection"
	default:
		return "unknown(" + strconv.Itoa(int(o)) + ")"
	}
}

// OfferPrompter asks the user which product to promote and by how much.
type OfferPrompter interface {
	// ChooseProduct shows the eligible products numbered from 1 and returns
	// the raw answer.
	ChooseProduct(eligible model.Catalog) (string, error)
	DiscountPercent(p model.Product) (string, error)
}

// OfferResult carries the Offer when Outcome is OfferSelected.
type OfferResult struct {
	Outcome OfferOutcome
	Offer   *model.Offer
	// DiscountFellBack is set when a discount was typed but rejected and the
	// default was used instead.
	DiscountFellBack bool
}

// SelectDailyOffer lets the user pick one in-stock product and computes its
// discounted price. It never changes the catalog.
func (s *Service) SelectDailyOffer(prompter OfferPrompter) (OfferResult, error) {
	c := s.store.Load()
	if len(c) == 0 {
		return OfferResult{Outcome: OfferNoCatalog}, nil
	}

	eligible := c.InStock()
	if len(eligible) == 0 {
		return OfferResult{Outcome: OfferNoStock}, nil
	}

	answer, err := prompter.ChooseProduct(eligible)
	if err != nil {
		return OfferResult{}, err
	}

	idx, outcome := ParseSelection(answer, len(eligible))
	if outcome != OfferSelected {
		logx.Debug().Str("answer", answer).Stringer("outcome", outcome).Msg("daily offer not selected")
		return OfferResult{Outcome: outcome}, nil
	}
	product := eligible[idx]

	text, err := prompter.DiscountPercent(product)
	if err != nil {
		return OfferResult{}, err
	}
	percent, fellBack := s.ParseDiscount(text)

	offer := model.NewOffer(product, percent)
	logx.Info().
		Str("name", offer.Name).
		Str("percent", offer.DiscountPercent.String()).
		Str("price", offer.DiscountedPrice.StringFixed(2)).
		Msg("daily offer selected")

	return OfferResult{
		Outcome:          OfferSelected,
		Offer:            &offer,
		DiscountFellBack: fellBack,
	}, nil
}

// ParseSelection turns the user's answer into a zero-based index into a list
// of n products.
func ParseSelection(answer string, n int) (int, OfferOutcome) {
	answer = strings.TrimSpace(answer)
	if strings.EqualFold(answer, CancelToken) {
		return 0, OfferCancelled
	}
	i, err := strconv.Atoi(answer)
	if err != nil || i < 1 || i > n {
		return 0, OfferInvalidSelection
	}
	return i - 1, OfferSelected
}

// ParseDiscount reads a discount percent in [0,100]. Blank input gives the
// configured default; anything else that is not a valid percent also gives
// the default and reports fellBack.
func (s *Service) ParseDiscount(text string) (percent decimal.Decimal, fellBack bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return s.defaultDiscount, false
	}
	d, err := model.ParseAmount(text)
	if err != nil || d.IsNegative() || d.GreaterThan(hundred) {
		return s.defaultDiscount, true
	}
	return d, false
}

var hundred = decimal.NewFromInt(100)
