package catalog

import (
	"fmt"
	"sort"
	"strings"

	pkgerrors "github.com/shopvibe/storefront-backend/pkg/errors"
)

// Service exposes read-only catalog derivations.
type Service interface {
	List(params ListParams) []Product
	Get(productID string) (Product, error)
	Featured() []Product
	Categories() []string
}

type service struct {
	products []Product
	byID     map[string]Product
}

// NewService builds a catalog service over a fixed product list.
func NewService(products []Product) (Service, error) {
	if len(products) == 0 {
		return nil, fmt.Errorf("catalog requires at least one product")
	}
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog product without id")
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate catalog product id %q", p.ID)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("catalog product %q has negative price", p.ID)
		}
		if p.OriginalPrice != nil && *p.OriginalPrice < p.Price {
			return nil, fmt.Errorf("catalog product %q original price below price", p.ID)
		}
		byID[p.ID] = p
	}
	return &service{
		products: append([]Product(nil), products...),
		byID:     byID,
	}, nil
}

// List applies every active filter conjunctively, then a stable sort per the
// selected key. Relevance keeps catalog order; ties always keep relative
// input order.
func (s *service) List(params ListParams) []Product {
	filtered := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if matches(p, params) {
			filtered = append(filtered, p)
		}
	}

	switch params.SortBy {
	case SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	case SortRating:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
	case SortPopularity:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].ReviewCount > filtered[j].ReviewCount
		})
	case SortName:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Name < filtered[j].Name
		})
	}

	return filtered
}

func matches(p Product, params ListParams) bool {
	if params.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(params.Search)) {
		return false
	}
	if params.PriceMin != nil && p.Price < *params.PriceMin {
		return false
	}
	if params.PriceMax != nil && p.Price > *params.PriceMax {
		return false
	}
	if len(params.Categories) > 0 && !containsString(params.Categories, p.Category) {
		return false
	}
	if len(params.MinRatings) > 0 && !meetsAnyRating(p.Rating, params.MinRatings) {
		return false
	}
	if params.InStockOnly && !p.InStock {
		return false
	}
	return true
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func meetsAnyRating(rating float64, thresholds []float64) bool {
	for _, threshold := range thresholds {
		if rating >= threshold {
			return true
		}
	}
	return false
}

// Get returns the product with the given identifier.
func (s *service) Get(productID string) (Product, error) {
	if p, ok := s.byID[productID]; ok {
		return p, nil
	}
	return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

// Featured returns the products flagged for the home page, in catalog order.
func (s *service) Featured() []Product {
	featured := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured
}

// Categories returns the distinct categories in catalog order.
func (s *service) Categories() []string {
	seen := map[string]struct{}{}
	categories := make([]string, 0, len(s.products))
	for _, p := range s.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories
}
