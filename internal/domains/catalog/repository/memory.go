package repository

import (
	"fmt"

	"convenience-store/internal/domains/catalog/model"

	"github.com/rs/zerolog/log"
)

type batchIndex struct {
	promotional int // -1 nếu không có
	regular     int // -1 nếu không có
}

// MemoryStore giữ catalog trong memory, thuộc sở hữu của một session duy nhất
type MemoryStore struct {
	products   []model.Product
	promotions []model.Promotion

	byName      map[string]*batchIndex
	promoByName map[string]int
}

// NewMemoryStore tạo store và kiểm tra invariant:
// mỗi tên sản phẩm có tối đa 1 batch khuyến mãi + 1 batch thường, cùng giá;
// tên promotion không trùng.
func NewMemoryStore(products []model.Product, promotions []model.Promotion) (*MemoryStore, error) {
	s := &MemoryStore{
		products:    make([]model.Product, len(products)),
		promotions:  make([]model.Promotion, len(promotions)),
		byName:      make(map[string]*batchIndex),
		promoByName: make(map[string]int),
	}
	copy(s.products, products)
	copy(s.promotions, promotions)

	for i := range s.products {
		p := &s.products[i]
		idx, ok := s.byName[p.Name]
		if !ok {
			idx = &batchIndex{promotional: -1, regular: -1}
			s.byName[p.Name] = idx
		}

		// Các batch cùng tên phải cùng giá
		other := idx.promotional
		if other < 0 {
			other = idx.regular
		}
		if other >= 0 && !s.products[other].Price.Equal(p.Price) {
			return nil, fmt.Errorf("%w: %s (%s vs %s)", model.ErrPriceMismatch, p.Name, s.products[other].Price, p.Price)
		}

		if p.IsPromotional() {
			if idx.promotional >= 0 {
				return nil, model.NewDuplicateBatchError(p.Name, true)
			}
			idx.promotional = i
		} else {
			if idx.regular >= 0 {
				return nil, model.NewDuplicateBatchError(p.Name, false)
			}
			idx.regular = i
		}
	}

	for i, promo := range s.promotions {
		if _, exists := s.promoByName[promo.Name]; exists {
			return nil, fmt.Errorf("%w: %s", model.ErrDuplicatePromotion, promo.Name)
		}
		s.promoByName[promo.Name] = i
	}

	return s, nil
}

func (s *MemoryStore) Products() []model.Product {
	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *MemoryStore) Promotions() []model.Promotion {
	out := make([]model.Promotion, len(s.promotions))
	copy(out, s.promotions)
	return out
}

func (s *MemoryStore) FindStock(name string) (model.ProductStock, error) {
	idx, ok := s.byName[name]
	if !ok {
		return model.ProductStock{}, fmt.Errorf("%w: %s", model.ErrProductNotFound, name)
	}

	stock := model.ProductStock{Name: name}
	if idx.promotional >= 0 {
		p := s.products[idx.promotional]
		stock.Promotional = &p
	}
	if idx.regular >= 0 {
		p := s.products[idx.regular]
		stock.Regular = &p
	}
	return stock, nil
}

func (s *MemoryStore) FindPromotion(name string) (*model.Promotion, bool) {
	i, ok := s.promoByName[name]
	if !ok {
		return nil, false
	}
	promo := s.promotions[i]
	return &promo, true
}

func (s *MemoryStore) ApplyStockChanges(changes []model.StockChange) error {
	// PHASE 1: validate toàn bộ (không trừ gì)
	pending := make(map[int]int) // product index -> tổng lượng trừ
	for _, c := range changes {
		idx, ok := s.byName[c.Name]
		if !ok {
			return fmt.Errorf("%w: %s", model.ErrProductNotFound, c.Name)
		}
		if err := s.stage(pending, c.Name, idx.promotional, c.PromotionalDelta); err != nil {
			return err
		}
		if err := s.stage(pending, c.Name, idx.regular, c.RegularDelta); err != nil {
			return err
		}
	}

	// PHASE 2: apply
	for i, delta := range pending {
		s.products[i].Quantity -= delta
	}

	log.Debug().Int("changes", len(changes)).Msg("Stock changes applied")
	return nil
}

func (s *MemoryStore) stage(pending map[int]int, name string, i, delta int) error {
	if delta == 0 {
		return nil
	}
	available := 0
	if i >= 0 {
		available = s.products[i].Quantity - pending[i]
	}
	if delta < 0 || i < 0 || delta > available {
		return model.NewNegativeStockError(name, available, delta)
	}
	pending[i] += delta
	return nil
}
