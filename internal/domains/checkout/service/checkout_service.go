package service

import (
	"convenience-store/internal/domains/catalog/repository"
	"convenience-store/pkg/clock"
)

type CheckoutService struct {
	store      repository.RepositoryInterface
	clock      clock.Clock
	calculator *DiscountCalculator
}

func NewCheckoutService(
	store repository.RepositoryInterface,
	c clock.Clock,
	calculator *DiscountCalculator,
) ServiceInterface {
	if store == nil {
		panic("store is required")
	}
	if c == nil {
		c = clock.System{}
	}
	if calculator == nil {
		calculator = NewDiscountCalculator(DefaultMembershipRate, DefaultMembershipCap)
	}
	return &CheckoutService{
		store:      store,
		clock:      c,
		calculator: calculator,
	}
}
