package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/branch_ledger/internal/apperrors"
	"github.com/SscSPs/branch_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/branch_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/branch_ledger/internal/core/ports/services"
	"github.com/SscSPs/branch_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// commissionService derives commission figures. It never writes.
type commissionService struct {
	BaseService
	repo portsrepo.CommissionRepository
	now  func() time.Time
}

// CommissionServiceOption is a functional option for configuring the commission service
type CommissionServiceOption func(*commissionService)

// WithCommissionClock replaces the clock that decides which contracts are active.
func WithCommissionClock(now func() time.Time) CommissionServiceOption {
	return func(s *commissionService) {
		s.now = now
	}
}

// NewCommissionService creates a new CommissionService.
func NewCommissionService(repo portsrepo.CommissionRepository, options ...CommissionServiceOption) portssvc.CommissionSvc {
	svc := &commissionService{repo: repo, now: time.Now}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CommissionSvc = (*commissionService)(nil)

// Report computes per-order restaurant and captain commissions and the per-captain totals.
// Restaurant flat contracts pay per matched line item, captain flat contracts pay per order.
func (s *commissionService) Report(ctx context.Context, scope domain.BranchScope, query domain.CommissionQuery) (*domain.CommissionReport, error) {
	if query.FromDate != nil && query.ToDate != nil && query.FromDate.After(*query.ToDate) {
		return nil, apperrors.NewValidationError("from_date must not be after to_date")
	}

	orders, err := s.repo.ListCommissionOrders(ctx, scope, query)
	if err != nil {
		return nil, s.storeError(ctx, err, "failed to list commission orders")
	}
	contracts, err := s.repo.ListContracts(ctx, scope)
	if err != nil {
		return nil, s.storeError(ctx, err, "failed to list commission contracts")
	}

	restaurantContracts, captainContracts := activeContracts(contracts, s.now())

	report := &domain.CommissionReport{
		Orders:          make([]domain.OrderCommission, 0, len(orders)),
		Captains:        []domain.CaptainCommissionTotal{},
		RestaurantTotal: decimal.Zero,
		CaptainTotal:    decimal.Zero,
	}

	type captainAgg struct {
		count int64
		sum   decimal.Decimal
	}
	perCaptain := make(map[int64]*captainAgg)

	for _, o := range orders {
		oc := domain.OrderCommission{
			OrderID:              o.OrderID,
			RestaurantID:         o.RestaurantID,
			CaptainID:            o.CaptainID,
			RestaurantCommission: decimal.Zero,
			CaptainCommission:    decimal.Zero,
		}

		if o.RestaurantID != nil {
			if c, ok := restaurantContracts[*o.RestaurantID]; ok {
				oc.RestaurantCommission = restaurantCommission(c, o)
			}
		}
		if o.CaptainID != nil {
			if c, ok := captainContracts[*o.CaptainID]; ok {
				oc.CaptainCommission = captainCommission(c, o)
				agg, ok := perCaptain[*o.CaptainID]
				if !ok {
					agg = &captainAgg{sum: decimal.Zero}
					perCaptain[*o.CaptainID] = agg
				}
				agg.count++
				agg.sum = agg.sum.Add(oc.CaptainCommission)
			}
		}

		report.RestaurantTotal = report.RestaurantTotal.Add(oc.RestaurantCommission)
		oc.RestaurantCommission = accounting.Round2(oc.RestaurantCommission)
		oc.CaptainCommission = accounting.Round2(oc.CaptainCommission)
		report.Orders = append(report.Orders, oc)
	}

	for captainID, agg := range perCaptain {
		c := captainContracts[captainID]
		total := agg.sum
		if c.Kind == domain.CommissionFlat {
			total = c.Value.Mul(decimal.NewFromInt(agg.count))
		}
		report.CaptainTotal = report.CaptainTotal.Add(total)
		report.Captains = append(report.Captains, domain.CaptainCommissionTotal{
			CaptainID:  captainID,
			OrderCount: agg.count,
			Commission: accounting.Round2(total),
		})
	}
	sort.Slice(report.Captains, func(i, j int) bool { return report.Captains[i].CaptainID < report.Captains[j].CaptainID })

	report.RestaurantTotal = accounting.Round2(report.RestaurantTotal)
	report.CaptainTotal = accounting.Round2(report.CaptainTotal)

	s.LogDebug(ctx, "Commission report computed",
		slog.Int("orders", len(report.Orders)),
		slog.Int("captains", len(report.Captains)))
	return report, nil
}

// activeContracts indexes the contracts active on now by party id. When a party has more than one
// active contract the one that started last wins.
func activeContracts(contracts []domain.CommissionContract, now time.Time) (restaurants, captains map[int64]domain.CommissionContract) {
	restaurants = make(map[int64]domain.CommissionContract)
	captains = make(map[int64]domain.CommissionContract)
	for _, c := range contracts {
		if !c.ActiveOn(now) {
			continue
		}
		target := restaurants
		if c.Party == domain.PartyCaptain {
			target = captains
		}
		if prev, ok := target[c.PartyID]; ok && !c.ContractStart.After(prev.ContractStart) {
			continue
		}
		target[c.PartyID] = c
	}
	return restaurants, captains
}

func restaurantCommission(c domain.CommissionContract, o domain.CommissionOrder) decimal.Decimal {
	if c.Kind == domain.CommissionPercentage {
		return o.ItemsSubtotal.Mul(c.Value).Div(hundred)
	}
	return c.Value.Mul(decimal.NewFromInt(o.LineItemCount))
}

func captainCommission(c domain.CommissionContract, o domain.CommissionOrder) decimal.Decimal {
	if c.Kind == domain.CommissionPercentage {
		return o.DeliveryFee.Mul(c.Value).Div(hundred)
	}
	return c.Value
}
