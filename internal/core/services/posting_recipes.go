package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/branch_ledger/internal/apperrors"
	"github.com/SscSPs/branch_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/branch_ledger/internal/core/ports/services"
	"github.com/SscSPs/branch_ledger/internal/dto"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// OpenCeiling posts Dr customer_credit_account / Cr customer account in the local currency.
func (s *postingService) OpenCeiling(ctx context.Context, pr portssvc.PostingRequest, req dto.OpenCeilingRequest) (*domain.PostingResult, error) {
	if req.AccountID <= 0 {
		return nil, apperrors.NewValidationError("account_id is required")
	}
	if !req.CeilingAmount.IsPositive() {
		return nil, apperrors.NewValidationError("ceiling_amount must be greater than zero")
	}

	return s.withPosting(ctx, pr, "open_ceiling", func(ctx context.Context, pt *postingTx) (*posting, error) {
		local, err := s.localCurrency(ctx, pt.tx)
		if err != nil {
			return nil, err
		}
		if req.CurrencyID != nil && *req.CurrencyID != local.ID {
			return nil, apperrors.NewValidationError("ceilings are granted in the local currency %s", local.Code)
		}
		creditAccount, err := pt.settings.Require(domain.SettingCustomerCreditAccount)
		if err != nil {
			return nil, err
		}

		date := dateOr(req.CeilingDate, pt.now)
		ceiling := domain.Ceiling{
			AccountID:   req.AccountID,
			CurrencyID:  local.ID,
			Amount:      req.CeilingAmount,
			CeilingDate: date,
			Notes:       req.Notes,
			BranchID:    pt.branchID,
			AuditFields: domain.AuditFields{CreatedAt: pt.now, CreatedBy: pt.actor.ID},
		}

		return &posting{
			journalType:   domain.JournalCeiling,
			referenceType: domain.RefCeiling,
			date:          date,
			notes:         req.Notes,
			legs: []leg{
				debitLeg(creditAccount, local.ID, req.CeilingAmount),
				creditLeg(req.AccountID, local.ID, req.CeilingAmount),
			},
			record: func(ctx context.Context, tx pgx.Tx) (int64, error) {
				return s.ceilingRepo.CreateCeilingInTx(ctx, tx, ceiling)
			},
		}, nil
	})
}

// FundGuarantee posts Dr cash box or bank / Cr customer_guarantee_account for amount*rate in the
// local currency and appends a guarantee move.
func (s *postingService) FundGuarantee(ctx context.Context, pr portssvc.PostingRequest, req dto.FundGuaranteeRequest) (*domain.PostingResult, error) {
	source := domain.MoneySource{CashBoxID: req.CashBoxID, BankID: req.BankID}
	switch {
	case req.GuaranteeID <= 0:
		return nil, apperrors.NewValidationError("guarantee_id is required")
	case req.CurrencyID <= 0:
		return nil, apperrors.NewValidationError("currency_id is required")
	case !req.Amount.IsPositive():
		return nil, apperrors.NewValidationError("amount must be greater than zero")
	case !hasSource(source):
		return nil, apperrors.NewValidationError("either cash_box_id or bank_id is required")
	}

	return s.withPosting(ctx, pr, "fund_guarantee", func(ctx context.Context, pt *postingTx) (*posting, error) {
		guarantee, err := s.guaranteeRepo.FindGuaranteeInTx(ctx, pt.tx, req.GuaranteeID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewResolutionError("guarantee %d does not exist", req.GuaranteeID)
			}
			return nil, s.storeError(ctx, err, "failed to load guarantee")
		}
		if pt.actor.IsAdminBranch && pt.override == nil {
			pt.branchID = guarantee.BranchID
		}
		if guarantee.BranchID != pt.branchID {
			return nil, apperrors.NewNotFoundError("guarantee not found")
		}

		cur, err := s.requireCurrency(ctx, pt.tx, req.CurrencyID)
		if err != nil {
			return nil, err
		}
		local, err := s.localCurrency(ctx, pt.tx)
		if err != nil {
			return nil, err
		}

		rate := decimal.NewFromInt(1)
		if !cur.IsLocal {
			if req.Rate == nil {
				return nil, apperrors.NewValidationError("rate is required for currency %s", cur.Code)
			}
			rate = *req.Rate
			if err := checkRate(cur, rate); err != nil {
				return nil, err
			}
		}

		guaranteeAccount, err := pt.settings.Require(domain.SettingCustomerGuaranteeAccount)
		if err != nil {
			return nil, err
		}
		sourceAccount, err := s.resolveSource(ctx, pt.tx, source)
		if err != nil {
			return nil, err
		}

		date := dateOr(req.MoveDate, pt.now)
		base := req.Amount.Mul(rate)
		move := domain.CustomerGuaranteeMove{
			GuaranteeID: guarantee.ID,
			CurrencyID:  cur.ID,
			Amount:      req.Amount,
			Rate:        rate,
			AmountBase:  base,
			CashBoxID:   req.CashBoxID,
			BankID:      req.BankID,
			MoveDate:    date,
			Notes:       req.Notes,
			BranchID:    pt.branchID,
			AuditFields: domain.AuditFields{CreatedAt: pt.now, CreatedBy: pt.actor.ID},
		}

		return &posting{
			journalType:   domain.JournalGuarantee,
			referenceType: domain.RefGuaranteeMove,
			date:          date,
			notes:         req.Notes,
			legs: []leg{
				debitLeg(sourceAccount, local.ID, base),
				creditLeg(guaranteeAccount, local.ID, base),
			},
			record: func(ctx context.Context, tx pgx.Tx) (int64, error) {
				return s.guaranteeRepo.CreateMoveInTx(ctx, tx, move)
			},
		}, nil
	})
}

// ExchangeCurrency posts Dr from-account in the from-currency / Cr to-account in the to-currency.
// The two legs are valued independently.
func (s *postingService) ExchangeCurrency(ctx context.Context, pr portssvc.PostingRequest, req dto.ExchangeCurrencyRequest) (*domain.PostingResult, error) {
	switch {
	case req.FromAccountID <= 0 || req.ToAccountID <= 0:
		return nil, apperrors.NewValidationError("from_account_id and to_account_id are required")
	case req.FromCurrencyID <= 0 || req.ToCurrencyID <= 0:
		return nil, apperrors.NewValidationError("from_currency_id and to_currency_id are required")
	case req.FromCurrencyID == req.ToCurrencyID:
		return nil, apperrors.NewValidationError("an exchange needs two different currencies")
	case !req.FromAmount.IsPositive() || !req.ToAmount.IsPositive():
		return nil, apperrors.NewValidationError("from_amount and to_amount must be greater than zero")
	case !req.Rate.IsPositive():
		return nil, apperrors.NewValidationError("rate must be greater than zero")
	}

	return s.withPosting(ctx, pr, "exchange_currency", func(ctx context.Context, pt *postingTx) (*posting, error) {
		from, err := s.requireCurrency(ctx, pt.tx, req.FromCurrencyID)
		if err != nil {
			return nil, err
		}
		to, err := s.requireCurrency(ctx, pt.tx, req.ToCurrencyID)
		if err != nil {
			return nil, err
		}

		// the rate is quoted for the foreign side of the exchange
		bounded := from
		if from.IsLocal {
			bounded = to
		}
		if err := checkRate(bounded, req.Rate); err != nil {
			return nil, err
		}

		date := dateOr(req.ExchangeDate, pt.now)
		exchange := domain.CurrencyExchange{
			FromAccountID:  req.FromAccountID,
			ToAccountID:    req.ToAccountID,
			FromCurrencyID: from.ID,
			ToCurrencyID:   to.ID,
			FromAmount:     req.FromAmount,
			ToAmount:       req.ToAmount,
			Rate:           req.Rate,
			ExchangeDate:   date,
			Notes:          req.Notes,
			BranchID:       pt.branchID,
			AuditFields:    domain.AuditFields{CreatedAt: pt.now, CreatedBy: pt.actor.ID},
		}

		return &posting{
			journalType:   domain.JournalExchange,
			referenceType: domain.RefExchange,
			date:          date,
			notes:         req.Notes,
			crossCurrency: true,
			legs: []leg{
				debitLeg(req.FromAccountID, from.ID, req.FromAmount),
				creditLeg(req.ToAccountID, to.ID, req.ToAmount),
			},
			record: func(ctx context.Context, tx pgx.Tx) (int64, error) {
				return s.exchangeRepo.CreateExchangeInTx(ctx, tx, exchange)
			},
		}, nil
	})
}

// CreateVoucher posts a receipt (Dr source / Cr counter-account) or a payment (Dr counter-account
// / Cr source). The voucher number is drawn inside the same transaction.
func (s *postingService) CreateVoucher(ctx context.Context, pr portssvc.PostingRequest, kind domain.VoucherKind, req dto.VoucherRequest) (*domain.PostingResult, error) {
	source := domain.MoneySource{CashBoxID: req.CashBoxID, BankID: req.BankID}
	switch {
	case kind != domain.VoucherReceipt && kind != domain.VoucherPayment:
		return nil, apperrors.NewValidationError("unknown voucher kind %q", kind)
	case req.CounterAccountID <= 0:
		return nil, apperrors.NewValidationError("counter_account_id is required")
	case req.CurrencyID <= 0:
		return nil, apperrors.NewValidationError("currency_id is required")
	case !req.Amount.IsPositive():
		return nil, apperrors.NewValidationError("amount must be greater than zero")
	case !hasSource(source):
		return nil, apperrors.NewValidationError("either cash_box_id or bank_id is required")
	}

	return s.withPosting(ctx, pr, "create_"+string(kind)+"_voucher", func(ctx context.Context, pt *postingTx) (*posting, error) {
		cur, err := s.requireCurrency(ctx, pt.tx, req.CurrencyID)
		if err != nil {
			return nil, err
		}
		sourceAccount, err := s.resolveSource(ctx, pt.tx, source)
		if err != nil {
			return nil, err
		}

		date := dateOr(req.VoucherDate, pt.now)
		voucher := domain.Voucher{
			Kind:             kind,
			CashBoxID:        req.CashBoxID,
			BankID:           req.BankID,
			CounterAccountID: req.CounterAccountID,
			CurrencyID:       cur.ID,
			Amount:           req.Amount,
			VoucherDate:      date,
			Notes:            req.Notes,
			BranchID:         pt.branchID,
			CostCenterID:     req.CostCenterID,
			AuditFields:      domain.AuditFields{CreatedAt: pt.now, CreatedBy: pt.actor.ID},
		}

		legs := []leg{
			debitLeg(sourceAccount, cur.ID, req.Amount),
			creditLeg(req.CounterAccountID, cur.ID, req.Amount),
		}
		if kind == domain.VoucherPayment {
			legs = []leg{
				debitLeg(req.CounterAccountID, cur.ID, req.Amount),
				creditLeg(sourceAccount, cur.ID, req.Amount),
			}
		}

		p := &posting{
			journalType:   voucher.JournalType(),
			referenceType: voucher.ReferenceType(),
			date:          date,
			notes:         req.Notes,
			costCenterID:  req.CostCenterID,
			legs:          legs,
		}
		p.record = func(ctx context.Context, tx pgx.Tx) (int64, error) {
			no, err := s.voucherRepo.NextVoucherNoInTx(ctx, tx)
			if err != nil {
				return 0, err
			}
			voucher.VoucherNo = no
			p.voucherNo = &no
			return s.voucherRepo.CreateVoucherInTx(ctx, tx, voucher)
		}
		return p, nil
	})
}

// UpdateOrderStatus transitions an order. A manual order reaching shipping for the first time is
// posted as Dr customer side (total) / Cr restaurant (items subtotal) / Cr courier commission
// (delivery fee). The ledger_posted flag is checked and set under the order row lock.
func (s *postingService) UpdateOrderStatus(ctx context.Context, pr portssvc.PostingRequest, orderID int64, status domain.OrderStatus) (*domain.PostingResult, error) {
	if orderID <= 0 {
		return nil, apperrors.NewValidationError("order id is required")
	}
	if !status.Valid() {
		return nil, apperrors.NewValidationError("unknown order status %q", status)
	}

	return s.withPosting(ctx, pr, "update_order_status", func(ctx context.Context, pt *postingTx) (*posting, error) {
		order, err := s.orderRepo.FindOrderForUpdateInTx(ctx, pt.tx, orderID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewNotFoundError("order not found")
			}
			return nil, s.storeError(ctx, err, "failed to lock order", slog.Int64("order_id", orderID))
		}

		if pt.actor.IsAdminBranch && pt.override == nil {
			// rows follow the order's branch unless an admin names one explicitly
			pt.branchID = order.BranchID
		}
		if order.BranchID != pt.branchID {
			return nil, apperrors.NewNotFoundError("order not found")
		}

		statusOnly := &posting{
			referenceType: domain.RefOrder,
			record: func(ctx context.Context, tx pgx.Tx) (int64, error) {
				return order.ID, s.orderRepo.UpdateOrderStatusInTx(ctx, tx, order.ID, status, order.LedgerPosted)
			},
		}
		if !order.IsManual || status != domain.OrderShipping || order.LedgerPosted {
			return statusOnly, nil
		}

		return s.orderPosting(ctx, pt, order, status)
	})
}

func (s *postingService) orderPosting(ctx context.Context, pt *postingTx, order *domain.Order, status domain.OrderStatus) (*posting, error) {
	if order.ItemsSubtotal.IsNegative() || order.DeliveryFee.IsNegative() || !order.Total.IsPositive() {
		return nil, apperrors.NewValidationError("order %d has no positive total to post", order.ID)
	}
	if !order.Total.Equal(order.ItemsSubtotal.Add(order.DeliveryFee)) {
		return nil, apperrors.NewValidationError("order %d total %s does not equal items subtotal plus delivery fee", order.ID, order.Total.String())
	}

	var currencyID int64
	if order.CurrencyID != nil && *order.CurrencyID > 0 {
		cur, err := s.requireCurrency(ctx, pt.tx, *order.CurrencyID)
		if err != nil {
			return nil, err
		}
		currencyID = cur.ID
	} else {
		local, err := s.localCurrency(ctx, pt.tx)
		if err != nil {
			return nil, err
		}
		currencyID = local.ID
	}

	customerAccount, err := s.customerSideAccount(ctx, pt, order)
	if err != nil {
		return nil, err
	}

	legs := []leg{debitLeg(customerAccount, currencyID, order.Total)}

	if order.ItemsSubtotal.IsPositive() {
		vendorAccount, err := s.vendorAccount(ctx, pt, order)
		if err != nil {
			return nil, err
		}
		legs = append(legs, creditLeg(vendorAccount, currencyID, order.ItemsSubtotal))
	}
	if order.DeliveryFee.IsPositive() {
		courierAccount, err := pt.settings.Require(domain.SettingCourierCommissionAccount)
		if err != nil {
			return nil, err
		}
		legs = append(legs, creditLeg(courierAccount, currencyID, order.DeliveryFee))
	}

	return &posting{
		journalType:   domain.JournalOrder,
		referenceType: domain.RefOrder,
		date:          pt.now,
		notes:         "order shipped",
		legs:          legs,
		record: func(ctx context.Context, tx pgx.Tx) (int64, error) {
			return order.ID, s.orderRepo.UpdateOrderStatusInTx(ctx, tx, order.ID, status, true)
		},
	}, nil
}

// customerSideAccount is the customer's own account for cash orders and the customer's
// guarantee account for wallet orders.
func (s *postingService) customerSideAccount(ctx context.Context, pt *postingTx, order *domain.Order) (int64, error) {
	if order.CustomerID == nil || *order.CustomerID <= 0 {
		return 0, apperrors.NewResolutionError("order %d has no customer to charge", order.ID)
	}
	customerID := *order.CustomerID

	if order.PaymentMethod == domain.PaymentWallet {
		guarantee, err := s.guaranteeRepo.FindGuaranteeByCustomerInTx(ctx, pt.tx, customerID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return 0, apperrors.NewResolutionError("customer %d has no guarantee for a wallet order", customerID)
			}
			return 0, s.storeError(ctx, err, "failed to load customer guarantee")
		}
		if guarantee.AccountID != nil && *guarantee.AccountID > 0 {
			return *guarantee.AccountID, nil
		}
		return pt.settings.Require(domain.SettingCustomerGuaranteeAccount)
	}

	customer, err := s.partyRepo.FindCustomerInTx(ctx, pt.tx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, apperrors.NewResolutionError("customer %d does not exist", customerID)
		}
		return 0, s.storeError(ctx, err, "failed to load customer")
	}
	if customer.AccountID == nil || *customer.AccountID <= 0 {
		return 0, apperrors.NewResolutionError("customer %s is not mapped to an account", customer.Name)
	}
	return *customer.AccountID, nil
}

// vendorAccount is the restaurant's account, or default_vendor_account when the order has no
// restaurant account.
func (s *postingService) vendorAccount(ctx context.Context, pt *postingTx, order *domain.Order) (int64, error) {
	if order.RestaurantID != nil && *order.RestaurantID > 0 {
		restaurant, err := s.partyRepo.FindRestaurantInTx(ctx, pt.tx, *order.RestaurantID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return 0, s.storeError(ctx, err, "failed to load restaurant")
		}
		if err == nil && restaurant.AccountID != nil && *restaurant.AccountID > 0 {
			return *restaurant.AccountID, nil
		}
	}
	return pt.settings.Require(domain.SettingDefaultVendorAccount)
}
