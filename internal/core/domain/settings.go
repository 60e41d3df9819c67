package domain

import (
	"github.com/SscSPs/branch_ledger/internal/apperrors"
)

// SettingKey names one transit account of the settings row.
type SettingKey string

const (
	SettingCustomerCreditAccount    SettingKey = "customer_credit_account"
	SettingCustomerGuaranteeAccount SettingKey = "customer_guarantee_account"
	SettingCourierCommissionAccount SettingKey = "courier_commission_account"
	SettingCommissionIncomeAccount  SettingKey = "commission_income_account"
	SettingTransferGuaranteeAccount SettingKey = "transfer_guarantee_account"
	SettingCurrencyExchangeAccount  SettingKey = "currency_exchange_account"
	SettingDefaultVendorAccount     SettingKey = "default_vendor_account"
)

// Settings holds the transit accounts used as one leg of specific postings.
// It is read inside every posting transaction and passed explicitly; it is never cached.
type Settings struct {
	CustomerCreditAccount    *int64 `json:"customerCreditAccount,omitempty"`
	CustomerGuaranteeAccount *int64 `json:"customerGuaranteeAccount,omitempty"`
	CourierCommissionAccount *int64 `json:"courierCommissionAccount,omitempty"`
	CommissionIncomeAccount  *int64 `json:"commissionIncomeAccount,omitempty"`
	TransferGuaranteeAccount *int64 `json:"transferGuaranteeAccount,omitempty"`
	CurrencyExchangeAccount  *int64 `json:"currencyExchangeAccount,omitempty"`
	DefaultVendorAccount     *int64 `json:"defaultVendorAccount,omitempty"`
}

// Lookup returns the configured account for key, if any.
func (s Settings) Lookup(key SettingKey) (int64, bool) {
	var v *int64
	switch key {
	case SettingCustomerCreditAccount:
		v = s.CustomerCreditAccount
	case SettingCustomerGuaranteeAccount:
		v = s.CustomerGuaranteeAccount
	case SettingCourierCommissionAccount:
		v = s.CourierCommissionAccount
	case SettingCommissionIncomeAccount:
		v = s.CommissionIncomeAccount
	case SettingTransferGuaranteeAccount:
		v = s.TransferGuaranteeAccount
	case SettingCurrencyExchangeAccount:
		v = s.CurrencyExchangeAccount
	case SettingDefaultVendorAccount:
		v = s.DefaultVendorAccount
	}
	if v == nil || *v <= 0 {
		return 0, false
	}
	return *v, true
}

// Require returns the configured account for key or a validation error naming the missing
// transit account.
func (s Settings) Require(key SettingKey) (int64, error) {
	id, ok := s.Lookup(key)
	if !ok {
		return 0, apperrors.NewValidationError("settings: %s is not configured", key)
	}
	return id, nil
}
