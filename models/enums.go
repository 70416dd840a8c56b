package models

type ProductType string

const (
	ProductVoucher          ProductType = "voucher"
	ProductExternalProvider ProductType = "external_provider"
)

type ExternalProviderType string

const (
	ProviderDigiflazz ExternalProviderType = "digiflazz"
	ProviderManual    ExternalProviderType = "manual"
)

type TransactionType string

const (
	TrxDeposit    TransactionType = "deposit"
	TrxPurchase   TransactionType = "purchase"
	TrxRefund     TransactionType = "refund"
	TrxWithdrawal TransactionType = "withdrawal"
)

// IsDebit reports whether the type takes money out of the wallet.
func (t TransactionType) IsDebit() bool {
	return t == TrxPurchase || t == TrxWithdrawal
}

func (t TransactionType) Valid() bool {
	switch t {
	case TrxDeposit, TrxPurchase, TrxRefund, TrxWithdrawal:
		return true
	}
	return false
}

type PaymentMethod string

const (
	MethodWallet               PaymentMethod = "wallet"
	MethodDuitkuBankTransfer   PaymentMethod = "duitku_bank_transfer"
	MethodDuitkuEwallet        PaymentMethod = "duitku_ewallet"
	MethodDuitkuVirtualAccount PaymentMethod = "duitku_virtual_account"
	MethodDuitkuCreditCard     PaymentMethod = "duitku_credit_card"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodWallet, MethodDuitkuBankTransfer, MethodDuitkuEwallet,
		MethodDuitkuVirtualAccount, MethodDuitkuCreditCard:
		return true
	}
	return false
}
