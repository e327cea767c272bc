// Package ledgerrepo persists native and token balances and token allowances.
//
// Amounts are stored as base-10 text and computed in Go with 256-bit arithmetic.
// Every mutation first materializes the row with a zero balance, then locks it
// with SELECT ... FOR UPDATE, so concurrent writers serialize per account.
package ledgerrepo

// Balance tables share one row shape.
const (
	NativeBalancesTable = "native_balances"
	TokenBalancesTable  = "token_balances"
)

// BalanceDTO is the row shape of NativeBalancesTable and TokenBalancesTable.
type BalanceDTO struct {
	Account string `gorm:"type:varchar(42);primaryKey"`
	Amount  string `gorm:"type:varchar(78);not null"`
}

// AllowanceDTO is the amount spender may still pull from owner.
type AllowanceDTO struct {
	Owner   string `gorm:"type:varchar(42);primaryKey"`
	Spender string `gorm:"type:varchar(42);primaryKey"`
	Amount  string `gorm:"type:varchar(78);not null"`
}

func (AllowanceDTO) TableName() string {
	return "token_allowances"
}
