package models

// TransactionKind distinguishes money coming in from money going out.
type TransactionKind string

const (
	TransactionIncome  TransactionKind = "income"
	TransactionExpense TransactionKind = "expense"
)

// Transaction is a single ledger entry. Entries are append-only; Date carries
// a TimestampLayout string.
type Transaction struct {
	Date        string          `json:"date"`
	Kind        TransactionKind `json:"kind"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
}

// Ledger holds the full transaction history plus the running balance. The
// balance is updated in the same save as each append, so it always equals
// sum(income) - sum(expense) over Transactions.
type Ledger struct {
	Transactions []Transaction `json:"transactions"`
	Balance      float64       `json:"balance"`
}
