package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Amount is a number of units of a currency.
type Amount struct {
	Number   decimal.Decimal
	Currency string
}

// Transaction is a dated entry moving amounts between accounts.
type Transaction struct {
	Loc       Location
	Date      time.Time
	Flag      string // "*" or "!"
	Payee     string
	Narration string
	Postings  []Posting
}

// Posting is one leg of a transaction. Amount is nil when it is left
// for the booking engine to infer.
type Posting struct {
	Account string
	Amount  *Amount
}

func (t *Transaction) Kind() DirectiveKind  { return KindTransaction }
func (t *Transaction) Location() Location   { return t.Loc }
func (t *Transaction) EntryDate() time.Time { return t.Date }

// Accounts returns the posting accounts in order, duplicates included.
func (t *Transaction) Accounts() []string {
	if len(t.Postings) == 0 {
		return nil
	}
	accts := make([]string, len(t.Postings))
	for i, p := range t.Postings {
		accts[i] = p.Account
	}
	return accts
}
