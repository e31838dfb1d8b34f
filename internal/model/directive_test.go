package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDirectiveAccounts(t *testing.T) {
	amt := &Amount{Number: decimal.RequireFromString("-37.45"), Currency: "USD"}
	tests := []struct {
		name string
		d    Directive
		want []string
	}{
		{"option", &Option{Name: "name_assets", Value: "Actif"}, nil},
		{"open", &Open{Account: "Assets:Cash"}, []string{"Assets:Cash"}},
		{"close", &Close{Account: "Assets:Cash"}, []string{"Assets:Cash"}},
		{"pad", &Pad{Account: "Assets:Cash", Source: "Equity:Opening-Balances"}, []string{"Assets:Cash", "Equity:Opening-Balances"}},
		{"commodity", &Commodity{Currency: "USD"}, nil},
		{"empty transaction", &Transaction{}, nil},
		{
			"transaction",
			&Transaction{Postings: []Posting{
				{Account: "Liabilities:CreditCard", Amount: amt},
				{Account: "Expenses:Food"},
				{Account: "Expenses:Food"},
			}},
			[]string{"Liabilities:CreditCard", "Expenses:Food", "Expenses:Food"},
		},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.d.Accounts(), tt.name)
	}
}

func TestLocationString(t *testing.T) {
	assert.Equal(t, "main.beancount:12", Location{File: "main.beancount", Line: 12}.String())
	assert.Equal(t, "<input>:3", Location{Line: 3}.String())
	assert.Equal(t, "main.beancount", Location{File: "main.beancount"}.String())
	assert.False(t, Location{}.IsValid())
}

func TestErrorFormat(t *testing.T) {
	err := NewError(ErrorInvalidAccountName, Location{File: "a.bean", Line: 4}, "Invalid account name: %s", "Actif:Cash")
	assert.Equal(t, "a.bean:4: [InvalidAccountName] Invalid account name: Actif:Cash", err.Error())

	err = NewError(ErrorInvalidOptionValue, Location{}, "bad")
	assert.Equal(t, "[InvalidOptionValue] bad", err.Error())
}

func TestCountKind(t *testing.T) {
	errs := []Error{
		{Kind: ErrorInvalidAccountName},
		{Kind: ErrorUnknownOption},
		{Kind: ErrorInvalidAccountName},
	}
	assert.Equal(t, 2, CountKind(errs, ErrorInvalidAccountName))
	assert.Equal(t, 0, CountKind(errs, ErrorSyntax))
}
