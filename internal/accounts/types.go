package accounts

import (
	"fmt"

	"github.com/cleared-dev/ledgercheck/internal/model"
)

// Types holds the five active account root names.
type Types struct {
	Assets      string
	Liabilities string
	Equity      string
	Income      string
	Expenses    string
}

// DefaultTypes returns the standard English root names.
func DefaultTypes() Types {
	return Types{
		Assets:      "Assets",
		Liabilities: "Liabilities",
		Equity:      "Equity",
		Income:      "Income",
		Expenses:    "Expenses",
	}
}

// Roots returns the root names in canonical order.
func (t Types) Roots() []string {
	return []string{t.Assets, t.Liabilities, t.Equity, t.Income, t.Expenses}
}

// Root returns the root name configured for an account type.
func (t Types) Root(at model.AccountType) string {
	switch at {
	case model.AccountTypeAsset:
		return t.Assets
	case model.AccountTypeLiability:
		return t.Liabilities
	case model.AccountTypeEquity:
		return t.Equity
	case model.AccountTypeIncome:
		return t.Income
	case model.AccountTypeExpense:
		return t.Expenses
	}
	return ""
}

// TypeOf returns the account type of name's root, if the root is active.
func (t Types) TypeOf(name string) (model.AccountType, bool) {
	root := Root(name)
	for _, at := range model.AccountTypes {
		if t.Root(at) == root {
			return at, true
		}
	}
	return "", false
}

// IsValid reports whether name is a well-formed account under one of
// the active roots: a known root followed by at least one component.
func (t Types) IsValid(name string) bool {
	if _, ok := t.TypeOf(name); !ok {
		return false
	}
	parts := Split(name)
	if len(parts) < 2 {
		return false
	}
	for _, c := range parts[1:] {
		if !IsValidComponent(c) {
			return false
		}
	}
	return true
}

// Check verifies the record invariants: every root is a valid, non-empty
// root name and no two roots are equal.
func (t Types) Check() error {
	seen := make(map[string]model.AccountType, len(model.AccountTypes))
	for _, at := range model.AccountTypes {
		root := t.Root(at)
		if !IsValidRoot(root) {
			return fmt.Errorf("invalid %s root %q", at, root)
		}
		if other, dup := seen[root]; dup {
			return fmt.Errorf("%s root %q already used for %s", at, root, other)
		}
		seen[root] = at
	}
	return nil
}
