package options

import "github.com/cleared-dev/ledgercheck/internal/accounts"

// GetAccountTypes returns the active account roots of cfg.
func GetAccountTypes(cfg *Config) accounts.Types {
	return accounts.Types{
		Assets:      cfg.Text(NameAssets),
		Liabilities: cfg.Text(NameLiabilities),
		Equity:      cfg.Text(NameEquity),
		Income:      cfg.Text(NameIncome),
		Expenses:    cfg.Text(NameExpenses),
	}
}

// GetPreviousAccounts returns the previous-period special accounts:
// opening balances, earnings, conversions.
func GetPreviousAccounts(cfg *Config) []string {
	equity := GetAccountTypes(cfg).Equity
	return []string{
		accounts.Join(equity, cfg.Text(AccountPreviousBalances)),
		accounts.Join(equity, cfg.Text(AccountPreviousEarnings)),
		accounts.Join(equity, cfg.Text(AccountPreviousConversions)),
	}
}

// GetCurrentAccounts returns the current-period special accounts:
// earnings, conversions.
func GetCurrentAccounts(cfg *Config) []string {
	equity := GetAccountTypes(cfg).Equity
	return []string{
		accounts.Join(equity, cfg.Text(AccountCurrentEarnings)),
		accounts.Join(equity, cfg.Text(AccountCurrentConversions)),
	}
}
