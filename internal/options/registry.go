package options

import (
	"errors"
	"fmt"

	"github.com/cleared-dev/ledgercheck/internal/accounts"
)

// Key identifies a registered option.
type Key int

const (
	NameAssets Key = iota
	NameLiabilities
	NameEquity
	NameIncome
	NameExpenses
	AccountPreviousBalances
	AccountPreviousEarnings
	AccountPreviousConversions
	AccountCurrentEarnings
	AccountCurrentConversions
	PluginProcessingMode

	numKeys
)

// String returns the option name as written in ledger source.
func (k Key) String() string {
	if k < 0 || k >= numKeys {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return registry[k].Name
}

// Descriptor documents one option and knows how to validate its values.
type Descriptor struct {
	Key         Key
	Name        string
	Kind        ValueKind
	Default     Value
	Legal       []string // enum options only
	Description string

	parse func(raw string) Value
	check func(v Value) error
}

// Validate converts a raw option value into a typed Value. Rejected
// values return a *ValueError.
func (d Descriptor) Validate(raw string) (Value, error) {
	v := d.parse(raw)
	if err := d.check(v); err != nil {
		return nil, &ValueError{Option: d.Name, Value: raw, Reason: err.Error()}
	}
	return v, nil
}

// Check validates an already typed value, as written by Config.Put.
func (d Descriptor) Check(v Value) error {
	if v == nil {
		return &ValueError{Option: d.Name, Reason: "missing value"}
	}
	if err := d.check(v); err != nil {
		return &ValueError{Option: d.Name, Value: v.String(), Reason: err.Error()}
	}
	return nil
}

var (
	registry = buildRegistry()
	byName   = indexByName(registry)
)

func buildRegistry() []Descriptor {
	return []Descriptor{
		rootName(NameAssets, "name_assets", "Assets",
			"Root name of asset accounts."),
		rootName(NameLiabilities, "name_liabilities", "Liabilities",
			"Root name of liability accounts."),
		rootName(NameEquity, "name_equity", "Equity",
			"Root name of equity accounts. The special previous and current period accounts are created under this root."),
		rootName(NameIncome, "name_income", "Income",
			"Root name of income accounts."),
		rootName(NameExpenses, "name_expenses", "Expenses",
			"Root name of expense accounts."),
		subAccount(AccountPreviousBalances, "account_previous_balances", "Opening-Balances",
			"Account under the equity root that receives the balances carried over from previous periods when the ledger is summarized."),
		subAccount(AccountPreviousEarnings, "account_previous_earnings", "Earnings:Previous",
			"Account under the equity root that receives the net income of previous periods when they are closed."),
		subAccount(AccountPreviousConversions, "account_previous_conversions", "Conversions:Previous",
			"Account under the equity root that absorbs currency conversion residuals of previous periods."),
		subAccount(AccountCurrentEarnings, "account_current_earnings", "Earnings:Current",
			"Account under the equity root that receives the net income of the current period when it is closed."),
		subAccount(AccountCurrentConversions, "account_current_conversions", "Conversions:Current",
			"Account under the equity root that absorbs currency conversion residuals of the current period."),
		{
			Key:         PluginProcessingMode,
			Name:        "plugin_processing_mode",
			Kind:        KindEnum,
			Default:     ProcessingDefault,
			Legal:       processingModeNames(),
			Description: "How plugins are applied after parsing. \"default\" runs the built-in plugins before the ones declared in the ledger; \"raw\" runs only the declared plugins.",
			parse:       func(raw string) Value { return ProcessingMode(raw) },
			check: func(v Value) error {
				m, ok := v.(ProcessingMode)
				if !ok {
					return fmt.Errorf("expected processing mode, got %T", v)
				}
				_, err := ParseProcessingMode(string(m))
				return err
			},
		},
	}
}

func rootName(key Key, name, def, desc string) Descriptor {
	return Descriptor{
		Key:         key,
		Name:        name,
		Kind:        KindRootName,
		Default:     Text(def),
		Description: desc + " Renaming it only affects directives that follow the option.",
		parse:       func(raw string) Value { return Text(raw) },
		check: func(v Value) error {
			t, ok := v.(Text)
			if !ok {
				return fmt.Errorf("expected text, got %T", v)
			}
			if !accounts.IsValidRoot(string(t)) {
				return errors.New("not a valid account root")
			}
			return nil
		},
	}
}

func subAccount(key Key, name, def, desc string) Descriptor {
	return Descriptor{
		Key:         key,
		Name:        name,
		Kind:        KindSubAccount,
		Default:     Text(def),
		Description: desc,
		parse:       func(raw string) Value { return Text(raw) },
		check: func(v Value) error {
			t, ok := v.(Text)
			if !ok {
				return fmt.Errorf("expected text, got %T", v)
			}
			if !accounts.IsValidSubName(string(t)) {
				return errors.New("not a valid account name below a root")
			}
			return nil
		},
	}
}

func indexByName(descs []Descriptor) map[string]Key {
	idx := make(map[string]Key, len(descs))
	for i, d := range descs {
		if d.Key != Key(i) {
			panic("options registry out of order at " + d.Name)
		}
		if _, dup := idx[d.Name]; dup {
			panic("duplicate option: " + d.Name)
		}
		idx[d.Name] = d.Key
	}
	return idx
}

// Lookup returns the descriptor registered under name.
func Lookup(name string) (Descriptor, bool) {
	k, ok := byName[name]
	if !ok {
		return Descriptor{}, false
	}
	return registry[k], true
}

// Describe returns the descriptor for key.
func Describe(key Key) Descriptor {
	return registry[key]
}

// Descriptors returns every registered option in registry order.
func Descriptors() []Descriptor {
	out := make([]Descriptor, len(registry))
	copy(out, registry)
	return out
}

// Parse validates raw as a value for the option called name.
func Parse(name, raw string) (Key, Value, error) {
	d, ok := Lookup(name)
	if !ok {
		return 0, nil, unknownOption(name)
	}
	v, err := d.Validate(raw)
	if err != nil {
		return 0, nil, err
	}
	return d.Key, v, nil
}

var rootKeys = []Key{NameAssets, NameLiabilities, NameEquity, NameIncome, NameExpenses}
