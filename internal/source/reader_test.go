package source

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgercheck/internal/ledger"
	"github.com/cleared-dev/ledgercheck/internal/model"
)

const sample = `; Renamed roots
option "name_assets" "Actif"
option "title" "ignored by the checker"

2014-01-01 commodity CAD
2014-01-04 open Actif:CA:RBC:CompteCourant CAD,USD "STRICT"
2014-01-04 open Income:Salary
2014-01-04 open Expenses:Food   ; groceries

2014-02-01 * "Employer" "Paie"
  Actif:CA:RBC:CompteCourant   1000.00 CAD
  Income:Salary

2014-02-02 txn "Lunch"
  Expenses:Food  12.50 CAD
  Actif:CA:RBC:CompteCourant
2014-03-01 balance Actif:CA:RBC:CompteCourant 987.50 CAD
2014-03-01 pad Actif:CA:RBC:CompteCourant Equity:Opening-Balances
2014-03-02 note Income:Salary "Raise \"soon\""
2014-03-03 document Expenses:Food "receipts/2014-03.pdf"
2014-12-31 close Expenses:Food
`

func TestRead(t *testing.T) {
	dirs, errs := Read(strings.NewReader(sample), "main.beancount")
	require.Empty(t, errs)
	require.Len(t, dirs, 13)

	opt, ok := dirs[0].(*model.Option)
	require.True(t, ok)
	assert.Equal(t, "name_assets", opt.Name)
	assert.Equal(t, "Actif", opt.Value)
	assert.Equal(t, model.Location{File: "main.beancount", Line: 2}, opt.Loc)

	com, ok := dirs[2].(*model.Commodity)
	require.True(t, ok)
	assert.Equal(t, "CAD", com.Currency)

	o, ok := dirs[3].(*model.Open)
	require.True(t, ok)
	assert.Equal(t, "Actif:CA:RBC:CompteCourant", o.Account)
	assert.Equal(t, []string{"CAD", "USD"}, o.Currencies)
	assert.Equal(t, "STRICT", o.Booking)
	assert.Equal(t, time.Date(2014, 1, 4, 0, 0, 0, 0, time.UTC), o.Date)

	food, ok := dirs[5].(*model.Open)
	require.True(t, ok)
	assert.Equal(t, "Expenses:Food", food.Account)
	assert.Empty(t, food.Currencies)

	txn, ok := dirs[6].(*model.Transaction)
	require.True(t, ok)
	assert.Equal(t, "*", txn.Flag)
	assert.Equal(t, "Employer", txn.Payee)
	assert.Equal(t, "Paie", txn.Narration)
	assert.Equal(t, 10, txn.Loc.Line)
	require.Len(t, txn.Postings, 2)
	require.NotNil(t, txn.Postings[0].Amount)
	assert.True(t, decimal.RequireFromString("1000").Equal(txn.Postings[0].Amount.Number))
	assert.Equal(t, "CAD", txn.Postings[0].Amount.Currency)
	assert.Nil(t, txn.Postings[1].Amount)

	lunch, ok := dirs[7].(*model.Transaction)
	require.True(t, ok)
	assert.Equal(t, "*", lunch.Flag)
	assert.Empty(t, lunch.Payee)
	assert.Equal(t, "Lunch", lunch.Narration)
	assert.Equal(t, []string{"Expenses:Food", "Actif:CA:RBC:CompteCourant"}, lunch.Accounts())

	bal, ok := dirs[8].(*model.Balance)
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString("987.5").Equal(bal.Amount.Number))

	pad, ok := dirs[9].(*model.Pad)
	require.True(t, ok)
	assert.Equal(t, "Equity:Opening-Balances", pad.Source)

	note, ok := dirs[10].(*model.Note)
	require.True(t, ok)
	assert.Equal(t, `Raise "soon"`, note.Comment)

	doc, ok := dirs[11].(*model.Document)
	require.True(t, ok)
	assert.Equal(t, "receipts/2014-03.pdf", doc.Path)

	cl, ok := dirs[12].(*model.Close)
	require.True(t, ok)
	assert.Equal(t, 21, cl.Loc.Line)
}

func TestRead_SyntaxErrors(t *testing.T) {
	input := strings.Join([]string{
		`option "name_assets"`,                 // 1
		`2014-01-04 open`,                      // 2
		`2014-13-40 open Assets:Cash`,          // 3
		`hello world`,                          // 4
		`2014-01-04 balance Assets:Cash x USD`, // 5
		`2014-01-04 frobnicate Assets:Cash`,    // 6
		`  Assets:Cash 10 USD`,                 // 7
		`2014-01-04 note Assets:Cash "open`,    // 8
		`2014-01-04 open Assets:Cash`,          // 9
	}, "\n")

	dirs, errs := Read(strings.NewReader(input), "bad.beancount")
	require.Len(t, dirs, 1)
	assert.Equal(t, 9, dirs[0].Location().Line)

	require.Len(t, errs, 8)
	for i, e := range errs {
		assert.Equal(t, model.ErrorSyntax, e.Kind)
		assert.Equal(t, i+1, e.Location.Line)
		assert.Equal(t, "bad.beancount", e.Location.File)
	}
	assert.Contains(t, errs[4].Message, `invalid number "x"`)
	assert.Contains(t, errs[5].Message, `unknown directive "frobnicate"`)
	assert.Contains(t, errs[6].Message, "unexpected indented line")
	assert.Contains(t, errs[7].Message, "unterminated string")
}

func TestRead_BadPostingKeepsTransaction(t *testing.T) {
	input := "2014-02-01 * \"Pay\"\n  Assets:Cash 10\n  Income:Salary\n"

	dirs, errs := Read(strings.NewReader(input), "")
	require.Len(t, errs, 1)
	assert.Equal(t, 2, errs[0].Location.Line)
	require.Len(t, dirs, 1)
	txn := dirs[0].(*model.Transaction)
	assert.Equal(t, []string{"Income:Salary"}, txn.Accounts())
}

func TestRead_Empty(t *testing.T) {
	dirs, errs := Read(strings.NewReader(""), "empty.beancount")
	assert.Empty(t, dirs)
	assert.Empty(t, errs)
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		line string
		want []token
	}{
		{``, nil},
		{`   ; only a comment`, nil},
		{`option "a" "b c"`, []token{{text: "option"}, {text: "a", quoted: true}, {text: "b c", quoted: true}}},
		{`x;y`, []token{{text: "x"}}},
		{`"a;b"`, []token{{text: "a;b", quoted: true}}},
		{`""`, []token{{text: "", quoted: true}}},
		{`a "b\\c"`, []token{{text: "a"}, {text: `b\c`, quoted: true}}},
	}
	for _, tt := range tests {
		got, err := tokenize(tt.line)
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.want, got, tt.line)
	}

	_, err := tokenize(`"abc`)
	assert.ErrorIs(t, err, errUnterminated)
}

func TestReadThenRun(t *testing.T) {
	dirs, errs := Read(strings.NewReader(sample), "main.beancount")
	require.Empty(t, errs)

	res := ledger.Run(dirs)

	// "title" is not a registered option; the pad source still uses the
	// default equity root and is valid.
	require.Len(t, res.Errors, 1)
	assert.Equal(t, model.ErrorUnknownOption, res.Errors[0].Kind)
	assert.Equal(t, 3, res.Errors[0].Location.Line)
	assert.Len(t, res.Entries, 11)
}
