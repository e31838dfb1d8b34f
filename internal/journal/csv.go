// Package journal exports accepted ledger entries as CSV, one row per
// account reference.
package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgercheck/internal/model"
)

// Header is the CSV header written by WriteEntries.
const Header = "date,directive,account,number,currency,file,line"

const (
	numFields  = 7
	dateFormat = "2006-01-02"
	colDate    = 0
	colKind    = 1
	colAccount = 2
	colNumber  = 3
	colCurr    = 4
	colFile    = 5
	colLine    = 6
)

// Row is one exported line. Transactions yield one Row per posting; other
// directives one Row per referenced account, or a single Row with an
// empty Account when they reference none.
type Row struct {
	Date      time.Time
	Directive model.DirectiveKind
	Account   string
	Number    decimal.NullDecimal
	Currency  string
	Location  model.Location
}

// Rows maps a directive to its export rows.
func Rows(d model.Directive) []Row {
	base := Row{Directive: d.Kind(), Location: d.Location()}
	if dated, ok := d.(model.Dated); ok {
		base.Date = dated.EntryDate()
	}

	switch d := d.(type) {
	case *model.Transaction:
		if len(d.Postings) == 0 {
			return []Row{base}
		}
		rows := make([]Row, 0, len(d.Postings))
		for _, p := range d.Postings {
			r := base
			r.Account = p.Account
			if p.Amount != nil {
				r.Number = decimal.NewNullDecimal(p.Amount.Number)
				r.Currency = p.Amount.Currency
			}
			rows = append(rows, r)
		}
		return rows
	case *model.Balance:
		base.Account = d.Account
		base.Number = decimal.NewNullDecimal(d.Amount.Number)
		base.Currency = d.Amount.Currency
		return []Row{base}
	case *model.Open:
		base.Account = d.Account
		base.Currency = strings.Join(d.Currencies, ",")
		return []Row{base}
	case *model.Commodity:
		base.Currency = d.Currency
		return []Row{base}
	}

	accts := d.Accounts()
	if len(accts) == 0 {
		return []Row{base}
	}
	rows := make([]Row, len(accts))
	for i, a := range accts {
		rows[i] = base
		rows[i].Account = a
	}
	return rows
}

// MarshalRows converts a directive to CSV records.
func MarshalRows(d model.Directive) [][]string {
	rows := Rows(d)
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = MarshalRow(r)
	}
	return out
}

// WriteEntries writes the rows of every entry, header first.
func WriteEntries(w io.Writer, entries []model.Directive) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	line := 2
	for _, e := range entries {
		for _, rec := range MarshalRows(e) {
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("writing row %d: %w", line, err)
			}
			line++
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadRows reads rows written by WriteEntries.
func ReadRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading entries CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var rows []Row
	for i, rec := range records[1:] {
		row, err := UnmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// MarshalRow converts a Row to a CSV record.
func MarshalRow(r Row) []string {
	rec := make([]string, numFields)
	if !r.Date.IsZero() {
		rec[colDate] = r.Date.Format(dateFormat)
	}
	rec[colKind] = string(r.Directive)
	rec[colAccount] = r.Account
	if r.Number.Valid {
		rec[colNumber] = r.Number.Decimal.String()
	}
	rec[colCurr] = r.Currency
	rec[colFile] = r.Location.File
	if r.Location.Line > 0 {
		rec[colLine] = strconv.Itoa(r.Location.Line)
	}
	return rec
}

// UnmarshalRow converts a CSV record to a Row.
func UnmarshalRow(record []string) (Row, error) {
	if len(record) != numFields {
		return Row{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	var r Row
	if record[colDate] != "" {
		date, err := time.Parse(dateFormat, record[colDate])
		if err != nil {
			return Row{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
		}
		r.Date = date
	}

	if record[colNumber] != "" {
		num, err := decimal.NewFromString(record[colNumber])
		if err != nil {
			return Row{}, fmt.Errorf("parsing number %q: %w", record[colNumber], err)
		}
		r.Number = decimal.NewNullDecimal(num)
	}

	if record[colLine] != "" {
		line, err := strconv.Atoi(record[colLine])
		if err != nil {
			return Row{}, fmt.Errorf("parsing line %q: %w", record[colLine], err)
		}
		r.Location.Line = line
	}

	r.Directive = model.DirectiveKind(record[colKind])
	r.Account = record[colAccount]
	r.Currency = record[colCurr]
	r.Location.File = record[colFile]
	return r, nil
}
