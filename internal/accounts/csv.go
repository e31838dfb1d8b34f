package accounts

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/cleared-dev/ledgercheck/internal/model"
)

const (
	numFields  = 5
	dateFormat = "2006-01-02"
	colName    = 0
	colType    = 1
	colOpened  = 2
	colFile    = 3
	colLine    = 4
)

// ReadAccounts reads an accounts CSV written by WriteAccounts.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var accts []model.Account
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accts = append(accts, acct)
	}
	return accts, nil
}

// WriteAccounts writes accounts as CSV, header first.
func WriteAccounts(w io.Writer, accts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"account", "type", "opened", "file", "line"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(acct model.Account) []string {
	row := make([]string, numFields)
	row[colName] = acct.Name
	row[colType] = string(acct.Type)
	if !acct.Opened.IsZero() {
		row[colOpened] = acct.Opened.Format(dateFormat)
	}
	row[colFile] = acct.Location.File
	if acct.Location.Line > 0 {
		row[colLine] = strconv.Itoa(acct.Location.Line)
	}
	return row
}

// UnmarshalAccount converts a CSV row to an Account.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != numFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	var opened time.Time
	if record[colOpened] != "" {
		var err error
		opened, err = time.Parse(dateFormat, record[colOpened])
		if err != nil {
			return model.Account{}, fmt.Errorf("parsing opened %q: %w", record[colOpened], err)
		}
	}

	var line int
	if record[colLine] != "" {
		var err error
		line, err = strconv.Atoi(record[colLine])
		if err != nil {
			return model.Account{}, fmt.Errorf("parsing line %q: %w", record[colLine], err)
		}
	}

	return model.Account{
		Name:     record[colName],
		Type:     model.AccountType(record[colType]),
		Opened:   opened,
		Location: model.Location{File: record[colFile], Line: line},
	}, nil
}
