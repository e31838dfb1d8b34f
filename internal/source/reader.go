// Package source reads ledger text into directives.
//
// It understands a line-oriented subset of the beancount syntax: options,
// the dated account directives and transactions with simple postings.
// Lines it cannot parse become SyntaxError soft errors and reading
// continues with the next line.
package source

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgercheck/internal/model"
)

const dateFormat = "2006-01-02"

type token struct {
	text   string
	quoted bool
}

type reader struct {
	directives []model.Directive
	errs       []model.Error
	txn        *model.Transaction
}

// Read parses r. filename is used only for error locations.
func Read(r io.Reader, filename string) ([]model.Directive, []model.Error) {
	rd := &reader{}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		rd.line(sc.Text(), model.Location{File: filename, Line: line})
	}
	rd.flush()
	if err := sc.Err(); err != nil {
		rd.errs = append(rd.errs, model.NewError(model.ErrorSyntax,
			model.Location{File: filename, Line: line + 1}, "reading input: %v", err))
	}
	return rd.directives, rd.errs
}

func (rd *reader) fail(loc model.Location, format string, args ...any) {
	rd.errs = append(rd.errs, model.NewError(model.ErrorSyntax, loc, format, args...))
}

func (rd *reader) emit(d model.Directive) {
	rd.directives = append(rd.directives, d)
}

// flush emits the transaction being collected, if any.
func (rd *reader) flush() {
	if rd.txn != nil {
		rd.emit(rd.txn)
		rd.txn = nil
	}
}

func (rd *reader) line(text string, loc model.Location) {
	indented := text != "" && (text[0] == ' ' || text[0] == '\t')

	toks, err := tokenize(text)
	if err != nil {
		if !indented {
			rd.flush()
		}
		rd.fail(loc, "%v", err)
		return
	}
	if len(toks) == 0 {
		return
	}

	if indented {
		if rd.txn == nil {
			rd.fail(loc, "unexpected indented line")
			return
		}
		rd.posting(toks, loc)
		return
	}

	rd.flush()
	if !toks[0].quoted && toks[0].text == "option" {
		rd.option(toks, loc)
		return
	}
	rd.dated(toks, loc)
}

func (rd *reader) option(toks []token, loc model.Location) {
	if len(toks) != 3 || !toks[1].quoted || !toks[2].quoted {
		rd.fail(loc, `option: expected option "name" "value"`)
		return
	}
	rd.emit(&model.Option{Loc: loc, Name: toks[1].text, Value: toks[2].text})
}

func (rd *reader) dated(toks []token, loc model.Location) {
	date, err := time.Parse(dateFormat, toks[0].text)
	if err != nil || toks[0].quoted {
		rd.fail(loc, "unrecognized line starting with %q", toks[0].text)
		return
	}
	if len(toks) < 2 {
		rd.fail(loc, "missing directive after date")
		return
	}

	keyword, args := toks[1], toks[2:]
	if keyword.quoted {
		rd.fail(loc, "unexpected string %q after date", keyword.text)
		return
	}

	switch keyword.text {
	case "open":
		rd.open(date, args, loc)
	case "close":
		if !plain(args, 1) {
			rd.fail(loc, "close: expected account")
			return
		}
		rd.emit(&model.Close{Loc: loc, Date: date, Account: args[0].text})
	case "balance":
		if !plain(args, 3) {
			rd.fail(loc, "balance: expected account, number and currency")
			return
		}
		num, err := decimal.NewFromString(args[1].text)
		if err != nil {
			rd.fail(loc, "balance: invalid number %q", args[1].text)
			return
		}
		rd.emit(&model.Balance{Loc: loc, Date: date, Account: args[0].text,
			Amount: model.Amount{Number: num, Currency: args[2].text}})
	case "pad":
		if !plain(args, 2) {
			rd.fail(loc, "pad: expected account and source account")
			return
		}
		rd.emit(&model.Pad{Loc: loc, Date: date, Account: args[0].text, Source: args[1].text})
	case "note":
		if len(args) != 2 || args[0].quoted || !args[1].quoted {
			rd.fail(loc, `note: expected account "comment"`)
			return
		}
		rd.emit(&model.Note{Loc: loc, Date: date, Account: args[0].text, Comment: args[1].text})
	case "document":
		if len(args) != 2 || args[0].quoted || !args[1].quoted {
			rd.fail(loc, `document: expected account "path"`)
			return
		}
		rd.emit(&model.Document{Loc: loc, Date: date, Account: args[0].text, Path: args[1].text})
	case "commodity":
		if !plain(args, 1) {
			rd.fail(loc, "commodity: expected currency")
			return
		}
		rd.emit(&model.Commodity{Loc: loc, Date: date, Currency: args[0].text})
	case "*", "!", "txn":
		rd.transaction(date, keyword.text, args, loc)
	default:
		rd.fail(loc, "unknown directive %q", keyword.text)
	}
}

func (rd *reader) open(date time.Time, args []token, loc model.Location) {
	if len(args) == 0 || args[0].quoted {
		rd.fail(loc, "open: expected account")
		return
	}
	o := &model.Open{Loc: loc, Date: date, Account: args[0].text}

	rest := args[1:]
	if n := len(rest); n > 0 && rest[n-1].quoted {
		o.Booking = rest[n-1].text
		rest = rest[:n-1]
	}
	for _, t := range rest {
		if t.quoted {
			rd.fail(loc, "open: unexpected string %q", t.text)
			return
		}
		for _, cur := range strings.Split(t.text, ",") {
			if cur = strings.TrimSpace(cur); cur != "" {
				o.Currencies = append(o.Currencies, cur)
			}
		}
	}
	rd.emit(o)
}

func (rd *reader) transaction(date time.Time, flag string, args []token, loc model.Location) {
	if flag == "txn" {
		flag = "*"
	}
	t := &model.Transaction{Loc: loc, Date: date, Flag: flag}
	for _, a := range args {
		if !a.quoted {
			rd.fail(loc, "transaction: unexpected %q", a.text)
			return
		}
	}
	switch len(args) {
	case 1:
		t.Narration = args[0].text
	case 2:
		t.Payee, t.Narration = args[0].text, args[1].text
	default:
		rd.fail(loc, `transaction: expected ["payee"] "narration"`)
		return
	}
	rd.txn = t
}

func (rd *reader) posting(toks []token, loc model.Location) {
	if !plain(toks, 1) && !plain(toks, 3) {
		rd.fail(loc, "posting: expected account [number currency]")
		return
	}
	p := model.Posting{Account: toks[0].text}
	if len(toks) == 3 {
		num, err := decimal.NewFromString(toks[1].text)
		if err != nil {
			rd.fail(loc, "posting: invalid number %q", toks[1].text)
			return
		}
		p.Amount = &model.Amount{Number: num, Currency: toks[2].text}
	}
	rd.txn.Postings = append(rd.txn.Postings, p)
}

// plain reports whether toks has exactly n unquoted tokens.
func plain(toks []token, n int) bool {
	if len(toks) != n {
		return false
	}
	for _, t := range toks {
		if t.quoted {
			return false
		}
	}
	return true
}

var errUnterminated = errors.New("unterminated string")

// tokenize splits a line on whitespace. Double-quoted strings form one
// token and may contain \" and \\ escapes. A ';' outside a string starts
// a comment.
func tokenize(line string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(line) {
		c := line[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case c == ';':
			return toks, nil
		case c == '"':
			var sb strings.Builder
			i++
			closed := false
			for i < len(line) {
				c = line[i]
				if c == '\\' && i+1 < len(line) {
					sb.WriteByte(line[i+1])
					i += 2
					continue
				}
				i++
				if c == '"' {
					closed = true
					break
				}
				sb.WriteByte(c)
			}
			if !closed {
				return nil, errUnterminated
			}
			toks = append(toks, token{text: sb.String(), quoted: true})
		default:
			start := i
			for i < len(line) && !strings.ContainsRune(" \t\r\";", rune(line[i])) {
				i++
			}
			toks = append(toks, token{text: line[start:i]})
		}
	}
	return toks, nil
}
