package model

import "time"

// DirectiveKind names a directive type as it is spelled in ledger source.
type DirectiveKind string

const (
	KindOption      DirectiveKind = "option"
	KindOpen        DirectiveKind = "open"
	KindClose       DirectiveKind = "close"
	KindBalance     DirectiveKind = "balance"
	KindPad         DirectiveKind = "pad"
	KindNote        DirectiveKind = "note"
	KindDocument    DirectiveKind = "document"
	KindCommodity   DirectiveKind = "commodity"
	KindTransaction DirectiveKind = "transaction"
)

// Directive is one parsed unit of ledger source.
type Directive interface {
	Kind() DirectiveKind
	Location() Location
	// Accounts returns every account name the directive references,
	// in source order. Directives without accounts return nil.
	Accounts() []string
}

// Dated is implemented by directives that carry an entry date.
type Dated interface {
	EntryDate() time.Time
}

// Option sets a named configuration value for all directives that follow it.
//
//	option "name_assets" "Actif"
type Option struct {
	Loc   Location
	Name  string
	Value string
}

func (o *Option) Kind() DirectiveKind { return KindOption }
func (o *Option) Location() Location { return o.Loc }
func (o *Option) Accounts() []string { return nil }

// Open declares an account.
//
//	2014-01-04 open Assets:CA:RBC:Checking CAD,USD "STRICT"
type Open struct {
	Loc        Location
	Date       time.Time
	Account    string
	Currencies []string
	Booking    string
}

func (o *Open) Kind() DirectiveKind  { return KindOpen }
func (o *Open) Location() Location   { return o.Loc }
func (o *Open) Accounts() []string   { return []string{o.Account} }
func (o *Open) EntryDate() time.Time { return o.Date }

// Close retires an account.
type Close struct {
	Loc     Location
	Date    time.Time
	Account string
}

func (c *Close) Kind() DirectiveKind  { return KindClose }
func (c *Close) Location() Location   { return c.Loc }
func (c *Close) Accounts() []string   { return []string{c.Account} }
func (c *Close) EntryDate() time.Time { return c.Date }

// Balance asserts an account's balance at the start of Date.
type Balance struct {
	Loc     Location
	Date    time.Time
	Account string
	Amount  Amount
}

func (b *Balance) Kind() DirectiveKind  { return KindBalance }
func (b *Balance) Location() Location   { return b.Loc }
func (b *Balance) Accounts() []string   { return []string{b.Account} }
func (b *Balance) EntryDate() time.Time { return b.Date }

// Pad fills Account from Source up to the next balance assertion.
type Pad struct {
	Loc     Location
	Date    time.Time
	Account string
	Source  string
}

func (p *Pad) Kind() DirectiveKind  { return KindPad }
func (p *Pad) Location() Location   { return p.Loc }
func (p *Pad) Accounts() []string   { return []string{p.Account, p.Source} }
func (p *Pad) EntryDate() time.Time { return p.Date }

// Note attaches a comment to an account.
type Note struct {
	Loc     Location
	Date    time.Time
	Account string
	Comment string
}

func (n *Note) Kind() DirectiveKind  { return KindNote }
func (n *Note) Location() Location   { return n.Loc }
func (n *Note) Accounts() []string   { return []string{n.Account} }
func (n *Note) EntryDate() time.Time { return n.Date }

// Document links an external file to an account.
type Document struct {
	Loc     Location
	Date    time.Time
	Account string
	Path    string
}

func (d *Document) Kind() DirectiveKind  { return KindDocument }
func (d *Document) Location() Location   { return d.Loc }
func (d *Document) Accounts() []string   { return []string{d.Account} }
func (d *Document) EntryDate() time.Time { return d.Date }

// Commodity declares a currency. It references no accounts.
type Commodity struct {
	Loc      Location
	Date     time.Time
	Currency string
}

func (c *Commodity) Kind() DirectiveKind  { return KindCommodity }
func (c *Commodity) Location() Location   { return c.Loc }
func (c *Commodity) Accounts() []string   { return nil }
func (c *Commodity) EntryDate() time.Time { return c.Date }

var (
	_ Directive = (*Option)(nil)
	_ Directive = (*Open)(nil)
	_ Directive = (*Close)(nil)
	_ Directive = (*Balance)(nil)
	_ Directive = (*Pad)(nil)
	_ Directive = (*Note)(nil)
	_ Directive = (*Document)(nil)
	_ Directive = (*Commodity)(nil)
	_ Directive = (*Transaction)(nil)
)
