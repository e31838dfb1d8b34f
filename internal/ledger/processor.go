// Package ledger runs the single ordered pass over a ledger's directives,
// threading the option snapshot through it and rejecting directives whose
// accounts do not use a currently active root.
package ledger

import (
	"errors"
	"io"
	"log/slog"

	"github.com/cleared-dev/ledgercheck/internal/accounts"
	"github.com/cleared-dev/ledgercheck/internal/model"
	"github.com/cleared-dev/ledgercheck/internal/options"
)

// Result is the outcome of a pass.
type Result struct {
	// Entries are the accepted non-option directives, in input order.
	Entries []model.Directive
	Errors  []model.Error

	// Options is the final snapshot.
	Options *options.Config

	// Accounts holds the accounts from accepted open directives, typed by
	// the roots active where each was opened.
	Accounts *accounts.Service
}

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the logger used for per-directive debug records.
func WithLogger(l *slog.Logger) Option {
	return func(p *Processor) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithOptions starts the pass from cfg instead of the registry defaults.
// The processor works on a clone; cfg itself is not modified.
func WithOptions(cfg *options.Config) Option {
	return func(p *Processor) {
		p.cfg = cfg.Clone()
	}
}

// Processor validates directives one at a time against the option
// snapshot in effect at each directive's position. It is not safe for
// concurrent use.
type Processor struct {
	cfg      *options.Config
	types    accounts.Types
	entries  []model.Directive
	errs     []model.Error
	accounts *accounts.Service
	logger   *slog.Logger
}

// NewProcessor returns a Processor starting from the default options.
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{
		cfg:      options.Defaults(),
		accounts: accounts.NewService(nil),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.types = options.GetAccountTypes(p.cfg)
	return p
}

// Options returns the live snapshot. Callers may inspect it between
// Process calls; mutating it affects subsequent directives.
func (p *Processor) Options() *options.Config {
	return p.cfg
}

// AccountTypes returns the roots currently in effect.
func (p *Processor) AccountTypes() accounts.Types {
	return p.types
}

// Process handles one directive. Problems are recorded as soft errors;
// Process never fails.
func (p *Processor) Process(d model.Directive) {
	if opt, ok := d.(*model.Option); ok {
		p.applyOption(opt)
		return
	}

	// Re-resolve in case the snapshot was edited through Options().
	p.types = options.GetAccountTypes(p.cfg)

	valid := true
	for _, name := range d.Accounts() {
		if p.types.IsValid(name) {
			continue
		}
		valid = false
		p.errs = append(p.errs, model.NewError(model.ErrorInvalidAccountName, d.Location(),
			"Invalid account name: %s", name))
	}
	if !valid {
		p.logger.Debug("directive rejected",
			"kind", d.Kind(),
			"location", d.Location().String())
		return
	}

	p.entries = append(p.entries, d)
	if open, ok := d.(*model.Open); ok {
		p.recordOpen(open)
	}
}

func (p *Processor) applyOption(opt *model.Option) {
	err := p.cfg.Apply(opt.Name, opt.Value)
	switch {
	case err == nil:
		p.types = options.GetAccountTypes(p.cfg)
		p.logger.Debug("option set",
			"name", opt.Name,
			"value", opt.Value,
			"location", opt.Loc.String())
	case errors.Is(err, options.ErrUnknownOption):
		p.errs = append(p.errs, model.Error{Kind: model.ErrorUnknownOption, Message: err.Error(), Location: opt.Loc})
	default:
		p.errs = append(p.errs, model.Error{Kind: model.ErrorInvalidOptionValue, Message: err.Error(), Location: opt.Loc})
	}
}

func (p *Processor) recordOpen(open *model.Open) {
	at, _ := p.types.TypeOf(open.Account)
	acct := model.Account{
		Name:     open.Account,
		Type:     at,
		Opened:   open.Date,
		Location: open.Loc,
	}
	if !p.accounts.Add(acct) {
		p.logger.Debug("account reopened", "account", open.Account, "location", open.Loc.String())
	}
}

// Finish validates the final snapshot and returns the pass result. The
// processor should not be used afterwards.
func (p *Processor) Finish() Result {
	errs := append(p.errs, options.ValidateOptions(p.cfg)...)
	return Result{
		Entries:  p.entries,
		Errors:   errs,
		Options:  p.cfg,
		Accounts: p.accounts,
	}
}

// Run processes directives in order and returns the result.
func Run(directives []model.Directive, opts ...Option) Result {
	p := NewProcessor(opts...)
	for _, d := range directives {
		p.Process(d)
	}
	return p.Finish()
}
