package accounts

import "github.com/cleared-dev/ledgercheck/internal/model"

// Service provides in-memory lookup over accounts opened in a ledger.
type Service struct {
	accounts []model.Account
	byName   map[string]model.Account
}

// NewService creates a Service from a slice of accounts. Later
// duplicates of a name are ignored.
func NewService(accts []model.Account) *Service {
	s := &Service{byName: make(map[string]model.Account, len(accts))}
	for _, a := range accts {
		s.Add(a)
	}
	return s
}

// Add records an account. It reports false if the name is already known.
func (s *Service) Add(a model.Account) bool {
	if _, ok := s.byName[a.Name]; ok {
		return false
	}
	s.accounts = append(s.accounts, a)
	s.byName[a.Name] = a
	return true
}

// All returns all accounts in the order they were opened.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Get returns an account by name.
func (s *Service) Get(name string) (model.Account, bool) {
	a, ok := s.byName[name]
	return a, ok
}

// Exists reports whether an account name is known.
func (s *Service) Exists(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// ByType returns all accounts of the given type.
func (s *Service) ByType(accountType model.AccountType) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.Type == accountType {
			result = append(result, a)
		}
	}
	return result
}
