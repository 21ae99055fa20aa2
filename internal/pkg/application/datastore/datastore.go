package datastore

import (
	"fmt"
	"strings"

	"github.com/diwise/paranuara/pkg/paranuara/errors"
	"github.com/diwise/paranuara/pkg/paranuara/types"
)

// Store holds the people and companies of Paranuara. It is never modified after New
// returns and may be shared between goroutines.
type Store struct {
	people    []types.Person
	companies []types.Company

	personByIndex  map[int]int
	companyByIndex map[int]int
}

// New creates a Store from the loaded collections. Indices must be unique within each collection.
func New(people []types.Person, companies []types.Company) (*Store, error) {
	s := &Store{
		people:         people,
		companies:      companies,
		personByIndex:  make(map[int]int, len(people)),
		companyByIndex: make(map[int]int, len(companies)),
	}

	for pos, p := range people {
		if prev, ok := s.personByIndex[p.Index]; ok {
			return nil, fmt.Errorf("duplicate person index %d (%q and %q)", p.Index, people[prev].Name, p.Name)
		}
		s.personByIndex[p.Index] = pos
	}

	for pos, c := range companies {
		if prev, ok := s.companyByIndex[c.Index]; ok {
			return nil, fmt.Errorf("duplicate company index %d (%q and %q)", c.Index, companies[prev].Name, c.Name)
		}
		s.companyByIndex[c.Index] = pos
	}

	return s, nil
}

func (s *Store) FindCompanyByName(name string) (types.Company, error) {
	for _, c := range s.companies {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}

	return types.Company{}, errors.NewNotFoundError(fmt.Sprintf("company %s doesn't exist", name))
}

func (s *Store) FindCompanyByID(index int) (types.Company, error) {
	pos, ok := s.companyByIndex[index]
	if !ok {
		return types.Company{}, errors.NewNotFoundError(fmt.Sprintf("company %d doesn't exist", index))
	}

	return s.companies[pos], nil
}

func (s *Store) FindPersonByName(name string) (types.Person, error) {
	for _, p := range s.people {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}

	return types.Person{}, errors.NewNotFoundError(fmt.Sprintf("employee %s doesn't exist", name))
}

func (s *Store) FindPersonByID(index int) (types.Person, error) {
	pos, ok := s.personByIndex[index]
	if !ok {
		return types.Person{}, errors.NewNotFoundError(fmt.Sprintf("employee %d doesn't exist", index))
	}

	return s.people[pos], nil
}

// Companies returns all companies in the order they were loaded. Callers must not modify the result.
func (s *Store) Companies() []types.Company {
	return s.companies
}

// People returns all people in the order they were loaded. Callers must not modify the result.
func (s *Store) People() []types.Person {
	return s.people
}
