package industry

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// Industry is one entry of the externally supplied reference table the form
// controller builds its cascading selects from.
type Industry struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Specializations []string `json:"specializations"`
}

type Table []Industry

var ErrEmptyTable = errors.New("empty industry table")

// FindByID returns the entry whose ID matches, or false when absent.
func (t Table) FindByID(id string) (Industry, bool) {
	id = strings.TrimSpace(id)
	for _, ind := range t {
		if ind.ID == id {
			return ind, true
		}
	}
	return Industry{}, false
}

// HasSpecialization reports whether name is a valid specialization of the
// industry identified by id.
func (t Table) HasSpecialization(id, name string) bool {
	ind, ok := t.FindByID(id)
	if !ok {
		return false
	}
	for _, s := range ind.Specializations {
		if s == name {
			return true
		}
	}
	return false
}

// LoadJSON reads a reference table from an external JSON source, shape
// [{id, name, specializations}].
func LoadJSON(r io.Reader) (Table, error) {
	var t Table
	dec := json.NewDecoder(r)
	if err := dec.Decode(&t); err != nil {
		return nil, err
	}
	if len(t) == 0 {
		return nil, ErrEmptyTable
	}
	for _, ind := range t {
		if strings.TrimSpace(ind.ID) == "" || strings.TrimSpace(ind.Name) == "" {
			return nil, errors.New("industry entry missing id or name")
		}
	}
	return t, nil
}
