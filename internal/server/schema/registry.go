package schema

import (
	"fmt"
	"sort"

	"github.com/dmitrijs2005/adminpanel/internal/common"
)

// Registry maps entity names to their layout.
type Registry struct {
	entities map[string]*Entity
}

// NewRegistry builds a registry from entities. Duplicate names panic.
func NewRegistry(entities ...*Entity) *Registry {
	r := &Registry{entities: make(map[string]*Entity, len(entities))}
	for _, e := range entities {
		if _, ok := r.entities[e.Name]; ok {
			panic(fmt.Sprintf("schema: duplicate entity %q", e.Name))
		}
		r.entities[e.Name] = e
	}
	return r
}

// Get returns the entity registered under name or common.ErrorUnknownEntity.
func (r *Registry) Get(name string) (*Entity, error) {
	e, ok := r.entities[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", common.ErrorUnknownEntity, name)
	}
	return e, nil
}

// Names returns registered entity names sorted alphabetically.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entities))
	for n := range r.entities {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func referenceTable(name, title string) *Entity {
	return &Entity{
		Name:  name,
		Table: name,
		Title: title,
		Columns: []Column{
			{Key: "id", Label: "ID", Type: TypeText},
			{Key: "name", Label: "Name", Editable: true, Type: TypeText},
			{Key: "created_at", Label: "Created At", Type: TypeDate},
			{Key: "updated_at", Label: "Updated At", Type: TypeDate},
		},
		PageSize: DefaultPageSize,
	}
}

// DefaultRegistry holds the built-in reference tables.
func DefaultRegistry() *Registry {
	return NewRegistry(
		referenceTable("area", "Area"),
		referenceTable("award", "Award"),
	)
}
