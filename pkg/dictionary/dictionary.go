package dictionary

import (
	"fmt"
	"sync"
)

// Dictionary provides fast lookup for standard RADIUS attributes.
// It is safe for concurrent reads after initialization is complete.
// All Add* methods acquire write locks and should be called during initialization only.
type Dictionary struct {
	mu sync.RWMutex

	byID   map[uint8]*AttributeDefinition
	byName map[string]*AttributeDefinition
}

// New creates a new empty dictionary
func New() *Dictionary {
	return &Dictionary{
		byID:   make(map[uint8]*AttributeDefinition),
		byName: make(map[string]*AttributeDefinition),
	}
}

// NewDefault creates a dictionary pre-loaded with the standard RFC attribute table.
// Returns an error if the table contains duplicate names, which would indicate a
// programming error in the attribute definitions.
func NewDefault() (*Dictionary, error) {
	dict := New()

	if err := dict.AddAttributes(StandardRFCAttributes); err != nil {
		return nil, err
	}

	return dict, nil
}

// AddAttributes adds attribute definitions to the dictionary.
// Returns an error if any attribute name is already used, in the dictionary or
// earlier in attrs, by a different ID.
func (d *Dictionary) AddAttributes(attrs []*AttributeDefinition) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	seen := make(map[string]uint8, len(attrs))
	for _, attr := range attrs {
		if existing, exists := d.byName[attr.Name]; exists && existing.ID != attr.ID {
			return fmt.Errorf("duplicate attribute name %q: already exists", attr.Name)
		}
		if id, exists := seen[attr.Name]; exists && id != attr.ID {
			return fmt.Errorf("duplicate attribute name %q: already exists", attr.Name)
		}
		seen[attr.Name] = attr.ID
	}

	for _, attr := range attrs {
		d.byID[attr.ID] = attr
		d.byName[attr.Name] = attr
	}

	return nil
}

// LookupByID finds an attribute definition by ID
func (d *Dictionary) LookupByID(id uint8) (*AttributeDefinition, bool) {
	d.mu.RLock()
	attr, exists := d.byID[id]
	d.mu.RUnlock()
	return attr, exists
}

// LookupByName finds an attribute definition by name
func (d *Dictionary) LookupByName(name string) (*AttributeDefinition, bool) {
	d.mu.RLock()
	attr, exists := d.byName[name]
	d.mu.RUnlock()
	return attr, exists
}

// Len returns the number of attribute definitions in the dictionary
func (d *Dictionary) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.byID)
}
