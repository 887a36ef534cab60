package ipp

import "fmt"

// Attributes is an ordered set of named attributes. The zero value is
// ready to use. Attributes is not safe for concurrent use; callers guard
// shared sets with their own locking.
type Attributes struct {
	list []*Attribute
}

// NewAttributes creates an empty attribute set. Collection values are
// built the same way.
func NewAttributes() *Attributes {
	return &Attributes{}
}

// Find returns the attribute with the given name, or nil.
func (s *Attributes) Find(name string) *Attribute {
	for _, a := range s.list {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Remove deletes the attribute with the given name.
// It reports whether an attribute was removed.
func (s *Attributes) Remove(name string) bool {
	for i, a := range s.list {
		if a.Name == name {
			s.list = append(s.list[:i], s.list[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of attributes in the set.
func (s *Attributes) Len() int {
	return len(s.list)
}

// Names returns the attribute names in order.
func (s *Attributes) Names() []string {
	names := make([]string, len(s.list))
	for i, a := range s.list {
		names[i] = a.Name
	}
	return names
}

// Clone returns a deep copy of the set. Collection values are copied
// recursively, so mutating the clone never touches the original.
func (s *Attributes) Clone() *Attributes {
	c := &Attributes{list: make([]*Attribute, len(s.list))}
	for i, a := range s.list {
		c.list[i] = a.clone()
	}
	return c
}

// add appends an attribute without checking for an existing name.
func (s *Attributes) add(a *Attribute) *Attribute {
	s.list = append(s.list, a)
	return a
}

// AddInteger appends an integer attribute.
func (s *Attributes) AddInteger(name string, value int) {
	s.add(&Attribute{Name: name, Tag: TagInteger, Values: []any{value}})
}

// AddKeyword appends a single keyword attribute.
func (s *Attributes) AddKeyword(name, value string) {
	s.add(&Attribute{Name: name, Tag: TagKeyword, Values: []any{value}})
}

// AddRange appends an integer range attribute.
func (s *Attributes) AddRange(name string, r Range) {
	s.add(&Attribute{Name: name, Tag: TagRange, Values: []any{r}})
}

// AddCollection appends a collection attribute.
func (s *Attributes) AddCollection(name string, col *Attributes) {
	s.add(&Attribute{Name: name, Tag: TagCollection, Values: []any{col}})
}

// ReplaceInteger sets an integer attribute, removing any existing
// attribute of the same name first.
func (s *Attributes) ReplaceInteger(name string, value int) {
	s.Remove(name)
	s.AddInteger(name, value)
}

// ReplaceKeywords sets a keyword list attribute.
func (s *Attributes) ReplaceKeywords(name string, values []string) {
	s.Remove(name)
	vals := make([]any, len(values))
	for i, v := range values {
		vals[i] = v
	}
	s.add(&Attribute{Name: name, Tag: TagKeyword, Values: vals})
}

// ReplaceText sets a text attribute.
func (s *Attributes) ReplaceText(name, value string) {
	s.Remove(name)
	s.add(&Attribute{Name: name, Tag: TagText, Values: []any{value}})
}

// ReplaceResolution sets a single-valued resolution attribute.
func (s *Attributes) ReplaceResolution(name string, r Resolution) {
	s.Remove(name)
	s.add(&Attribute{Name: name, Tag: TagResolution, Values: []any{r}})
}

// ReplaceResolutions sets a resolution list attribute.
func (s *Attributes) ReplaceResolutions(name string, values []Resolution) {
	s.Remove(name)
	vals := make([]any, len(values))
	for i, v := range values {
		vals[i] = v
	}
	s.add(&Attribute{Name: name, Tag: TagResolution, Values: vals})
}

// AllocateCollections sets a collection list attribute with count empty
// slots, removing any existing attribute of the same name first. The
// slots are filled with SetCollectionAt.
func (s *Attributes) AllocateCollections(name string, count int) *Attribute {
	s.Remove(name)
	return s.add(&Attribute{Name: name, Tag: TagCollection, Values: make([]any, count)})
}

// SetCollectionAt stores a collection into slot index of a collection
// list attribute allocated with AllocateCollections.
func (s *Attributes) SetCollectionAt(attr *Attribute, index int, col *Attributes) error {
	if attr == nil || attr.Tag != TagCollection {
		return fmt.Errorf("ipp: %q is not a collection attribute", attrName(attr))
	}
	if index < 0 || index >= len(attr.Values) {
		return fmt.Errorf("ipp: collection index %d out of range for %q (%d slots)",
			index, attr.Name, len(attr.Values))
	}
	attr.Values[index] = col
	return nil
}

func attrName(a *Attribute) string {
	if a == nil {
		return "<nil>"
	}
	return a.Name
}
