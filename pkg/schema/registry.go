package schema

// Registry is an ordered, immutable list of descriptors.
type Registry struct {
	descriptors []*Descriptor
}

// NewRegistry validates descs and returns them as a registry, keeping their
// order.
func NewRegistry(descs ...*Descriptor) (*Registry, error) {
	if len(descs) == 0 {
		return nil, &ConfigError{Err: ErrEmptyCatalog}
	}
	for _, d := range descs {
		if d == nil {
			return nil, &ConfigError{Err: ErrNoTagName}
		}
		if err := d.Validate(); err != nil {
			return nil, err
		}
	}
	out := make([]*Descriptor, len(descs))
	copy(out, descs)
	return &Registry{descriptors: out}, nil
}

// MustRegistry is like NewRegistry but panics on error. Meant for static
// catalogs.
func MustRegistry(descs ...*Descriptor) *Registry {
	r, err := NewRegistry(descs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Len returns the number of descriptors. A nil registry is empty.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.descriptors)
}

// Descriptors returns the descriptors in registration order.
func (r *Registry) Descriptors() []*Descriptor {
	if r == nil {
		return nil
	}
	out := make([]*Descriptor, len(r.descriptors))
	copy(out, r.descriptors)
	return out
}

// Lookup returns the first descriptor registered for tag, or nil.
func (r *Registry) Lookup(tag string) *Descriptor {
	if r == nil {
		return nil
	}
	for _, d := range r.descriptors {
		if d.TagName == tag {
			return d
		}
	}
	return nil
}

// Insertable returns the descriptors the toolbar may instantiate.
func (r *Registry) Insertable() []*Descriptor {
	var out []*Descriptor
	if r == nil {
		return out
	}
	for _, d := range r.descriptors {
		if d.Insertable {
			out = append(out, d)
		}
	}
	return out
}
