package acfp

// Table maps section names to their subsection groups. All three levels are
// plain map types, so indexing with a missing key at any depth yields the
// type's zero value: table["s"]["sub"]["k"] is always safe, never allocates,
// and never panics. A finished Table is safe for unsynchronized concurrent
// reads; concurrent mutation is not supported.
type Table map[string]SectionGroup

// SectionGroup maps subsection names to sections. The empty string names the
// subsection-less form of a section ("[server]" lands in group "server",
// subsection "").
type SectionGroup map[string]Section

// Section maps field keys to raw string values. Values stay untyped in the
// table; coercion happens only at access time via FieldAs or ParseScalar.
type Section map[string]string

// HasSection reports whether a section group with the given name exists.
func (t Table) HasSection(name string) bool {
	_, ok := t[name]
	return ok
}

// Section returns the group for name, or a nil (empty, read-only safe) group
// when absent.
func (t Table) Section(name string) SectionGroup {
	return t[name]
}

// section returns the group for name, creating it when absent. Builder use only.
func (t Table) section(name string) SectionGroup {
	g, ok := t[name]
	if !ok {
		g = make(SectionGroup)
		t[name] = g
	}
	return g
}

// HasSubsection reports whether the named subsection exists in the group.
func (g SectionGroup) HasSubsection(name string) bool {
	_, ok := g[name]
	return ok
}

// Subsection returns the named section, or a nil (empty, read-only safe)
// section when absent.
func (g SectionGroup) Subsection(name string) Section {
	return g[name]
}

// subsection returns the named section, creating it when absent. Builder use only.
func (g SectionGroup) subsection(name string) Section {
	s, ok := g[name]
	if !ok {
		s = make(Section)
		g[name] = s
	}
	return s
}

// HasField reports whether the key is present in the section.
func (s Section) HasField(key string) bool {
	_, ok := s[key]
	return ok
}

// Field returns the raw value for key and whether it was present.
func (s Section) Field(key string) (string, bool) {
	v, ok := s[key]
	return v, ok
}

// SetField stores a raw value under key, overwriting any previous value.
// The section must have been created through the table (a nil Section cannot
// hold fields).
func (s Section) SetField(key, value string) {
	s[key] = value
}

// FieldAs reads the field and coerces it to T. A missing key returns the zero
// value with ok=false and no error; a present value that fails coercion
// returns the ParseScalar error unchanged.
func FieldAs[T Scalar](s Section, key string) (v T, ok bool, err error) {
	raw, ok := s.Field(key)
	if !ok {
		return v, false, nil
	}
	v, err = ParseScalar[T](raw)
	return v, true, err
}
