package models

// FilterState is the transient browsing selection: a content type (or all)
// plus a set of required tags. It lives for the duration of a session and is
// never persisted.
type FilterState struct {
	Type ContentType
	Tags []string
}

// NewFilterState returns the default selection: every type, no tags.
func NewFilterState() FilterState {
	return FilterState{Type: ContentTypeAll}
}

// WithType returns a copy with the type selection replaced.
func (f FilterState) WithType(t ContentType) FilterState {
	f.Type = t
	return f
}

// AddTag returns a copy with tag added to the selection. Duplicates and
// blank input are ignored.
func (f FilterState) AddTag(tag string) FilterState {
	tags := make([]string, len(f.Tags), len(f.Tags)+1)
	copy(tags, f.Tags)
	f.Tags = NormalizeTags(append(tags, tag))
	return f
}

// RemoveTag returns a copy with tag removed from the selection.
func (f FilterState) RemoveTag(tag string) FilterState {
	tags := make([]string, 0, len(f.Tags))
	for _, t := range f.Tags {
		if t != tag {
			tags = append(tags, t)
		}
	}
	f.Tags = tags
	return f
}

// ClearTags returns a copy with an empty tag selection.
func (f FilterState) ClearTags() FilterState {
	f.Tags = nil
	return f
}

// IsDefault reports whether the filter matches everything.
func (f FilterState) IsDefault() bool {
	return (f.Type == ContentTypeAll || f.Type == "") && len(f.Tags) == 0
}
