package forms

// StringList is a variable-length list field (guidelines, emails, contact
// numbers). All operations return the resulting list; the never-empty
// invariant is enforced here once instead of at every removal site: a list
// that would become empty collapses back to a single empty placeholder.
type StringList []string

// Add appends one empty element.
func (l StringList) Add() StringList {
	return append(append(StringList{}, l...), "")
}

// Update replaces the element at index. Out-of-range indexes are a no-op;
// callers derive the index from the current render position so this should
// be unreachable.
func (l StringList) Update(index int, value string) StringList {
	if index < 0 || index >= len(l) {
		return l
	}
	next := append(StringList{}, l...)
	next[index] = value
	return next
}

// Remove deletes the element at index. Removing the last remaining element
// yields a single empty placeholder, never an empty list.
func (l StringList) Remove(index int) StringList {
	if index < 0 || index >= len(l) {
		return l
	}
	next := append(append(StringList{}, l[:index]...), l[index+1:]...)
	if len(next) == 0 {
		return StringList{""}
	}
	return next
}
