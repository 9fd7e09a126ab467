package router

import "maps"

// Params is the parameter bag carried by a stack entry.
// Keys are screen-specific; the router never validates them.
type Params map[string]any

// Clone returns a shallow copy of the params. A nil Params clones to nil.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	return maps.Clone(p)
}

// Merged returns a new Params holding p overlaid with partial.
// Only top-level keys are merged; keys absent from partial keep their value.
func (p Params) Merged(partial Params) Params {
	if p == nil && partial == nil {
		return nil
	}
	out := make(Params, len(p)+len(partial))
	maps.Copy(out, p)
	maps.Copy(out, partial)
	return out
}

// ParamStore reads and updates the params of stack entries.
// It is stateless; entries own their params.
type ParamStore struct{}

// Get returns a copy of the entry's params.
func (ParamStore) Get(entry *Entry) Params {
	if entry == nil {
		return nil
	}
	return entry.Params.Clone()
}

// Merge shallow-merges partial into the entry's params in place and returns
// the updated params. Unknown keys are merged like any other.
func (ParamStore) Merge(entry *Entry, partial Params) Params {
	if entry == nil {
		return nil
	}
	if len(partial) == 0 {
		return entry.Params
	}
	entry.Params = entry.Params.Merged(partial)
	return entry.Params
}
