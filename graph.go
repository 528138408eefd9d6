package varexport

import "sort"

// VariableByID looks up a variable by id, nil when absent
func (g *Graph) VariableByID(id string) *Variable {
	for _, v := range g.Variables {
		if v.ID == id {
			return v
		}
	}
	return nil
}

// CollectionByID looks up a collection by id, nil when absent
func (g *Graph) CollectionByID(id string) *Collection {
	for _, c := range g.Collections {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// FilterCollections narrows the collection set to the given ids. An empty
// selection means all collections. Original collection order is preserved
// either way.
func (g *Graph) FilterCollections(selected []string) []*Collection {
	if len(selected) == 0 {
		return g.Collections
	}

	want := make(map[string]bool, len(selected))
	for _, id := range selected {
		want[id] = true
	}

	result := make([]*Collection, 0, len(selected))
	for _, c := range g.Collections {
		if want[c.ID] {
			result = append(result, c)
		}
	}
	return result
}

// VariablesIn returns the variables owned by a collection, in graph order
func (g *Graph) VariablesIn(collectionID string) []*Variable {
	var result []*Variable
	for _, v := range g.Variables {
		if v.CollectionID == collectionID {
			result = append(result, v)
		}
	}
	return result
}

// sortByFormattedName orders variables alphabetically by their formatted
// name so repeated exports with unchanged input are byte-identical
func sortByFormattedName(vars []*Variable, namer NameFormatter) {
	sort.SliceStable(vars, func(i, j int) bool {
		return namer.Format(vars[i].Name) < namer.Format(vars[j].Name)
	})
}

// DefaultMode returns the collection's designated default mode, falling
// back to the first mode when the designation is missing
func (c *Collection) DefaultMode() Mode {
	for _, m := range c.Modes {
		if m.ID == c.DefaultModeID {
			return m
		}
	}
	if len(c.Modes) > 0 {
		return c.Modes[0]
	}
	return Mode{}
}

// ModeName returns the display name for a mode id, or the id itself when
// the mode is not declared on the collection
func (c *Collection) ModeName(id string) string {
	for _, m := range c.Modes {
		if m.ID == id {
			return m.Name
		}
	}
	return id
}

// valueForMode picks the stored value for a mode, falling back to the
// collection's default mode when the variable has no value for it
func valueForMode(v *Variable, modeID string, c *Collection) (Value, bool) {
	if val, ok := v.Values[modeID]; ok {
		return val, true
	}
	if val, ok := v.Values[c.DefaultMode().ID]; ok {
		return val, true
	}
	return nil, false
}
