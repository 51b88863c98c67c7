package model

// Catalog is the immutable set of selectable ingredients for one workflow.
type Catalog struct {
	options []FruitOption
	index   map[string]int
}

// NewCatalog builds a catalog, keeping the first row for any repeated name.
func NewCatalog(options []FruitOption) *Catalog {
	c := &Catalog{index: make(map[string]int, len(options))}
	for _, o := range options {
		if _, dup := c.index[o.FruitName]; dup {
			continue
		}
		c.index[o.FruitName] = len(c.options)
		c.options = append(c.options, o)
	}
	return c
}

// EmptyCatalog is what a failed load degrades to.
func EmptyCatalog() *Catalog {
	return NewCatalog(nil)
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.options)
}

// Names returns the fruit names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, c.Len())
	if c == nil {
		return names
	}
	for _, o := range c.options {
		names = append(names, o.FruitName)
	}
	return names
}

// Options returns a copy of the catalog rows.
func (c *Catalog) Options() []FruitOption {
	if c == nil {
		return []FruitOption{}
	}
	out := make([]FruitOption, len(c.options))
	copy(out, c.options)
	return out
}

func (c *Catalog) Contains(name string) bool {
	_, ok := c.SearchKey(name)
	return ok
}

// SearchKey returns the external search key for a fruit name.
func (c *Catalog) SearchKey(name string) (string, bool) {
	if c == nil {
		return "", false
	}
	i, ok := c.index[name]
	if !ok {
		return "", false
	}
	return c.options[i].SearchOn, true
}
