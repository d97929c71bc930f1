package willowui

// Resource is a visual instantiated from a Provider, such as a border image
// cut from an atlas page.
type Resource interface {
	Release()
}

// ResourceFactory instantiates resources for a painting backend.
type ResourceFactory interface {
	NewResource(p *Provider) Resource
}

// ResourceCache holds the resources one widget instantiated, keyed by
// provider identity. It is populated lazily and released explicitly on skin
// change or destruction; entries are never shared between widgets.
type ResourceCache struct {
	items map[*Provider]Resource
}

// Get returns the resource for p, creating it with f on first use. It
// returns nil when p or f is nil or the factory produced nothing.
func (c *ResourceCache) Get(p *Provider, f ResourceFactory) Resource {
	if p == nil || f == nil {
		return nil
	}
	if r, ok := c.items[p]; ok {
		return r
	}
	r := f.NewResource(p)
	if r == nil {
		return nil
	}
	if c.items == nil {
		c.items = make(map[*Provider]Resource)
	}
	c.items[p] = r
	return r
}

// Len returns the number of cached resources.
func (c *ResourceCache) Len() int {
	return len(c.items)
}

// Release releases every cached resource and empties the cache.
func (c *ResourceCache) Release() {
	for p, r := range c.items {
		r.Release()
		delete(c.items, p)
	}
}
