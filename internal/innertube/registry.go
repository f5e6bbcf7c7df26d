package innertube

import "sync"

type defaultRegistry struct {
	mu      sync.RWMutex
	order   []string
	clients map[string]ClientProfile
}

// NewRegistry creates a registry holding the default impersonation
// profiles. Registration order is the default trial order.
func NewRegistry() Registry {
	r := &defaultRegistry{clients: make(map[string]ClientProfile)}
	for _, p := range []ClientProfile{
		WebClient,
		MWebClient,
		AndroidClient,
		iOSClient,
		WebEmbeddedClient,
		TVClient,
	} {
		r.add(p)
	}
	return r
}

func (r *defaultRegistry) add(p ClientProfile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.clients[p.ID]; !exists {
		r.order = append(r.order, p.ID)
	}
	r.clients[p.ID] = p
}

func (r *defaultRegistry) Get(name string) (ClientProfile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.clients[name]
	return c, ok
}

// All returns every profile in registration order.
func (r *defaultRegistry) All() []ClientProfile {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]ClientProfile, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.clients[id])
	}
	return all
}
