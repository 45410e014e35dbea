package client

import "sync"

type Manager struct {
	sync.RWMutex
	clients []*Client
}

// Connect adds a client to the roster. If an unused client object with a low
// cn exists, it is re-used, otherwise a new one is appended.
func (m *Manager) Connect(name string, bot bool) *Client {
	m.Lock()
	defer m.Unlock()

	for _, c := range m.clients {
		if !c.InUse {
			c.Name, c.Bot, c.InUse = name, bot, true
			return c
		}
	}

	c := newClient(int32(len(m.clients)), name, bot)
	m.clients = append(m.clients, c)
	return c
}

func (m *Manager) Disconnect(cn int32) bool {
	m.Lock()
	defer m.Unlock()

	if cn < 0 || int(cn) >= len(m.clients) || !m.clients[cn].InUse {
		return false
	}
	m.clients[cn].InUse = false
	return true
}

func (m *Manager) GetClientByCN(cn int32) *Client {
	m.RLock()
	defer m.RUnlock()

	if cn < 0 || int(cn) >= len(m.clients) {
		return nil
	}
	return m.clients[cn]
}

func (m *Manager) ForEach(do func(c *Client)) {
	m.RLock()
	for _, c := range m.clients {
		do(c)
	}
	m.RUnlock()
}

// Returns the number of connected clients, bots included.
func (m *Manager) NumClients() (n int) {
	m.RLock()
	defer m.RUnlock()
	for _, c := range m.clients {
		if c.InUse {
			n++
		}
	}
	return
}

// Returns the number of connected human players. Bots never count, no matter
// what the engine reports elsewhere.
func (m *Manager) NumHumans() (n int) {
	m.RLock()
	defer m.RUnlock()
	for _, c := range m.clients {
		if c.InUse && !c.Bot {
			n++
		}
	}
	return
}
