package commands

// Registry menyimpan satu Manager per order. Manager antar-order saling
// independen; undo di satu order tidak tahu-menahu soal perubahan stok dari
// order lain.
type Registry struct {
	managers map[uint]*Manager
}

func NewRegistry() *Registry {
	return &Registry{managers: make(map[uint]*Manager)}
}

// ForOrder mengembalikan manager milik order tersebut, dibuat lazily.
func (r *Registry) ForOrder(orderID uint) *Manager {
	m, ok := r.managers[orderID]
	if !ok {
		m = NewManager()
		r.managers[orderID] = m
	}
	return m
}

// Drop membuang history milik satu order, misalnya setelah order dihapus.
func (r *Registry) Drop(orderID uint) {
	delete(r.managers, orderID)
}
