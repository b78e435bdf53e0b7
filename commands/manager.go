package commands

// Manager memegang sepasang stack undo/redo untuk satu entity yang sedang
// diedit. Semua operasi sinkron; tidak ada percabangan history — aksi baru
// setelah undo membuang cabang redo seluruhnya.
type Manager struct {
	undo []*Command
	redo []*Command
}

func NewManager() *Manager {
	return &Manager{}
}

// Doit menjalankan Execute, menaruh command di undo stack dan mengosongkan
// redo stack. Hasil Execute diteruskan apa adanya.
func (m *Manager) Doit(cmd *Command) (interface{}, error) {
	result, err := cmd.Execute()
	m.undo = append(m.undo, cmd)
	m.redo = m.redo[:0]
	return result, err
}

// Undoit mengambil command teratas dari undo stack, menjalankan Unexecute
// dan memindahkannya ke redo stack. Stack kosong = no-op.
func (m *Manager) Undoit() (interface{}, error) {
	if len(m.undo) == 0 {
		return nil, nil
	}
	cmd := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]

	result, err := cmd.Unexecute()
	m.redo = append(m.redo, cmd)
	return result, err
}

// Redoit kebalikan Undoit: pop redo stack, jalankan Reexecute, kembali ke
// undo stack. Stack kosong = no-op.
func (m *Manager) Redoit() (interface{}, error) {
	if len(m.redo) == 0 {
		return nil, nil
	}
	cmd := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]

	result, err := cmd.Reexecute()
	m.undo = append(m.undo, cmd)
	return result, err
}

// UndoDepth -> jumlah aksi yang masih bisa di-undo
func (m *Manager) UndoDepth() int {
	return len(m.undo)
}

// RedoDepth -> jumlah aksi yang masih bisa di-redo
func (m *Manager) RedoDepth() int {
	return len(m.redo)
}

// Reset mengosongkan kedua stack.
func (m *Manager) Reset() {
	m.undo = nil
	m.redo = nil
}
