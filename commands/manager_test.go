package commands

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/bar-pos/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

// countingCommand mencatat berapa kali tiap jalur dipanggil.
func countingCommand(executes, unexecutes, reexecutes *int) *Command {
	return &Command{
		Execute: func() (interface{}, error) {
			*executes++
			return "executed", nil
		},
		Unexecute: func() (interface{}, error) {
			*unexecutes++
			return "unexecuted", nil
		},
		Reexecute: func() (interface{}, error) {
			*reexecutes++
			return "reexecuted", nil
		},
	}
}

func TestDoitUndoitRedoit(t *testing.T) {
	m := NewManager()
	var ex, unex, reex int

	result, err := m.Doit(countingCommand(&ex, &unex, &reex))
	assert.NoError(t, err)
	assert.Equal(t, "executed", result)
	assert.Equal(t, 1, ex)
	assert.Equal(t, 1, m.UndoDepth())
	assert.Equal(t, 0, m.RedoDepth())

	result, err = m.Undoit()
	assert.NoError(t, err)
	assert.Equal(t, "unexecuted", result)
	assert.Equal(t, 1, unex)
	assert.Equal(t, 0, m.UndoDepth())
	assert.Equal(t, 1, m.RedoDepth())

	result, err = m.Redoit()
	assert.NoError(t, err)
	assert.Equal(t, "reexecuted", result)
	assert.Equal(t, 1, reex)
	assert.Equal(t, 1, m.UndoDepth())
	assert.Equal(t, 0, m.RedoDepth())
}

func TestEmptyStacksAreSilentNoOps(t *testing.T) {
	m := NewManager()

	result, err := m.Undoit()
	assert.NoError(t, err)
	assert.Nil(t, result)

	result, err = m.Redoit()
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestDoitClearsRedoStack(t *testing.T) {
	m := NewManager()
	var ex, unex, reex int

	m.Doit(countingCommand(&ex, &unex, &reex))
	m.Doit(countingCommand(&ex, &unex, &reex))
	m.Undoit()
	assert.Equal(t, 1, m.RedoDepth())

	// Aksi baru setelah undo membuang cabang redo seluruhnya
	m.Doit(countingCommand(&ex, &unex, &reex))
	assert.Equal(t, 0, m.RedoDepth())
	assert.Equal(t, 2, m.UndoDepth())

	// Redo sesudahnya jadi no-op
	result, err := m.Redoit()
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, 0, reex)
}

func TestReset(t *testing.T) {
	m := NewManager()
	var ex, unex, reex int

	m.Doit(countingCommand(&ex, &unex, &reex))
	m.Doit(countingCommand(&ex, &unex, &reex))
	m.Undoit()

	m.Reset()
	assert.Equal(t, 0, m.UndoDepth())
	assert.Equal(t, 0, m.RedoDepth())
}

func TestRegistryKeepsManagersPerOrder(t *testing.T) {
	r := NewRegistry()

	m1 := r.ForOrder(1)
	m2 := r.ForOrder(2)
	assert.NotSame(t, m1, m2)
	assert.Same(t, m1, r.ForOrder(1))

	var ex, unex, reex int
	m1.Doit(countingCommand(&ex, &unex, &reex))
	assert.Equal(t, 1, r.ForOrder(1).UndoDepth())
	assert.Equal(t, 0, r.ForOrder(2).UndoDepth())

	r.Drop(1)
	assert.Equal(t, 0, r.ForOrder(1).UndoDepth())
}
