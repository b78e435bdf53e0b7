package commands

import (
	"github.com/yeremiapane/bar-pos/models"
	"github.com/yeremiapane/bar-pos/services"
)

// Factory untuk tiap operasi engine yang bisa dibalikkan. Setiap factory
// menangkap cukup pre-state waktu konstruksi supaya Unexecute persis
// mengembalikan keadaan sebelumnya.

// NewAddItemCommand menambah satu item; undo menghapus item yang tadi
// ditambahkan (id-nya dicatat waktu Execute jalan).
func NewAddItemCommand(orders *services.OrderService, orderID uint, draft services.ItemDraft) *Command {
	var added *models.OrderItem

	run := func() (interface{}, error) {
		order, err := orders.AddItemToOrder(orderID, draft)
		if err == nil && order != nil && len(order.Items) > 0 {
			last := order.Items[len(order.Items)-1]
			added = &last
		}
		return order, err
	}

	return &Command{
		Execute: run,
		Unexecute: func() (interface{}, error) {
			if added == nil {
				return nil, nil
			}
			removed := *added
			added = nil
			return orders.RemoveItemFromOrder(orderID, removed)
		},
		Reexecute: run,
	}
}

// NewRemoveItemCommand menghapus satu item; snapshot item lengkap (termasuk
// flag product on the house) diambil waktu konstruksi supaya undo
// mengembalikan data yang identik, bukan item default. Item yang
// dikembalikan dapat id baru — id tidak pernah dipakai ulang.
func NewRemoveItemCommand(orders *services.OrderService, orderID uint, item models.OrderItem) *Command {
	snapshot := item
	current := item

	remove := func() (interface{}, error) {
		order, err := orders.RemoveItemFromOrder(orderID, current)
		return order, err
	}

	return &Command{
		Execute: remove,
		Unexecute: func() (interface{}, error) {
			order, err := orders.AddItemToOrder(orderID, services.ItemDraft{
				BeverageNr:        snapshot.BeverageNr,
				ProductOnTheHouse: snapshot.ProductOnTheHouse,
			})
			if err == nil && order != nil && len(order.Items) > 0 {
				current = order.Items[len(order.Items)-1]
			}
			return order, err
		},
		Reexecute: remove,
	}
}

// NewChangeNoteCommand mengganti catatan order; catatan yang berlaku
// sebelum konstruksi di-snapshot untuk undo.
func NewChangeNoteCommand(orders *services.OrderService, orderID uint, newNote string) *Command {
	prevNote := ""
	if order, err := orders.GetOrderByID(orderID); err == nil {
		prevNote = order.Notes
	}

	apply := func() (interface{}, error) {
		return orders.ChangeNoteOfOrder(orderID, newNote)
	}

	return &Command{
		Execute: apply,
		Unexecute: func() (interface{}, error) {
			return orders.ChangeNoteOfOrder(orderID, prevNote)
		},
		Reexecute: apply,
	}
}

// NewDeclareOnTheHouseCommand menandai item gratis; undo membatalkannya.
func NewDeclareOnTheHouseCommand(orders *services.OrderService, orderID uint, itemID int) *Command {
	declare := func() (interface{}, error) {
		return orders.DeclareItemAsProductOnTheHouse(orderID, itemID)
	}
	return &Command{
		Execute: declare,
		Unexecute: func() (interface{}, error) {
			return orders.UndeclareItemAsProductOnTheHouse(orderID, itemID)
		},
		Reexecute: declare,
	}
}

// NewUndeclareOnTheHouseCommand kebalikan dari declare.
func NewUndeclareOnTheHouseCommand(orders *services.OrderService, orderID uint, itemID int) *Command {
	undeclare := func() (interface{}, error) {
		return orders.UndeclareItemAsProductOnTheHouse(orderID, itemID)
	}
	return &Command{
		Execute: undeclare,
		Unexecute: func() (interface{}, error) {
			return orders.DeclareItemAsProductOnTheHouse(orderID, itemID)
		},
		Reexecute: undeclare,
	}
}

// NewEditOrderCommand menimpa field table/notes/done/billId; snapshot order
// sebelum konstruksi dipakai untuk undo.
func NewEditOrderCommand(orders *services.OrderService, updated models.Order) *Command {
	var snapshot *models.Order
	if order, err := orders.GetOrderByID(updated.ID); err == nil {
		snapshot = order
	}

	apply := func() (interface{}, error) {
		in := updated
		return orders.EditOrder(&in)
	}

	return &Command{
		Execute: apply,
		Unexecute: func() (interface{}, error) {
			if snapshot == nil {
				return nil, nil
			}
			in := *snapshot
			return orders.EditOrder(&in)
		},
		Reexecute: apply,
	}
}
