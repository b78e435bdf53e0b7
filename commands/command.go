package commands

// Command membungkus satu aksi yang bisa dibalikkan: dibuat sekali, lalu
// dipanggil lewat tiga jalur. Execute menjalankan aksi pertama kali,
// Unexecute membalikkannya, Reexecute mengulanginya setelah undo. Ketiganya
// closure tanpa argumen; semua argumen dan snapshot pre-state ditangkap
// waktu command dibuat.
type Command struct {
	Execute   func() (interface{}, error)
	Unexecute func() (interface{}, error)
	Reexecute func() (interface{}, error)
}
