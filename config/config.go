package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB membuka koneksi database berdasarkan environment variables.
// DB_DRIVER=mysql memakai MySQL; selain itu fallback ke SQLite lokal
// supaya aplikasi tetap bisa jalan tanpa server database.
func InitDB() (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")

	if driver == "mysql" {
		user := os.Getenv("DB_USER")
		pass := os.Getenv("DB_PASS")
		host := os.Getenv("DB_HOST")
		port := os.Getenv("DB_PORT")
		name := os.Getenv("DB_NAME")

		if host == "" {
			host = "127.0.0.1"
		}
		if port == "" {
			port = "3306"
		}

		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			user, pass, host, port, name)
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	}

	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "barpos.db"
	}
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}
