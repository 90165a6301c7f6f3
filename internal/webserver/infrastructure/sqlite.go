package infrastructure

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/forumkit/massinvite/internal/webserver/model"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func Connect(path string) *gorm.DB {
	if _, err := os.Stat(path); os.IsNotExist(err) && !strings.Contains(path, ":memory:") {
		if _, err = os.Create(path); err != nil {
			log.Fatal(err)
		}
		log.Printf("Created database at %s\n", path)
	}

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", path)), &gorm.Config{
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	// An in-memory SQLite database exists per connection, so the pool must
	// be capped at one or each pooled connection would see its own empty
	// database.
	if strings.Contains(path, ":memory:") {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal(err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(&model.Campaign{}, &model.User{}); err != nil {
		log.Fatal(err)
	}

	return db
}
