package services

import (
	"log"
	"os"
	"testing"

	"github.com/jmoiron/sqlx"

	"toolshub/internal/testutil"
)

var testDB *sqlx.DB

func TestMain(m *testing.M) {
	db, err := testutil.SetupTestDB("../../../.env.test", "../../../migrations")
	if err != nil {
		log.Printf("[TestMain services] test database unavailable, DB tests will be skipped: %v", err)
		testDB = nil
		os.Exit(m.Run())
	}
	testDB = db

	code := m.Run()
	testDB.Close()
	os.Exit(code)
}
