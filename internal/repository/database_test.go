package repository

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"

	"toolshub/internal/config"
)

var testDB *Database

func TestMain(m *testing.M) {
	err := godotenv.Load("../../.env.test")
	if err != nil {
		log.Printf("[TestMain repository] .env.test not loaded: %v", err)
	}

	cfg := config.Load()
	db, err := New(cfg)
	if err != nil {
		log.Printf("[TestMain repository] test database unavailable, DB tests will be skipped: %v", err)
		testDB = nil
		os.Exit(m.Run())
	}
	testDB = db

	code := m.Run()
	testDB.Close()
	os.Exit(code)
}

func TestDatabase_Ready(t *testing.T) {
	if testDB == nil {
		t.Skip("Test database not initialized")
	}
	assert.NoError(t, testDB.Ready(context.Background()))
}
