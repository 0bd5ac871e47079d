package database

import (
	"path/filepath"
	"testing"

	"algowoo/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SQLiteCreatesOptionsTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.db")

	db, err := New("sqlite://" + path)
	require.NoError(t, err)
	defer db.Close()

	assert.True(t, db.DB.Migrator().HasTable(&models.Option{}))

	require.NoError(t, db.DB.Create(&models.Option{Name: "k", Value: "v"}).Error)
	var opt models.Option
	require.NoError(t, db.DB.First(&opt, "name = ?", "k").Error)
	assert.Equal(t, "v", opt.Value)
}
