package migrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrationVersion(t *testing.T) {
	assert.Equal(t, "001", migrationVersion("001_init.sql"))
	assert.Equal(t, "002", migrationVersion("002_add_indexes.sql"))
	assert.Equal(t, "010", migrationVersion("010_backfill_remarks.sql"))
}

func TestMigrateFromDirectoryMissingDir(t *testing.T) {
	m := NewMigrator(nil)
	err := m.MigrateFromDirectory("testdata/does-not-exist")
	assert.Error(t, err)
}
