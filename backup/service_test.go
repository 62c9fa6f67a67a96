package backup

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestService(t *testing.T, maxBackups int) (*Service, string) {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "database.db")
	require.NoError(t, os.WriteFile(dbPath, []byte("sqlite-bytes"), 0o644))
	backupDir := filepath.Join(dir, "backups")
	return New(dbPath, backupDir, maxBackups, quietLogger()), backupDir
}

func TestCreateBackup(t *testing.T) {
	svc, backupDir := newTestService(t, 30)

	now := time.Date(2024, 6, 15, 20, 0, 0, 0, time.UTC)
	name, err := svc.Create(now)
	require.NoError(t, err)
	assert.Equal(t, "database-backup-2024-06-15T20-00-00Z.db", name)

	data, err := os.ReadFile(filepath.Join(backupDir, name))
	require.NoError(t, err)
	assert.Equal(t, "sqlite-bytes", string(data))
}

func TestCreateFailsWithoutDatabase(t *testing.T) {
	dir := t.TempDir()
	svc := New(filepath.Join(dir, "missing.db"), filepath.Join(dir, "backups"), 30, quietLogger())

	_, err := svc.Create(time.Now())
	assert.Error(t, err)
}

func TestPruneKeepsMostRecent(t *testing.T) {
	svc, backupDir := newTestService(t, 3)

	base := time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		name, err := svc.Create(base.AddDate(0, 0, i))
		require.NoError(t, err)
		// mtime drives retention ordering
		mt := base.AddDate(0, 0, i)
		require.NoError(t, os.Chtimes(filepath.Join(backupDir, name), mt, mt))
	}

	info, err := svc.Info()
	require.NoError(t, err)
	assert.Equal(t, 3, info.TotalBackups)
	assert.Equal(t, "database-backup-2024-06-05T20-00-00Z.db", info.NewestBackup)
	assert.Equal(t, "database-backup-2024-06-03T20-00-00Z.db", info.OldestBackup)
}

func TestInfoEmptyDirectory(t *testing.T) {
	svc, _ := newTestService(t, 30)

	info, err := svc.Info()
	require.NoError(t, err)
	assert.Zero(t, info.TotalBackups)
	assert.Empty(t, info.NewestBackup)
	assert.Empty(t, info.OldestBackup)
}

func TestInfoIgnoresForeignFiles(t *testing.T) {
	svc, backupDir := newTestService(t, 30)

	_, err := svc.Create(time.Date(2024, 6, 15, 20, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(backupDir, "notes.txt"), []byte("x"), 0o644))

	info, err := svc.Info()
	require.NoError(t, err)
	assert.Equal(t, 1, info.TotalBackups)
}
