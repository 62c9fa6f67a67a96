package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const (
	filePrefix = "database-backup-"
	fileSuffix = ".db"
)

// Info summarizes the backup directory contents.
type Info struct {
	TotalBackups int    `json:"total_backups"`
	NewestBackup string `json:"newest_backup,omitempty"`
	OldestBackup string `json:"oldest_backup,omitempty"`
}

// Service copies the SQLite database file to a backup directory on a daily
// schedule and prunes old copies beyond the retention count.
type Service struct {
	dbPath     string
	backupDir  string
	maxBackups int
	log        *logrus.Logger
	cron       *cron.Cron
}

func New(dbPath, backupDir string, maxBackups int, log *logrus.Logger) *Service {
	return &Service{dbPath: dbPath, backupDir: backupDir, maxBackups: maxBackups, log: log}
}

// Start schedules the daily backup (20:00 server time) and begins running it.
// Failures are logged and wait for the next tick; there are no retries.
func (s *Service) Start() error {
	s.cron = cron.New()
	_, err := s.cron.AddFunc("0 20 * * *", func() {
		if _, err := s.Create(time.Now()); err != nil {
			s.log.WithError(err).Error("backup: scheduled backup failed")
		}
	})
	if err != nil {
		return fmt.Errorf("backup: schedule: %w", err)
	}
	s.cron.Start()
	s.log.WithField("backup_dir", s.backupDir).Info("backup: daily schedule started (20:00)")
	return nil
}

// Stop halts the schedule. Safe to call when Start was never called.
func (s *Service) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Create copies the database file into the backup directory, naming the copy
// with the given timestamp, then prunes old backups. Returns the backup file name.
func (s *Service) Create(now time.Time) (string, error) {
	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		return "", fmt.Errorf("backup: create dir: %w", err)
	}

	stamp := strings.NewReplacer(":", "-", ".", "-").Replace(now.UTC().Format(time.RFC3339))
	name := filePrefix + stamp + fileSuffix
	dst := filepath.Join(s.backupDir, name)

	if err := copyFile(s.dbPath, dst); err != nil {
		return "", fmt.Errorf("backup: copy database: %w", err)
	}
	s.log.WithField("file", name).Info("backup: database backup created")

	if err := s.prune(); err != nil {
		// the backup itself succeeded; pruning failure is logged, not fatal
		s.log.WithError(err).Error("backup: pruning old backups failed")
	}
	return name, nil
}

// Info reports how many backups exist and the newest/oldest file names.
func (s *Service) Info() (Info, error) {
	files, err := s.listBackups()
	if err != nil {
		if os.IsNotExist(err) {
			return Info{}, nil
		}
		return Info{}, err
	}
	info := Info{TotalBackups: len(files)}
	if len(files) > 0 {
		info.NewestBackup = files[0].name
		info.OldestBackup = files[len(files)-1].name
	}
	return info, nil
}

type backupFile struct {
	name    string
	path    string
	modTime time.Time
}

// listBackups returns backup files sorted newest first by modification time.
func (s *Service) listBackups() ([]backupFile, error) {
	entries, err := os.ReadDir(s.backupDir)
	if err != nil {
		return nil, err
	}
	files := make([]backupFile, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), filePrefix) || !strings.HasSuffix(e.Name(), fileSuffix) {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, backupFile{name: e.Name(), path: filepath.Join(s.backupDir, e.Name()), modTime: fi.ModTime()})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].modTime.After(files[j].modTime) })
	return files, nil
}

// prune deletes all but the most recent maxBackups files.
func (s *Service) prune() error {
	files, err := s.listBackups()
	if err != nil {
		return err
	}
	if len(files) <= s.maxBackups {
		return nil
	}
	for _, f := range files[s.maxBackups:] {
		if err := os.Remove(f.path); err != nil {
			s.log.WithError(err).WithField("file", f.name).Error("backup: failed to delete old backup")
			continue
		}
		s.log.WithField("file", f.name).Info("backup: old backup deleted")
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
