package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/model"
	"github.com/subahdeepmistri/WorkOut-Planner-sub001/internal/timecalc"
)

// ErrCorrupt is returned when a day file holds invalid JSON.
var ErrCorrupt = errors.New("corrupt day file")

var dayFileRe = regexp.MustCompile(`^(\d{4})/(\d{2})/(\d{2})\.json$`)

// BaseDir returns the default root data directory (~/.twt).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".twt"), nil
}

// dayFilePath returns the path of the JSON file for the local date of t,
// laid out as YYYY/MM/DD.json from its date key.
func dayFilePath(base string, t time.Time) string {
	key := timecalc.DateKey(t)
	return filepath.Join(base, key[:4], key[5:7], key[8:]+".json")
}

// LoadDay loads the log of the local date of day. It returns nil without an
// error when nothing was logged that day. A corrupt file is moved aside to
// <file>.corrupt so the day can be written again.
func LoadDay(base string, day time.Time) (*model.Log, error) {
	path := dayFilePath(base, day)
	l, err := readDay(path)
	if errors.Is(err, ErrCorrupt) {
		backupPath := path + ".corrupt"
		if rerr := os.Rename(path, backupPath); rerr != nil {
			return nil, fmt.Errorf("%w (backup failed: %w)", err, rerr)
		}
		return nil, fmt.Errorf("%w (backed up to %s)", err, backupPath)
	}
	return l, err
}

func readDay(path string) (*model.Log, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage error reading %s: %w", path, err)
	}

	var l model.Log
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrCorrupt, path, err)
	}
	return &l, nil
}

// SaveDay atomically writes the log of the local date of day. The log's Date
// is set to the day's key.
func SaveDay(base string, day time.Time, l *model.Log) error {
	path := dayFilePath(base, day)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	l.Date = timecalc.DateKey(day)
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	// Atomic write: write to temp file then rename.
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	log.WithField("path", path).Debug("day file saved")
	return nil
}

// UpdateDay loads the log of day, or starts an empty one, applies fn and
// saves the result. Nothing is written when fn fails.
func UpdateDay(base string, day time.Time, fn func(l *model.Log) error) error {
	l, err := LoadDay(base, day)
	if err != nil {
		return err
	}
	if l == nil {
		l = &model.Log{Date: timecalc.DateKey(day), Exercises: []model.Exercise{}}
	}
	if err := fn(l); err != nil {
		return err
	}
	return SaveDay(base, day, l)
}

// LoadRange loads the logs of every local date in [from, to] inclusive.
// Corrupt files are skipped with a warning.
func LoadRange(base string, from, to time.Time) (model.WorkoutData, error) {
	data := model.WorkoutData{}
	for d := timecalc.StartOfDay(from); !d.After(to); d = d.AddDate(0, 0, 1) {
		l, err := readBulk(dayFilePath(base, d))
		if err != nil {
			return nil, err
		}
		if l != nil {
			data[timecalc.DateKey(d)] = l
		}
	}
	return data, nil
}

// LoadAll loads every day file under base, keyed by date. Corrupt files and
// files outside the YYYY/MM/DD.json layout are skipped.
func LoadAll(base string) (model.WorkoutData, error) {
	data := model.WorkoutData{}
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && path == base {
				return filepath.SkipDir
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(base, path)
		if err != nil {
			return err
		}
		m := dayFileRe.FindStringSubmatch(filepath.ToSlash(rel))
		if m == nil {
			return nil
		}
		day, err := timecalc.ParseDateKey(m[1]+"-"+m[2]+"-"+m[3], time.Local)
		if err != nil {
			log.WithField("path", path).Warn("skipping day file with invalid date")
			return nil
		}
		key := timecalc.DateKey(day)

		l, err := readBulk(path)
		if err != nil {
			return err
		}
		if l != nil {
			data[key] = l
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("storage error walking %s: %w", base, err)
	}
	return data, nil
}

func readBulk(path string) (*model.Log, error) {
	l, err := readDay(path)
	if errors.Is(err, ErrCorrupt) {
		log.WithError(err).WithField("path", path).Warn("skipping corrupt day file")
		return nil, nil
	}
	return l, err
}

// FindActiveSession searches the day files of the past week, most recent
// first, for a session that was started and not finished.
func FindActiveSession(base string, now time.Time) (*model.Log, time.Time, error) {
	// A session may have been left running across midnight.
	for i := 0; i < 7; i++ {
		day := timecalc.StartOfDay(now.AddDate(0, 0, -i))
		l, err := LoadDay(base, day)
		if err != nil {
			return nil, time.Time{}, err
		}
		if l != nil && l.StartTime != nil && l.EndTime == nil {
			return l, day, nil
		}
	}
	return nil, time.Time{}, nil
}
