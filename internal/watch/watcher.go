package watch

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-hclog"

	"github.com/carnitrack/carnitrack/internal/model"
	"github.com/carnitrack/carnitrack/internal/service"
	"github.com/carnitrack/carnitrack/internal/store"
)

// Watcher ingests intake CSV files dropped into a directory, appending
// their rows to today's draft. Each ingest goes through the normal draft
// path, so the rollover check runs on every file event the same way the
// original app re-checked the date on return to foreground.
type Watcher struct {
	st  *store.Store
	fs  *fsnotify.Watcher
	log hclog.Logger
}

func New(st *store.Store, dir string, logger hclog.Logger) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fs.Add(dir); err != nil {
		_ = fs.Close()
		return nil, err
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Watcher{st: st, fs: fs, log: logger}, nil
}

func (w *Watcher) Close() error {
	return w.fs.Close()
}

func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Ext(event.Name) != ".csv" {
				continue
			}
			w.log.Info("ingesting intake file", "path", event.Name)
			w.ingest(event.Name)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.log.Error("watch error", "error", err)
		}
	}
}

// Ingest parses one intake file and logs every resolvable line. Unknown
// foods are skipped with a warning rather than failing the file.
func (w *Watcher) Ingest(path string) (int, error) {
	lines, err := ParseIntake(path)
	if err != nil {
		return 0, err
	}
	foods, err := w.st.LoadFoods()
	if err != nil {
		return 0, err
	}
	logged := 0
	for _, line := range lines {
		food, ok := model.FoodByName(foods, line.Food)
		if !ok {
			w.log.Warn("skipping unknown food", "name", line.Food)
			continue
		}
		if _, err := service.AddFoodRow(w.st, food.ID, line.Grams); err != nil {
			w.log.Warn("skipping intake line", "name", line.Food, "error", err)
			continue
		}
		logged++
	}
	return logged, nil
}

func (w *Watcher) ingest(path string) {
	logged, err := w.Ingest(path)
	if err != nil {
		w.log.Error("intake file not ingested", "path", path, "error", err)
		return
	}
	w.log.Info("intake ingested", "path", path, "rows", logged)
}
