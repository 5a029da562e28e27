package words

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// DefaultDebounce collapses the burst of events an editor save produces.
const DefaultDebounce = 250 * time.Millisecond

// Watch reloads d whenever one of its backing files changes, until ctx is
// done. It watches the parent directories so that rename-on-save editors
// are picked up. Dictionaries without files return immediately.
//
// Reload failures are logged and the previous lists stay in use.
func Watch(ctx context.Context, d *Dictionary, debounce time.Duration) error {
	paths := d.Paths()
	if len(paths) == 0 {
		return nil
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	targets := make(map[string]struct{}, len(paths))
	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		targets[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			return err
		}
	}

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			abs, _ := filepath.Abs(ev.Name)
			if _, ok := targets[abs]; !ok {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("word list watcher")

		case <-timer.C:
			if err := d.Reload(); err != nil {
				log.Warn().Err(err).Strs("paths", paths).Msg("reload word lists")
				continue
			}
			a, g := d.Stats()
			log.Info().Int("answers", a).Int("allowed", g).Msg("word lists reloaded")
		}
	}
}
