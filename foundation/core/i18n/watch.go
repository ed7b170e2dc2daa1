// File: watch.go
// Title: Locale Directory Watching
// Description: Watches the locale directory with fsnotify and reloads the
//              catalog when a locale file is added, changed or removed.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of locale file watching
// - 2026-10-19 v0.2.0: Context cancellation, whole-directory snapshots
// - 2026-10-19 v0.3.0: fsnotify events with debounced reload

package i18n

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/msto63/formatting/foundation/core/errors"
	"github.com/msto63/formatting/foundation/core/log"
)

// DefaultWatchDebounce is the quiet period used when none is given
const DefaultWatchDebounce = 500 * time.Millisecond

const reloadOps = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

// Watch reloads the catalog when locale files in LocalesDir change. Events
// are collected until the directory has been quiet for debounce, then
// Reload runs once. Watch blocks until ctx is done and returns ctx.Err().
// When a reload fails the previous tables stay in place.
func (c *Catalog) Watch(ctx context.Context, debounce time.Duration) error {
	if c.localesDir == "" {
		return errors.InvalidInput(errors.ModuleI18n, "Watch", c.localesDir, "a locales directory")
	}
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.OperationFailed(errors.ModuleI18n, "Watch", err)
	}
	defer watcher.Close()

	if err := watcher.Add(c.localesDir); err != nil {
		return errors.OperationFailed(errors.ModuleI18n, "Watch", err)
	}
	c.logger.Debug("watching locale directory", log.Field("dir", c.localesDir))

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return errors.OperationFailed(errors.ModuleI18n, "Watch", fmt.Errorf("watcher closed"))
			}
			if _, isLocale := FormatFromPath(event.Name); !isLocale || event.Op&reloadOps == 0 {
				continue
			}
			c.logger.Debug("locale file changed", log.Fields{
				"file": filepath.Base(event.Name),
				"op":   event.Op.String(),
			})
			timer.Reset(debounce)

		case <-timer.C:
			// Reload logs its own failure
			_ = c.Reload()

		case err, ok := <-watcher.Errors:
			if !ok {
				return errors.OperationFailed(errors.ModuleI18n, "Watch", fmt.Errorf("watcher closed"))
			}
			c.logger.WarnWithErr("locale watcher error", err)
		}
	}
}
