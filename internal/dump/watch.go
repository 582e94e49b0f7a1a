// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package dump

import (
	"context"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/dacolabs/fbsdump/internal/logger"
	"github.com/fsnotify/fsnotify"
)

// Watch re-dumps a file into outDir every time it is written or replaced,
// reporting each attempt to onResult, until ctx is done. Failures of single
// dumps are reported, not returned.
func (d *Dumper) Watch(ctx context.Context, paths []string, outDir string, onResult func(*Result, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to start file watcher")
	}
	defer w.Close() //nolint:errcheck

	watched := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		watched[abs] = true
		// Watch the directory: editors and build tools often replace files
		// instead of writing them in place.
		dir := filepath.Dir(abs)
		if !dirs[dir] {
			if err := w.Add(dir); err != nil {
				return errors.Wrapf(err, "watch %s", dir)
			}
			dirs[dir] = true
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			name := filepath.Clean(ev.Name)
			if !watched[name] || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			d.log().Debugw("schema changed", logger.FieldFile, name, "op", ev.Op.String())
			onResult(d.DumpFile(name, outDir))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			d.log().Warnw("file watcher error", logger.FieldError, err)
		}
	}
}
