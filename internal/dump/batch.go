// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package dump

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/dacolabs/fbsdump/internal/logger"
	"golang.org/x/sync/errgroup"
)

// DumpAll dumps every path into outDir, running at most jobs files at once
// (jobs <= 0 means no limit). Files are independent: one failure does not
// stop the others. Results are returned in input order, nil for failed
// files, together with the joined per-file errors.
func (d *Dumper) DumpAll(ctx context.Context, paths []string, outDir string, jobs int) ([]*Result, error) {
	results := make([]*Result, len(paths))
	errs := make([]error, len(paths))
	claims := &claimSet{owners: make(map[string]string)}

	// An input listed twice is dumped once; later positions share its result.
	first := make(map[string]int, len(paths))
	dups := make(map[int]int)
	for i, path := range paths {
		key := filepath.Clean(path)
		if j, ok := first[key]; ok {
			dups[i] = j
			continue
		}
		first[key] = i
	}

	var eg errgroup.Group
	if jobs > 0 {
		eg.SetLimit(jobs)
	}

	for i, path := range paths {
		if _, dup := dups[i]; dup {
			continue
		}
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			res, err := d.dumpFile(path, outDir, func(out string) error {
				return claims.claim(out, path)
			})
			if err != nil {
				d.log().Warnw("dump failed", logger.FieldFile, path, logger.FieldError, err)
			}
			results[i], errs[i] = res, err
			return nil
		})
	}
	_ = eg.Wait()

	for i, j := range dups {
		results[i] = results[j]
	}
	return results, errors.Join(errs...)
}

// claimSet makes sure two inputs never write the same artifact.
type claimSet struct {
	mu     sync.Mutex
	owners map[string]string
}

func (c *claimSet) claim(out, source string) error {
	key := filepath.Clean(out)

	c.mu.Lock()
	defer c.mu.Unlock()

	if owner, ok := c.owners[key]; ok && owner != source {
		return errors.Newf("%s: output %s is already produced by %s", source, out, owner)
	}
	c.owners[key] = source
	return nil
}
