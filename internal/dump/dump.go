// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package dump turns binary reflection schemas into an IDL document and a
// matching set of type stubs.
package dump

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dacolabs/fbsdump/internal/logger"
	"github.com/dacolabs/fbsdump/internal/reflection"
	"github.com/dacolabs/fbsdump/internal/schema"
	"github.com/dacolabs/fbsdump/internal/translate"
	"go.uber.org/zap"
)

// Dumper renders decoded schemas with a fixed pair of translators.
// A Dumper holds no mutable state; it is safe for concurrent use.
type Dumper struct {
	IDL      translate.Translator
	Stubs    translate.Translator
	Settings translate.Settings
	Log      *zap.SugaredLogger
}

// Result describes the artifacts written for one schema file.
type Result struct {
	Source   string
	IDLPath  string
	StubPath string
	Objects  int
	Enums    int
	Root     string
}

// Dump renders g into the two sinks. The sinks are only written to; opening,
// flushing and closing them is the caller's job. Nothing is written when g
// cannot be rendered.
func (d *Dumper) Dump(g *schema.Graph, idl, stubs io.Writer) error {
	data, err := translate.Prepare(g, d.Settings)
	if err != nil {
		return err
	}
	return d.render(data, idl, stubs)
}

// DumpBytes decodes buf and renders it into the two sinks. Decode errors are
// returned unchanged and nothing is written.
func (d *Dumper) DumpBytes(buf []byte, idl, stubs io.Writer) (*schema.Graph, error) {
	g, err := reflection.Decode(buf)
	if err != nil {
		return nil, err
	}
	if err := d.Dump(g, idl, stubs); err != nil {
		return nil, err
	}
	return g, nil
}

func (d *Dumper) render(data *translate.SchemaData, idl, stubs io.Writer) error {
	if err := d.IDL.Translate(idl, data); err != nil {
		return err
	}
	return d.Stubs.Translate(stubs, data)
}

// DumpFile decodes the schema at path and writes <base><ext> for both
// translators into outDir. The base name is the root table name, or the input
// file name without extension when the schema has no root table.
func (d *Dumper) DumpFile(path, outDir string) (*Result, error) {
	return d.dumpFile(path, outDir, nil)
}

// dumpFile is DumpFile with an optional claim hook that may veto an output
// path before anything is written to it.
func (d *Dumper) dumpFile(path, outDir string, claim func(string) error) (*Result, error) {
	start := time.Now()
	log := d.log().With(logger.FieldFile, path)

	buf, err := os.ReadFile(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	g, err := reflection.Decode(buf)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	data, err := translate.Prepare(g, d.Settings)
	if err != nil {
		return nil, errors.Wrapf(err, "render %s", path)
	}

	base := BaseName(g, path, d.Settings)
	res := &Result{
		Source:   path,
		IDLPath:  filepath.Join(outDir, base+d.IDL.FileExtension()),
		StubPath: filepath.Join(outDir, base+d.Stubs.FileExtension()),
		Objects:  len(g.Objects),
		Enums:    len(g.Enums),
		Root:     g.RootTable,
	}
	if res.IDLPath == res.StubPath {
		return nil, errors.Newf("translators %s and %s share the extension %q", d.IDL.Name(), d.Stubs.Name(), d.IDL.FileExtension())
	}
	if claim != nil {
		for _, p := range []string{res.IDLPath, res.StubPath} {
			if err := claim(p); err != nil {
				return nil, err
			}
		}
	}

	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return nil, errors.Wrap(err, "failed to create output directory")
	}
	if err := writeFile(res.IDLPath, func(w io.Writer) error { return d.IDL.Translate(w, data) }); err != nil {
		return nil, err
	}
	if err := writeFile(res.StubPath, func(w io.Writer) error { return d.Stubs.Translate(w, data) }); err != nil {
		// The artifacts come in pairs; drop the IDL written above.
		_ = os.Remove(res.IDLPath)
		return nil, err
	}

	log.Infow("schema dumped",
		logger.FieldObjects, res.Objects,
		logger.FieldEnums, res.Enums,
		logger.FieldRoot, res.Root,
		logger.FieldOutput, res.IDLPath,
		logger.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return res, nil
}

// BaseName returns the file name shared by both artifacts of a schema.
func BaseName(g *schema.Graph, path string, s translate.Settings) string {
	if g.RootTable != "" {
		return schema.ResolveName(g.RootTable, s.StripNamespace)
	}
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// writeFile creates path and hands a buffered writer to fn. A partially
// written file is removed.
func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is derived from the output directory
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	w := bufio.NewWriter(f)
	if err := fn(w); err != nil {
		return err
	}
	return w.Flush()
}

func (d *Dumper) log() *zap.SugaredLogger {
	if d.Log == nil {
		return zap.NewNop().Sugar()
	}
	return d.Log
}
