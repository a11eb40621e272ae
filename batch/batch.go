/*
 * batch.go, part of decarbonyl.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * decarbonyl is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

//Package batch runs the carbonyl removal over every xyz file in a directory.
//A problem with one file never stops the others: each file ends in exactly
//one of the statuses defined here, and only environment-level trouble (say,
//an unreadable directory) aborts the whole run.
package batch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	decarb "github.com/rmera/decarbonyl"
	"github.com/rmera/decarbonyl/bondstat"
	"golang.org/x/sync/errgroup"
)

//Status is the outcome of processing one file.
type Status int

const (
	//Done means carbonyls were removed and the output file written.
	Done Status = iota
	//Skipped means the file doesn't concern this program (no center metal).
	Skipped
	//Warning means the file was understood but deliberately left alone
	//(less than two carbonyls detected).
	Warning
	//Failed means the file could not be parsed, read or written.
	Failed
)

func (s Status) String() string {
	switch s {
	case Done:
		return "done"
	case Skipped:
		return "skipped"
	case Warning:
		return "warning"
	case Failed:
		return "failed"
	}
	return "unknown"
}

//Result is what became of one input file.
type Result struct {
	File     string //the input file
	Out      string //the output file, empty unless Status is Done
	Status   Status
	AtomsIn  int     //atoms read
	AtomsOut int     //atoms written, 0 unless Status is Done
	Pairs    int     //carbonyl pairs detected, removed or not
	Mass     float64 //mass removed, in Daltons
	Err      error   //nil only when Status is Done
}

//Runner processes the xyz files of one directory with one set of settings.
type Runner struct {
	set  *decarb.Settings
	log  *slog.Logger
	coll *bondstat.Collector
}

//NewRunner returns a Runner over the given settings. A nil logger means
//slog.Default.
func NewRunner(set *decarb.Settings, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{set: set, log: log}
}

//Collect makes the Runner feed every detected carbonyl to c. Pass nil to
//stop collecting.
func (R *Runner) Collect(c *bondstat.Collector) {
	R.coll = c
}

//ProcessFile runs the whole pipeline on one file: read, detect, strip,
//write. Whatever happens is folded into the returned Result; ProcessFile
//itself never fails.
func (R *Runner) ProcessFile(path string) *Result {
	R.log.Debug("processing", "file", path)
	res := &Result{File: path}
	mol, err := decarb.XYZRead(path)
	if err != nil {
		res.Status = Failed
		res.Err = err
		return res
	}
	res.AtomsIn = mol.Len()
	out, pairs, err := decarb.Decarbonylate(path, mol, R.set)
	res.Pairs = len(pairs)
	if R.coll != nil && len(pairs) > 0 {
		R.coll.AddPairs(pairs)
	}
	if err != nil {
		res.Err = err
		switch err.(type) {
		case decarb.SkipError:
			res.Status = Skipped
		case decarb.WarnError:
			res.Status = Warning
		default:
			res.Status = Failed
		}
		return res
	}
	res.Out = decarb.OutName(path, R.set.Suffix)
	if err := decarb.XYZWrite(res.Out, out); err != nil {
		res.Status = Failed
		res.Err = err
		return res
	}
	res.Status = Done
	res.AtomsOut = out.Len()
	res.Mass = mol.Mass() - out.Mass()
	return res
}

//Run processes every xyz file in the settings' directory and returns one
//Result per file, in lexical order of the file names. Per-file problems are
//reported in the results, not in the returned error, which is reserved for
//trouble with the directory itself.
func (R *Runner) Run() ([]*Result, error) {
	entries, err := os.ReadDir(R.set.Dir)
	if err != nil {
		return nil, fmt.Errorf("cannot list directory %s: %w", R.set.Dir, err)
	}
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !decarb.IsXYZFile(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(R.set.Dir, e.Name()))
	}
	sort.Strings(files)
	results := make([]*Result, len(files))
	if R.set.Workers > 1 {
		var g errgroup.Group
		g.SetLimit(R.set.Workers)
		for i, f := range files {
			i, f := i, f //pre-1.22 loop variable capture
			g.Go(func() error {
				results[i] = R.ProcessFile(f)
				return nil
			})
		}
		g.Wait() //the workers never return errors, per-file trouble lives in the results
	} else {
		for i, f := range files {
			results[i] = R.ProcessFile(f)
		}
	}
	var done, skipped, warned, failed int
	for _, r := range results {
		switch r.Status {
		case Done:
			done++
			R.log.Info("carbonyls removed", "file", r.File, "out", r.Out, "pairs", r.Pairs, "atoms_in", r.AtomsIn, "atoms_out", r.AtomsOut, "mass_removed", r.Mass)
		case Skipped:
			skipped++
			R.log.Info("file skipped", "file", r.File, "reason", r.Err)
		case Warning:
			warned++
			R.log.Warn("file left alone", "file", r.File, "reason", r.Err)
		case Failed:
			failed++
			R.log.Error("file failed", "file", r.File, "error", r.Err)
		}
	}
	R.log.Info("batch finished", "files", len(results), "done", done, "skipped", skipped, "warnings", warned, "failed", failed)
	return results, nil
}
