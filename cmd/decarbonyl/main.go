/*
 * main.go, part of decarbonyl.
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

//decarbonyl removes the first two carbonyl (CO) ligands from the
//transition-metal complexes stored as xyz files in a directory. Each
//processed file name.xyz produces a name_d.xyz next to it; files without a
//whitelisted metal or with less than two detected carbonyls are reported
//and left alone.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	decarb "github.com/rmera/decarbonyl"
	"github.com/rmera/decarbonyl/batch"
	"github.com/rmera/decarbonyl/bondstat"
)

const histoBins = 10

func main() {
	config := flag.String("config", "", "settings file, overrides ./decarbonyl.yaml")
	dir := flag.String("dir", ".", "directory with the xyz files")
	suffix := flag.String("suffix", "_d", "inserted before .xyz in output names")
	workers := flag.Int("workers", 1, "files processed at once")
	histo := flag.String("histo", "", "write a PNG histogram of the C-O distances to this file")
	verbose := flag.Bool("v", false, "print debug information")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	var opts *slog.HandlerOptions
	if *verbose {
		opts = &slog.HandlerOptions{Level: slog.LevelDebug}
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, opts))
	slog.SetDefault(log)
	s, err := decarb.LoadSettings(*config)
	if err != nil {
		log.Error("cannot load settings", "error", err)
		os.Exit(1)
	}
	//flags given explicitly win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dir":
			s.Dir = *dir
		case "suffix":
			s.Suffix = *suffix
		case "workers":
			s.Workers = *workers
		case "histo":
			s.Histo = *histo
		}
	})
	r := batch.NewRunner(s, log)
	var coll *bondstat.Collector
	if s.Histo != "" {
		coll = bondstat.NewCollector()
		r.Collect(coll)
	}
	if _, err := r.Run(); err != nil {
		log.Error("batch aborted", "error", err)
		os.Exit(1)
	}
	if coll == nil {
		return
	}
	if coll.N() == 0 {
		log.Warn("no carbonyls detected, histogram not written", "file", s.Histo)
		return
	}
	mean, sigma := coll.COStats()
	log.Info("C-O bond lengths", "n", coll.N(), "mean", mean, "sigma", sigma)
	mean, sigma = coll.MCStats()
	log.Info("metal-C bond lengths", "mean", mean, "sigma", sigma)
	if err := coll.SaveHisto(s.Histo, histoBins); err != nil {
		log.Error("cannot write histogram", "error", err)
		os.Exit(1)
	}
}
