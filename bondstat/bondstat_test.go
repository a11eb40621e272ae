/*
 * bondstat_test.go
 *
 * Copyright 2026  <rmera@zinc>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation; either version 2 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston,
 * MA 02110-1301, USA.
 *
 *
 */

package bondstat

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	decarb "github.com/rmera/decarbonyl"
)

func TestCollector(Te *testing.T) {
	c := NewCollector()
	if c.N() != 0 {
		Te.Error("a fresh collector should be empty")
	}
	if mean, sigma := c.COStats(); mean != 0 || sigma != 0 {
		Te.Error("stats of an empty collector should be zero")
	}
	c.AddPairs([]*decarb.COPair{
		{C: 1, O: 2, DCO: 1.10, DMC: 1.90},
		{C: 3, O: 4, DCO: 1.20, DMC: 2.10},
		{C: 0, O: 1, DCO: 1.15, DMC: math.NaN()},
	})
	if c.N() != 3 {
		Te.Errorf("want 3 collected, got %d", c.N())
	}
	mean, sigma := c.COStats()
	if math.Abs(mean-1.15) > 0.000001 || math.Abs(sigma-0.05) > 0.000001 {
		Te.Errorf("wrong C-O stats: %v +- %v", mean, sigma)
	}
	//the NaN metal-C distance of the third pair must not poison the stats
	mmean, msigma := c.MCStats()
	if math.IsNaN(mmean) || math.IsNaN(msigma) {
		Te.Fatal("a pair detected without a metal poisoned the metal-C stats")
	}
	if math.Abs(mmean-2.0) > 0.000001 {
		Te.Errorf("wrong metal-C mean: %v", mmean)
	}
}

func TestHistogram(Te *testing.T) {
	c := NewCollector()
	pairs := make([]*decarb.COPair, 0, 10)
	for i := 0; i < 10; i++ {
		pairs = append(pairs, &decarb.COPair{DCO: 1.0 + float64(i)*0.02, DMC: math.NaN()})
	}
	c.AddPairs(pairs)
	counts, dividers := c.Histogram(4)
	if len(counts) != 4 || len(dividers) != 5 {
		Te.Fatalf("want 4 bins and 5 dividers, got %d and %d", len(counts), len(dividers))
	}
	var total float64
	for _, n := range counts {
		total += n
	}
	if total != 10 {
		Te.Errorf("the bins should hold all 10 values, got %v", total)
	}
	if dividers[0] != 1.0 || dividers[4] <= 1.18 {
		Te.Errorf("wrong range: %v", dividers)
	}
	if counts, dividers = NewCollector().Histogram(4); counts != nil || dividers != nil {
		Te.Error("an empty collector has no histogram")
	}
}

func TestSaveHisto(Te *testing.T) {
	c := NewCollector()
	name := filepath.Join(Te.TempDir(), "co.png")
	if err := c.SaveHisto(name, 5); err == nil {
		Te.Error("an empty collector should refuse to plot")
	}
	c.AddPairs([]*decarb.COPair{
		{DCO: 1.12, DMC: 1.85},
		{DCO: 1.14, DMC: 1.90},
		{DCO: 1.16, DMC: 1.95},
		{DCO: 1.14, DMC: 2.05},
	})
	if err := c.SaveHisto(name, 5); err != nil {
		Te.Fatal(err)
	}
	fi, err := os.Stat(name)
	if err != nil {
		Te.Fatal(err)
	}
	if fi.Size() == 0 {
		Te.Error("the plot came out empty")
	}
}
