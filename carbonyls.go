/*
 * carbonyls.go, part of decarbonyl.
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

package decarb

import (
	"math"

	v3 "github.com/rmera/decarbonyl/v3"
)

//COPair is a detected carbonyl: the indexes of its carbon and oxygen atoms
//in the molecule, plus the distances with which it was accepted.
type COPair struct {
	C, O int
	DCO  float64 //C-O distance
	DMC  float64 //metal-C distance. NaN when detection ran without a metal
}

//FindMetalCenter returns the index of the first atom of mol whose symbol is
//in metals, or -1 when there is none. Symbols are matched as written in the
//file, so "FE" or "fe" are not Fe. Only this first atom is ever treated as
//the center; structures with several metals are not disambiguated.
func FindMetalCenter(mol *Molecule, metals map[string]bool) int {
	for i, at := range mol.Atoms {
		if metals[at.Symbol] {
			return i
		}
	}
	return -1
}

//FindCOLigands scans mol for carbonyls: C-O pairs whose distance falls
//within [COMin,COMax], both ends included, and whose carbon lies at no more
//than MCMax from the atom with index metal. A negative metal accepts pairs
//on the C-O distance alone; the normal pipeline never takes that branch,
//since it only detects ligands after finding a center, but the permissive
//form is kept for callers working without one. Pairs are returned in scan
//order, carbons ascending and oxygens ascending within each carbon, and
//later selection depends on that order. This might get slow for large
//systems; it is really not thought for proteins or macromolecules.
func FindCOLigands(mol *Molecule, metal int, s *Settings) []*COPair {
	var t1, t2 *v3.Matrix
	t3 := v3.Zeros(1)
	var mview *v3.Matrix
	if metal >= 0 {
		mview = mol.Coords.VecView(metal)
	}
	pairs := make([]*COPair, 0, 4)
	seen := make(map[[2]int]bool)
	tot := mol.Len()
	for i := 0; i < tot; i++ {
		if mol.Atom(i).Symbol != "C" {
			continue
		}
		t1 = mol.Coords.VecView(i)
		dmc := math.NaN()
		if mview != nil {
			t3.Sub(t1, mview)
			dmc = t3.Norm(2)
			if dmc > s.MCMax {
				continue //this carbon is not bound to the center
			}
		}
		for j := 0; j < tot; j++ {
			if mol.Atom(j).Symbol != "O" {
				continue
			}
			t2 = mol.Coords.VecView(j)
			t3.Sub(t2, t1)
			d := t3.Norm(2)
			if d < s.COMin || d > s.COMax {
				continue
			}
			key := [2]int{i, j}
			if j < i {
				key = [2]int{j, i}
			}
			if seen[key] {
				//the i,j scan visits each combination once, so this cannot
				//trigger today. It stays in case the scan ever changes.
				continue
			}
			seen[key] = true
			pairs = append(pairs, &COPair{C: i, O: j, DCO: d, DMC: dmc})
		}
	}
	return pairs
}
