/*
 * carbonyls_test.go
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

package decarb

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

func readInline(Te *testing.T, text string) *Molecule {
	mol, err := XYZReadFrom(strings.NewReader(text), "inline")
	if err != nil {
		Te.Fatal(err)
	}
	return mol
}

func TestFindMetalCenter(Te *testing.T) {
	s := DefaultSettings()
	mol, err := XYZRead("test/irco2.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	if at := FindMetalCenter(mol, s.MetalSet()); at != 0 {
		Te.Errorf("want the Ir at 0, got %d", at)
	}
	ticl4, err := XYZRead("test/ticl4.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	if at := FindMetalCenter(ticl4, s.MetalSet()); at != -1 {
		Te.Errorf("Ti is not whitelisted, want -1, got %d", at)
	}
	//the whitelist is configurable, though
	if at := FindMetalCenter(ticl4, map[string]bool{"Ti": true}); at != 0 {
		Te.Errorf("want the Ti at 0 with a custom whitelist, got %d", at)
	}
	//symbols match as written, no case folding
	low := readInline(Te, "1\nlowercase iridium\nir 0.0 0.0 0.0\n")
	if at := FindMetalCenter(low, s.MetalSet()); at != -1 {
		Te.Errorf("\"ir\" is not Ir, want -1, got %d", at)
	}
	//only the first metal is the center
	two := readInline(Te, "2\ntwo metals\nFe 0.0 0.0 0.0\nIr 5.0 0.0 0.0\n")
	if at := FindMetalCenter(two, s.MetalSet()); at != 0 {
		Te.Errorf("want the first metal, got %d", at)
	}
}

func TestFindCOLigands(Te *testing.T) {
	s := DefaultSettings()
	mol, err := XYZRead("test/irco2.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	pairs := FindCOLigands(mol, 0, s)
	if len(pairs) != 2 {
		Te.Fatalf("want 2 carbonyls, got %d", len(pairs))
	}
	if pairs[0].C != 1 || pairs[0].O != 2 || pairs[1].C != 3 || pairs[1].O != 4 {
		Te.Errorf("wrong pairs: %v %v", pairs[0], pairs[1])
	}
	if math.Abs(pairs[0].DCO-1.15) > 0.000001 || math.Abs(pairs[0].DMC-1.9) > 0.000001 {
		Te.Errorf("wrong distances: %v", pairs[0])
	}
	//detection doesn't touch the molecule, so a second scan sees the same
	again := FindCOLigands(mol, 0, s)
	if len(again) != len(pairs) || again[0].C != pairs[0].C || again[1].O != pairs[1].O {
		Te.Error("a second scan gave a different answer")
	}
	fmt.Println("carbonyls found:", len(pairs))
}

//TestLigandOrder checks that pairs come out with the carbons in file order,
//which the removal step depends on.
func TestLigandOrder(Te *testing.T) {
	mol, err := XYZRead("test/feco5.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	pairs := FindCOLigands(mol, 0, DefaultSettings())
	if len(pairs) != 5 {
		Te.Fatalf("want the 5 carbonyls of Fe(CO)5, got %d", len(pairs))
	}
	for k, p := range pairs {
		if p.C != 2*k+1 || p.O != 2*k+2 {
			Te.Errorf("pair %d out of order: %v", k, p)
		}
	}
}

//TestDetectionWindows probes the edges of the distance windows. Both ends
//of the C-O window and the metal-C maximum are inclusive; the geometries
//here are axis-aligned so the distances are exact in floating point.
func TestDetectionWindows(Te *testing.T) {
	s := DefaultSettings()
	//C-O at exactly the lower end
	mol := readInline(Te, "3\nexactly 1.00\nIr  0.0 0.0 0.0\nC  1.5 0.0 0.0\nO  2.5 0.0 0.0\n")
	if pairs := FindCOLigands(mol, 0, s); len(pairs) != 1 {
		Te.Errorf("a C-O of exactly 1.00 is a carbonyl, got %d pairs", len(pairs))
	}
	//just under it
	mol = readInline(Te, "3\ntoo short\nIr  0.0 0.0 0.0\nC  1.5 0.0 0.0\nO  2.499 0.0 0.0\n")
	if pairs := FindCOLigands(mol, 0, s); len(pairs) != 0 {
		Te.Errorf("a C-O of 0.999 is not a carbonyl, got %d pairs", len(pairs))
	}
	//just over the upper end
	mol = readInline(Te, "3\ntoo long\nIr  0.0 0.0 0.0\nC  1.5 0.0 0.0\nO  2.801 0.0 0.0\n")
	if pairs := FindCOLigands(mol, 0, s); len(pairs) != 0 {
		Te.Errorf("a C-O of 1.301 is not a carbonyl, got %d pairs", len(pairs))
	}
	//carbon too far from the metal
	mol = readInline(Te, "3\nnot bound\nIr  0.0 0.0 0.0\nC  2.21 0.0 0.0\nO  3.36 0.0 0.0\n")
	if pairs := FindCOLigands(mol, 0, s); len(pairs) != 0 {
		Te.Errorf("a carbon at 2.21 is not bound to the metal, got %d pairs", len(pairs))
	}
	//the upper end of the C-O window is inclusive
	s2 := DefaultSettings()
	s2.COMax = 1.25
	mol = readInline(Te, "3\nexactly at COMax\nIr  0.0 0.0 0.0\nC  1.5 0.0 0.0\nO  2.75 0.0 0.0\n")
	if pairs := FindCOLigands(mol, 0, s2); len(pairs) != 1 {
		Te.Errorf("a C-O of exactly COMax is a carbonyl, got %d pairs", len(pairs))
	}
	//so is the metal-C maximum
	s3 := DefaultSettings()
	s3.MCMax = 2.0
	mol = readInline(Te, "3\nexactly at MCMax\nIr  0.0 0.0 0.0\nC  2.0 0.0 0.0\nO  3.15 0.0 0.0\n")
	if pairs := FindCOLigands(mol, 0, s3); len(pairs) != 1 {
		Te.Errorf("a carbon at exactly MCMax is bound, got %d pairs", len(pairs))
	}
}

//TestNoMetalScan checks the permissive branch: with a negative center index
//the scan accepts pairs on the C-O distance alone and reports no metal-C
//distance.
func TestNoMetalScan(Te *testing.T) {
	mol := readInline(Te, "2\nfree carbon monoxide\nC  0.0 0.0 0.0\nO  1.15 0.0 0.0\n")
	pairs := FindCOLigands(mol, -1, DefaultSettings())
	if len(pairs) != 1 {
		Te.Fatalf("want 1 pair without a metal, got %d", len(pairs))
	}
	if !math.IsNaN(pairs[0].DMC) {
		Te.Errorf("want NaN for the metal-C distance, got %v", pairs[0].DMC)
	}
}
