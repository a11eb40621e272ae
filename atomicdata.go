/*
 * atomicdata.go, part of decarbonyl.
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

import "sort"

//The elements accepted as a carbonyl-bearing center: transition metals
//typical of organometallic carbonyl chemistry.
var symbolMetals = map[string]bool{
	"Ir": true,
	"Rh": true,
	"Pd": true,
	"Pt": true,
	"Ni": true,
	"Co": true,
	"Fe": true,
	"Ru": true,
	"Os": true,
}

//A map for assigning mass to elements.
//Only the center metals and the elements common in their ligands are present.
var symbolMass = map[string]float64{
	"H":  1.0,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"Cl": 35.45,
	"Fe": 55.84,
	"Co": 58.93,
	"Ni": 58.69,
	"Ru": 101.07,
	"Rh": 102.91,
	"Pd": 106.42,
	"Os": 190.23,
	"Ir": 192.22,
	"Pt": 195.08,
}

//DefaultMetals returns the built-in metal whitelist as a sorted slice.
func DefaultMetals() []string {
	ret := make([]string, 0, len(symbolMetals))
	for k := range symbolMetals {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}
