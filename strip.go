/*
 * strip.go, part of decarbonyl.
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

//Decarbonylate locates the metal center of mol, detects its CO ligands and
//returns a new molecule with the first two of them removed, along with every
//pair detected. The surviving atoms keep their relative order. name is the
//file the molecule came from, used in error reporting.
//
//When no whitelisted metal is present (which includes an empty molecule) a
//*NoMetalError is returned; when less than two carbonyls are found, a
//*FewLigandsError. Neither is critical: they mean the file should be skipped
//or left alone, respectively. The detected pairs are returned even in the
//FewLigands case, so the caller can still report or collect them.
func Decarbonylate(name string, mol *Molecule, s *Settings) (*Molecule, []*COPair, error) {
	metal := FindMetalCenter(mol, s.MetalSet())
	if metal < 0 {
		return nil, nil, &NoMetalError{filename: name}
	}
	pairs := FindCOLigands(mol, metal, s)
	if len(pairs) < 2 {
		return nil, pairs, &FewLigandsError{filename: name, found: len(pairs)}
	}
	//the first two pairs in scan order go away. The doomed set is the union
	//of their indexes: in the odd geometry where the pairs share an atom,
	//fewer than 4 atoms are removed.
	doomed := map[int]bool{
		pairs[0].C: true,
		pairs[0].O: true,
		pairs[1].C: true,
		pairs[1].O: true,
	}
	survivors := make([]int, 0, mol.Len()-len(doomed))
	for i := 0; i < mol.Len(); i++ {
		if !doomed[i] {
			survivors = append(survivors, i)
		}
	}
	out, err := mol.SomeAtoms(survivors)
	if err != nil {
		return nil, pairs, errDecorate(err, "Decarbonylate")
	}
	return out, pairs, nil
}
