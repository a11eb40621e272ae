/*
 * decarb.go, part of decarbonyl.
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
	"fmt"

	v3 "github.com/rmera/decarbonyl/v3"
)

//Atom contains an atom read from a structure file, except for the
//coordinates, which live in a separate matrix.
type Atom struct {
	Symbol string
	Mass   float64 //0 when the symbol is not in the mass table
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	Newat := new(Atom)
	Newat.Symbol = A.Symbol
	Newat.Mass = A.Mass
	return Newat
}

//Molecule contains the atoms of a structure, their coordinates, the comment
//line of the file they came from, and whatever trailing lines followed the
//coordinates, kept verbatim so they can be written back unchanged.
type Molecule struct {
	Atoms   []*Atom
	Coords  *v3.Matrix
	Comment string
	Extra   []string
}

//NewMolecule checks consistency and returns a Molecule. coords may only be
//nil when atoms is empty, as gonum matrices cannot have zero rows.
func NewMolecule(atoms []*Atom, coords *v3.Matrix) (*Molecule, error) {
	if atoms == nil {
		return nil, &CError{"nil atoms", []string{"NewMolecule"}}
	}
	M := &Molecule{Atoms: atoms, Coords: coords}
	if err := M.Corrupted(); err != nil {
		return nil, errDecorate(err, "NewMolecule")
	}
	return M, nil
}

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.Atoms)
}

//Atom returns the Atom corresponding to the index given. Panics if the
//request is out of range.
func (M *Molecule) Atom(i int) *Atom {
	if i >= M.Len() {
		panic("decarb: Requested Atom out of bounds")
	}
	return M.Atoms[i]
}

//Mass returns the sum of the masses of the atoms in the molecule. Atoms
//whose symbols are missing from the mass table count as zero.
func (M *Molecule) Mass() float64 {
	var ret float64
	for _, at := range M.Atoms {
		ret += at.Mass
	}
	return ret
}

//Corrupted checks whether the molecule is corrupted, i.e. the coordinates
//don't match the number of atoms. A molecule with no atoms and nil
//coordinates is valid.
func (M *Molecule) Corrupted() error {
	if M.Coords == nil {
		if len(M.Atoms) == 0 {
			return nil
		}
		return &CError{fmt.Sprintf("nil coordinates for %d atoms", len(M.Atoms)), []string{"Corrupted"}}
	}
	if M.Len() != M.Coords.NVecs() {
		return &CError{fmt.Sprintf("inconsistent coordinates/atoms: atoms: %d, coords: %d", M.Len(), M.Coords.NVecs()), []string{"Corrupted"}}
	}
	return nil
}

//Copy returns a copy of the molecule, including coordinates, the comment
//and the trailing lines.
func (M *Molecule) Copy() *Molecule {
	if err := M.Corrupted(); err != nil {
		panic(err.Error())
	}
	atoms := make([]*Atom, 0, M.Len())
	for _, at := range M.Atoms {
		atoms = append(atoms, at.Copy())
	}
	var coords *v3.Matrix
	if M.Coords != nil {
		coords = v3.Zeros(M.Len())
		coords.Copy(M.Coords)
	}
	extra := make([]string, len(M.Extra))
	copy(extra, M.Extra)
	return &Molecule{Atoms: atoms, Coords: coords, Comment: M.Comment, Extra: extra}
}

//SomeAtoms returns a new Molecule with the atoms whose indexes are in
//atomlist, in the order of the list. The Atom objects are shared with the
//original molecule; the coordinates are copied. The comment and trailing
//lines are carried over.
func (M *Molecule) SomeAtoms(atomlist []int) (*Molecule, error) {
	ret := make([]*Atom, 0, len(atomlist))
	lenatoms := M.Len()
	for k, j := range atomlist {
		if j > lenatoms-1 {
			return nil, &CError{fmt.Sprintf("Atom requested (Number: %d, value: %d) out of range", k, j), []string{"SomeAtoms"}}
		}
		ret = append(ret, M.Atoms[j])
	}
	var coords *v3.Matrix
	if len(atomlist) > 0 {
		coords = v3.Zeros(len(atomlist))
		if err := coords.SomeVecsSafe(M.Coords, atomlist); err != nil {
			return nil, errDecorate(err, "SomeAtoms")
		}
	}
	extra := make([]string, len(M.Extra))
	copy(extra, M.Extra)
	return &Molecule{Atoms: ret, Coords: coords, Comment: M.Comment, Extra: extra}, nil
}

//Del deletes atom i and its coordinates from the molecule, in place.
//Panics if the request is out of range.
func (M *Molecule) Del(i int) error {
	if i >= M.Len() {
		panic("decarb: Tried to delete Atom out of bounds")
	}
	if i == M.Len()-1 {
		M.Atoms = M.Atoms[:i]
	} else {
		M.Atoms = append(M.Atoms[:i], M.Atoms[i+1:]...)
	}
	if M.Len() == 0 {
		M.Coords = nil
		return nil
	}
	ncoords := v3.Zeros(M.Len())
	ncoords.DelVec(M.Coords, i)
	M.Coords = ncoords
	return nil
}
