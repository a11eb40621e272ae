/*
 * files.go, part of decarbonyl.
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
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	v3 "github.com/rmera/decarbonyl/v3"
)

//IsXYZFile reports whether name looks like a structure file this program
//reads: .xyz, optionally compressed as .xyz.gz or .xyz.zst. Case-insensitive.
func IsXYZFile(name string) bool {
	low := strings.ToLower(name)
	return strings.HasSuffix(low, ".xyz") || strings.HasSuffix(low, ".xyz.gz") || strings.HasSuffix(low, ".xyz.zst")
}

//OutName builds the output file name for path: suffix goes right before the
//".xyz" segment, so "a.xyz" becomes "a_d.xyz" and "a.xyz.zst" becomes
//"a_d.xyz.zst". When no ".xyz" segment is present, suffix is just appended.
func OutName(path, suffix string) string {
	dir, base := filepath.Split(path)
	idx := strings.LastIndex(strings.ToLower(base), ".xyz")
	if idx < 0 {
		return dir + base + suffix
	}
	return dir + base[:idx] + suffix + base[idx:]
}

//gzql and zstql pair a decompressor with the file underneath it, so that a
//single Close call releases both. zstd decoders additionally don't implement
//io.ReadCloser themselves, as their Close returns nothing.
type gzql struct {
	*gzip.Reader
	f *os.File
}

func (q gzql) Close() error {
	err := q.Reader.Close()
	err2 := q.f.Close()
	if err != nil {
		return err
	}
	return err2
}

type zstql struct {
	*zstd.Decoder
	f *os.File
}

func (q zstql) Close() error {
	q.Decoder.Close()
	return q.f.Close()
}

//wql is the writing-side counterpart, pairing any compressor with its file.
type wql struct {
	io.WriteCloser
	f *os.File
}

func (q wql) Close() error {
	if err := q.WriteCloser.Close(); err != nil {
		q.f.Close()
		return err
	}
	return q.f.Close()
}

//openXYZ opens name for reading, transparently decompressing gzip and zstd
//files by their suffix.
func openXYZ(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	low := strings.ToLower(name)
	switch {
	case strings.HasSuffix(low, ".gz"):
		r, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return gzql{r, f}, nil
	case strings.HasSuffix(low, ".zst"):
		r, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return zstql{r, f}, nil
	}
	return f, nil
}

//createXYZ creates name for writing, compressing by suffix as openXYZ does.
func createXYZ(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	low := strings.ToLower(name)
	switch {
	case strings.HasSuffix(low, ".gz"):
		h, err := gzip.NewWriterLevel(f, gzip.BestCompression)
		if err != nil {
			f.Close()
			return nil, err
		}
		return wql{h, f}, nil
	case strings.HasSuffix(low, ".zst"):
		h, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			f.Close()
			return nil, err
		}
		return wql{h, f}, nil
	}
	return f, nil
}

//XYZReadFrom parses the xyz-formatted text in r. name is only used to
//decorate errors. The format: an atom count line, a free-text comment line,
//then one line per atom with the element symbol and three coordinates.
//Blank lines between atom lines are tolerated and don't count towards the
//declared total. Anything after the last atom line is kept verbatim in the
//Extra field of the returned molecule.
func XYZReadFrom(r io.Reader, name string) (*Molecule, error) {
	buf := bufio.NewReader(r)
	var lines []string
	for {
		line, err := buf.ReadString('\n')
		if err == io.EOF {
			if line != "" {
				lines = append(lines, strings.TrimRight(line, "\r\n"))
			}
			break
		}
		if err != nil {
			return nil, err
		}
		lines = append(lines, strings.TrimRight(line, "\r\n"))
	}
	//the atom count is in the first non-blank line
	i := 0
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	if i >= len(lines) {
		return nil, &FormatError{"missing atom count line", name, []string{"XYZReadFrom"}}
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(lines[i]))
	if err != nil || natoms < 0 {
		return nil, &FormatError{fmt.Sprintf("malformed atom count line %q", lines[i]), name, []string{"XYZReadFrom"}}
	}
	i++
	var comment string
	if i < len(lines) {
		comment = lines[i]
		i++
	}
	atoms := make([]*Atom, 0, natoms)
	var coords []float64
	if natoms > 0 {
		coords = make([]float64, 0, natoms*3)
	}
	read := 0
	for read < natoms {
		if i >= len(lines) {
			return nil, &FormatError{fmt.Sprintf("declared %d atoms but found only %d atom lines", natoms, read), name, []string{"XYZReadFrom"}}
		}
		line := lines[i]
		i++
		if strings.TrimSpace(line) == "" {
			continue //blank lines inside the atom block don't count
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, &FormatError{fmt.Sprintf("malformed atom line %q", line), name, []string{"XYZReadFrom"}}
		}
		at := new(Atom)
		at.Symbol = fields[0]
		at.Mass = symbolMass[at.Symbol] //0 for unknown symbols
		for _, v := range fields[1:4] {
			c, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, &FormatError{fmt.Sprintf("malformed coordinate %q in atom line %q", v, line), name, []string{"XYZReadFrom"}}
			}
			coords = append(coords, c)
		}
		atoms = append(atoms, at)
		read++
	}
	extra := make([]string, len(lines)-i)
	copy(extra, lines[i:])
	var cmat *v3.Matrix
	if natoms > 0 {
		cmat, err = v3.NewMatrix(coords)
		if err != nil {
			return nil, errDecorate(err, "XYZReadFrom")
		}
	}
	return &Molecule{Atoms: atoms, Coords: cmat, Comment: comment, Extra: extra}, nil
}

//XYZRead reads the xyz file given by name, transparently decompressing it
//when the name ends in ".gz" or ".zst".
func XYZRead(name string) (*Molecule, error) {
	f, err := openXYZ(name)
	if err != nil {
		return nil, err
	}
	mol, err := XYZReadFrom(f, name)
	if err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return mol, nil
}

//XYZWriteTo writes mol in xyz format to w: the atom count, the comment line,
//one line per atom with the symbol left-justified and the coordinates with 6
//decimals in fixed-width columns, and finally the trailing lines of the
//original file, verbatim.
func XYZWriteTo(w io.Writer, mol *Molecule) error {
	if err := mol.Corrupted(); err != nil {
		return errDecorate(err, "XYZWriteTo")
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", mol.Len())
	fmt.Fprintf(bw, "%s\n", mol.Comment)
	for i := 0; i < mol.Len(); i++ {
		fmt.Fprintf(bw, "%-2s  %12.6f  %12.6f  %12.6f\n", mol.Atom(i).Symbol, mol.Coords.At(i, 0), mol.Coords.At(i, 1), mol.Coords.At(i, 2))
	}
	for _, line := range mol.Extra {
		fmt.Fprintf(bw, "%s\n", line)
	}
	return bw.Flush()
}

//XYZWrite writes mol to a new file called name, compressing by suffix as
//XYZRead does.
func XYZWrite(name string, mol *Molecule) error {
	if err := mol.Corrupted(); err != nil {
		return errDecorate(err, "XYZWrite")
	}
	h, err := createXYZ(name)
	if err != nil {
		return err
	}
	if err := XYZWriteTo(h, mol); err != nil {
		h.Close()
		return err
	}
	return h.Close()
}
