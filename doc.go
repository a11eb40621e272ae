/*
 * doc.go, part of decarbonyl.
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

/*Package decarb removes carbonyl (CO) ligands from transition-metal complexes
stored in xyz files. Carbonyls are located with plain distance heuristics: a
C-O pair within a bond-length window whose carbon sits close enough to the
first whitelisted metal of the structure. The first two carbonyls found, in
scan order, are deleted and the remaining structure is written to a new file,
keeping the comment line and any trailing text of the original.

The package reads and writes plain, gzip and zstd compressed xyz files. The
batch and bondstat subpackages drive whole directories and collect bond-length
statistics, respectively.
*/
package decarb
