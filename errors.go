/*
 * errors.go, part of decarbonyl.
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
)

//This error scheme predates the "wrapping" error system of Go (the "%w"
//directive and the errors package). It comes from goChem, where the Decorate
//method is how information is added to an error on its way up the stack.

// Error is the interface for errors that this package and its subpackages
// implement. The Decorate method allows to add and retrieve info from the
// error, without changing its type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Decorate adds the given string to the decoration slice of the error and returns the resulting slice. If given an empty string it just returns the current slice.
}

// FileError is the interface for errors tied to one structure file.
type FileError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// SkipError marks the harmless outcomes that only mean "nothing to do for
// this file", so they can be filtered in a typeswitch that looks for this
// interface.
type SkipError interface {
	FileError
	NormalSkip() //does nothing, just to separate this interface from other FileError's
}

// WarnError marks the outcomes where the file was understood but deliberately
// left untouched. Also meant to be filtered in a typeswitch.
type WarnError interface {
	FileError
	NormalWarning() //does nothing, see NormalSkip
}

//CError (Concrete Error) is the concrete error type for the package.
type CError struct {
	msg  string
	deco []string
}

func (err *CError) Error() string { return err.msg }

//Decorate adds the dec string to the decoration slice of strings of the error,
//and returns the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//errDecorate asserts that err implements Error, decorates it with the
//caller's name and returns it. It will panic if given any other error type.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

//FormatError reports a malformed structure file: a bad header, a bad atom
//record or a truncated atom block. It is always critical for the file, but
//never for a batch.
type FormatError struct {
	message  string
	filename string
	deco     []string
}

func (err *FormatError) Error() string {
	return fmt.Sprintf("xyz file %s: %s", err.filename, err.message)
}

//Decorate adds the dec string to the decoration slice of strings of the error,
//and returns the resulting slice.
func (err *FormatError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//FileName returns the name of the file with which the error happened.
func (err *FormatError) FileName() string { return err.filename }

//Format returns the format of the file with which the error happened.
func (err *FormatError) Format() string { return "xyz" }

//Critical returns true, parse errors are never harmless.
func (err *FormatError) Critical() bool { return true }

//NoMetalError is returned when a structure contains none of the whitelisted
//metals, including the case of a structure with no atoms at all. It is a
//normal outcome, not a problem with the file.
type NoMetalError struct {
	filename string
	deco     []string
}

func (err *NoMetalError) Error() string {
	return fmt.Sprintf("xyz file %s: no center metal found", err.filename)
}

//Decorate adds the dec string to the decoration slice of strings of the error,
//and returns the resulting slice.
func (err *NoMetalError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//FileName returns the name of the file with which the error happened.
func (err *NoMetalError) FileName() string { return err.filename }

//Format returns the format of the file with which the error happened.
func (err *NoMetalError) Format() string { return "xyz" }

//Critical returns false, the file just doesn't concern this program.
func (err *NoMetalError) Critical() bool { return false }

//NormalSkip does nothing. It marks the error as a plain skip.
func (err *NoMetalError) NormalSkip() {}

//FewLigandsError is returned when less than two CO ligands were detected
//around the metal center. The structure is valid, but the tool only acts
//when at least two carbonyls are confidently identified, so the file is
//left alone.
type FewLigandsError struct {
	filename string
	found    int
	deco     []string
}

func (err *FewLigandsError) Error() string {
	return fmt.Sprintf("xyz file %s: detected %d CO ligands, need at least 2", err.filename, err.found)
}

//Decorate adds the dec string to the decoration slice of strings of the error,
//and returns the resulting slice.
func (err *FewLigandsError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//FileName returns the name of the file with which the error happened.
func (err *FewLigandsError) FileName() string { return err.filename }

//Format returns the format of the file with which the error happened.
func (err *FewLigandsError) Format() string { return "xyz" }

//Critical returns false, the file is valid and deliberately left alone.
func (err *FewLigandsError) Critical() bool { return false }

//Found returns how many CO ligands were detected.
func (err *FewLigandsError) Found() int { return err.found }

//NormalWarning does nothing. It marks the error as a warning outcome.
func (err *FewLigandsError) NormalWarning() {}
