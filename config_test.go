/*
 * config_test.go
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
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSettings(Te *testing.T) {
	s := DefaultSettings()
	if s.COMin != 1.00 || s.COMax != 1.30 || s.MCMax != 2.20 {
		Te.Errorf("wrong default windows: %v", s)
	}
	if s.Suffix != "_d" || s.Dir != "." || s.Workers != 1 {
		Te.Errorf("wrong defaults: %v", s)
	}
	if len(s.Metals) != 9 {
		Te.Errorf("want the 9 whitelisted metals, got %v", s.Metals)
	}
}

func TestMetalSet(Te *testing.T) {
	s := DefaultSettings()
	m := s.MetalSet()
	for _, sym := range []string{"Ir", "Rh", "Pd", "Pt", "Ni", "Co", "Fe", "Ru", "Os"} {
		if !m[sym] {
			Te.Errorf("%s missing from the default whitelist", sym)
		}
	}
	if m["Ti"] || m["C"] {
		Te.Error("the default whitelist is too permissive")
	}
	s.Metals = []string{"Fe"}
	m = s.MetalSet()
	if !m["Fe"] || m["Ir"] {
		Te.Error("a custom whitelist should replace the built-in one")
	}
	//an empty list falls back to the built-in whitelist
	s.Metals = nil
	if m = s.MetalSet(); !m["Ir"] {
		Te.Error("an empty whitelist should fall back to the built-in one")
	}
}

func TestLoadSettings(Te *testing.T) {
	dir := Te.TempDir()
	file := filepath.Join(dir, "decarbonyl.yaml")
	text := "dir: /data/complexes\nco_max: 1.25\nworkers: 4\nmetals:\n  - Fe\n  - Ru\n"
	if err := os.WriteFile(file, []byte(text), 0644); err != nil {
		Te.Fatal(err)
	}
	s, err := LoadSettings(file)
	if err != nil {
		Te.Fatal(err)
	}
	if s.Dir != "/data/complexes" || s.COMax != 1.25 || s.Workers != 4 {
		Te.Errorf("settings not read: %+v", s)
	}
	if len(s.Metals) != 2 || s.Metals[0] != "Fe" {
		Te.Errorf("metals not read: %v", s.Metals)
	}
	//whatever the file doesn't set keeps its default
	if s.COMin != 1.00 || s.Suffix != "_d" {
		Te.Errorf("defaults lost: %+v", s)
	}
}

//A missing explicitly-given file is an error; a missing decarbonyl.yaml in
//the working directory is not.
func TestLoadSettingsMissing(Te *testing.T) {
	if _, err := LoadSettings(filepath.Join(Te.TempDir(), "nowhere.yaml")); err == nil {
		Te.Error("a missing explicit settings file should be an error")
	}
	s, err := LoadSettings("")
	if err != nil {
		Te.Fatal(err)
	}
	if s.COMax != 1.30 {
		Te.Errorf("want plain defaults, got %+v", s)
	}
}
