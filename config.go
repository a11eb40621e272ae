/*
 * config.go, part of decarbonyl.
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
	"github.com/spf13/viper"
)

//Settings holds every knob of the pipeline, so runs don't depend on any
//shared mutable state. A zero Settings is not useful; start from
//DefaultSettings or LoadSettings.
type Settings struct {
	Dir     string   `mapstructure:"dir"`     //directory to scan
	Suffix  string   `mapstructure:"suffix"`  //inserted before .xyz in output names
	Metals  []string `mapstructure:"metals"`  //symbols accepted as center
	COMin   float64  `mapstructure:"co_min"`  //C-O bond window, in A
	COMax   float64  `mapstructure:"co_max"`
	MCMax   float64  `mapstructure:"mc_max"`  //max metal-C distance, in A
	Workers int      `mapstructure:"workers"` //files processed at once
	Histo   string   `mapstructure:"histo"`   //PNG histogram of C-O distances, empty disables
}

//DefaultSettings returns the values the heuristics were calibrated around:
//carbonyls with a C-O bond of 1.00 to 1.30 A whose carbon sits at up to
//2.20 A from the metal, one file at a time, in the working directory.
func DefaultSettings() *Settings {
	return &Settings{
		Dir:     ".",
		Suffix:  "_d",
		Metals:  DefaultMetals(),
		COMin:   1.00,
		COMax:   1.30,
		MCMax:   2.20,
		Workers: 1,
	}
}

//MetalSet returns the whitelist as a set. An empty Metals list falls back
//to the built-in whitelist.
func (S *Settings) MetalSet() map[string]bool {
	if len(S.Metals) == 0 {
		return symbolMetals
	}
	m := make(map[string]bool, len(S.Metals))
	for _, sym := range S.Metals {
		m[sym] = true
	}
	return m
}

//LoadSettings reads the settings from the given config file, or from
//decarbonyl.yaml in the working directory when file is empty. Whatever the
//file doesn't set keeps its default. A missing decarbonyl.yaml is fine; a
//missing or malformed explicitly-given file is an error. Each call uses its
//own viper instance, so concurrent loads don't step on each other.
func LoadSettings(file string) (*Settings, error) {
	def := DefaultSettings()
	v := viper.New()
	v.SetDefault("dir", def.Dir)
	v.SetDefault("suffix", def.Suffix)
	v.SetDefault("metals", def.Metals)
	v.SetDefault("co_min", def.COMin)
	v.SetDefault("co_max", def.COMax)
	v.SetDefault("mc_max", def.MCMax)
	v.SetDefault("workers", def.Workers)
	v.SetDefault("histo", def.Histo)
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("decarbonyl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, err
			}
		}
	}
	s := new(Settings)
	if err := v.Unmarshal(s); err != nil {
		return nil, err
	}
	return s, nil
}
