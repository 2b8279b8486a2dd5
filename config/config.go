// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings of the perturb command, unmarshalled
// from Viper (see perturb/root.go).
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// Name is the base name of the settings file.
	Name = "settings"

	// EnvPrefix is the prefix of environment variables overriding
	// settings. PROMOTER_LIBRARY_TF_INFO sets library.tf-info.
	EnvPrefix = "PROMOTER"

	// Dir is the settings directory under the user's home.
	Dir = ".promoter"
)

// LibraryConfig locates the CIS-BP motif library.
type LibraryConfig struct {
	// the TF information table
	TFInfo string `mapstructure:"tf-info"`

	// the directory of <Motif_ID>.txt position weight matrices
	PWMDir string `mapstructure:"pwm-dir"`
}

// LocusConfig locates the Ensembl locus exports.
type LocusConfig struct {
	// 1500 bases upstream of the TSS plus the 5' UTR
	Upstream string `mapstructure:"upstream"`

	// the 5' UTR plus 1000 bases downstream
	Downstream string `mapstructure:"downstream"`
}

// NCBIConfig holds the settings for Entrez requests.
type NCBIConfig struct {
	Tool     string `mapstructure:"tool"`
	Email    string `mapstructure:"email"`
	Database string `mapstructure:"db"`

	// the number of attempts made for each request
	Retries int `mapstructure:"retries"`
}

// OutputConfig holds report output settings.
type OutputConfig struct {
	// "tsv" or "table"
	Format string `mapstructure:"format"`

	// when not empty, paths for the occurrence track and motif map
	GFF  string `mapstructure:"gff"`
	Plot string `mapstructure:"plot"`
}

// Config is the root-level settings struct and is a mix of settings
// available in settings.yaml, the environment and the command line.
type Config struct {
	Library LibraryConfig
	Locus   LocusConfig
	NCBI    NCBIConfig
	Output  OutputConfig

	// the maximum number of concurrent motif scans; 0 for no limit
	Workers int `mapstructure:"workers"`

	// log progress to stderr
	Verbose bool `mapstructure:"verbose"`
}

// Output formats.
const (
	TSV   = "tsv"
	Table = "table"
)

// SetDefaults registers default settings with v. Every setting has a
// default so that environment overrides reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("library.tf-info", "TF_Information.txt")
	v.SetDefault("library.pwm-dir", "pwms")
	v.SetDefault("locus.upstream", "upstream.fa")
	v.SetDefault("locus.downstream", "downstream.fa")
	v.SetDefault("ncbi.tool", "perturb")
	v.SetDefault("ncbi.email", "")
	v.SetDefault("ncbi.db", "nuccore")
	v.SetDefault("ncbi.retries", 5)
	v.SetDefault("output.format", TSV)
	v.SetDefault("output.gff", "")
	v.SetDefault("output.plot", "")
	v.SetDefault("workers", 0)
	v.SetDefault("verbose", false)
}

// Setup prepares v to read settings. If file is empty, settings.yaml is
// looked for in $HOME/.promoter and the working directory. Environment
// variables with the PROMOTER prefix override file settings.
func Setup(v *viper.Viper, file string) {
	SetDefaults(v)
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(Name)
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, Dir))
		}
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// Read reads the settings file configured by Setup. A missing settings
// file is not an error unless it was named explicitly.
func Read(v *viper.Viper) error {
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return err
}

// Unmarshal returns the settings held by v.
func Unmarshal(v *viper.Viper) (Config, error) {
	var c Config
	err := v.Unmarshal(&c)
	if err != nil {
		return c, fmt.Errorf("config: unable to decode settings: %w", err)
	}
	return c, c.validate()
}

func (c Config) validate() error {
	switch c.Output.Format {
	case TSV, Table:
	default:
		return fmt.Errorf("config: unknown output format %q", c.Output.Format)
	}
	if c.Workers < 0 {
		return fmt.Errorf("config: negative worker count %d", c.Workers)
	}
	if c.NCBI.Retries < 1 {
		return fmt.Errorf("config: ncbi retries must be positive: %d", c.NCBI.Retries)
	}
	return nil
}

// NewConfig returns a new Config populated by the global Viper settings,
// either from the local settings.yaml and/or command line arguments.
func NewConfig() Config {
	c, err := Unmarshal(viper.GetViper())
	if err != nil {
		log.Fatalf("%v", err)
	}
	return c
}
