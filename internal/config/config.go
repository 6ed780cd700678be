// Package config holds the generator settings that are not command-line
// arguments: the exclusion list, screen naming and output layout.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds generator settings. Fields absent from a config file keep
// their default values.
type Config struct {
	// Int64 selects int64in/int64out records for integer features.
	Int64 bool `yaml:"int64"`

	// ScreenDir is the EDM screen directory of the camera driver.
	ScreenDir string `yaml:"screen_dir"`

	// CameraType is the default of the $(TYPE) macro and the prefix of the
	// driver's help and camera screens.
	CameraType string `yaml:"camera_type"`

	// DBDir is the database template directory, relative to the top.
	DBDir string `yaml:"db_dir"`

	// EDLDir is the EDM screen output directory, relative to the top.
	EDLDir string `yaml:"edl_dir"`

	// Exclude lists features the driver already has records for. A list in
	// a config file replaces the default list.
	Exclude []string `yaml:"exclude"`
}

// DefaultExclude are the features the areaDetector base driver provides.
var DefaultExclude = []string{
	"AcquisitionFrameRate",
	"AcquisitionFrameRateEnable",
	"TriggerSource",
	"TriggerOverlap",
	"TriggerSoftware",
	"TriggerMode",
	"ExposureMode",
	"ExposureAuto",
	"GainAuto",
	"PixelFormat",
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ScreenDir:  "vimbaScreens",
		CameraType: "vimba",
		DBDir:      "Db",
		EDLDir:     "op/edl",
		Exclude:    append([]string(nil), DefaultExclude...),
	}
}

// LoadError describes a configuration that could not be loaded.
type LoadError struct {
	// File is the path to the file that failed to load.
	File string

	// Message describes the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	if e.File != "" {
		return e.File + ": " + msg
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Parse decodes YAML over the defaults and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, &LoadError{
			Message: "failed to parse YAML",
			Cause:   err,
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{
			Message: "invalid configuration",
			Cause:   err,
		}
	}
	return cfg, nil
}

// Load reads a config file. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			File:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	cfg, err := Parse(data)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.File = path
		}
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every setting can be used to build output paths and
// record values.
func (c *Config) Validate() error {
	var errs []error
	required := []struct {
		key, value string
	}{
		{"screen_dir", c.ScreenDir},
		{"camera_type", c.CameraType},
		{"db_dir", c.DBDir},
		{"edl_dir", c.EDLDir},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, fmt.Errorf("%s must not be empty", r.key))
		}
	}
	if strings.ContainsAny(c.CameraType, `/"`) {
		errs = append(errs, fmt.Errorf("camera_type %q must not contain '/' or '\"'", c.CameraType))
	}
	for i, name := range c.Exclude {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, fmt.Errorf("exclude[%d] is empty", i))
		}
	}
	return errors.Join(errs...)
}
