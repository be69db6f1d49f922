// Package config loads the optional focal.yaml settings file.
package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/focal/internal/core/domain"
	"go.trai.ch/focal/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger   ports.Logger
	FS       FileSystem
	validate *validator.Validate
}

// NewLoader creates a new Loader reading from the real filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return NewLoaderWithFS(logger, NewOSFS())
}

// NewLoaderWithFS creates a new Loader reading through fsys.
func NewLoaderWithFS(logger ports.Logger, fsys FileSystem) *Loader {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("dirname", validateDirName)
	return &Loader{Logger: logger, FS: fsys, validate: v}
}

// Load walks up from dir to the filesystem root and reads the first focal.yaml found.
// A missing file is not an error: the returned config is empty.
func (l *Loader) Load(dir string) (*domain.Config, error) {
	path, ok := l.find(dir)
	if !ok {
		return &domain.Config{}, nil
	}

	data, err := l.FS.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Focalfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	file.Profile = strings.ToLower(strings.TrimSpace(file.Profile))

	if err := l.validate.Struct(&file); err != nil {
		return nil, zerr.With(zerr.Wrap(describe(err), domain.ErrConfigInvalid.Error()), "path", path)
	}

	return &domain.Config{
		Path:    path,
		Profile: file.Profile,
		Jobs:    file.Jobs,
		Verbose: file.Verbose,
		Ignore:  file.Ignore,
	}, nil
}

func (l *Loader) find(dir string) (string, bool) {
	current := filepath.Clean(dir)
	for {
		candidate := filepath.Join(current, domain.ConfigFileName)
		info, err := l.FS.Stat(candidate)
		switch {
		case err == nil && info.Mode().IsRegular():
			return candidate, true
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			l.Logger.Warn("cannot stat " + candidate + ": " + err.Error())
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

// validateDirName accepts a single path element usable as a directory name.
func validateDirName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}

// describe turns validator errors into a single readable error naming the offending fields.
func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Namespace())
		field = strings.TrimPrefix(field, "focalfile.")
		parts = append(parts, field+" fails "+fe.Tag())
	}
	return errors.New(strings.Join(parts, "; "))
}
