// Package tempfiles implements race-free allocation of uniquely named
// filesystem entities from placeholder templates. Exclusive creation
// with retry-on-collision is the only mechanism that makes concurrent
// temp-name allocation safe; callers must never pre-compute a name and
// check-then-create separately.
package tempfiles

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/deploymenttheory/go-pathkit/internal/fsys"
	"github.com/deploymenttheory/go-pathkit/internal/interfaces"
	"github.com/deploymenttheory/go-pathkit/internal/paths"
	"github.com/deploymenttheory/go-pathkit/internal/types"
)

// Placeholder is the sentinel byte in a template marking the positions
// substituted with random symbols on every attempt.
const Placeholder = '%'

// alphabet is the fixed 16-symbol set substitution draws from.
const alphabet = "0123456789abcdef"

// Allocator turns path templates into concrete, newly created
// filesystem entities.
type Allocator struct {
	fs      interfaces.FileSystem
	random  interfaces.RandomSource
	style   paths.Style
	tempDir string
}

// Option adjusts an Allocator at construction time.
type Option func(*Allocator)

// WithRandomSource substitutes the entropy source used for placeholder
// substitution. Entropy quality only affects collision probability.
func WithRandomSource(source interfaces.RandomSource) Option {
	return func(a *Allocator) { a.random = source }
}

// WithStyle selects the path grammar used to classify templates.
func WithStyle(style paths.Style) Option {
	return func(a *Allocator) { a.style = style }
}

// WithTempDir overrides temp-directory discovery with a fixed location.
func WithTempDir(dir string) Option {
	return func(a *Allocator) { a.tempDir = dir }
}

// NewAllocator creates an Allocator over the given filesystem. By
// default it draws randomness from crypto/rand, parses templates with
// the native path grammar, and discovers the temp directory from the
// environment.
func NewAllocator(filesystem interfaces.FileSystem, options ...Option) *Allocator {
	a := &Allocator{
		fs:     filesystem,
		random: rand.Reader,
		style:  paths.Native,
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// entityKind selects what createUniqueEntity materializes.
type entityKind int

const (
	entityFile entityKind = iota
	entityDirectory
	entityName
)

// createUniqueEntity substitutes every placeholder position in the
// template with fresh random symbols and attempts exclusive creation,
// retrying for as long as the only failure is a name collision. Any
// other failure propagates. On success for files the open handle is
// returned; the entity is guaranteed not to have existed immediately
// before creation.
func (a *Allocator) createUniqueEntity(template string, kind entityKind, makeAbsolute bool, perm types.Permissions) (interfaces.File, string, error) {
	if template == "" {
		return nil, "", fmt.Errorf("empty template: %w", fsys.ErrInvalidArgument)
	}

	if makeAbsolute && a.style.IsRelative(template) {
		template = a.style.Append(a.TempDirectory(), template)
	}

	// The template is fixed from here on: scan the placeholder
	// positions once and substitute only those bytes on every retry.
	var positions []int
	for i := 0; i < len(template); i++ {
		if template[i] == Placeholder {
			positions = append(positions, i)
		}
	}

	candidate := []byte(template)
	symbols := make([]byte, len(positions))

	for {
		if len(positions) > 0 {
			// ReadFull: a short read with a nil error would silently reuse
			// the previous draw's tail bytes.
			if _, err := io.ReadFull(a.random, symbols); err != nil {
				return nil, "", fmt.Errorf("drawing random symbols: %w", err)
			}
			for i, pos := range positions {
				candidate[pos] = alphabet[symbols[i]&15]
			}
		}
		path := string(candidate)

		switch kind {
		case entityFile:
			file, err := a.fs.OpenExclusive(path, perm)
			if err != nil {
				if fsys.IsExists(err) {
					continue
				}
				return nil, "", err
			}
			return file, path, nil

		case entityDirectory:
			existed, err := a.fs.CreateDirectory(path)
			if err != nil {
				return nil, "", err
			}
			if existed {
				continue
			}
			return nil, path, nil

		default: // entityName
			exists, err := a.fs.Exists(path)
			if err != nil {
				return nil, "", err
			}
			if exists {
				continue
			}
			return nil, path, nil
		}
	}
}

// CreateUniqueFile exclusively creates and opens a file at a fresh name
// derived from the template.
func (a *Allocator) CreateUniqueFile(template string, perm types.Permissions) (interfaces.File, string, error) {
	return a.createUniqueEntity(template, entityFile, false, perm)
}

// CreateUniqueName reserves nothing: it returns a name derived from the
// template that did not exist at probe time. Prefer CreateUniqueFile or
// CreateUniqueDirectory when the entity will be materialized, since a
// bare name can be taken by another process before use.
func (a *Allocator) CreateUniqueName(template string) (string, error) {
	_, path, err := a.createUniqueEntity(template, entityName, false, 0)
	return path, err
}

// CreateUniqueDirectory creates a directory named from the template
// "prefix-%%%%%%" in the temp directory (or at the prefix itself when
// it is absolute).
func (a *Allocator) CreateUniqueDirectory(prefix string) (string, error) {
	_, path, err := a.createUniqueEntity(prefix+"-%%%%%%", entityDirectory, true, 0)
	return path, err
}

// CreateTemporaryFile creates a file named from the template
// "prefix-%%%%%%[.suffix]" in the temp directory, readable and
// writable by the owner only.
func (a *Allocator) CreateTemporaryFile(prefix, suffix string) (interfaces.File, string, error) {
	template := prefix + "-%%%%%%"
	if suffix != "" {
		template += "." + suffix
	}
	return a.createUniqueEntity(template, entityFile, true, types.OwnerRead|types.OwnerWrite)
}

// CreateTemporaryName is CreateTemporaryFile without materializing the
// file.
func (a *Allocator) CreateTemporaryName(prefix, suffix string) (string, error) {
	template := prefix + "-%%%%%%"
	if suffix != "" {
		template += "." + suffix
	}
	_, path, err := a.createUniqueEntity(template, entityName, true, 0)
	return path, err
}
