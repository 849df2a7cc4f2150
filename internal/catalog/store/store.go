// Package store keeps the catalog as a single JSON document on disk.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/padaria-criativa/catalog/internal/catalog/model"
	errx "github.com/padaria-criativa/catalog/internal/core/error"
	logx "github.com/padaria-criativa/catalog/pkg/logger"
	"github.com/spf13/afero"
)

const filePerm fs.FileMode = 0o644

// Store reads and rewrites the whole catalog document at a fixed path.
// Diagnostics meant for the user are written to diag.
type Store struct {
	fs   afero.Fs
	path string
	diag io.Writer
}

func New(fsys afero.Fs, path string, diag io.Writer) *Store {
	if diag == nil {
		diag = io.Discard
	}
	return &Store{fs: fsys, path: path, diag: diag}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the persisted catalog. A missing or blank file is an empty
// catalog; unreadable or malformed files are reported to diag and also yield
// an empty catalog.
func (s *Store) Load() model.Catalog {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logx.Debug().Str("path", s.path).Msg("catalog file not found, starting empty")
			return model.Catalog{}
		}
		s.reportLoad(errx.WrapIO(err, s.path))
		return model.Catalog{}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		logx.Debug().Str("path", s.path).Msg("catalog file is blank")
		return model.Catalog{}
	}

	var c model.Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		s.reportLoad(errx.WrapFormat(err, s.path))
		return model.Catalog{}
	}
	if c == nil {
		c = model.Catalog{}
	}

	logx.Debug().Str("path", s.path).Int("products", len(c)).Msg("catalog loaded")
	return c
}

func (s *Store) reportLoad(err error) {
	logx.Error().Err(err).Str("path", s.path).Msg("failed to load catalog")
	fmt.Fprintf(s.diag, "Erro ao carregar %s: %v\n", s.path, err)
}

// Save replaces the whole document with c.
func (s *Store) Save(c model.Catalog) error {
	if err := s.write(s.path, c); err != nil {
		logx.Error().Err(err).Str("path", s.path).Msg("failed to save catalog")
		fmt.Fprintf(s.diag, "Erro ao salvar %s: %v\n", s.path, err)
		return err
	}
	logx.Debug().Str("path", s.path).Int("products", len(c)).Msg("catalog saved")
	return nil
}

// Export writes c to dest in the same format as the catalog document.
// An empty catalog is refused and dest is left untouched.
func (s *Store) Export(c model.Catalog, dest string) error {
	if len(c) == 0 {
		fmt.Fprintln(s.diag, "Não há dados para exportar.")
		return errx.Empty(errx.ErrEmptyCatalog)
	}

	if err := s.write(dest, c); err != nil {
		logx.Error().Err(err).Str("path", dest).Msg("failed to export catalog")
		fmt.Fprintf(s.diag, "Erro ao exportar: %v\n", err)
		return err
	}
	logx.Info().Str("path", dest).Int("products", len(c)).Msg("catalog exported")
	return nil
}

// ReadRaw returns the document exactly as stored. A missing file matches
// errx.ErrNotFound; other failures are KindIO.
func (s *Store) ReadRaw() (string, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return "", errx.WrapIO(err, s.path)
	}
	return string(data), nil
}

func (s *Store) write(path string, c model.Catalog) error {
	data, err := Encode(c)
	if err != nil {
		return errx.WrapFormat(err, path)
	}
	if err := s.replace(path, data); err != nil {
		return errx.WrapIO(err, path)
	}
	return nil
}

// replace writes data next to path and renames it into place, so a failed
// write never truncates the previous document.
func (s *Store) replace(path string, data []byte) error {
	tmp, err := afero.TempFile(s.fs, filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	name := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		s.fs.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		s.fs.Remove(name)
		return err
	}
	if err := s.fs.Chmod(name, filePerm); err != nil {
		s.fs.Remove(name)
		return err
	}
	if err := s.fs.Rename(name, path); err != nil {
		s.fs.Remove(name)
		return err
	}
	return nil
}

// Encode renders c with four-space indentation and without escaping
// non-ASCII or HTML characters.
func Encode(c model.Catalog) ([]byte, error) {
	if c == nil {
		c = model.Catalog{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
