package filesystem

import (
	"io"
	"os"
	"path/filepath"

	"github.com/seanlgirgis/folio/pkg/errors"
)

// FilePerm is the mode of written artifacts.
const FilePerm = 0o644

// createTemp makes the directory of path and opens a temp file beside it.
func createTemp(fsys FS, path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "cannot create directory %s", dir)
	}
	f, err := fsys.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "cannot create temp file in %s", dir)
	}
	return f, nil
}

// TempPath reserves an empty temporary file next to path and returns its name.
// The caller owns the file and must Commit or remove it.
func TempPath(fsys FS, path string) (string, error) {
	f, err := createTemp(fsys, path)
	if err != nil {
		return "", err
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		_ = fsys.Remove(name)
		return "", errors.Wrapf(err, errors.ErrFileWrite, "cannot close temp file %s", name)
	}
	return name, nil
}

// Commit moves a finished temp file to its final path.
func Commit(fsys FS, tmp, path string) error {
	if err := fsys.Rename(tmp, path); err != nil {
		_ = fsys.Remove(tmp)
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot move output into %s", path).
			WithDetail("path", path)
	}
	return nil
}

// WriteAtomic streams write's output into path. Nothing appears at path
// unless write succeeds.
func WriteAtomic(fsys FS, path string, write func(w io.Writer) error) error {
	f, err := createTemp(fsys, path)
	if err != nil {
		return err
	}
	tmp := f.Name()

	if err := write(f); err != nil {
		_ = f.Close()
		_ = fsys.Remove(tmp)
		return err
	}
	if err := f.Chmod(FilePerm); err != nil {
		_ = f.Close()
		_ = fsys.Remove(tmp)
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot set mode on %s", tmp)
	}
	if err := f.Close(); err != nil {
		_ = fsys.Remove(tmp)
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot flush %s", tmp)
	}
	return Commit(fsys, tmp, path)
}

// WriteFileAtomic writes data to path atomically.
func WriteFileAtomic(fsys FS, path string, data []byte) error {
	return WriteAtomic(fsys, path, func(w io.Writer) error {
		if _, err := w.Write(data); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path)
		}
		return nil
	})
}
