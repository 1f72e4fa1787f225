package skills

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	ferrors "github.com/ihis/fhir-engine-skills/internal/errors"
)

// Installer copies a skill bundle into a destination directory.
type Installer struct {
	// Source is the bundle to copy from.
	Source fs.FS

	// Log receives operational progress. Nil disables logging.
	Log *slog.Logger
}

// Install replaces dest with a fresh copy of the bundle. Any existing tree
// at dest is removed first; there is no partial-copy rollback.
func (i *Installer) Install(dest string) error {
	if _, err := fs.Stat(i.Source, "."); err != nil {
		return ferrors.SourceMissing()
	}

	log := i.logger()

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return installError(dest, err)
	}

	if _, err := os.Stat(dest); err == nil {
		log.Debug("removing existing skills", "dest", dest)
		if err := os.RemoveAll(dest); err != nil {
			return installError(dest, err)
		}
	}

	log.Debug("copying skill bundle", "dest", dest)
	if err := copyTree(i.Source, dest); err != nil {
		return installError(dest, err)
	}

	log.Info("skills installed", "dest", dest)
	return nil
}

func (i *Installer) logger() *slog.Logger {
	if i.Log != nil {
		return i.Log
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// installError classifies a copy failure into the install error taxonomy.
func installError(dest string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return ferrors.PermissionDenied(dest, err)
	}
	return ferrors.InstallFailed(err)
}

// copyTree copies every file under src into dest, creating directories as
// needed. Directories are 0755, files 0644.
func copyTree(src fs.FS, dest string) error {
	return fs.WalkDir(src, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dest, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		data, err := fs.ReadFile(src, p)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0644)
	})
}
