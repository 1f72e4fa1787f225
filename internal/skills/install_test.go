package skills

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"
	"testing/fstest"

	ferrors "github.com/ihis/fhir-engine-skills/internal/errors"
	"github.com/ihis/fhir-engine-skills/internal/testutil"
)

// relFiles walks root and returns the slash-separated relative paths of
// every regular file, sorted.
func relFiles(t *testing.T, root string) []string {
	t.Helper()
	var files []string
	err := fs.WalkDir(os.DirFS(root), ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", root, err)
	}
	sort.Strings(files)
	return files
}

func TestInstaller_Install(t *testing.T) {
	fsys := testutil.BundleFS("alpha", "codegen/beta", "tasks/gamma")
	_, dest := testutil.NewInstallTarget(t)

	inst := &Installer{Source: fsys}
	if err := inst.Install(dest); err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	want := []string{
		"README.md",
		"alpha/SKILL.md",
		"codegen/beta/SKILL.md",
		"tasks/gamma/SKILL.md",
	}
	if got := relFiles(t, dest); !reflect.DeepEqual(got, want) {
		t.Errorf("installed files = %v, want %v", got, want)
	}

	testutil.AssertFileContains(t, filepath.Join(dest, "alpha", "SKILL.md"), "name: alpha")
}

func TestInstaller_Install_ReplacesExisting(t *testing.T) {
	fsys := testutil.BundleFS("alpha")
	_, dest := testutil.NewInstallTarget(t)

	stale := filepath.Join(dest, "stale-skill", "SKILL.md")
	testutil.RequireFile(t, stale, "old content")
	testutil.RequireFile(t, filepath.Join(dest, "alpha", "extra.md"), "leftover")

	inst := &Installer{Source: fsys}
	if err := inst.Install(dest); err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	testutil.AssertFileNotExists(t, stale)
	testutil.AssertFileNotExists(t, filepath.Join(dest, "alpha", "extra.md"))
	testutil.AssertFileExists(t, filepath.Join(dest, "alpha", "SKILL.md"))
}

func TestInstaller_Install_Idempotent(t *testing.T) {
	fsys := testutil.BundleFS("alpha", "codegen/beta")
	_, dest := testutil.NewInstallTarget(t)

	inst := &Installer{Source: fsys}
	if err := inst.Install(dest); err != nil {
		t.Fatalf("first Install() error = %v", err)
	}
	first := relFiles(t, dest)

	if err := inst.Install(dest); err != nil {
		t.Fatalf("second Install() error = %v", err)
	}
	if got := relFiles(t, dest); !reflect.DeepEqual(got, first) {
		t.Errorf("second install files = %v, want %v", got, first)
	}
}

func TestInstaller_Install_MissingSource(t *testing.T) {
	src, err := fs.Sub(fstest.MapFS{}, "skills")
	if err != nil {
		t.Fatalf("fs.Sub() error = %v", err)
	}
	_, dest := testutil.NewInstallTarget(t)

	inst := &Installer{Source: src}
	err = inst.Install(dest)
	if err == nil {
		t.Fatal("Install() expected error for missing source")
	}
	if !ferrors.HasCode(err, ferrors.CodeSourceMissing) {
		t.Errorf("Install() error code = %q, want %q", ferrors.Code(err), ferrors.CodeSourceMissing)
	}

	// The destination tree must be untouched on a source failure.
	testutil.AssertDirNotExists(t, dest)
}

func TestInstaller_Install_Logs(t *testing.T) {
	fsys := testutil.BundleFS("alpha")
	_, dest := testutil.NewInstallTarget(t)

	tl := testutil.NewTestLogger(t)
	inst := &Installer{Source: fsys, Log: tl.Logger}
	if err := inst.Install(dest); err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	tl.AssertLogged(t, "copying skill bundle")
	tl.AssertLogged(t, "skills installed")
	tl.AssertAttrValue(t, "dest", dest)
	if got := tl.CountLevel(slog.LevelInfo); got != 1 {
		t.Errorf("info entry count = %d, want 1", got)
	}
}

func TestInstallError(t *testing.T) {
	permErr := &os.PathError{Op: "mkdir", Path: "/protected", Err: os.ErrPermission}
	err := installError("/protected", permErr)
	if !ferrors.HasCode(err, ferrors.CodePermissionDenied) {
		t.Errorf("installError(permission) code = %q, want %q", ferrors.Code(err), ferrors.CodePermissionDenied)
	}

	err = installError("/dest", errors.New("disk full"))
	if !ferrors.HasCode(err, ferrors.CodeInstallFailed) {
		t.Errorf("installError(generic) code = %q, want %q", ferrors.Code(err), ferrors.CodeInstallFailed)
	}
}
