package fpmconf

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/conn-castle/valet-php/internal/logging"
	"github.com/conn-castle/valet-php/internal/messages"
	"github.com/conn-castle/valet-php/internal/php"
)

const peclDirName = "pecl"

// FileStore is the filesystem surface the reconciler needs.
type FileStore interface {
	Read(path string) (string, error)
	Write(path string, content string) error
	WriteAsUser(path string, content string) error
	Exists(path string) bool
	Remove(path string) error
	EnsureDirExists(path string, owner string) error
	Readlink(path string) (string, error)
	ReadDirNames(path string) ([]string, error)
}

// ExtensionManager resolves runtime paths owned by the extension tooling.
type ExtensionManager interface {
	MainConfigPath() (string, error)
	ExtensionAPIVersion(v php.Version) (string, error)
}

// Settings holds the fixed inputs of a reconciliation.
type Settings struct {
	Pool            PoolSettings
	BrewPrefix      string
	CellarRoot      string
	TimezoneLink    string
	ProfileTemplate string
}

// Change is one staged file rewrite.
type Change struct {
	Path    string
	Before  string
	After   string
	Existed bool
	AsUser  bool
}

// Changed reports whether committing the change alters the file.
func (c Change) Changed() bool {
	return !c.Existed || c.Before != c.After
}

// Plan is the complete target state for one version.
type Plan struct {
	Version    php.Version
	ProfileDir string
	Changes    []Change
}

// Reconciler rewrites a version's configuration files to their target state.
type Reconciler struct {
	settings Settings
	files    FileStore
	ext      ExtensionManager
}

// New returns a Reconciler.
func New(settings Settings, files FileStore, ext ExtensionManager) *Reconciler {
	return &Reconciler{settings: settings, files: files, ext: ext}
}

// Plan computes every file rewrite for v without writing anything.
func (r *Reconciler) Plan(v php.Version) (Plan, error) {
	poolPath, err := php.PoolConfigPath(r.settings.BrewPrefix, v)
	if err != nil {
		return Plan{}, err
	}

	poolBefore, err := r.files.Read(poolPath)
	if err != nil {
		return Plan{}, fmt.Errorf(messages.FpmconfReadPoolFmt, poolPath, err)
	}
	pool := Change{
		Path:    poolPath,
		Before:  poolBefore,
		After:   Rewrite(poolBefore, PoolRules(r.settings.Pool)),
		Existed: true,
	}

	target, err := r.files.Readlink(r.settings.TimezoneLink)
	if err != nil {
		return Plan{}, fmt.Errorf(messages.FpmconfReadTimezoneFmt, r.settings.TimezoneLink, err)
	}
	profileDir := ExtraConfigDir(poolPath)
	profile, err := r.stage(filepath.Join(profileDir, ProfileFileName), RenderProfile(r.settings.ProfileTemplate, ZoneName(target)))
	if err != nil {
		return Plan{}, err
	}

	extDir, err := r.extensionDir(v)
	if err != nil {
		return Plan{}, err
	}
	iniPath, err := r.ext.MainConfigPath()
	if err != nil {
		return Plan{}, fmt.Errorf(messages.FpmconfResolveIniFmt, err)
	}
	iniBefore, err := r.files.Read(iniPath)
	if err != nil {
		return Plan{}, fmt.Errorf(messages.FpmconfReadIniFmt, iniPath, err)
	}
	ini := Change{
		Path:    iniPath,
		Before:  iniBefore,
		After:   SetExtensionDir(iniBefore, extDir),
		Existed: true,
		AsUser:  true,
	}

	return Plan{
		Version:    v,
		ProfileDir: profileDir,
		Changes:    []Change{pool, profile, ini},
	}, nil
}

// stage prepares a user-owned whole-file write, remembering prior content for rollback.
func (r *Reconciler) stage(path string, after string) (Change, error) {
	change := Change{Path: path, After: after, AsUser: true}
	if !r.files.Exists(path) {
		return change, nil
	}
	before, err := r.files.Read(path)
	if err != nil {
		return Change{}, fmt.Errorf(messages.FpmconfReadProfileFmt, path, err)
	}
	change.Before = before
	change.Existed = true
	return change, nil
}

// extensionDir resolves <cellar>/<formula>/<latest keg>/pecl/<api number>.
// The versioned formula is preferred; otherwise a keg of the unversioned php
// formula on the same release line is used. The lexicographically greatest keg
// wins when several are installed.
func (r *Reconciler) extensionDir(v php.Version) (string, error) {
	base := filepath.Join(r.settings.CellarRoot, php.Formula(v))
	kegs, err := r.kegs(base, "")
	if err != nil {
		rolling := filepath.Join(r.settings.CellarRoot, php.UnversionedFormula)
		rollingKegs, rollingErr := r.kegs(rolling, string(v)+".")
		if rollingErr != nil {
			return "", err
		}
		base, kegs = rolling, rollingKegs
	}

	api, err := r.ext.ExtensionAPIVersion(v)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, kegs[len(kegs)-1], peclDirName, api), nil
}

// kegs lists the sorted keg directories under base whose names start with prefix.
func (r *Reconciler) kegs(base string, prefix string) ([]string, error) {
	names, err := r.files.ReadDirNames(base)
	if err != nil {
		return nil, fmt.Errorf(messages.FpmconfReadCellarFmt, base, err)
	}
	kegs := make([]string, 0, len(names))
	for _, name := range names {
		if strings.HasPrefix(name, ".") || !strings.HasPrefix(name, prefix) {
			continue
		}
		kegs = append(kegs, name)
	}
	if len(kegs) == 0 {
		return nil, fmt.Errorf(messages.FpmconfNoKegFmt, base)
	}
	sort.Strings(kegs)
	return kegs, nil
}

// Reconcile writes the target configuration for v.
// Nothing is written unless every document could be read and transformed. If a
// write fails, files already committed in this call are restored.
func (r *Reconciler) Reconcile(v php.Version) error {
	plan, err := r.Plan(v)
	if err != nil {
		return err
	}
	if err := r.files.EnsureDirExists(plan.ProfileDir, r.settings.Pool.User); err != nil {
		return fmt.Errorf(messages.FpmconfEnsureDirFmt, plan.ProfileDir, err)
	}
	return r.commit(plan)
}

func (r *Reconciler) commit(plan Plan) error {
	committed := make([]Change, 0, len(plan.Changes))
	for _, change := range plan.Changes {
		if err := r.write(change.Path, change.After, change.AsUser); err != nil {
			err = fmt.Errorf(messages.FpmconfWriteFmt, change.Path, err)
			if rollbackErr := r.rollback(committed); rollbackErr != nil {
				return errors.Join(err, rollbackErr)
			}
			return err
		}
		logging.Debug("Reconciler", "wrote %s", change.Path)
		committed = append(committed, change)
	}
	return nil
}

func (r *Reconciler) rollback(committed []Change) error {
	var errs []error
	for i := len(committed) - 1; i >= 0; i-- {
		change := committed[i]
		var err error
		if change.Existed {
			err = r.write(change.Path, change.Before, change.AsUser)
		} else {
			err = r.files.Remove(change.Path)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf(messages.FpmconfRollbackFmt, change.Path, err))
			continue
		}
		logging.Warn("Reconciler", "restored %s", change.Path)
	}
	return errors.Join(errs...)
}

func (r *Reconciler) write(path string, content string, asUser bool) error {
	if asUser {
		return r.files.WriteAsUser(path, content)
	}
	return r.files.Write(path, content)
}
