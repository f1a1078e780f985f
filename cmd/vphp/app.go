package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/conn-castle/valet-php/internal/brew"
	"github.com/conn-castle/valet-php/internal/config"
	"github.com/conn-castle/valet-php/internal/console"
	"github.com/conn-castle/valet-php/internal/doctor"
	"github.com/conn-castle/valet-php/internal/extension"
	"github.com/conn-castle/valet-php/internal/files"
	"github.com/conn-castle/valet-php/internal/fpm"
	"github.com/conn-castle/valet-php/internal/fpmconf"
	"github.com/conn-castle/valet-php/internal/pecl"
	"github.com/conn-castle/valet-php/internal/php"
	"github.com/conn-castle/valet-php/internal/prompt"
	"github.com/conn-castle/valet-php/internal/repair"
	"github.com/conn-castle/valet-php/internal/shell"
	"github.com/conn-castle/valet-php/internal/templates"
	"github.com/conn-castle/valet-php/internal/terminal"
)

type runtimeController interface {
	Install() error
	SwitchTo(raw string) error
	Restart() error
	Stop() error
}

type repairer interface {
	Fix(reinstall bool) error
	CheckInstallation() ([]doctor.Result, error)
}

type extensionToggler interface {
	Enable(ext string) (bool, error)
	Disable(ext string) (bool, error)
	Status(ext string) (extension.State, error)
	SetAutostart(on bool) (bool, error)
}

type configReconciler interface {
	Plan(v php.Version) (fpmconf.Plan, error)
	Preview(v php.Version, maxLines int) ([]fpmconf.DiffPreview, error)
	Reconcile(v php.Version) error
}

type packageState interface {
	LinkedVersion() (php.Version, error)
	LinkedFormula() (string, error)
	ListInstalled() ([]string, error)
}

// app holds the wired collaborators for one command invocation.
type app struct {
	cfg         *config.Config
	cfgPath     string
	cfgErr      error
	out         io.Writer
	console     *console.Console
	fpm         runtimeController
	repair      repairer
	extensions  extensionToggler
	reconciler  configReconciler
	packages    packageState
	files       doctor.FileChecker
	ui          prompt.UI
	interactive func() bool
}

var newAppFunc = newApp

// newApp loads the configuration and wires the real collaborators. A broken
// config falls back to the defaults and is reported through cfgErr.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, path, cfgErr := config.Load()
	if cfgErr != nil {
		fallback, err := config.LoadTemplateConfig()
		if err != nil {
			return nil, err
		}
		cfg = fallback
	}
	owner, err := config.CurrentUser()
	if err != nil {
		return nil, err
	}
	profile, err := templates.Read(fpmconf.ProfileFileName)
	if err != nil {
		return nil, err
	}

	out := cmd.OutOrStdout()
	c := console.New(out)
	paths := cfg.Paths()
	runner := shell.New(shell.Options{
		User:    owner,
		Stdout:  out,
		Stderr:  cmd.ErrOrStderr(),
		Spinner: terminal.IsTerminal(os.Stderr),
	})
	store := files.New(owner)
	hb := brew.New(runner, store, cfg.BrewPrefix)
	ext := pecl.New(runner, cfg.Extensions.Install)
	rec := fpmconf.New(fpmconf.Settings{
		Pool: fpmconf.PoolSettings{
			User:       owner,
			Group:      cfg.Group,
			Socket:     paths.Socket,
			ListenMode: cfg.ListenMode,
			ErrorLog:   paths.ErrorLog,
		},
		BrewPrefix:      cfg.BrewPrefix,
		CellarRoot:      paths.CellarRoot,
		TimezoneLink:    paths.Timezone,
		ProfileTemplate: string(profile),
	}, store, ext)

	return &app{
		cfg:     cfg,
		cfgPath: path,
		cfgErr:  cfgErr,
		out:     out,
		console: c,
		fpm: fpm.New(fpm.Settings{
			DefaultVersion: cfg.Version(),
			LogDir:         paths.LogDir,
			User:           owner,
		}, fpm.Deps{
			Brew:       hb,
			Runner:     runner,
			Reconciler: rec,
			Extensions: ext,
			Files:      store,
			Console:    c,
		}),
		repair:      repair.New(hb, runner, store, cfg.BrewPrefix, c),
		extensions:  extension.NewService(hb, store, cfg.BrewPrefix, c),
		reconciler:  rec,
		packages:    hb,
		files:       store,
		ui:          prompt.NewHuhUI(),
		interactive: terminal.IsInteractive,
	}, nil
}

// loadApp builds the app and fails on configuration errors.
func loadApp(cmd *cobra.Command) (*app, error) {
	a, err := newAppFunc(cmd)
	if err != nil {
		return nil, err
	}
	if a.cfgErr != nil {
		return nil, a.cfgErr
	}
	return a, nil
}
