package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/conn-castle/valet-php/internal/config"
	"github.com/conn-castle/valet-php/internal/console"
	"github.com/conn-castle/valet-php/internal/fsutil"
	"github.com/conn-castle/valet-php/internal/messages"
	"github.com/conn-castle/valet-php/internal/templates"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.ConfigUse,
		Short: messages.ConfigShort,
	}
	cmd.AddCommand(newConfigPathCmd(), newConfigInitCmd(), newConfigGetCmd(), newConfigSetCmd())
	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.ConfigPathUse,
		Short: messages.ConfigPathShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ResolvePath()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.ConfigInitUse,
		Short: messages.ConfigInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := console.New(cmd.OutOrStdout())
			path, err := config.ResolvePath()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil {
				c.Warning(messages.ConfigAlreadyExistsFmt, path)
				return nil
			} else if !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			data, err := templates.Read("config.toml")
			if err != nil {
				return err
			}
			if err := writeConfig(path, data); err != nil {
				return err
			}
			c.Info(messages.ConfigWrittenFmt, path)
			return nil
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:       messages.ConfigGetUse,
		Short:     messages.ConfigGetShort,
		Args:      cobra.ExactArgs(1),
		ValidArgs: config.SettableKeys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readConfigOrTemplate()
			if err != nil {
				return err
			}
			value, err := config.GetKey(string(content), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:       messages.ConfigSetUse,
		Short:     messages.ConfigSetShort,
		Args:      cobra.ExactArgs(2),
		ValidArgs: config.SettableKeys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := console.New(cmd.OutOrStdout())
			path, err := config.ResolvePath()
			if err != nil {
				return err
			}
			content, err := readConfigOrTemplate()
			if err != nil {
				return err
			}
			patched, err := config.SetKey(string(content), args[0], args[1])
			if err != nil {
				return err
			}
			if err := writeConfig(path, []byte(patched)); err != nil {
				return err
			}
			c.Info(messages.ConfigKeySetFmt, args[0], args[1])
			return nil
		},
	}
}

// readConfigOrTemplate returns the config file contents, or the embedded
// defaults when no file exists yet.
func readConfigOrTemplate() ([]byte, error) {
	path, err := config.ResolvePath()
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return templates.Read("config.toml")
	}
	return content, err
}

func writeConfig(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf(messages.ConfigCreateDirFmt, filepath.Dir(path), err)
	}
	return fsutil.WriteFileAtomic(path, data, 0o644)
}
