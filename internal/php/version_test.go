package php

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedOrder(t *testing.T) {
	assert.Equal(t, []Version{V56, V70, V71, V72, V73}, Supported())
	assert.Equal(t, []string{"php@5.6", "php@7.0", "php@7.1", "php@7.2", "php@7.3", "php"}, Formulae())
}

func TestParseRejectsUnknownVersion(t *testing.T) {
	_, err := Parse("9.9")
	require.Error(t, err)

	var unsupported *UnsupportedVersionError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "9.9", unsupported.Requested)
	assert.Equal(t, []Version{V56, V70, V71, V72, V73}, unsupported.Supported)
	assert.Contains(t, err.Error(), "5.6 7.0 7.1 7.2 7.3")
}

func TestParseTrimsInput(t *testing.T) {
	v, err := Parse(" 7.2 ")
	require.NoError(t, err)
	assert.Equal(t, V72, v)
}

func TestFormulaFallback(t *testing.T) {
	assert.Equal(t, "php@7.3", Formula(V73))
	assert.Equal(t, "php@8.1", Formula("8.1"))
}

func TestFromFormula(t *testing.T) {
	tests := []struct {
		name    string
		formula string
		keg     string
		want    Version
		ok      bool
	}{
		{name: "versioned", formula: "php@7.1", keg: "7.1.33", want: V71, ok: true},
		{name: "unversioned uses keg", formula: "php", keg: "7.3.11_1", want: V73, ok: true},
		{name: "unversioned bad keg", formula: "php", keg: "7", ok: false},
		{name: "empty suffix", formula: "php@", keg: "", ok: false},
		{name: "other formula", formula: "python@3.9", keg: "3.9.1", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromFormula(tt.formula, tt.keg)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPoolConfigPath(t *testing.T) {
	path, err := PoolConfigPath("/usr/local", V72)
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/usr/local/etc/php/7.2/php-fpm.d/www.conf"), path)

	path, err = PoolConfigPath("/opt/homebrew", V56)
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/opt/homebrew/etc/php/5.6/php-fpm.conf"), path)

	_, err = PoolConfigPath("/usr/local", "8.0")
	var notFound *ConfigNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, Version("8.0"), notFound.Version)
}

func TestAPINumber(t *testing.T) {
	api, err := APINumber(V71)
	require.NoError(t, err)
	assert.Equal(t, "20160303", api)

	_, err = APINumber("4.4")
	require.Error(t, err)
}
