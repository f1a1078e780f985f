package doctor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/valet-php/internal/fpmconf"
	"github.com/conn-castle/valet-php/internal/php"
)

type stubLinked struct {
	v       php.Version
	formula string
	err     error
}

func (s stubLinked) LinkedVersion() (php.Version, error) {
	return s.v, s.err
}

func (s stubLinked) LinkedFormula() (string, error) {
	if s.formula == "" {
		return "", errors.New("no formula")
	}
	return s.formula, s.err
}

type stubFiles map[string]bool

func (s stubFiles) Exists(path string) bool {
	return s[path]
}

type stubPlanner struct {
	plan fpmconf.Plan
	err  error
}

func (s stubPlanner) Plan(php.Version) (fpmconf.Plan, error) {
	return s.plan, s.err
}

func TestCheckConfig(t *testing.T) {
	ok := CheckConfig("/home/dev/.config/valet-php/config.toml", nil)
	assert.Equal(t, StatusOK, ok.Status)

	failed := CheckConfig("/tmp/config.toml", errors.New("bad toml"))
	assert.Equal(t, StatusFail, failed.Status)
	assert.Contains(t, failed.Message, "bad toml")
	assert.Contains(t, failed.Recommendation, "/tmp/config.toml")
}

func TestCheckLinked(t *testing.T) {
	tests := []struct {
		name   string
		source stubLinked
		status Status
		want   php.Version
	}{
		{name: "linked", source: stubLinked{v: php.V72}, status: StatusOK, want: php.V72},
		{name: "brew error", source: stubLinked{err: errors.New("no php")}, status: StatusFail},
		{name: "unsupported", source: stubLinked{v: "8.1"}, status: StatusFail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, v := CheckLinked(tt.source)
			assert.Equal(t, tt.status, result.Status)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestCheckLinkedNamesLinkedFormula(t *testing.T) {
	result, _ := CheckLinked(stubLinked{v: php.V73, formula: "php"})
	assert.Contains(t, result.Message, "(php)")

	result, _ = CheckLinked(stubLinked{v: php.V72})
	assert.Contains(t, result.Message, "(php@7.2)")
}

func TestCheckFiles(t *testing.T) {
	pool := "/usr/local/etc/php/7.1/php-fpm.d/www.conf"
	results := CheckFiles(stubFiles{pool: true}, "/usr/local", php.V71)
	require.Len(t, results, 2)
	assert.Equal(t, StatusOK, results[0].Status)
	assert.Equal(t, StatusFail, results[1].Status)
	assert.Contains(t, results[1].Message, "/usr/local/etc/php/7.1/conf.d/z-performance.ini")
	assert.True(t, HasFailure(results))
}

func TestCheckReconciled(t *testing.T) {
	clean := fpmconf.Plan{Changes: []fpmconf.Change{{Path: "a", Before: "x", After: "x", Existed: true}}}
	assert.Equal(t, StatusOK, CheckReconciled(stubPlanner{plan: clean}, php.V71).Status)

	dirty := fpmconf.Plan{Changes: []fpmconf.Change{{Path: "a", Before: "x", After: "y", Existed: true}}}
	result := CheckReconciled(stubPlanner{plan: dirty}, php.V71)
	assert.Equal(t, StatusWarn, result.Status)
	assert.False(t, HasFailure([]Result{result}))

	failed := CheckReconciled(stubPlanner{err: errors.New("boom")}, php.V71)
	assert.Equal(t, StatusFail, failed.Status)
}
