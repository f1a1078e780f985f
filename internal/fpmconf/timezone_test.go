package fpmconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZoneName(t *testing.T) {
	tests := map[string]string{
		"/usr/share/zoneinfo/Europe/Amsterdam":       "Europe/Amsterdam",
		"/var/db/timezone/zoneinfo/Europe/Amsterdam": "Europe/Amsterdam",
		"/var/db/timezone/zoneinfo/America/New_York": "America/New_York",
		"UTC": "UTC",
	}
	for target, want := range tests {
		assert.Equal(t, want, ZoneName(target), target)
	}
}

func TestRenderProfile(t *testing.T) {
	out := RenderProfile("date.timezone = \"TIMEZONE\"\n", ZoneName("/usr/share/zoneinfo/Europe/Amsterdam"))
	assert.Equal(t, "date.timezone = \"Europe/Amsterdam\"\n", out)
}

func TestExtraConfigDir(t *testing.T) {
	assert.Equal(t, "/usr/local/etc/php/7.2/conf.d", ExtraConfigDir("/usr/local/etc/php/7.2/php-fpm.d/www.conf"))
	assert.Equal(t, "/usr/local/etc/php/5.6/conf.d", ExtraConfigDir("/usr/local/etc/php/5.6/php-fpm.conf"))
	assert.Equal(t, "/usr/local/etc/php/7.2/conf.d/z-performance.ini", ProfilePath("/usr/local/etc/php/7.2/php-fpm.d/www.conf"))
}
