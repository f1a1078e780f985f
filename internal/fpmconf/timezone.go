package fpmconf

import "strings"

// zoneinfoPrefixes are the zoneinfo roots /etc/localtime points into.
// macOS moved the database in High Sierra; both layouts are still seen.
var zoneinfoPrefixes = []string{
	"/usr/share/zoneinfo/",
	"/var/db/timezone/zoneinfo/",
}

// ZoneName turns a localtime symlink target into a bare zone identifier such as "Europe/Amsterdam".
func ZoneName(target string) string {
	name := strings.TrimSpace(target)
	for _, prefix := range zoneinfoPrefixes {
		name = strings.TrimPrefix(name, prefix)
	}
	return name
}
