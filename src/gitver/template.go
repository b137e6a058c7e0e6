package gitver

import (
	"os"
	"regexp"
	"strconv"
	"time"
)

// templateRe matches {name} and {name:arg} placeholders.
var templateRe = regexp.MustCompile(`\{([a-z]+)(?::([^{}]+))?\}`)

// ResolveTemplate expands version placeholders in s against info.
//
// Supported placeholders:
//
//	{version}     full version, e.g. "1.2.3" or "1.4.0-dev+abc1234"
//	{base}        semver base without prerelease
//	{major} {minor} {patch} {prerelease}
//	{branch}      current branch, "" when detached
//	{sha}         short commit hash (7 chars)
//	{sha:N}       first N chars of the commit hash
//	{date}        ISO date, UTC
//	{date:LAYOUT} custom Go time layout
//	{env:VAR}     environment variable
//
// Unknown placeholders are left untouched. A nil info expands version
// fields to "".
func ResolveTemplate(s string, info *Info) string {
	if info == nil {
		info = &Info{}
	}
	return templateRe.ReplaceAllStringFunc(s, func(match string) string {
		groups := templateRe.FindStringSubmatch(match)
		name, arg := groups[1], groups[2]

		switch name {
		case "version":
			return info.Version
		case "base":
			return info.Base
		case "major":
			return info.Major
		case "minor":
			return info.Minor
		case "patch":
			return info.Patch
		case "prerelease":
			return info.Prerelease
		case "branch":
			return info.Branch
		case "sha":
			if arg == "" {
				return info.SHA
			}
			n, err := strconv.Atoi(arg)
			if err != nil || n <= 0 {
				return match
			}
			if n > len(info.FullSHA) {
				return info.FullSHA
			}
			return info.FullSHA[:n]
		case "date":
			layout := "2006-01-02"
			if arg != "" {
				layout = arg
			}
			return time.Now().UTC().Format(layout)
		case "env":
			return os.Getenv(arg)
		}
		return match
	})
}
