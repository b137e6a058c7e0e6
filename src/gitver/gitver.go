// Package gitver resolves version information from a git repository, the
// source of truth for version badges.
package gitver

import (
	"fmt"
	"strconv"

	masterminds "github.com/Masterminds/semver/v3"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/sofmeright/badgen/src/badge"
)

// Info holds resolved version metadata for a repository.
type Info struct {
	Version      string // full version: "1.2.3", "1.2.3-rc.1", "1.2.3-dev+abc1234"
	Base         string // semver base without prerelease: "1.2.3"
	Major        string
	Minor        string
	Patch        string
	Prerelease   string // "rc.1", or "" for stable
	SHA          string // short commit hash (7 chars)
	FullSHA      string // complete commit hash
	Branch       string // "" when HEAD is detached
	IsRelease    bool   // HEAD is exactly at a version tag
	IsPrerelease bool   // that tag carries a prerelease suffix
	Dirty        bool   // the worktree has uncommitted changes
}

// Detect resolves version info for the repository at dir. HEAD must
// exist, so a repository without commits is an error. Tags that do not
// parse as semantic versions are ignored; with no version tags at all the
// version becomes "0.0.0-dev+<sha>".
func Detect(dir string) (*Info, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return nil, fmt.Errorf("opening repository: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolving HEAD: %w", err)
	}

	info := &Info{
		FullSHA: head.Hash().String(),
		SHA:     head.Hash().String()[:7],
	}
	if head.Name().IsBranch() {
		info.Branch = head.Name().Short()
	}

	// Not fatal: bare repositories have no worktree to inspect.
	if wt, err := repo.Worktree(); err == nil {
		if status, err := wt.Status(); err == nil {
			info.Dirty = !status.IsClean()
		}
	}

	exact, latest, err := versionTags(repo, head.Hash())
	if err != nil {
		return nil, err
	}

	switch {
	case exact != nil:
		info.setVersion(exact)
		info.Version = exact.String()
		info.IsRelease = true
		info.IsPrerelease = exact.Prerelease() != ""
	case latest != nil:
		info.setVersion(latest)
		info.Version = fmt.Sprintf("%s-dev+%s", latest.String(), info.SHA)
	default:
		info.Base = "0.0.0"
		info.Major, info.Minor, info.Patch = "0", "0", "0"
		info.Version = fmt.Sprintf("0.0.0-dev+%s", info.SHA)
	}

	return info, nil
}

// versionTags walks all tags and returns the highest version pointing at
// head (nil if none does) and the highest version overall.
func versionTags(repo *git.Repository, head plumbing.Hash) (exact, latest *masterminds.Version, err error) {
	tags, err := repo.Tags()
	if err != nil {
		return nil, nil, fmt.Errorf("listing tags: %w", err)
	}
	defer tags.Close()

	err = tags.ForEach(func(ref *plumbing.Reference) error {
		v, err := masterminds.NewVersion(ref.Name().Short())
		if err != nil {
			return nil // not a version tag
		}

		target := ref.Hash()
		if tag, err := repo.TagObject(ref.Hash()); err == nil {
			// Annotated tag: follow it to the commit.
			target = tag.Target
		}

		if target == head && (exact == nil || v.GreaterThan(exact)) {
			exact = v
		}
		if latest == nil || v.GreaterThan(latest) {
			latest = v
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("walking tags: %w", err)
	}
	return exact, latest, nil
}

func (info *Info) setVersion(v *masterminds.Version) {
	info.Major = strconv.FormatUint(v.Major(), 10)
	info.Minor = strconv.FormatUint(v.Minor(), 10)
	info.Patch = strconv.FormatUint(v.Patch(), 10)
	info.Prerelease = v.Prerelease()
	info.Base = fmt.Sprintf("%s.%s.%s", info.Major, info.Minor, info.Patch)
}

// VersionColor picks a badge color reflecting the stability of info:
// orange for dirty worktrees, green for releases, yellow for prereleases
// and blue for development builds.
func VersionColor(info *Info) badge.Color {
	switch {
	case info.Dirty:
		return badge.Orange
	case info.IsRelease && !info.IsPrerelease:
		return badge.Green
	case info.IsPrerelease:
		return badge.Yellow
	default:
		return badge.Blue
	}
}
