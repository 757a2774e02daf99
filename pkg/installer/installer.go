// Package installer links agent repository subdirectories into the
// operator's configuration directory. It is the core of agentlink:
// a fixed set of mappings, a three-way branch per target (absent,
// symlink, real file), and an interactive backup-and-replace path.
// Runs are idempotent and safe to repeat.
package installer

import (
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/agentlink/pkg/errors"
	"github.com/arthur-debert/agentlink/pkg/logging"
)

// BackupTimeFormat is the suffix layout for backup names:
// <target>.backup.<YYYYMMDDHHMMSS>.
const BackupTimeFormat = "20060102150405"

// Options configures an installer run.
type Options struct {
	// RepoRoot is the agent repository root. Sources are resolved as
	// RepoRoot/<mapping>.
	RepoRoot string

	// TargetDir is the configuration directory links are created in.
	// Created (with parents) if absent.
	TargetDir string

	// Mappings are the subdirectory names to link.
	Mappings []string

	// Confirm decides whether occupied targets may be backed up and
	// replaced. Required when any target may be a real file/directory;
	// if nil such targets are skipped.
	Confirm Confirmer

	// DryRun previews outcomes without touching the filesystem.
	DryRun bool

	// Now is the clock used for backup names. Defaults to time.Now.
	Now func() time.Time
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// Install links every mapping whose source directory exists into the
// target directory. A failure on one mapping is recorded in its Result
// and processing continues with the rest; only failure to set up the
// target directory itself aborts the run.
func Install(opts Options) ([]Result, error) {
	logger := logging.GetLogger("installer")
	logger.Debug().
		Str("repoRoot", opts.RepoRoot).
		Str("targetDir", opts.TargetDir).
		Strs("mappings", opts.Mappings).
		Bool("dryRun", opts.DryRun).
		Msg("starting install")

	if !opts.DryRun {
		if err := os.MkdirAll(opts.TargetDir, 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create target directory %s", opts.TargetDir)
		}
	}

	results := make([]Result, 0, len(opts.Mappings))
	for _, name := range opts.Mappings {
		results = append(results, installOne(opts, name))
	}

	logger.Info().Int("mappings", len(results)).Msg("install finished")
	return results, nil
}

// installOne processes a single mapping through the three-way branch.
func installOne(opts Options, name string) Result {
	logger := logging.GetLogger("installer")
	res := Result{
		Name:   name,
		Source: filepath.Join(opts.RepoRoot, name),
		Target: filepath.Join(opts.TargetDir, name),
	}

	// Optional feature not present in this checkout: skip silently.
	if _, err := os.Stat(res.Source); err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("mapping", name).Str("source", res.Source).Msg("source absent, skipping")
			res.Status = StatusNoSource
			return res
		}
		res.Status = StatusFailed
		res.Err = errors.Wrapf(err, errors.ErrFileAccess, "failed to stat source %s", res.Source)
		return res
	}

	info, err := os.Lstat(res.Target)
	switch {
	case err != nil && os.IsNotExist(err):
		return link(opts, res)

	case err != nil:
		res.Status = StatusFailed
		res.Err = errors.Wrapf(err, errors.ErrFileAccess, "failed to inspect target %s", res.Target)
		return res

	case info.Mode()&os.ModeSymlink != 0:
		return refresh(opts, res)

	default:
		return replace(opts, res)
	}
}

// link creates a fresh symlink at an empty target.
func link(opts Options, res Result) Result {
	if opts.DryRun {
		res.Status = StatusLinked
		return res
	}

	if err := os.Symlink(res.Source, res.Target); err != nil {
		res.Status = StatusFailed
		res.Err = errors.Wrapf(err, errors.ErrSymlinkCreate, "failed to create symlink %s", res.Target)
		return res
	}

	logger := logging.GetLogger("installer")
	logger.Info().
		Str("target", res.Target).
		Str("source", res.Source).
		Msg("created symlink")
	res.Status = StatusLinked
	return res
}

// refresh re-points an existing symlink at the current source. The old
// destination is irrelevant: recreating unconditionally tolerates the
// repository having moved on disk.
func refresh(opts Options, res Result) Result {
	if opts.DryRun {
		res.Status = StatusRefreshed
		return res
	}

	if err := os.Remove(res.Target); err != nil {
		res.Status = StatusFailed
		res.Err = errors.Wrapf(err, errors.ErrSymlinkRemove, "failed to remove stale symlink %s", res.Target)
		return res
	}
	if err := os.Symlink(res.Source, res.Target); err != nil {
		res.Status = StatusFailed
		res.Err = errors.Wrapf(err, errors.ErrSymlinkCreate, "failed to recreate symlink %s", res.Target)
		return res
	}

	logger := logging.GetLogger("installer")
	logger.Info().
		Str("target", res.Target).
		Str("source", res.Source).
		Msg("refreshed symlink")
	res.Status = StatusRefreshed
	return res
}

// replace handles a real file or directory at the target: ask the
// operator, then back up and link, or leave it untouched.
func replace(opts Options, res Result) Result {
	logger := logging.GetLogger("installer")

	approved := false
	if opts.Confirm != nil {
		var err error
		approved, err = opts.Confirm.Confirm(ConfirmationRequest{
			Name:    res.Name,
			Target:  res.Target,
			Default: false,
		})
		if err != nil {
			res.Status = StatusFailed
			res.Err = errors.Wrapf(err, errors.ErrInstallFailed, "confirmation failed for %s", res.Target)
			return res
		}
	}

	if !approved {
		logger.Info().Str("target", res.Target).Msg("operator declined replacement, leaving target untouched")
		res.Status = StatusSkipped
		return res
	}

	backup := res.Target + ".backup." + opts.now().Format(BackupTimeFormat)
	if opts.DryRun {
		res.Backup = backup
		res.Status = StatusBackedUp
		return res
	}

	if err := os.Rename(res.Target, backup); err != nil {
		res.Status = StatusFailed
		res.Err = errors.Wrapf(err, errors.ErrFileRename, "failed to back up %s", res.Target)
		return res
	}
	res.Backup = backup

	if err := os.Symlink(res.Source, res.Target); err != nil {
		res.Status = StatusFailed
		res.Err = errors.Wrapf(err, errors.ErrSymlinkCreate, "failed to create symlink %s after backup", res.Target)
		return res
	}

	logger.Info().
		Str("target", res.Target).
		Str("backup", backup).
		Msg("backed up existing target and created symlink")
	res.Status = StatusBackedUp
	return res
}

// Status classifies every mapping without mutating the filesystem.
func Status(opts Options) ([]StatusEntry, error) {
	entries := make([]StatusEntry, 0, len(opts.Mappings))

	for _, name := range opts.Mappings {
		entry := StatusEntry{
			Name:   name,
			Source: filepath.Join(opts.RepoRoot, name),
			Target: filepath.Join(opts.TargetDir, name),
		}

		if _, err := os.Stat(entry.Source); os.IsNotExist(err) {
			entry.State = StateNoSource
			entries = append(entries, entry)
			continue
		}

		info, err := os.Lstat(entry.Target)
		switch {
		case err != nil && os.IsNotExist(err):
			entry.State = StateMissing

		case err != nil:
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to inspect target %s", entry.Target)

		case info.Mode()&os.ModeSymlink != 0:
			dest, err := os.Readlink(entry.Target)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read symlink %s", entry.Target)
			}
			entry.LinkDest = dest
			if dest == entry.Source {
				entry.State = StateLinked
			} else {
				entry.State = StateStale
			}

		default:
			entry.State = StateConflict
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// Unlink removes mapped targets that are symlinks pointing into the
// repository. Symlinks owned by something else and real files are left
// alone and reported as skipped.
func Unlink(opts Options) ([]Result, error) {
	logger := logging.GetLogger("installer")
	results := make([]Result, 0, len(opts.Mappings))

	for _, name := range opts.Mappings {
		res := Result{
			Name:   name,
			Source: filepath.Join(opts.RepoRoot, name),
			Target: filepath.Join(opts.TargetDir, name),
		}

		info, err := os.Lstat(res.Target)
		switch {
		case err != nil && os.IsNotExist(err):
			res.Status = StatusMissing

		case err != nil:
			res.Status = StatusFailed
			res.Err = errors.Wrapf(err, errors.ErrFileAccess, "failed to inspect target %s", res.Target)

		case info.Mode()&os.ModeSymlink == 0:
			// Real file or directory: not ours to remove.
			res.Status = StatusSkipped

		default:
			dest, err := os.Readlink(res.Target)
			if err != nil {
				res.Status = StatusFailed
				res.Err = errors.Wrapf(err, errors.ErrFileAccess, "failed to read symlink %s", res.Target)
				break
			}
			if !withinRepo(dest, opts.RepoRoot) {
				logger.Warn().
					Str("target", res.Target).
					Str("dest", dest).
					Msg("symlink points outside the repository, not removing")
				res.Status = StatusSkipped
				break
			}
			if opts.DryRun {
				res.Status = StatusRemoved
				break
			}
			if err := os.Remove(res.Target); err != nil {
				res.Status = StatusFailed
				res.Err = errors.Wrapf(err, errors.ErrSymlinkRemove, "failed to remove symlink %s", res.Target)
				break
			}
			logger.Info().Str("target", res.Target).Msg("removed symlink")
			res.Status = StatusRemoved
		}

		results = append(results, res)
	}

	return results, nil
}

// withinRepo reports whether dest is the repository root or below it.
func withinRepo(dest, repoRoot string) bool {
	rel, err := filepath.Rel(repoRoot, dest)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !filepath.IsAbs(rel) && !hasDotDotPrefix(rel))
}

func hasDotDotPrefix(rel string) bool {
	return rel == ".." || len(rel) > 2 && rel[:3] == ".."+string(filepath.Separator)
}
