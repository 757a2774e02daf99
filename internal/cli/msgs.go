package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Link agent configuration into your assistant's config directory"
	MsgInstallShort    = "Link repository directories into the config directory"
	MsgStatusShort     = "Show the link state of every mapping"
	MsgUnlinkShort     = "Remove symlinks owned by this repository"
	MsgAgentsShort     = "Work with the persona documents in this repository"
	MsgAgentsListShort = "List agent definitions"
	MsgAgentsShowShort = "Render an agent document in the terminal"
	MsgGenConfigShort  = "Print the default configuration"
	MsgStatuslineShort = "Render the status line for the current session"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgDryRunNotice = "\nDRY RUN MODE - No changes were made"

	// Error messages
	MsgErrInitPaths = "failed to initialize paths: %w"
	MsgErrLoadConf  = "failed to load configuration: %w"
	MsgErrInstall   = "failed to install mappings: %w"
	MsgErrStatus    = "failed to get mapping status: %w"
	MsgErrUnlink    = "failed to unlink mappings: %w"
	MsgErrAgents    = "failed to read agent definitions: %w"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview changes without executing them"
	MsgFlagYes     = "Assume yes for all backup-and-replace prompts"

	// Warnings
	MsgFallbackWarning = "Warning: no git repository found, using current directory as repository root: %s\n"
)

// Long messages
const (
	MsgRootLong = `agentlink installs an agent configuration repository into your
assistant's configuration directory by creating symlinks for a fixed
set of repository subdirectories (agents, skills, commands, ...).

Runs are idempotent: existing links are refreshed in place, and real
files or directories in the way are only replaced after a confirmed,
timestamped backup.`

	MsgInstallLong = `Install ensures the configuration directory exists and links every
mapped repository subdirectory into it.

For each mapping:
  - no target exists: a symlink is created
  - the target is already a symlink: it is re-pointed at this checkout
  - the target is a real file or directory: you are asked before it is
    renamed to <target>.backup.<timestamp> and replaced

Mappings whose directory is missing from the checkout are skipped.`

	MsgInstallExample = `  # Link everything this checkout provides
  agentlink install

  # Preview without touching the filesystem
  agentlink install --dry-run

  # Replace existing directories without prompting
  agentlink install --yes`

	MsgStatusExample = `  # Show every mapping's state
  agentlink status`

	MsgUnlinkLong = `Unlink removes mapped symlinks that point into this repository.
Symlinks owned by something else, and real files or directories, are
left alone.`

	MsgAgentsShowExample = `  # Render the code-reviewer persona
  agentlink agents show code-reviewer`

	MsgGenConfigLong = `Prints the built-in default configuration. Redirect it to
agentlink.toml at the repository root to customize the target
directory or the mapping list.`

	MsgStatuslineLong = `Reads a session description as JSON from stdin and prints a one-line
colored summary: model, version, context-window usage against the
autocompact threshold, and cached session/weekly utilization bars.

Wire it up as the assistant's statusLine command. Malformed input
prints nothing and exits 0.`
)
