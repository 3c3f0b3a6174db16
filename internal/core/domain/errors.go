package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownMode is returned when a mode label is not part of the profile table.
	ErrUnknownMode = zerr.New("unknown mode")

	// ErrUnknownTarget is returned when a target name does not match any known build target.
	ErrUnknownTarget = zerr.New("unknown target")

	// ErrToolchainInvocation is returned when a compiler or flag discovery process exits non-zero.
	ErrToolchainInvocation = zerr.New("toolchain invocation failed")

	// ErrToolchainFlagsParseFailed is returned when discovered toolchain flags cannot be split into arguments.
	ErrToolchainFlagsParseFailed = zerr.New("failed to parse toolchain flags")

	// ErrToolMissing is returned when a required program cannot be found on PATH.
	ErrToolMissing = zerr.New("required tool not found on PATH")

	// ErrEmptyCommand is returned when asked to run a command without a program.
	ErrEmptyCommand = zerr.New("command has no program")

	// ErrEmptyProfile is returned when a profile is configured without any flags.
	ErrEmptyProfile = zerr.New("profile has no compiler flags")

	// ErrInvalidTarget is returned when a configured target is missing required fields.
	ErrInvalidTarget = zerr.New("invalid target definition")

	// ErrOutputDirFailed is returned when the output directory cannot be created.
	ErrOutputDirFailed = zerr.New("failed to create output directory")

	// ErrStoreReadFailed is returned when the state file cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read state file")

	// ErrStoreUnmarshalFailed is returned when the state file cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal state file")

	// ErrStoreMarshalFailed is returned when the state cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal state file")

	// ErrStoreWriteFailed is returned when the state file cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write state file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrFileHashFailed is returned when a source file cannot be fingerprinted.
	ErrFileHashFailed = zerr.New("failed to hash file content")
)
