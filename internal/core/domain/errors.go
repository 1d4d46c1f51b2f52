package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingComponentList is returned when --extensions is given without a list of components.
	ErrMissingComponentList = zerr.New("missing list of components")

	// ErrManifestInvalid is returned when the component manifest fails validation.
	ErrManifestInvalid = zerr.New("invalid component manifest")

	// ErrManifestEmpty is returned when the component manifest declares no components.
	ErrManifestEmpty = zerr.New("component manifest declares no components")

	// ErrMissingComponentName is returned when a manifest entry has no name.
	ErrMissingComponentName = zerr.New("missing component name")

	// ErrInvalidComponentName is returned when a component name contains invalid characters.
	ErrInvalidComponentName = zerr.New("component name can only contain lowercase alphanumeric characters and hyphens")

	// ErrInvalidComponentVersion is returned when a component version is not of the form MAJOR.MINOR.
	ErrInvalidComponentVersion = zerr.New("component version must be of the form MAJOR.MINOR")

	// ErrDuplicateComponent is returned when two manifest entries share a name.
	ErrDuplicateComponent = zerr.New("duplicate component")

	// ErrInvalidBinary is returned when a binary declaration lacks an entry point or output file.
	ErrInvalidBinary = zerr.New("binary requires entryPoint and outfile")

	// ErrComponentNotFound is returned when a requested component is not registered.
	ErrComponentNotFound = zerr.New("component not found")

	// ErrManifestReadFailed is returned when the manifest file cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read component manifest")

	// ErrManifestParseFailed is returned when the manifest file cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse component manifest")

	// ErrComponentListReadFailed is returned when an --extensions_from file cannot be read.
	ErrComponentListReadFailed = zerr.New("failed to read component list")

	// ErrSettingsLoadFailed is returned when the settings file cannot be loaded.
	ErrSettingsLoadFailed = zerr.New("failed to load settings")

	// ErrComponentBuildFailed is returned when one or more components fail to build.
	ErrComponentBuildFailed = zerr.New("component build failed")

	// ErrStepFailed is returned when a single build step of a component fails.
	ErrStepFailed = zerr.New("build step failed")

	// ErrToolchainCommandFailed is returned when an external compiler exits unsuccessfully.
	ErrToolchainCommandFailed = zerr.New("toolchain command failed")

	// ErrInvalidCommandTemplate is returned when a toolchain command template cannot be expanded.
	ErrInvalidCommandTemplate = zerr.New("invalid toolchain command template")

	// ErrOutputDirCreateFailed is returned when an output directory cannot be created.
	ErrOutputDirCreateFailed = zerr.New("failed to create output directory")

	// ErrWatchFailed is returned when a file watcher cannot be attached.
	ErrWatchFailed = zerr.New("failed to watch component")

	// ErrNoBuiltFiles is returned when verification finds no build output at all.
	ErrNoBuiltFiles = zerr.New("no built files found")

	// ErrBuildOutputMismatch is returned when the build output differs from the expected list.
	ErrBuildOutputMismatch = zerr.New("build output does not match expected files")

	// ErrBuiltFileCountMismatch reports that the build produced a different number of files than expected.
	ErrBuiltFileCountMismatch = zerr.New("number of files does not match")

	// ErrBuiltFileMissing reports an expected file the build did not produce.
	ErrBuiltFileMissing = zerr.New("file does not exist")

	// ErrBuiltFileUnexpected reports a built file missing from the expected list.
	ErrBuiltFileUnexpected = zerr.New("file should not exist")

	// ErrExpectedOutputReadFailed is returned when the expected output list cannot be read.
	ErrExpectedOutputReadFailed = zerr.New("failed to read expected output list")

	// ErrExpectedOutputWriteFailed is returned when the expected output list cannot be written.
	ErrExpectedOutputWriteFailed = zerr.New("failed to write expected output list")

	// ErrPathsReadFailed is returned when the paths file for resolution cannot be read.
	ErrPathsReadFailed = zerr.New("failed to read paths file")

	// ErrServerListenFailed is returned when the cache server cannot bind its address.
	ErrServerListenFailed = zerr.New("failed to start cache server")
)
