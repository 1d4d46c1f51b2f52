package orchestrator

// WatchRoots exposes watchRoots for tests.
var WatchRoots = watchRoots
