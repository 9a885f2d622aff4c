// Package file provides a file-based DataFetcher implementation for the config package.
//
// A Fetcher reads its file once, when it is constructed, and Fetch hands out
// copies of those bytes. The resolver builds a new Fetcher for every lookup so
// each request sees the file as it is on disk; the settings loader builds one at
// startup.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/etc/confd/settings.yaml")()
//	if err != nil {
//	    // file not found, permission denied, path is a directory, ...
//	}
//	data, err := fetcher.Fetch()
//
// Stat and read errors keep the underlying *fs.PathError in their chain, so
// errors.Is(err, fs.ErrNotExist) distinguishes a missing file from other failures.
// Use errors.Is(err, file.ErrPathIsDirectory) to check for directories.
package file
