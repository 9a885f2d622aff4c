// Package resolve maps a slash-delimited request path onto the config root.
//
// A request such as /movies/library/The Prestige/Director is split into three parts:
//
//   - the longest prefix of segments that are directories under the root (movies),
//   - the next segment, which names a file (library, found as library.json),
//   - the remaining segments, a field chain applied to the parsed file
//     (The Prestige, Director).
//
// Field chain segments are never tested against the filesystem. Resolution is
// stateless: each call stats directories, reads and parses the file afresh, and
// shares nothing mutable with concurrent calls.
package resolve
