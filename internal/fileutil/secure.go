// Package fileutil provides owner-only file writes for guard state: the
// config directory, user rule files, and the managed agent settings file.
//
// On Unix, standard file mode bits (0600, 0700) are enforced.
// On Windows, DACL-based ACLs restrict access to the current user only,
// since Unix permission bits are silently ignored by the Windows kernel.
package fileutil
