package logger

import "log/slog"

// Standard field keys for structured logging. Use these keys consistently
// across the bootstrap phases so container logs stay greppable.
const (
	KeyPath    = "path"    // filesystem path
	KeyUID     = "uid"     // user ID
	KeyGID     = "gid"     // group ID
	KeyUser    = "user"    // service account name
	KeyManager = "manager" // package manager name
	KeyCommand = "command" // child process argv
	KeyError   = "error"   // error message
)

// Path returns a slog.Attr for a filesystem path
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

// UID returns a slog.Attr for a user ID
func UID(uid int) slog.Attr {
	return slog.Int(KeyUID, uid)
}

// GID returns a slog.Attr for a group ID
func GID(gid int) slog.Attr {
	return slog.Int(KeyGID, gid)
}

// Err returns a slog.Attr for an error
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}
