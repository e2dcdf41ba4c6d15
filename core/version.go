package core

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"go.uber.org/zap"
)

// Version is the library version written into every serialized payload.
// Overridable at build time with -ldflags "-X .../core.Version=...".
var Version = DefaultVersion

const DefaultVersion = "1.0.0"

// MinSupportedVersion is the oldest library version guaranteed to decode
// payloads written by this one.
const MinSupportedVersion = "1.0.0"

func SetVersion(c *Conf, versionByBuildFlag string) {
	if versionByBuildFlag != "" {
		Version = versionByBuildFlag
	} else if c.Version != "" {
		Version = c.Version
	} else {
		Version = DefaultVersion
	}
	zap.L().Info(fmt.Sprintf("Version is %s", Version))
}

// CheckVersionSupport rejects payloads whose minimum supported version is
// newer than this library.
func CheckVersionSupport(payloadMinVersion string) error {
	needed, err := semver.NewVersion(payloadMinVersion)
	if err != nil {
		return &DeserializationError{
			Msg:   fmt.Sprintf("min_supported_version %q is not a semantic version", payloadMinVersion),
			Cause: err,
		}
	}
	current, err := semver.NewVersion(Version)
	if err != nil {
		return &DeserializationError{
			Msg:   fmt.Sprintf("library version %q is not a semantic version", Version),
			Cause: err,
		}
	}
	if current.LessThan(needed) {
		return &VersionMismatchError{
			PayloadMinVersion: payloadMinVersion,
			LibraryVersion:    Version,
		}
	}
	return nil
}
