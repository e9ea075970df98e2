// pkg/toolchain/channel.go
package toolchain

import (
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

// Kind classifies a release channel
type Kind string

const (
	KindStable  Kind = "stable"
	KindBeta    Kind = "beta"
	KindNightly Kind = "nightly"
	KindVersion Kind = "version"
	KindCustom  Kind = "custom"
)

const dateLayout = "2006-01-02"

// Kind reports what sort of channel the descriptor pins
func (d *Descriptor) Kind() Kind {
	name, _ := splitDate(d.Channel)
	switch name {
	case "stable":
		return KindStable
	case "beta":
		return KindBeta
	case "nightly":
		return KindNightly
	}
	if IsVersion(d.Channel) {
		return KindVersion
	}
	return KindCustom
}

// Dated returns the archive date of a dated channel such as nightly-2024-01-01
func (d *Descriptor) Dated() (time.Time, bool) {
	_, date := splitDate(d.Channel)
	if date == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// IsVersion reports whether channel is a numeric release like 1.75 or 1.75.0
func IsVersion(channel string) bool {
	if channel == "" || strings.HasPrefix(channel, "v") {
		return false
	}
	return semver.IsValid("v" + channel)
}

// splitDate separates "nightly-2024-01-01" into ("nightly", "2024-01-01")
func splitDate(channel string) (string, string) {
	if len(channel) <= len(dateLayout)+1 {
		return channel, ""
	}
	cut := len(channel) - len(dateLayout)
	if channel[cut-1] != '-' {
		return channel, ""
	}
	if _, err := time.Parse(dateLayout, channel[cut:]); err != nil {
		return channel, ""
	}
	return channel[:cut-1], channel[cut:]
}
