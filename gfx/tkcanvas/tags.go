// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tkcanvas

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/gogpu/ggpd"
)

// Tag length limits, including the leading ".x".
const (
	MaxObjectTagLen = 127
	MaxItemTagLen   = 63
)

// TagSource returns a new item tag on every call.
type TagSource func() string

// RandomTag returns ".x" followed by 32 hex digits of a random UUID.
func RandomTag() string {
	return ".x" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Sequence returns a deterministic TagSource producing prefix0, prefix1...
func Sequence(prefix string) TagSource {
	n := 0
	return func() string {
		tag := fmt.Sprintf("%s%d", prefix, n)
		n++
		return tag
	}
}

// ObjectTag returns the default object tag for an object id.
func ObjectTag(id uint64) string {
	return fmt.Sprintf(".x%x", id)
}

func checkTag(tag string, limit int) error {
	if tag == "" {
		return fmt.Errorf("tkcanvas: empty tag: %w", ggpd.ErrResourceExhausted)
	}
	if len(tag) > limit {
		return fmt.Errorf("tkcanvas: tag %.16q... is %d bytes, limit %d: %w",
			tag, len(tag), limit, ggpd.ErrResourceExhausted)
	}
	if strings.ContainsAny(tag, " \t\n{}") {
		return fmt.Errorf("tkcanvas: tag %q contains list syntax", tag)
	}
	return nil
}
