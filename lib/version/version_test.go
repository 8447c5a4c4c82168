// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"runtime"
	"strings"
	"testing"
)

func setBuild(t *testing.T, commit, dirty, buildTime string) {
	t.Helper()
	originalCommit, originalDirty, originalTime := GitCommit, GitDirty, BuildTime
	t.Cleanup(func() {
		GitCommit, GitDirty, BuildTime = originalCommit, originalDirty, originalTime
	})
	GitCommit, GitDirty, BuildTime = commit, dirty, buildTime
}

func TestInfo(t *testing.T) {
	setBuild(t, "abc1234", "false", "2026-10-17T00:00:00Z")
	if got, want := Info(), Version+" (abc1234, 2026-10-17T00:00:00Z)"; got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}

	GitDirty = "true"
	if got := Info(); !strings.Contains(got, "abc1234-dirty") {
		t.Errorf("Info() = %q, want dirty marker", got)
	}
}

func TestCurrent(t *testing.T) {
	setBuild(t, "def5678", "true", "unknown")

	build := Current()
	if build.Commit != "def5678" || !build.Dirty || build.Version != Version {
		t.Errorf("Current() = %+v", build)
	}
	if build.Go != runtime.Version() {
		t.Errorf("Go = %q, want %q", build.Go, runtime.Version())
	}
	if build.Platform != runtime.GOOS+"/"+runtime.GOARCH {
		t.Errorf("Platform = %q", build.Platform)
	}
}

func TestFull(t *testing.T) {
	full := Full()
	if !strings.HasPrefix(full, Info()) {
		t.Errorf("Full() = %q does not start with Info()", full)
	}
	if !strings.Contains(full, runtime.Version()) {
		t.Errorf("Full() = %q does not mention %s", full, runtime.Version())
	}
}
