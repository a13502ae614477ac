package version

import "testing"

func TestGet(t *testing.T) {
	info := Get()
	if info.Version == "" {
		t.Error("version must never be empty")
	}
	if len(info.GitCommit) > 7 {
		t.Errorf("commit not truncated: %s", info.GitCommit)
	}
}

func TestShort(t *testing.T) {
	if Short() == "" {
		t.Error("Short() must never be empty")
	}
}
