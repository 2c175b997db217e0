package python

import (
	"reflect"
	"testing"
)

func TestPoetryLock_Extract(t *testing.T) {
	content := `
[[package]]
name = "certifi"
version = "2024.8.30"
description = "Python package for providing Mozilla's CA Bundle."

[[package]]
name = "charset-normalizer"
version = "3.4.0"

[[package]]
name = "requests"
version = "2.32.3"

[metadata]
lock-version = "2.0"
`
	got, err := (&PoetryLock{}).Extract("/p/poetry.lock", []byte(content))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	want := []string{"certifi", "charset-normalizer", "requests"}
	if !reflect.DeepEqual(got.Names, want) {
		t.Errorf("Names = %v, want %v", got.Names, want)
	}
}

func TestPoetryLock_ExtractMalformed(t *testing.T) {
	if _, err := (&PoetryLock{}).Extract("/p/poetry.lock", []byte("[[package\n")); err == nil {
		t.Error("Extract succeeded, want error for malformed TOML")
	}
}
