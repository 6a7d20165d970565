// ABOUTME: Tests for the root package, verifying project structure and imports
// ABOUTME: These tests ensure the basic package setup is working correctly

package heapdom_test

import (
	"testing"

	"github.com/heapdom/heapdom"
)

func TestProjectStructure(t *testing.T) {
	if heapdom.Version == "" {
		t.Error("Version constant should not be empty")
	}

	expectedPrefix := "0."
	if len(heapdom.Version) < len(expectedPrefix) || heapdom.Version[:len(expectedPrefix)] != expectedPrefix {
		t.Errorf("Version should start with %q, got %q", expectedPrefix, heapdom.Version)
	}
}

func TestPackageImport(t *testing.T) {
	// This test verifies that the package can be imported and used.
	// The actual test is that this file compiles successfully.
	t.Log("Package import successful")
}
