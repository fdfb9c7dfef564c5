//go:build windows

package fileutil

import (
	"testing"
	"unsafe"

	"golang.org/x/sys/windows"
)

// assertOwnerOnlyWindows checks that every ACE on the path's DACL belongs to
// the current user. An ACE for any other principal means the settings or
// rule file is readable by someone else.
func assertOwnerOnlyWindows(t *testing.T, path string) {
	t.Helper()

	token, err := windows.OpenCurrentProcessToken()
	if err != nil {
		t.Fatalf("OpenCurrentProcessToken: %v", err)
	}
	defer token.Close()

	user, err := token.GetTokenUser()
	if err != nil {
		t.Fatalf("GetTokenUser: %v", err)
	}
	ownerSID := user.User.Sid

	sd, err := windows.GetNamedSecurityInfo(
		path,
		windows.SE_FILE_OBJECT,
		windows.DACL_SECURITY_INFORMATION,
	)
	if err != nil {
		t.Fatalf("GetNamedSecurityInfo(%s): %v", path, err)
	}

	dacl, _, err := sd.DACL()
	if err != nil {
		t.Fatalf("DACL(): %v", err)
	}
	if dacl == nil {
		// A NULL DACL grants everyone full access.
		t.Fatalf("DACL is nil")
	}

	aceCount := int(dacl.AceCount)
	if aceCount == 0 {
		t.Fatal("DACL has 0 ACEs (empty DACL = deny all)")
	}

	foundOwner := false
	for i := range aceCount {
		var ace *windows.ACCESS_ALLOWED_ACE
		if err := windows.GetAce(dacl, uint32(i), &ace); err != nil {
			t.Fatalf("GetAce(%d): %v", i, err)
		}

		// The SID is embedded in the ACE starting at SidStart.
		aceSID := (*windows.SID)(unsafe.Pointer(&ace.SidStart))
		if aceSID.Equals(ownerSID) {
			foundOwner = true
			continue
		}

		t.Errorf("unexpected ACE for SID %s (only owner should have access)", aceSID.String())
	}

	if !foundOwner {
		t.Error("no ACE found for current user")
	}
}

// assertHasInheritedACEs checks that the path carries more than one ACE,
// which is what a plain os.WriteFile with 0600 leaves behind on Windows:
// the parent directory's DACL, untouched by the ignored mode bits.
func assertHasInheritedACEs(t *testing.T, path string) {
	t.Helper()

	sd, err := windows.GetNamedSecurityInfo(
		path,
		windows.SE_FILE_OBJECT,
		windows.DACL_SECURITY_INFORMATION,
	)
	if err != nil {
		t.Fatalf("GetNamedSecurityInfo(%s): %v", path, err)
	}

	dacl, _, err := sd.DACL()
	if err != nil {
		t.Fatalf("DACL(): %v", err)
	}
	if dacl == nil {
		t.Fatal("DACL is nil")
	}

	aceCount := int(dacl.AceCount)
	if aceCount <= 1 {
		t.Fatalf("expected >1 ACEs from inherited DACL, got %d", aceCount)
	}
	t.Logf("os.WriteFile 0600 left %d inherited ACEs", aceCount)
}
