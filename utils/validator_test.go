package utils

import (
	"strings"
	"testing"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.co", "user.name+tag@example.org"}
	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}

	invalid := []string{"", "plain", "a@b", "@example.com", "a b@c.com"}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if ok, _ := ValidatePassword("123"); ok {
		t.Error("expected short password to fail")
	}
	if ok, _ := ValidatePassword(strings.Repeat("x", 73)); ok {
		t.Error("expected oversized password to fail")
	}
	if ok, message := ValidatePassword("1234"); !ok {
		t.Errorf("expected password to pass, got %q", message)
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := SanitizeInput("  hello\x00world  "); got != "helloworld" {
		t.Errorf("SanitizeInput = %q", got)
	}
}

func TestIsAllowedCVFile(t *testing.T) {
	allowed := []string{"resume.pdf", "Resume.PDF", "cv.doc", "cv.docx"}
	for _, name := range allowed {
		if !IsAllowedCVFile(name) {
			t.Errorf("expected %q to be allowed", name)
		}
	}

	rejected := []string{"resume.exe", "resume", "archive.zip", "resume.pdf.sh"}
	for _, name := range rejected {
		if IsAllowedCVFile(name) {
			t.Errorf("expected %q to be rejected", name)
		}
	}
}

func TestStoredCVFilenameKeepsExtension(t *testing.T) {
	name := StoredCVFilename("My Resume.PDF")
	if !strings.HasSuffix(name, ".pdf") {
		t.Errorf("stored name %q should keep a lowercased extension", name)
	}
	if name == StoredCVFilename("My Resume.PDF") {
		t.Error("stored names should be unique per call")
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if !CheckPassword("secret", hash) {
		t.Error("expected matching password to verify")
	}
	if CheckPassword("other", hash) {
		t.Error("expected mismatched password to fail")
	}
}
