package setupstate

import "testing"

func TestNewSetupResultStartsSuccessful(t *testing.T) {
	r := NewSetupResult()
	if !r.Success {
		t.Error("new result should be successful")
	}
	if r.Status != SetupSuccess {
		t.Errorf("status = %q, want %q", r.Status, SetupSuccess)
	}
}

func TestAddErrorStatusTransitions(t *testing.T) {
	t.Run("non-recoverable forces failed", func(t *testing.T) {
		r := NewSetupResult()
		r.AddError("gateway", "permission", "access denied", "check IAM role", false)
		if r.Success {
			t.Error("success flag should be cleared")
		}
		if r.Status != SetupFailed {
			t.Errorf("status = %q, want %q", r.Status, SetupFailed)
		}
	})

	t.Run("recoverable forces partial", func(t *testing.T) {
		r := NewSetupResult()
		r.AddError("s3", "resource", "bucket missing", "create it", true)
		if r.Success {
			t.Error("success flag should be cleared")
		}
		if r.Status != SetupPartial {
			t.Errorf("status = %q, want %q", r.Status, SetupPartial)
		}
	})

	t.Run("later errors do not change degraded status", func(t *testing.T) {
		r := NewSetupResult()
		r.AddError("s3", "resource", "bucket missing", "", true)
		r.AddError("gateway", "permission", "access denied", "", false)
		if r.Status != SetupPartial {
			t.Errorf("status = %q, want first error to decide (%q)", r.Status, SetupPartial)
		}
		if len(r.Errors) != 2 {
			t.Errorf("errors = %d, want 2", len(r.Errors))
		}
	})

	t.Run("failed stays failed after recoverable error", func(t *testing.T) {
		r := NewSetupResult()
		r.AddError("gateway", "permission", "access denied", "", false)
		r.AddError("s3", "resource", "bucket missing", "", true)
		if r.Status != SetupFailed {
			t.Errorf("status = %q, want %q", r.Status, SetupFailed)
		}
	})
}

func TestAddWarningKeepsSuccess(t *testing.T) {
	r := NewSetupResult()
	r.AddWarning("S3 bucket not configured")
	if !r.Success {
		t.Error("warnings must not clear success")
	}
	if r.Status != SetupSuccess {
		t.Errorf("status = %q, want %q", r.Status, SetupSuccess)
	}
	if len(r.Warnings) != 1 {
		t.Errorf("warnings = %d, want 1", len(r.Warnings))
	}
}
