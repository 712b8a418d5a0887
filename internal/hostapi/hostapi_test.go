package hostapi

import "testing"

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusOK, "ok"},
		{StatusUnsupported, "unsupported"},
		{StatusInvalidArgument, "invalid argument"},
		{StatusAuthFailed, "authentication failed"},
		{StatusInternal, "internal failure"},
		{Status(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.status.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSupportBits_Distinct(t *testing.T) {
	if SupportNoCopy&SupportInPlaceNoCopy != 0 {
		t.Error("capability bits overlap")
	}
	if SupportNoCopy != 1<<0 || SupportInPlaceNoCopy != 1<<1 {
		t.Error("capability bit positions changed")
	}
}
