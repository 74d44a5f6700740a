package proc

import (
	"strings"
	"testing"
)

func TestParseTracerPID(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		want    int
		wantErr bool
	}{
		{
			name:    "not traced",
			content: "Name:\tsysdrill\nUmask:\t0022\nTracerPid:\t0\nUid:\t1000\t1000\t1000\t1000\n",
			want:    0,
		},
		{
			name:    "traced",
			content: "Name:\tsysdrill\nTracerPid:\t4242\n",
			want:    4242,
		},
		{
			name:    "missing field",
			content: "Name:\tsysdrill\nUmask:\t0022\n",
			wantErr: true,
		},
		{
			name:    "invalid line",
			content: "garbage without separator\n",
			wantErr: true,
		},
		{
			name:    "invalid pid",
			content: "TracerPid:\tbanana\n",
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseTracerPID(strings.NewReader(tc.content))
			if tc.wantErr {
				if err == nil {
					t.Errorf("parseTracerPID: expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseTracerPID: %v", err)
			}
			if got != tc.want {
				t.Errorf("parseTracerPID: got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestTracerPID(t *testing.T) {
	pid, err := TracerPID()
	if err != nil {
		t.Fatalf("TracerPID: %v", err)
	}
	if pid < 0 {
		t.Errorf("TracerPID: got %d, want >= 0", pid)
	}
}
