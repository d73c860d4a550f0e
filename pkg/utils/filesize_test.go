package utils

import "testing"

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"negative", -5, "0 B"},
		{"bytes", 512, "512 B"},
		{"kilobytes", 2048, "2.00 KB"},
		{"megabytes", 5 * MB, "5.00 MB"},
		{"gigabytes", 3 * GB, "3.00 GB"},
		{"terabytes", 2 * TB, "2.00 TB"},
		{"fractional", 1536, "1.50 KB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatBytes(tt.bytes); got != tt.want {
				t.Errorf("FormatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"plain bytes", "512", 512, false},
		{"bytes suffix", "512B", 512, false},
		{"kilobytes", "2KB", 2 * KB, false},
		{"megabytes", "100MB", 100 * MB, false},
		{"gigabytes", "1GB", GB, false},
		{"terabytes", "1TB", TB, false},
		{"fractional", "1.5GB", int64(1.5 * GB), false},
		{"lowercase", "10mb", 10 * MB, false},
		{"spaces", " 5 MB ", 5 * MB, false},
		{"empty", "", 0, true},
		{"garbage", "abc", 0, true},
		{"negative", "-5MB", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSize(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSize(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseSize(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestSumSizes(t *testing.T) {
	if got := SumSizes(nil); got != 0 {
		t.Errorf("SumSizes(nil) = %d, want 0", got)
	}
	if got := SumSizes([]int64{1, 2, 3}); got != 6 {
		t.Errorf("SumSizes = %d, want 6", got)
	}
}
