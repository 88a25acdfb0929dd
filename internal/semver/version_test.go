package semver

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		changelog string
		manifest  string
		want      Kind
	}{
		{"identical", "1.0.0", "1.0.0", Patch},
		{"major differs", "2.0.0", "1.5.3", Major},
		{"minor differs", "1.3.0", "1.2.9", Minor},
		{"patch differs", "1.2.4", "1.2.3", Patch},
		{"textual not numeric", "1.02.0", "1.2.0", Minor},
		{"leading zero major", "01.0.0", "1.0.0", Major},
		{"changelog older still classified", "1.0.0", "2.0.0", Major},
		{"fourth part ignored", "1.2.3.4", "1.2.3.5", Patch},
		{"extra part ignored", "1.2.3.4", "1.2.3", Patch},
		{"short changelog matching prefix", "1.2", "1.2.3", Patch},
		{"short manifest differing", "1.3.0", "1.2", Minor},
		{"single part equal", "1", "1.9.9", Patch},
		{"single part differs", "2", "1.0.0", Major},
		{"empty strings", "", "", Patch},
		{"empty versus value", "", "1.0.0", Major},
		{"pre-release suffix differs at patch position", "1.0.0-rc.1", "1.0.0", Patch},
		{"cargo style zero major", "0.1802.0", "0.1801.0", Minor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.changelog, tt.manifest); got != tt.want {
				t.Errorf("Classify(%q, %q) = %q, want %q", tt.changelog, tt.manifest, got, tt.want)
			}
		})
	}
}

func TestClassify_Identity(t *testing.T) {
	for _, v := range []string{"0.0.0", "1.2.3", "10.20.30", "1.2", "7", "1.2.3.4.5", "v1.0.0", "1.0.0 (unreleased)"} {
		if got := Classify(v, v); got != Patch {
			t.Errorf("Classify(%q, %q) = %q, want %q", v, v, got, Patch)
		}
	}
}

func TestPartNames(t *testing.T) {
	want := []Kind{Major, Minor, Patch}
	if len(PartNames) != len(want) {
		t.Fatalf("len(PartNames) = %d, want %d", len(PartNames), len(want))
	}
	for i, k := range want {
		if PartNames[i] != k {
			t.Errorf("PartNames[%d] = %q, want %q", i, PartNames[i], k)
		}
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{"major", Major, false},
		{"Minor", Minor, false},
		{" PATCH ", Patch, false},
		{"release", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseKind(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKind(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
