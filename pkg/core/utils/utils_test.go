package utils

import "testing"

type sampleRecord struct {
	Revenue float64 `json:"revenue"`
	Name    string  `json:"name"`
}

func TestSmartParse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantRevenue float64
		wantErr     bool
	}{
		{
			name:        "strict JSON",
			input:       `{"revenue": 100.5, "name": "Apple"}`,
			wantRevenue: 100.5,
		},
		{
			name:        "single quotes repaired",
			input:       `{'revenue': 200, 'name': 'Apple'}`,
			wantRevenue: 200,
		},
		{
			name:        "markdown fence repaired",
			input:       "```json\n{\"revenue\": 300}\n```",
			wantRevenue: 300,
		},
		{
			name:        "trailing comma repaired",
			input:       `{"revenue": 400,}`,
			wantRevenue: 400,
		},
		{
			name:        "hjson with comments",
			input:       "{\n# annual figure\nrevenue: 500\n}",
			wantRevenue: 500,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var rec sampleRecord
			_, err := SmartParse(tc.input, &rec)
			if tc.wantErr != (err != nil) {
				t.Fatalf("err = %v, wantErr = %v", err, tc.wantErr)
			}
			if rec.Revenue != tc.wantRevenue {
				t.Errorf("Revenue = %v, want %v", rec.Revenue, tc.wantRevenue)
			}
		})
	}
}

func TestMustRepairJSONNeverFails(t *testing.T) {
	if out := MustRepairJSON(""); out == "" {
		t.Error("expected non-empty output for empty input")
	}
}

func TestCleanMarkdown(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"```markdown\n# Title\n```", "# Title"},
		{"```\nplain\n```", "plain"},
		{"  # Already clean  ", "# Already clean"},
	}
	for _, tc := range tests {
		if got := CleanMarkdown(tc.in); got != tc.want {
			t.Errorf("CleanMarkdown(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestValidateMarkdown(t *testing.T) {
	if !ValidateMarkdown("# Heading\n\nSome **bold** text.") {
		t.Error("valid markdown rejected")
	}
}
