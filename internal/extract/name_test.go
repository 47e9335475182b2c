package extract

import "testing"

func TestExtractName(t *testing.T) {
	cases := []struct {
		name      string
		input     string
		wantFirst string
		wantLast  string
	}{
		{
			name:      "family root",
			input:     "Nguyen Thi Hoa",
			wantFirst: "Thi Hoa",
			wantLast:  "Nguyen",
		},
		{
			name:      "accented family root",
			input:     "Trần Văn Minh",
			wantFirst: "Văn Minh",
			wantLast:  "Trần",
		},
		{
			name:      "generic capitalized pair",
			input:     "Maria Schmidt",
			wantFirst: "Schmidt",
			wantLast:  "Maria",
		},
		{
			name:      "name after shop part",
			input:     "Lotus Nails Spa; Pham Thu Trang",
			wantFirst: "Thu Trang",
			wantLast:  "Pham",
		},
		{
			name:      "parenthesized person behind shop",
			input:     "Kaufland Center (Tran Van Minh)",
			wantFirst: "Van Minh",
			wantLast:  "Tran",
		},
		{
			name:      "street part skipped",
			input:     "Hauptstrasse 12",
			wantFirst: "",
			wantLast:  "",
		},
		{
			name:      "digits skipped",
			input:     "0176 123456",
			wantFirst: "",
			wantLast:  "",
		},
		{
			name:      "chat boilerplate skipped",
			input:     "dia chi cua chi",
			wantFirst: "",
			wantLast:  "",
		},
		{
			name:      "empty",
			input:     "",
			wantFirst: "",
			wantLast:  "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			first, last := ExtractName(tc.input)
			if first != tc.wantFirst || last != tc.wantLast {
				t.Fatalf("ExtractName(%q) = (%q, %q), want (%q, %q)",
					tc.input, first, last, tc.wantFirst, tc.wantLast)
			}
		})
	}
}
