package quiz

import (
	"errors"
	"testing"
)

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr error
	}{
		{name: "plain", input: "3", want: 3},
		{name: "trailing newline", input: "2\n", want: 2},
		{name: "surrounding whitespace", input: "  2  \r\n", want: 2},
		{name: "explicit plus", input: "+4", want: 4},
		{name: "leading zero", input: "01", want: 1},
		{name: "letters", input: "abc", wantErr: ErrBadFormat},
		{name: "empty", input: "\n", wantErr: ErrBadFormat},
		{name: "decimal", input: "2.0", wantErr: ErrBadFormat},
		{name: "inner space", input: "1 2", wantErr: ErrBadFormat},
		{name: "wider than 32 bits", input: "99999999999", wantErr: ErrBadFormat},
		{name: "tab and control chars", input: "\t\x0b3\x00", want: 3},
		{name: "no-break space kept", input: "\u00a02", wantErr: ErrBadFormat},
		{name: "fullwidth digit", input: "\uff13", wantErr: ErrBadFormat},
		{name: "zero", input: "0", wantErr: ErrOutOfRange},
		{name: "negative", input: "-1", wantErr: ErrOutOfRange},
		{name: "past end", input: "5", wantErr: ErrOutOfRange},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAnswer(tc.input, 4)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("ParseAnswer(%q) error = %v, want %v", tc.input, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAnswer(%q) failed: %v", tc.input, err)
			}
			if got != tc.want {
				t.Fatalf("ParseAnswer(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseAnswerRangeErrorCarriesBound(t *testing.T) {
	_, err := ParseAnswer("7", 4)

	var rangeErr *RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected *RangeError, got %T (%v)", err, err)
	}
	if rangeErr.Value != 7 || rangeErr.Max != 4 {
		t.Fatalf("unexpected range error: %+v", rangeErr)
	}
	if errors.Is(err, ErrBadFormat) {
		t.Fatalf("range error must not match ErrBadFormat")
	}
}
