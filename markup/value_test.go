package markup

import (
	"errors"
	"testing"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		input string
		want  Value
	}{
		{"Hello", Literal{Text: "Hello"}},
		{"", Literal{Text: ""}},
		{"$label", IDRef{ID: "label"}},
		{"${model.name}", Binding{Expr: "model.name"}},
		{"@images/icon.png", Location{Path: "images/icon.png"}},
		{"#handleClick", MethodRef{Name: "handleClick"}},
		{`\$notAnID`, Literal{Text: "$notAnID"}},
		{`\#hash`, Literal{Text: "#hash"}},
		{"$", Literal{Text: "$"}},
		{"#", Literal{Text: "#"}},
		{"a $b", Literal{Text: "a $b"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseValue(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tt.want {
				t.Errorf("ParseValue(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseValue_UnterminatedBinding(t *testing.T) {
	for _, input := range []string{"${", "${model.name", "${a}b"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseValue(input)
			if !errors.Is(err, ErrUnterminatedBinding) {
				t.Errorf("ParseValue(%q) error = %v, want ErrUnterminatedBinding", input, err)
			}
		})
	}
}

func TestValue_StringReparses(t *testing.T) {
	values := []Value{
		Literal{Text: "plain"},
		Literal{Text: "$dollar"},
		Literal{Text: `\`},
		Literal{Text: "@at"},
		IDRef{ID: "x"},
		Binding{Expr: "a.b"},
		Location{Path: "p.png"},
		MethodRef{Name: "go"},
	}

	for _, v := range values {
		t.Run(v.String(), func(t *testing.T) {
			got, err := ParseValue(v.String())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != v {
				t.Errorf("ParseValue(%q) = %#v, want %#v", v.String(), got, v)
			}
		})
	}
}
