package meta

import (
	"errors"
	"testing"

	"github.com/ardnew/fxc/markup"
)

func TestCoerce(t *testing.T) {
	table, err := Builtin()
	if err != nil {
		t.Fatal(err)
	}

	r := NewResolver(table, []markup.Import{{Package: "javafx.geometry"}})

	tests := []struct {
		name     string
		text     string
		typeName string
		want     string
		kind     Kind
	}{
		{"string", " Hi! ", "java.lang.String", " Hi! ", KindString},
		{"bool", "TRUE", "boolean", "true", KindBool},
		{"boxed bool", "false", "java.lang.Boolean", "false", KindBool},
		{"int", "42", "int", "42", KindInt},
		{"negative int", "-7", "int", "-7", KindInt},
		{"hex int", "0x1F", "java.lang.Integer", "31", KindInt},
		{"double from int", "1", "double", "1.0", KindFloat},
		{"double", "0.50", "double", "0.5", KindFloat},
		{"signed double", "-2.5e3", "java.lang.Double", "-2500.0", KindFloat},
		{"nan", "NaN", "double", "NaN", KindFloat},
		{"infinity", "Infinity", "double", "Infinity", KindFloat},
		{"plus infinity", " +Infinity", "java.lang.Double", "Infinity", KindFloat},
		{"minus infinity", "-Infinity", "float", "-Infinity", KindFloat},
		{"byte max", "127", "byte", "127", KindInt},
		{"byte min", "-128", "byte", "-128", KindInt},
		{"int max", "2147483647", "int", "2147483647", KindInt},
		{"long beyond int", "3000000000", "long", "3000000000", KindInt},
		{"boxed long", "3000000000", "java.lang.Long", "3000000000", KindInt},
		{"char", "x", "char", "x", KindChar},
		{"enum", "center", "javafx.geometry.Pos", "CENTER", KindEnum},
		{"object", "#ff0000", "javafx.scene.paint.Paint", "#ff0000", KindObject},
		{"unknown type", "anything", "com.example.Unknown", "anything", KindObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, kind, err := r.Coerce(tt.text, tt.typeName)
			if err != nil {
				t.Fatalf("Coerce(%q, %s): %v", tt.text, tt.typeName, err)
			}

			if got != tt.want || kind != tt.kind {
				t.Errorf("Coerce(%q, %s) = %q (%s), want %q (%s)",
					tt.text, tt.typeName, got, kind, tt.want, tt.kind)
			}
		})
	}
}

func TestCoerce_Invalid(t *testing.T) {
	table, err := Builtin()
	if err != nil {
		t.Fatal(err)
	}

	r := NewResolver(table, nil)

	tests := []struct {
		text     string
		typeName string
	}{
		{"yes", "boolean"},
		{"1.5", "int"},
		{"ten", "int"},
		{"1 + 2", "double"},
		{"infinity", "double"},
		{"Infinity", "int"},
		{"128", "byte"},
		{"40000", "short"},
		{"3000000000", "int"},
		{"-2147483649", "java.lang.Integer"},
		{"xy", "char"},
		{"MIDDLE", "javafx.geometry.Pos"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, _, err := r.Coerce(tt.text, tt.typeName)
			if !errors.Is(err, ErrInvalidLiteral) {
				t.Errorf("Coerce(%q, %s) error = %v, want ErrInvalidLiteral", tt.text, tt.typeName, err)
			}
		})
	}
}
