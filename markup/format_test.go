package markup

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestFormat_RoundTrip(t *testing.T) {
	inputs := map[string]string{
		"sample": sampleDocument,
		"root": `<fx:root xmlns:fx="http://javafx.com/fxml" type="javafx.scene.layout.VBox">
  <Label text="\$5" GridPane.rowIndex="1"/>
  <spacing>4</spacing>
  <GridPane.margin><Insets top="2"/></GridPane.margin>
</fx:root>`,
		"strategies": `<?import javafx.collections.*?>
<FXCollections xmlns:fx="http://javafx.com/fxml" fx:factory="observableArrayList">
  <String fx:value="a &amp; b"/>
  <Double fx:constant="MAX_VALUE"/>
  <Label text="@img.png" onAction="#go" style="${css}"/>
</FXCollections>`,
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			want, err := ParseString(ctx, input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			var buf bytes.Buffer
			if err := want.Format(ctx, &buf, 2); err != nil {
				t.Fatalf("format error: %v", err)
			}

			got, err := ParseString(ctx, buf.String())
			if err != nil {
				t.Fatalf("reparse error: %v\n%s", err, buf.String())
			}

			if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s\n%s", diff, buf.String())
			}
		})
	}
}

func TestFormat_HoistsLeadingValues(t *testing.T) {
	doc := &Document{
		Root: &Instantiation{
			Type:     QName{Name: "Label"},
			Strategy: Constructor{},
			ID:       "l",
			Children: []Element{
				&PropertyValue{Name: "text", Value: Literal{Text: "Hi!"}},
				&PropertyElement{Name: "graphic"},
				&PropertyValue{Name: "wrapText", Value: Literal{Text: "true"}},
			},
		},
	}

	var buf bytes.Buffer
	if err := doc.Format(context.Background(), &buf, 2); err != nil {
		t.Fatalf("format error: %v", err)
	}

	out := buf.String()

	for _, want := range []string{
		`<Label xmlns:fx="http://javafx.com/fxml" fx:id="l" text="Hi!">`,
		`  <graphic/>`,
		`  <wrapText>true</wrapText>`,
		`</Label>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatYAML(t *testing.T) {
	ctx := context.Background()

	doc, err := ParseString(ctx, sampleDocument)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	var buf bytes.Buffer
	if err := doc.FormatYAML(ctx, &buf, 2); err != nil {
		t.Fatalf("format error: %v", err)
	}

	out := buf.String()

	for _, want := range []string{
		"controller: example.SampleController",
		"instantiate: Pane",
		"id: greeting",
		"method: handleGo",
		"include: footer.fxml",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("YAML missing %q:\n%s", want, out)
		}
	}
}
