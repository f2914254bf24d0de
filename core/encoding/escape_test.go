package encoding

import "testing"

func TestEscapeXML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain text", "Amazing grace", "Amazing grace"},
		{"ampersand", "Rock & Roll", "Rock &amp; Roll"},
		{"less than", "a < b", "a &lt; b"},
		{"quotes", `He said "hello"`, "He said &#34;hello&#34;"},
		{"unicode", "Lobe den Herrn & größer 🎉", "Lobe den Herrn &amp; größer 🎉"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EscapeXML(tt.input)
			if got != tt.want {
				t.Errorf("EscapeXML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeXMLText(t *testing.T) {
	got := EscapeXMLText(`<tag> & "quote"`)
	want := `&lt;tag&gt; &amp; "quote"`
	if got != want {
		t.Errorf("EscapeXMLText = %q, want %q", got, want)
	}
}

func TestEscapeXMLAttr(t *testing.T) {
	got := EscapeXMLAttr(`a "b" <c>`)
	want := "a &quot;b&quot; &lt;c&gt;"
	if got != want {
		t.Errorf("EscapeXMLAttr = %q, want %q", got, want)
	}
}

func TestEscapeHTML(t *testing.T) {
	got := EscapeHTML(`<b>bold & "quoted"</b>`)
	want := "&lt;b&gt;bold &amp; &quot;quoted&quot;&lt;/b&gt;"
	if got != want {
		t.Errorf("EscapeHTML = %q, want %q", got, want)
	}
}
