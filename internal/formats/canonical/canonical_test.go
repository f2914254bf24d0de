package canonical

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openworship/cantus/core/errors"
	"github.com/openworship/cantus/core/song"
)

func buildSong(t *testing.T) *song.Song {
	t.Helper()
	s := song.New()
	s.Title = "Amazing Grace"
	s.Category = "Hymn"
	s.Language = "English"
	s.TranslationLanguage = "Deutsch"
	s.Comment = "public domain"
	s.Copyright = "© 1779 John Newton"
	s.SongbookNumber = "22025"
	s.Sources = []song.Source{{Songbook: "Feiern & Loben", Number: 12, HasNumber: true}}
	s.Backgrounds = []song.Background{
		song.ColorBackground(song.Color{R: 10, G: 20, B: 30}),
		song.ImageBackground("hills.jpg"),
		song.VideoBackground("clouds.mp4"),
	}

	verse := song.NewPart("Verse 1")
	verse.Slides = []*song.Slide{
		{Text: "Amazing [C]grace, how [G]sweet the sound", Translation: "Erstaunliche Gnade", BackgroundIndex: 1, FontSize: 36},
		{Text: "that saved a wretch like me", BackgroundIndex: 2},
	}
	require.NoError(t, s.AddPart(verse))

	chorus := song.NewPart("Chorus")
	chorus.Slides = []*song.Slide{{Text: "Praise God\nPraise God", BackgroundIndex: 0}}
	require.NoError(t, s.AddPart(chorus))

	require.NoError(t, s.AddPartToOrder(verse, 0))
	require.NoError(t, s.AddPartToOrder(chorus, 1))
	require.NoError(t, s.AddPartToOrder(verse, 2))

	s.Formatting.MainText.FontName = "Georgia"
	s.Formatting.MainText.Size = 44
	s.Formatting.MainText.Color = song.Color{R: 250, G: 250, B: 210}
	s.Formatting.Horizontal = song.HorizontalLeft
	s.Formatting.Vertical = song.VerticalBottom
	s.Formatting.TranslationPosition = song.TranslationBlock
	s.Formatting.SourcePosition = song.DisplayAllSlides
	s.Formatting.CopyrightPosition = song.DisplayFirstSlide
	s.Formatting.OutlineEnabled = true
	s.Formatting.OutlineColor = song.Color{R: 1, G: 2, B: 3}
	s.Formatting.ShadowDirection = 90

	return s
}

func TestRoundTrip(t *testing.T) {
	original := buildSong(t)

	var buf bytes.Buffer
	require.NoError(t, writerImpl{}.Write(original, &buf))

	restored := song.New()
	require.NoError(t, readerImpl{}.Read(restored, &buf))

	assert.Equal(t, original.ID, restored.ID)
	assert.Equal(t, original.Title, restored.Title)
	assert.Equal(t, original.Category, restored.Category)
	assert.Equal(t, original.Language, restored.Language)
	assert.Equal(t, original.TranslationLanguage, restored.TranslationLanguage)
	assert.Equal(t, original.Comment, restored.Comment)
	assert.Equal(t, original.Copyright, restored.Copyright)
	assert.Equal(t, original.SongbookNumber, restored.SongbookNumber)
	assert.Equal(t, original.Sources, restored.Sources)
	assert.Equal(t, original.Backgrounds, restored.Backgrounds)
	assert.Equal(t, original.Formatting, restored.Formatting)

	require.Len(t, restored.Parts, len(original.Parts))
	for i, p := range original.Parts {
		rp := restored.Parts[i]
		assert.Equal(t, p.Name(), rp.Name())
		require.Len(t, rp.Slides, len(p.Slides))
		for j, sl := range p.Slides {
			assert.Equal(t, sl.Text, rp.Slides[j].Text, "part %d slide %d", i, j)
			assert.Equal(t, sl.Translation, rp.Slides[j].Translation)
			assert.Equal(t, sl.BackgroundIndex, rp.Slides[j].BackgroundIndex)
			assert.Equal(t, sl.FontSize, rp.Slides[j].FontSize)
		}
	}

	require.Len(t, restored.Order, len(original.Order))
	for i, ref := range original.Order {
		assert.Equal(t, ref.Name(), restored.Order[i].Name())
	}
}

func TestRoundTripLatin1Content(t *testing.T) {
	s := song.New()
	s.Title = "Größer als alles"
	verse := song.NewPart("Strophe 1")
	verse.Slides[0].Text = "Größer als alles bist du"
	require.NoError(t, s.AddPart(verse))

	var buf bytes.Buffer
	require.NoError(t, writerImpl{}.Write(s, &buf))

	// The payload must be single-byte encoded.
	assert.Contains(t, buf.String(), "ISO-8859-1")
	assert.NotContains(t, buf.Bytes(), []byte("Größer"))

	restored := song.New()
	require.NoError(t, readerImpl{}.Read(restored, &buf))
	assert.Equal(t, "Größer als alles", restored.Title)
	assert.Equal(t, "Größer als alles bist du", restored.Parts[0].Slides[0].Text)
}

func TestReadRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"wrong root", `<?xml version="1.0"?><playlist></playlist>`},
		{"missing general", `<?xml version="1.0"?><song version="1.0"><songtext/></song>`},
		{"missing songtext", `<?xml version="1.0"?><song version="1.0"><general><title>x</title></general></song>`},
		{"missing title", `<?xml version="1.0"?><song version="1.0"><general/><songtext><part caption="V"><slide/></part></songtext></song>`},
		{"no parts", `<?xml version="1.0"?><song version="1.0"><general><title>x</title></general><songtext/></song>`},
		{"bad background number", `<?xml version="1.0"?><song version="1.0"><general><title>x</title></general><songtext><part caption="V"><slide backgroundnr="abc"/></part></songtext></song>`},
		{"future version", `<?xml version="1.0"?><song version="9.0"><general><title>x</title></general><songtext><part caption="V"><slide/></part></songtext></song>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := song.New()
			err := readerImpl{}.Read(target, strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrInvalidInput), "want format condition, got %v", err)
			assert.Empty(t, target.Parts, "failed read must not leave partial parts")
			assert.Empty(t, target.Title)
		})
	}
}

func TestReadToleratesIrregularities(t *testing.T) {
	input := `<?xml version="1.0"?>
<song version="1.0">
  <general>
    <title>Tolerant</title>
    <unknownkey>ignored</unknownkey>
  </general>
  <songtext>
    <part caption="Verse 1">
      <slide backgroundnr="7"><line>out of range background</line></slide>
    </part>
  </songtext>
  <order>
    <item>Verse 1</item>
    <item>No Such Part</item>
  </order>
</song>`

	s := song.New()
	require.NoError(t, readerImpl{}.Read(s, strings.NewReader(input)))
	assert.Equal(t, "Tolerant", s.Title)
	require.Len(t, s.Parts, 1)
	assert.Equal(t, 0, s.Parts[0].Slides[0].BackgroundIndex, "dangling index degrades to 0")
	require.Len(t, s.Order, 1, "dangling order entries are dropped")
}

func TestReadClearsHistory(t *testing.T) {
	original := buildSong(t)
	var buf bytes.Buffer
	require.NoError(t, writerImpl{}.Write(original, &buf))

	s := song.New()
	require.NoError(t, readerImpl{}.Read(s, &buf))
	assert.False(t, s.History().CanUndo(), "reading must not be undoable")
}
