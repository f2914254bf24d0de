// Command cantus is the CLI tool for the Cantus song library.
// It provides commands for converting songs between formats, transposing
// chords, and inspecting the format registry.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/openworship/cantus/core/chord"
	"github.com/openworship/cantus/core/errors"
	"github.com/openworship/cantus/core/song"
	"github.com/openworship/cantus/internal/formats"
	"github.com/openworship/cantus/internal/logging"
	"github.com/openworship/cantus/internal/settings"

	// Import the registration package so every built-in format is available.
	_ "github.com/openworship/cantus/internal/formats/all"
)

const version = "0.1.0"

// CLI defines the command-line interface for cantus.
var CLI struct {
	// Command groups (noun-first organization)
	Song    SongGroup    `cmd:"" help:"Song operations (convert, transpose, chords)"`
	Formats FormatsGroup `cmd:"" help:"Format registry operations"`
	Version VersionCmd   `cmd:"" help:"Print version information"`
}

// SongGroup contains song document operations.
type SongGroup struct {
	Convert   ConvertCmd   `cmd:"" help:"Convert a song file to a different format"`
	Transpose TransposeCmd `cmd:"" help:"Transpose all chords in a song file"`
	Chords    ChordsGroup  `cmd:"" help:"Chord operations on song files"`
}

// ChordsGroup contains chord operations.
type ChordsGroup struct {
	List   ChordsListCmd   `cmd:"" help:"List the chords used in a song file"`
	Remove ChordsRemoveCmd `cmd:"" help:"Strip all chord tokens from a song file"`
}

// FormatsGroup contains format registry operations.
type FormatsGroup struct {
	List FormatsListCmd `cmd:"" help:"List registered formats"`
}

// ConvertCmd converts a song file between formats.
type ConvertCmd struct {
	Path string `arg:"" help:"Path to song file" type:"existingfile"`
	From string `name:"from" short:"f" help:"Source format (default: by extension)"`
	To   string `name:"to" short:"t" required:"" help:"Target format"`
	Out  string `name:"out" short:"o" required:"" help:"Output path"`
}

func (c *ConvertCmd) Run() error {
	s, from, err := readSong(c.Path, c.From)
	if err != nil {
		return err
	}

	target, err := formats.Get(c.To)
	if err != nil {
		return err
	}
	if !target.CanWrite() {
		return errors.NewUnsupported(target.Name, "format has no writer")
	}

	n, err := writeSong(s, target, c.Out)
	if err != nil {
		return err
	}

	logging.FormatWrite(target.Name, s.Title, n)
	fmt.Printf("Converted: %s\n", c.Path)
	fmt.Printf("  From: %s\n", from.Name)
	fmt.Printf("  To:   %s (%s)\n", target.Name, c.Out)
	return nil
}

// TransposeCmd transposes every chord in a song file.
type TransposeCmd struct {
	Path      string `arg:"" help:"Path to song file" type:"existingfile"`
	Semitones int    `name:"semitones" short:"n" required:"" help:"Semitone delta (negative transposes down)"`
	Key       string `name:"key" short:"k" required:"" help:"Original key, e.g. Am or F#"`
	From      string `name:"from" short:"f" help:"Format (default: by extension)"`
	Out       string `name:"out" short:"o" help:"Output path (default: in place)"`
}

func (c *TransposeCmd) Run() error {
	cfg, err := settings.New()
	if err != nil {
		return err
	}
	notation := cfg.Notation()

	key, err := chord.ParseKey(c.Key, notation)
	if err != nil {
		return err
	}

	s, from, err := readSong(c.Path, c.From)
	if err != nil {
		return err
	}
	if !from.CanWrite() {
		return errors.NewUnsupported(from.Name, "format has no writer")
	}

	s.TransposeChords(notation, key, chord.NormalizeSemitones(c.Semitones))

	out := c.Out
	if out == "" {
		out = c.Path
	}
	if _, err := writeSong(s, from, out); err != nil {
		return err
	}

	fmt.Printf("Transposed %s by %+d semitones (from %s)\n",
		c.Path, c.Semitones, key.String(notation))
	return nil
}

// ChordsListCmd lists the distinct chords of a song file.
type ChordsListCmd struct {
	Path string `arg:"" help:"Path to song file" type:"existingfile"`
	From string `name:"from" short:"f" help:"Format (default: by extension)"`
}

func (c *ChordsListCmd) Run() error {
	s, _, err := readSong(c.Path, c.From)
	if err != nil {
		return err
	}

	seen := make(map[string]bool)
	var names []string
	for _, p := range s.Parts {
		for _, sl := range p.Slides {
			for _, name := range chord.Chords(sl.Text) {
				if !seen[name] {
					seen[name] = true
					names = append(names, name)
				}
			}
		}
	}
	sort.Strings(names)

	if len(names) == 0 {
		fmt.Println("No chords found.")
		return nil
	}
	fmt.Println(strings.Join(names, " "))
	return nil
}

// ChordsRemoveCmd strips all chord tokens from a song file.
type ChordsRemoveCmd struct {
	Path string `arg:"" help:"Path to song file" type:"existingfile"`
	From string `name:"from" short:"f" help:"Format (default: by extension)"`
	Out  string `name:"out" short:"o" help:"Output path (default: in place)"`
}

func (c *ChordsRemoveCmd) Run() error {
	s, from, err := readSong(c.Path, c.From)
	if err != nil {
		return err
	}
	if !from.CanWrite() {
		return errors.NewUnsupported(from.Name, "format has no writer")
	}

	s.RemoveAllChords()

	out := c.Out
	if out == "" {
		out = c.Path
	}
	if _, err := writeSong(s, from, out); err != nil {
		return err
	}
	fmt.Printf("Removed chords from %s\n", c.Path)
	return nil
}

// FormatsListCmd lists the registered formats.
type FormatsListCmd struct{}

func (c *FormatsListCmd) Run() error {
	fmt.Printf("%-12s %-6s %-6s %s\n", "NAME", "READ", "WRITE", "DESCRIPTION")
	for _, name := range formats.Names() {
		f, err := formats.Get(name)
		if err != nil {
			continue
		}
		fmt.Printf("%-12s %-6s %-6s %s\n", f.Name, yesNo(f.CanRead()), yesNo(f.CanWrite()), f.Description)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("cantus %s\n", version)
	return nil
}

// readSong resolves the source format and reads the file into a fresh
// template Song.
func readSong(path, formatName string) (*song.Song, *formats.Format, error) {
	f, err := resolveFormat(path, formatName)
	if err != nil {
		return nil, nil, err
	}
	if !f.CanRead() {
		return nil, nil, errors.NewUnsupported(f.Name, "format has no reader")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "opening %s", path)
	}
	defer file.Close()

	s := song.New()
	if err := f.Reader.Read(s, file); err != nil {
		return nil, nil, err
	}
	logging.FormatRead(f.Name, s.Title, len(s.Parts))
	return s, f, nil
}

func writeSong(s *song.Song, f *formats.Format, path string) (int64, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, errors.Wrapf(err, "creating %s", path)
	}

	cw := &countingWriter{w: file}
	if err := f.Writer.Write(s, cw); err != nil {
		file.Close()
		return 0, err
	}
	return cw.n, file.Close()
}

func resolveFormat(path, name string) (*formats.Format, error) {
	if name != "" {
		return formats.Get(name)
	}
	if f := formats.ByExtension(filepath.Ext(path)); f != nil {
		return f, nil
	}
	return nil, errors.NewNotFound("format for extension", filepath.Ext(path))
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func main() {
	if cfg, err := settings.New(); err == nil {
		logging.InitLogger(logging.ParseLevel(cfg.Logging.Level), logging.ParseFormat(cfg.Logging.Format))
	}

	ctx := kong.Parse(&CLI,
		kong.Name("cantus"),
		kong.Description("Cantus - worship song document toolbox"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
