// Package all registers every built-in format through its side-effect
// imports. Blank-import it from binaries that need the full registry.
package all

import (
	_ "github.com/openworship/cantus/internal/formats/canonical"
	_ "github.com/openworship/cantus/internal/formats/ccli"
	_ "github.com/openworship/cantus/internal/formats/chordpro"
	_ "github.com/openworship/cantus/internal/formats/html"
	_ "github.com/openworship/cantus/internal/formats/openlyrics"
	_ "github.com/openworship/cantus/internal/formats/opensong"
	_ "github.com/openworship/cantus/internal/formats/songbeamer"
	_ "github.com/openworship/cantus/internal/formats/usr"
)
