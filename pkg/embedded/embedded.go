package embedded

import (
	_ "embed"
)

// Embed all style vocabulary data files
//
//go:embed data/style/genres.txt
var GenresTxt []byte

//go:embed data/style/moods.txt
var MoodsTxt []byte

//go:embed data/style/tempos.txt
var TemposTxt []byte

//go:embed data/style/instruments.txt
var InstrumentsTxt []byte

//go:embed data/style/eras.txt
var ErasTxt []byte
