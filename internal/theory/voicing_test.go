package theory

import "testing"

func TestVoicing(t *testing.T) {
	tests := []struct {
		name          string
		symbol        string
		octave        int
		expectedNotes []int
	}{
		{
			name:          "C major",
			symbol:        "C",
			octave:        4,
			expectedNotes: []int{48, 52, 55},
		},
		{
			name:          "E minor",
			symbol:        "Em",
			octave:        4,
			expectedNotes: []int{52, 55, 59},
		},
		{
			name:          "A minor seventh",
			symbol:        "Am7",
			octave:        4,
			expectedNotes: []int{57, 60, 64, 67},
		},
		{
			name:          "C major seventh",
			symbol:        "Cmaj7",
			octave:        4,
			expectedNotes: []int{48, 52, 55, 59},
		},
		{
			name:          "dominant ninth stacks above the seventh",
			symbol:        "C9",
			octave:        4,
			expectedNotes: []int{48, 52, 55, 58, 62},
		},
		{
			name:          "slash bass an octave below",
			symbol:        "Em/G",
			octave:        4,
			expectedNotes: []int{43, 52, 55, 59},
		},
		{
			name:          "octave 3",
			symbol:        "C",
			octave:        3,
			expectedNotes: []int{36, 40, 43},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseChord(tt.symbol)
			if err != nil {
				t.Fatalf("ParseChord(%q) failed: %v", tt.symbol, err)
			}

			notes := Voicing(c, tt.octave)
			if len(notes) != len(tt.expectedNotes) {
				t.Fatalf("Expected %d notes, got %d (%v)", len(tt.expectedNotes), len(notes), notes)
			}
			for i, expected := range tt.expectedNotes {
				if notes[i] != expected {
					t.Errorf("Note %d: expected MIDI %d, got %d", i, expected, notes[i])
				}
			}
		})
	}
}

func TestVoicing_DropsOutOfRange(t *testing.T) {
	c, err := ParseChord("G13")
	if err != nil {
		t.Fatalf("ParseChord failed: %v", err)
	}

	// G at octave 10 sits near the top of the MIDI range, so upper chord
	// tones fall away instead of wrapping.
	notes := Voicing(c, 10)
	for _, n := range notes {
		if n < 0 || n > 127 {
			t.Errorf("Note %d outside MIDI range", n)
		}
	}
}

func TestVoicingsForProgression(t *testing.T) {
	chords, err := ParseProgression([]string{"C", "G"})
	if err != nil {
		t.Fatalf("ParseProgression failed: %v", err)
	}

	voicings := VoicingsForProgression(chords)
	if len(voicings) != 2 {
		t.Fatalf("Expected 2 voicings, got %d", len(voicings))
	}
	if voicings[0][0] != 48 {
		t.Errorf("Expected C root at 48, got %d", voicings[0][0])
	}
	if voicings[1][0] != 55 {
		t.Errorf("Expected G root at 55, got %d", voicings[1][0])
	}
}

func TestNoteNameToMIDI(t *testing.T) {
	tests := []struct {
		name         string
		noteName     string
		expectedMIDI int
		expectError  bool
	}{
		{"middle C", "C4", 60, false},
		{"A440", "A4", 69, false},
		{"low E", "E1", 28, false},
		{"sharp", "F#3", 54, false},
		{"flat", "Bb2", 46, false},
		{"bottom of range", "C-1", 0, false},
		{"lowercase", "e1", 28, false},
		{"missing octave", "C", 0, true},
		{"bad letter", "H4", 0, true},
		{"out of range", "C12", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			midi, err := NoteNameToMIDI(tt.noteName)
			if tt.expectError {
				if err == nil {
					t.Error("Expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("NoteNameToMIDI failed: %v", err)
			}
			if midi != tt.expectedMIDI {
				t.Errorf("NoteNameToMIDI(%s) = %d, want %d", tt.noteName, midi, tt.expectedMIDI)
			}
		})
	}
}

func TestMIDIPitchClass(t *testing.T) {
	if pc := MIDIPitchClass(60); pc != 0 {
		t.Errorf("Expected C (0) for MIDI 60, got %d", pc)
	}
	if pc := MIDIPitchClass(66); pc != 6 {
		t.Errorf("Expected F# (6) for MIDI 66, got %d", pc)
	}
}
