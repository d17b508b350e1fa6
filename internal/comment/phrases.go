package comment

import "github.com/handiism/mbcomment/internal/model"

// phrases describes a performance relationship for every combination of
// attributes, indexed by model.Attributes.Index. Words always appear in
// the order live, medley, partial, instrumental, cover.
var phrases = [32]string{
	0b00000: "Recording of",
	0b00001: "Cover recording of",
	0b00010: "Instrumental recording of",
	0b00011: "Instrumental cover recording of",
	0b00100: "Partial recording of",
	0b00101: "Partial cover recording of",
	0b00110: "Partial instrumental recording of",
	0b00111: "Partial instrumental cover recording of",
	0b01000: "Medley recording of",
	0b01001: "Medley cover recording of",
	0b01010: "Medley instrumental recording of",
	0b01011: "Medley instrumental cover recording of",
	0b01100: "Medley partial recording of",
	0b01101: "Medley partial cover recording of",
	0b01110: "Medley partial instrumental recording of",
	0b01111: "Medley partial instrumental cover recording of",
	0b10000: "Live recording of",
	0b10001: "Live cover recording of",
	0b10010: "Live instrumental recording of",
	0b10011: "Live instrumental cover recording of",
	0b10100: "Live partial recording of",
	0b10101: "Live partial cover recording of",
	0b10110: "Live partial instrumental recording of",
	0b10111: "Live partial instrumental cover recording of",
	0b11000: "Live medley recording of",
	0b11001: "Live medley cover recording of",
	0b11010: "Live medley instrumental recording of",
	0b11011: "Live medley instrumental cover recording of",
	0b11100: "Live medley partial recording of",
	0b11101: "Live medley partial cover recording of",
	0b11110: "Live medley partial instrumental recording of",
	0b11111: "Live medley partial instrumental cover recording of",
}

// Phrase returns the description of a performance with the given attributes,
// for example "Live cover recording of".
func Phrase(a model.Attributes) string {
	return phrases[a.Index()]
}
