package registry

import (
	"sync"

	"github.com/signadot/go-bmml/dom"
)

// Builtin returns the registry of BMML elements. It is built on first use
// and must not be modified; use Clone to extend it.
func Builtin() *Registry {
	return builtin()
}

var builtin = sync.OnceValue(func() *Registry {
	entries := make([]Entry, len(builtinTable))
	for i, b := range builtinTable {
		entries[i] = Entry{
			Name:    dom.Local(b.local),
			Kind:    b.kind,
			Content: b.content,
		}
	}
	return New(entries...)
})

// content kinds follow the BMML DTD: mixed content registers as simple,
// element content as complex, except meta_data which keeps mixed.
var builtinTable = []struct {
	local   string
	kind    dom.Kind
	content dom.Content
}{
	{"abbr_name", dom.KindAbbrName, dom.ContentSimple},
	{"accidental", dom.KindAccidental, dom.ContentSimple},
	{"accordion_register", dom.KindAccordionRegister, dom.ContentSimple},
	{"accordion_row", dom.KindAccordionRow, dom.ContentSimple},
	{"alteration", dom.KindAlteration, dom.ContentSimple},
	{"alternation", dom.KindAlternation, dom.ContentSimple},
	{"alternation_ref", dom.KindAlternationRef, dom.ContentEmpty},
	{"appoggiatura_ref", dom.KindAppoggiaturaRef, dom.ContentEmpty},
	{"barline", dom.KindBarline, dom.ContentComplex},
	{"barline_type", dom.KindBarlineType, dom.ContentSimple},
	{"barre", dom.KindBarre, dom.ContentSimple},
	{"bow", dom.KindBow, dom.ContentSimple},
	{"breath", dom.KindBreath, dom.ContentSimple},
	{"chord", dom.KindChord, dom.ContentComplex},
	{"chord_data", dom.KindChordData, dom.ContentComplex},
	{"chord_prefix", dom.KindChordPrefix, dom.ContentSimple},
	{"chord_type", dom.KindChordType, dom.ContentSimple},
	{"clef", dom.KindClef, dom.ContentSimple},
	{"coda", dom.KindCoda, dom.ContentSimple},
	{"dot", dom.KindDot, dom.ContentSimple},
	{"duration", dom.KindDuration, dom.ContentSimple},
	{"dynamic", dom.KindDynamic, dom.ContentSimple},
	{"editorial_mark", dom.KindEditorialMark, dom.ContentSimple},
	{"ending", dom.KindEnding, dom.ContentSimple},
	{"family", dom.KindFamily, dom.ContentSimple},
	{"fermata", dom.KindFermata, dom.ContentSimple},
	{"fingering", dom.KindFingering, dom.ContentSimple},
	{"foot_crossing", dom.KindFootCrossing, dom.ContentSimple},
	{"generic_text", dom.KindGenericText, dom.ContentSimple},
	{"hand", dom.KindHand, dom.ContentSimple},
	{"harmonic", dom.KindHarmonic, dom.ContentSimple},
	{"inaccord", dom.KindInaccord, dom.ContentSimple},
	{"interval", dom.KindInterval, dom.ContentComplex},
	{"interval_data", dom.KindIntervalData, dom.ContentComplex},
	{"interval_ref", dom.KindIntervalRef, dom.ContentComplex},
	{"interval_type", dom.KindIntervalType, dom.ContentSimple},
	{"intervals", dom.KindIntervals, dom.ContentComplex},
	{"key_signature", dom.KindKeySignature, dom.ContentSimple},
	{"line_of_continuation", dom.KindLineOfContinuation, dom.ContentSimple},
	{"lyric", dom.KindLyric, dom.ContentComplex},
	{"lyric_prefix", dom.KindLyricPrefix, dom.ContentSimple},
	{"lyric_repeat", dom.KindLyricRepeat, dom.ContentComplex},
	{"lyric_repetition", dom.KindLyricRepetition, dom.ContentSimple},
	{"lyrics", dom.KindLyrics, dom.ContentComplex},
	{"merged_text", dom.KindMergedText, dom.ContentSimple},
	{"meta_data", dom.KindMetaData, dom.ContentMixed},
	{"metronome", dom.KindMetronome, dom.ContentComplex},
	{"metronome_equal", dom.KindMetronomeEqual, dom.ContentSimple},
	{"metronome_note_type", dom.KindMetronomeNoteType, dom.ContentSimple},
	{"metronome_value", dom.KindMetronomeValue, dom.ContentSimple},
	{"midi_instrument", dom.KindMidiInstrument, dom.ContentEmpty},
	{"midi_metronome", dom.KindMidiMetronome, dom.ContentEmpty},
	{"multimeasure", dom.KindMultimeasure, dom.ContentSimple},
	{"music_hyphen", dom.KindMusicHyphen, dom.ContentSimple},
	{"name", dom.KindName, dom.ContentSimple},
	{"newline", dom.KindNewline, dom.ContentSimple},
	{"note", dom.KindNote, dom.ContentComplex},
	{"note_data", dom.KindNoteData, dom.ContentComplex},
	{"note_ref", dom.KindNoteRef, dom.ContentEmpty},
	{"note_type", dom.KindNoteType, dom.ContentSimple},
	{"nuance", dom.KindNuance, dom.ContentSimple},
	{"nuance_ref", dom.KindNuanceRef, dom.ContentEmpty},
	{"nuances", dom.KindNuances, dom.ContentComplex},
	{"number", dom.KindNumber, dom.ContentSimple},
	{"octave", dom.KindOctave, dom.ContentSimple},
	{"organ_pedal", dom.KindOrganPedal, dom.ContentSimple},
	{"ornament", dom.KindOrnament, dom.ContentComplex},
	{"ornament_type", dom.KindOrnamentType, dom.ContentSimple},
	{"part", dom.KindPart, dom.ContentComplex},
	{"part_data", dom.KindPartData, dom.ContentComplex},
	{"part_list", dom.KindPartList, dom.ContentComplex},
	{"part_name", dom.KindPartName, dom.ContentSimple},
	{"pedal", dom.KindPedal, dom.ContentSimple},
	{"pitch", dom.KindPitch, dom.ContentSimple},
	{"pizzicato", dom.KindPizzicato, dom.ContentSimple},
	{"rasgueado", dom.KindRasgueado, dom.ContentSimple},
	{"repeat", dom.KindRepeat, dom.ContentComplex},
	{"repeat_data", dom.KindRepeatData, dom.ContentComplex},
	{"repeat_ref", dom.KindRepeatRef, dom.ContentComplex},
	{"repeats", dom.KindRepeats, dom.ContentComplex},
	{"repetition", dom.KindRepetition, dom.ContentSimple},
	{"rest", dom.KindRest, dom.ContentComplex},
	{"rest_data", dom.KindRestData, dom.ContentComplex},
	{"rest_type", dom.KindRestType, dom.ContentSimple},
	{"rhythmic_group", dom.KindRhythmicGroup, dom.ContentSimple},
	{"right_string_fingering", dom.KindRightStringFingering, dom.ContentSimple},
	{"score", dom.KindScore, dom.ContentComplex},
	{"score_data", dom.KindScoreData, dom.ContentComplex},
	{"score_header", dom.KindScoreHeader, dom.ContentComplex},
	{"segno", dom.KindSegno, dom.ContentSimple},
	{"separator", dom.KindSeparator, dom.ContentSimple},
	{"shift_line", dom.KindShiftLine, dom.ContentSimple},
	{"slur", dom.KindSlur, dom.ContentSimple},
	{"slur_ref", dom.KindSlurRef, dom.ContentEmpty},
	{"slurs", dom.KindSlurs, dom.ContentComplex},
	{"space", dom.KindSpace, dom.ContentSimple},
	{"stem", dom.KindStem, dom.ContentComplex},
	{"stem_data", dom.KindStemData, dom.ContentComplex},
	{"stem_type", dom.KindStemType, dom.ContentSimple},
	{"string", dom.KindString, dom.ContentSimple},
	{"string_fingering", dom.KindStringFingering, dom.ContentSimple},
	{"string_position", dom.KindStringPosition, dom.ContentSimple},
	{"stroke", dom.KindStroke, dom.ContentSimple},
	{"syllabic_mute", dom.KindSyllabicMute, dom.ContentSimple},
	{"syllabic_parenthesis", dom.KindSyllabicParenthesis, dom.ContentSimple},
	{"syllabic_slur", dom.KindSyllabicSlur, dom.ContentSimple},
	{"syllabic_text", dom.KindSyllabicText, dom.ContentSimple},
	{"syllable", dom.KindSyllable, dom.ContentComplex},
	{"syllable_mute", dom.KindSyllableMute, dom.ContentComplex},
	{"syllable_ref", dom.KindSyllableRef, dom.ContentEmpty},
	{"tie", dom.KindTie, dom.ContentSimple},
	{"tie_ref", dom.KindTieRef, dom.ContentEmpty},
	{"ties", dom.KindTies, dom.ContentComplex},
	{"time_signature", dom.KindTimeSignature, dom.ContentSimple},
	{"tremolo", dom.KindTremolo, dom.ContentSimple},
	{"tremolo_ref", dom.KindTremoloRef, dom.ContentEmpty},
	{"tuplet", dom.KindTuplet, dom.ContentSimple},
	{"tuplet_ref", dom.KindTupletRef, dom.ContentEmpty},
	{"tuplets", dom.KindTuplets, dom.ContentComplex},
	{"unknown", dom.KindUnknown, dom.ContentSimple},
	{"value_prefix", dom.KindValuePrefix, dom.ContentSimple},
}
