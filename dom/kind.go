package dom

import "fmt"

// Kind identifies the concrete variant of a Node. The set is closed: one
// kind per BMML element plus KindGeneric for tags no registry knows.
type Kind uint16

const (
	KindGeneric Kind = iota
	KindAbbrName
	KindAccidental
	KindAccordionRegister
	KindAccordionRow
	KindAlteration
	KindAlternation
	KindAlternationRef
	KindAppoggiaturaRef
	KindBarline
	KindBarlineType
	KindBarre
	KindBow
	KindBreath
	KindChord
	KindChordData
	KindChordPrefix
	KindChordType
	KindClef
	KindCoda
	KindDot
	KindDuration
	KindDynamic
	KindEditorialMark
	KindEnding
	KindFamily
	KindFermata
	KindFingering
	KindFootCrossing
	KindGenericText
	KindHand
	KindHarmonic
	KindInaccord
	KindInterval
	KindIntervalData
	KindIntervalRef
	KindIntervalType
	KindIntervals
	KindKeySignature
	KindLineOfContinuation
	KindLyric
	KindLyricPrefix
	KindLyricRepeat
	KindLyricRepetition
	KindLyrics
	KindMergedText
	KindMetaData
	KindMetronome
	KindMetronomeEqual
	KindMetronomeNoteType
	KindMetronomeValue
	KindMidiInstrument
	KindMidiMetronome
	KindMultimeasure
	KindMusicHyphen
	KindName
	KindNewline
	KindNote
	KindNoteData
	KindNoteRef
	KindNoteType
	KindNuance
	KindNuanceRef
	KindNuances
	KindNumber
	KindOctave
	KindOrganPedal
	KindOrnament
	KindOrnamentType
	KindPart
	KindPartData
	KindPartList
	KindPartName
	KindPedal
	KindPitch
	KindPizzicato
	KindRasgueado
	KindRepeat
	KindRepeatData
	KindRepeatRef
	KindRepeats
	KindRepetition
	KindRest
	KindRestData
	KindRestType
	KindRhythmicGroup
	KindRightStringFingering
	KindScore
	KindScoreData
	KindScoreHeader
	KindSegno
	KindSeparator
	KindShiftLine
	KindSlur
	KindSlurRef
	KindSlurs
	KindSpace
	KindStem
	KindStemData
	KindStemType
	KindString
	KindStringFingering
	KindStringPosition
	KindStroke
	KindSyllabicMute
	KindSyllabicParenthesis
	KindSyllabicSlur
	KindSyllabicText
	KindSyllable
	KindSyllableMute
	KindSyllableRef
	KindTie
	KindTieRef
	KindTies
	KindTimeSignature
	KindTremolo
	KindTremoloRef
	KindTuplet
	KindTupletRef
	KindTuplets
	KindUnknown
	KindValuePrefix

	numKinds
)

// indexed by Kind
var kindNames = [numKinds]string{
	"generic",
	"abbr_name",
	"accidental",
	"accordion_register",
	"accordion_row",
	"alteration",
	"alternation",
	"alternation_ref",
	"appoggiatura_ref",
	"barline",
	"barline_type",
	"barre",
	"bow",
	"breath",
	"chord",
	"chord_data",
	"chord_prefix",
	"chord_type",
	"clef",
	"coda",
	"dot",
	"duration",
	"dynamic",
	"editorial_mark",
	"ending",
	"family",
	"fermata",
	"fingering",
	"foot_crossing",
	"generic_text",
	"hand",
	"harmonic",
	"inaccord",
	"interval",
	"interval_data",
	"interval_ref",
	"interval_type",
	"intervals",
	"key_signature",
	"line_of_continuation",
	"lyric",
	"lyric_prefix",
	"lyric_repeat",
	"lyric_repetition",
	"lyrics",
	"merged_text",
	"meta_data",
	"metronome",
	"metronome_equal",
	"metronome_note_type",
	"metronome_value",
	"midi_instrument",
	"midi_metronome",
	"multimeasure",
	"music_hyphen",
	"name",
	"newline",
	"note",
	"note_data",
	"note_ref",
	"note_type",
	"nuance",
	"nuance_ref",
	"nuances",
	"number",
	"octave",
	"organ_pedal",
	"ornament",
	"ornament_type",
	"part",
	"part_data",
	"part_list",
	"part_name",
	"pedal",
	"pitch",
	"pizzicato",
	"rasgueado",
	"repeat",
	"repeat_data",
	"repeat_ref",
	"repeats",
	"repetition",
	"rest",
	"rest_data",
	"rest_type",
	"rhythmic_group",
	"right_string_fingering",
	"score",
	"score_data",
	"score_header",
	"segno",
	"separator",
	"shift_line",
	"slur",
	"slur_ref",
	"slurs",
	"space",
	"stem",
	"stem_data",
	"stem_type",
	"string",
	"string_fingering",
	"string_position",
	"stroke",
	"syllabic_mute",
	"syllabic_parenthesis",
	"syllabic_slur",
	"syllabic_text",
	"syllable",
	"syllable_mute",
	"syllable_ref",
	"tie",
	"tie_ref",
	"ties",
	"time_signature",
	"tremolo",
	"tremolo_ref",
	"tuplet",
	"tuplet_ref",
	"tuplets",
	"unknown",
	"value_prefix",
}

func (k Kind) String() string {
	if k >= numKinds {
		return fmt.Sprintf("Kind(%d)", uint16(k))
	}
	return kindNames[k]
}

func (k Kind) MarshalText() ([]byte, error) {
	if k >= numKinds {
		return nil, fmt.Errorf("<err: %d is not a kind>", uint16(k))
	}
	return []byte(kindNames[k]), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	pk, ok := KindByName(string(d))
	if !ok {
		return fmt.Errorf("unknown kind %q", d)
	}
	*k = pk
	return nil
}

// KindByName returns the kind whose element name is name.
func KindByName(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return KindGeneric, false
}

// Kinds returns all kinds, KindGeneric first.
func Kinds() []Kind {
	res := make([]Kind, numKinds)
	for i := range res {
		res[i] = Kind(i)
	}
	return res
}
