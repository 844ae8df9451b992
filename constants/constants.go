package constants

// key and tempo are drawn from the first 2*SelectorSpan residues
const SelectorSpan = 5
const MinSequenceLength = 2 * SelectorSpan

var Tempos = [4]int{80, 100, 120, 140}

// ordered from most to least frequent symbol group
var DurationTiers = [4]int{8, 4, 2, 1}

const DurationGroupSize = 4

// notation line break every this many positions
const PositionsPerLine = 16

const OpenBar = "[|"
const CloseBar = "|]"

const OpenMark = "<mark>"
const CloseMark = "</mark>"

// MIDI export
const TicksPerQuarter = 96
const Velocity = 100
