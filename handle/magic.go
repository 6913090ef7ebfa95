package handle

// Magic identifies which kind of handle a Handle is. The set of kinds is closed: every
// valid value is listed here, and Valid rejects anything else.
type Magic uint32

const (
	// MagicAny is not the magic of any handle. Passed as the expected magic to
	// GetGoodHandleObject, it accepts a handle of any kind.
	MagicAny         Magic = 0
	MagicFactory     Magic = 0x46616374 // ascii 'Fact'
	MagicEnv         Magic = 0x45764D67 // ascii 'EvMg'
	MagicHeap        Magic = 0x48656170 // ascii 'Heap'
	MagicStore       Magic = 0x53746F72 // ascii 'Stor'
	MagicPort        Magic = 0x506F7274 // ascii 'Port'
	MagicTable       Magic = 0x5461626C // ascii 'Tabl'
	MagicRow         Magic = 0x526F7773 // ascii 'Rows'
	MagicCell        Magic = 0x43656C6C // ascii 'Cell'
	MagicRowCursor   Magic = 0x52437572 // ascii 'RCur'
	MagicTableCursor Magic = 0x54437572 // ascii 'TCur'
	MagicThumb       Magic = 0x5468756D // ascii 'Thum'
)

var magicMapping = map[Magic]string{
	MagicAny:         "MagicAny",
	MagicFactory:     "MagicFactory",
	MagicEnv:         "MagicEnv",
	MagicHeap:        "MagicHeap",
	MagicStore:       "MagicStore",
	MagicPort:        "MagicPort",
	MagicTable:       "MagicTable",
	MagicRow:         "MagicRow",
	MagicCell:        "MagicCell",
	MagicRowCursor:   "MagicRowCursor",
	MagicTableCursor: "MagicTableCursor",
	MagicThumb:       "MagicThumb",
}

func (m Magic) String() string {
	str, ok := magicMapping[m]
	if !ok {
		return "unknown Magic"
	}

	return str
}

// Valid returns true if m is the magic of a handle kind
func (m Magic) Valid() bool {
	switch m {
	case MagicFactory, MagicEnv, MagicHeap, MagicStore, MagicPort, MagicTable, MagicRow, MagicCell,
		MagicRowCursor, MagicTableCursor, MagicThumb:
		return true
	}

	return false
}
