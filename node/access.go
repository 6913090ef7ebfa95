package node

// Base marks memory that holds an initialized Node
type Base uint16

// BaseNode is the only valid Base value
const BaseNode Base = 0x4E64 // ascii 'Nd'

// Derived identifies which kind of Node a structure is, without dynamic type information
type Derived uint16

const (
	DerivedNone    Derived = 0
	DerivedHandle  Derived = 0x486E // ascii 'Hn'
	DerivedEnv     Derived = 0x4576 // ascii 'Ev'
	DerivedObject  Derived = 0x4F62 // ascii 'Ob'
	DerivedFactory Derived = 0x4663 // ascii 'Fc'
)

var derivedMapping = map[Derived]string{
	DerivedNone:    "DerivedNone",
	DerivedHandle:  "DerivedHandle",
	DerivedEnv:     "DerivedEnv",
	DerivedObject:  "DerivedObject",
	DerivedFactory: "DerivedFactory",
}

func (d Derived) String() string {
	str, ok := derivedMapping[d]
	if !ok {
		return "unknown Derived"
	}

	return str
}

// Access is the lifecycle state of a node. The zero value belongs to nodes that were never
// initialized.
type Access uint8

const (
	AccessOpen Access = iota + 1
	AccessClosing
	AccessShut
	AccessDead
)

var accessMapping = map[Access]string{
	AccessOpen:    "AccessOpen",
	AccessClosing: "AccessClosing",
	AccessShut:    "AccessShut",
	AccessDead:    "AccessDead",
}

func (a Access) String() string {
	str, ok := accessMapping[a]
	if !ok {
		return "unknown Access"
	}

	return str
}

// Usage records how the storage holding a node is owned
type Usage uint8

const (
	UsageHeap Usage = iota + 1
	UsageStack
	UsageMember
	UsageGlobal
	UsagePool
	UsageNone
)

var usageMapping = map[Usage]string{
	UsageHeap:   "UsageHeap",
	UsageStack:  "UsageStack",
	UsageMember: "UsageMember",
	UsageGlobal: "UsageGlobal",
	UsagePool:   "UsagePool",
	UsageNone:   "UsageNone",
}

func (u Usage) String() string {
	str, ok := usageMapping[u]
	if !ok {
		return "unknown Usage"
	}

	return str
}

// Able is the mutability of a node
type Able uint8

const (
	AbleEnabled Able = iota + 1
	AbleDisabled
	AbleAsleep
)

// Load is whether a node has unsaved changes
type Load uint8

const (
	LoadClean Load = iota + 1
	LoadDirty
)
