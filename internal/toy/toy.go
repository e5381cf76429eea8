package toy

import "strconv"

// Ownership is the addon's owned flag. Absent means the addon has not
// evaluated the toy yet and is different from OwnedFalse.
type Ownership int

const (
	OwnedAbsent Ownership = iota
	OwnedTrue
	OwnedFalse
)

func (o Ownership) Known() bool {
	return o == OwnedTrue || o == OwnedFalse
}

func (o Ownership) String() string {
	switch o {
	case OwnedTrue:
		return "true"
	case OwnedFalse:
		return "false"
	default:
		return "absent"
	}
}

// Status labels used in inventory exports.
const (
	StatusOwned   = "OWNED"
	StatusMissing = "MISSING"
)

type OptionalInt struct {
	Value int
	Valid bool
}

func (o OptionalInt) String() string {
	if !o.Valid {
		return ""
	}
	return strconv.Itoa(o.Value)
}

type Record struct {
	ItemID    int
	Name      string
	Owned     Ownership
	TierID    OptionalInt
	Locations string
}

// Status returns OWNED or MISSING, or "" when ownership is absent.
func (r Record) Status() string {
	switch r.Owned {
	case OwnedTrue:
		return StatusOwned
	case OwnedFalse:
		return StatusMissing
	default:
		return ""
	}
}

func (r Record) Missing() bool {
	return r.Owned == OwnedFalse
}

func PlaceholderName(itemID int) string {
	return "ItemID " + strconv.Itoa(itemID)
}
