package dom

import (
	"cmp"
	"encoding/xml"
)

// Name is a namespace qualified tag or attribute name.
type Name struct {
	Space string
	Local string
}

// Local returns an unqualified name.
func Local(local string) Name {
	return Name{Local: local}
}

func FromXMLName(n xml.Name) Name {
	return Name{Space: n.Space, Local: n.Local}
}

func (n Name) XMLName() xml.Name {
	return xml.Name{Space: n.Space, Local: n.Local}
}

func (n Name) String() string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

// CompareNames orders names by space, then local part.
func CompareNames(a, b Name) int {
	if c := cmp.Compare(a.Space, b.Space); c != 0 {
		return c
	}
	return cmp.Compare(a.Local, b.Local)
}
