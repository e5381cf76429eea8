package report

import (
	"fmt"
	"strings"
)

type Kind string

const (
	KindInventory Kind = "inventory"
	KindZones     Kind = "zones"
	KindRanking   Kind = "top"
)

func AllKinds() []Kind {
	return []Kind{KindInventory, KindZones, KindRanking}
}

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindInventory, KindZones, KindRanking:
		return k, nil
	default:
		return "", fmt.Errorf("unknown report %q (want inventory, zones or top)", s)
	}
}
