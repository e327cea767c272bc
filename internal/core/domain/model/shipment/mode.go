package shipment

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Mode is the transport mode of a shipment.
type Mode int

const (
	ModeUnknown Mode = iota
	Land
	Air
	Water
)

func getModeStrings() map[Mode]string {
	return map[Mode]string{
		Land:  "Land",
		Air:   "Air",
		Water: "Water",
	}
}

// ParseMode returns the Mode named s.
func ParseMode(s string) (Mode, error) {
	for mode, name := range getModeStrings() {
		if name == s {
			return mode, nil
		}
	}
	return ModeUnknown, errs.NewValueIsInvalidErrorWithCause("mode", fmt.Errorf("%q is not a valid mode", s))
}

func (m Mode) Validate() error {
	if _, ok := getModeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("mode", fmt.Errorf("%d is not a valid mode", m))
	}
	return nil
}

func (m Mode) String() string {
	if str, ok := getModeStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// ItemType classifies the goods being shipped.
type ItemType int

const (
	ItemTypeUnknown ItemType = iota
	General
	Iron
	Coal
	Food
	Fragile
)

func getItemTypeStrings() map[ItemType]string {
	return map[ItemType]string{
		General: "General",
		Iron:    "Iron",
		Coal:    "Coal",
		Food:    "Food",
		Fragile: "Fragile",
	}
}

// ParseItemType returns the ItemType named s.
func ParseItemType(s string) (ItemType, error) {
	for itemType, name := range getItemTypeStrings() {
		if name == s {
			return itemType, nil
		}
	}
	return ItemTypeUnknown, errs.NewValueIsInvalidErrorWithCause("itemType", fmt.Errorf("%q is not a valid item type", s))
}

func (t ItemType) Validate() error {
	if _, ok := getItemTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("itemType", fmt.Errorf("%d is not a valid item type", t))
	}
	return nil
}

func (t ItemType) String() string {
	if str, ok := getItemTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
