package event

import "testing"

func TestEnumValuesAreValid(t *testing.T) {
	for _, s := range Seasons() {
		if !s.Valid() {
			t.Fatalf("season %q should be valid", s)
		}
	}
	for _, p := range Phases() {
		if !p.Valid() {
			t.Fatalf("phase %q should be valid", p)
		}
	}
	for _, u := range UnitTypes() {
		if !u.Valid() {
			t.Fatalf("unit type %q should be valid", u)
		}
	}
	for _, c := range OrderCodes() {
		if !c.Valid() {
			t.Fatalf("order code %q should be valid", c)
		}
	}
	for _, c := range OrderSubcodes() {
		if !c.Valid() {
			t.Fatalf("order subcode %q should be valid", c)
		}
	}
	for _, m := range UnitMessages() {
		if !m.Valid() {
			t.Fatalf("unit message %q should be valid", m)
		}
	}
	for _, m := range CountryMessages() {
		if !m.Valid() {
			t.Fatalf("country message %q should be valid", m)
		}
	}
	for _, m := range DisasterMessages() {
		if !m.Valid() {
			t.Fatalf("disaster message %q should be valid", m)
		}
	}
	for _, k := range ExpenseKinds() {
		if !k.Valid() {
			t.Fatalf("expense kind %q should be valid", k)
		}
	}
}

func TestEnumsRejectUnknownValues(t *testing.T) {
	if Season("winter").Valid() {
		t.Fatal("winter is not a season")
	}
	if Phase("diplomacy").Valid() {
		t.Fatal("diplomacy is not a phase")
	}
	if UnitType("E").Valid() {
		t.Fatal("E is not a unit type")
	}
	if OrderCode("X").Valid() {
		t.Fatal("X is not an order code")
	}
	if ExpenseKind("bribe_pope").Valid() {
		t.Fatal("bribe_pope is not an expense kind")
	}
}
