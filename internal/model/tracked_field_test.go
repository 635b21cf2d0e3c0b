package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceQuantity(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"", 0, true},
		{"   ", 0, true},
		{"0", 0, true},
		{"42", 42, true},
		{" 42 ", 42, true},
		{"-7", -7, true},
		{"a few", 0, false},
		{"12 bins", 0, false},
		{"3.5", 0, false},
	}
	for _, c := range cases {
		got, ok := CoerceQuantity(c.in)
		assert.Equal(t, c.want, got, "input %q", c.in)
		assert.Equal(t, c.ok, ok, "input %q", c.in)
	}
}

func TestTrackedFieldValue(t *testing.T) {
	p := &Product{
		CurrentStock:   9,
		WashInventory:  "14",
		StandInventory: "",
		CropNeeds:      "weeding",
	}

	v, ok := FieldCurrentStock.Value(p)
	assert.True(t, ok)
	assert.Equal(t, 9, v)

	v, ok = FieldWashInventory.Value(p)
	assert.True(t, ok)
	assert.Equal(t, 14, v)

	v, ok = FieldStandInventory.Value(p)
	assert.True(t, ok)
	assert.Equal(t, 0, v)

	_, ok = FieldCropNeeds.Value(p)
	assert.False(t, ok)
}

func TestTrackedFieldValid(t *testing.T) {
	for _, f := range TrackedFields {
		assert.True(t, f.Valid(), "field %s", f)
	}
	assert.False(t, TrackedField("retail_price").Valid())
}

func TestHistoryEntryLabel(t *testing.T) {
	e := &HistoryEntry{ChangedField: FieldWashInventory, Location: "North Field"}
	assert.Equal(t, "Wash Inventory - North Field", e.Label())

	e.Location = ""
	assert.Equal(t, "Wash Inventory", e.Label())
}
