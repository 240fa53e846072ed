package types

import "github.com/kestrelsql/scalarexpr/internal/gobcodec"

// wireLogicalType mirrors LogicalType with exported fields so
// encoding/gob, which cannot reach unexported struct fields, has
// something to walk. LogicalType itself stays unexported-field to keep
// its zero-value invariants (callers always go through New/NewVarchar/
// NewDecimal) enforced at the API boundary.
type wireLogicalType struct {
	Tag       Tag
	Len       *uint32
	Units     CharLengthUnits
	Precision uint8
	Scale     uint8
}

func (t LogicalType) GobEncode() ([]byte, error) {
	return gobcodec.Encode(wireLogicalType{
		Tag:       t.tag,
		Len:       t.len,
		Units:     t.units,
		Precision: t.precision,
		Scale:     t.scale,
	})
}

func (t *LogicalType) GobDecode(data []byte) error {
	var w wireLogicalType
	if err := gobcodec.Decode(data, &w); err != nil {
		return err
	}
	t.tag = w.Tag
	t.len = w.Len
	t.units = w.Units
	t.precision = w.Precision
	t.scale = w.Scale
	return nil
}
