package catalog

import (
	"github.com/google/uuid"

	"github.com/kestrelsql/scalarexpr/internal/gobcodec"
	"github.com/kestrelsql/scalarexpr/types"
)

type wireColumn struct {
	ID        uuid.UUID
	FullName  string
	DataType  types.LogicalType
	Desc      ColumnDesc
	Synthetic bool
}

func (c *Column) GobEncode() ([]byte, error) {
	return gobcodec.Encode(wireColumn{
		ID:        c.id,
		FullName:  c.fullName,
		DataType:  c.datatype,
		Desc:      c.desc,
		Synthetic: c.synthetic,
	})
}

func (c *Column) GobDecode(data []byte) error {
	var w wireColumn
	if err := gobcodec.Decode(data, &w); err != nil {
		return err
	}
	c.id = w.ID
	c.fullName = w.FullName
	c.datatype = w.DataType
	c.desc = w.Desc
	c.synthetic = w.Synthetic
	return nil
}
