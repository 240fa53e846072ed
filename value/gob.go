package value

import (
	"encoding/gob"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kestrelsql/scalarexpr/internal/gobcodec"
	"github.com/kestrelsql/scalarexpr/types"
)

func init() {
	// Raw is interface{}; gob needs every concrete type that can occupy
	// it registered once up front so a decode knows what to instantiate.
	gob.Register(bool(false))
	gob.Register(int64(0))
	gob.Register(uint64(0))
	gob.Register(float64(0))
	gob.Register(decimal.Decimal{})
	gob.Register(time.Time{})
	gob.Register("")
}

type wireValue struct {
	Raw interface{}
	Ty  types.LogicalType
}

func (v *Value) GobEncode() ([]byte, error) {
	return gobcodec.Encode(wireValue{Raw: v.raw, Ty: v.ty})
}

func (v *Value) GobDecode(data []byte) error {
	var w wireValue
	if err := gobcodec.Decode(data, &w); err != nil {
		return err
	}
	v.raw = w.Raw
	v.ty = w.Ty
	return nil
}
