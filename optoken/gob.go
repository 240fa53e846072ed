package optoken

import "github.com/kestrelsql/scalarexpr/internal/gobcodec"

type wireBinaryOperator struct {
	Kind   binaryKind
	Escape *byte
}

func (op BinaryOperator) GobEncode() ([]byte, error) {
	return gobcodec.Encode(wireBinaryOperator{Kind: op.kind, Escape: op.escape})
}

func (op *BinaryOperator) GobDecode(data []byte) error {
	var w wireBinaryOperator
	if err := gobcodec.Decode(data, &w); err != nil {
		return err
	}
	op.kind = w.Kind
	op.escape = w.Escape
	return nil
}
