// Package types implements the closed LogicalType algebra the scalar
// expression core builds on: the SQL scalar type tags, the
// unsigned/signed widening rule unary binding needs, and the promotion
// join binary binding needs.
package types

import (
	"fmt"

	"github.com/kestrelsql/scalarexpr/dberrors"
)

// Tag is the closed set of SQL scalar type shapes.
type Tag uint8

const (
	Invalid Tag = iota
	SQLNull
	Boolean

	Tinyint
	Smallint
	Integer
	Bigint

	UTinyint
	USmallint
	UInteger
	UBigint

	Float
	Double
	Decimal

	Date
	Time
	DateTime
	Timestamp

	Varchar
	Tuple
)

// CharLengthUnits distinguishes whether a Varchar's length bound counts
// characters or raw octets, a distinction SubString/Trim need at the
// parser boundary.
type CharLengthUnits uint8

const (
	Characters CharLengthUnits = iota
	Octets
)

func (u CharLengthUnits) String() string {
	if u == Octets {
		return "octets"
	}
	return "characters"
}

// LogicalType is the value-type handle the rest of the core carries
// around. Only Tag == Varchar uses Len/Units; only Tag == Decimal uses
// Precision/Scale. Every other tag is a pure tag comparison and the
// zero value of the extra fields is ignored.
type LogicalType struct {
	tag   Tag
	len   *uint32 // Varchar length bound, nil means unbounded
	units CharLengthUnits

	precision uint8
	scale     uint8
}

func New(tag Tag) LogicalType { return LogicalType{tag: tag} }

// NewVarchar builds a Varchar type; len == nil means unbounded.
func NewVarchar(length *uint32, units CharLengthUnits) LogicalType {
	return LogicalType{tag: Varchar, len: length, units: units}
}

// NewDecimal builds a Decimal type with the given precision and scale.
func NewDecimal(precision, scale uint8) LogicalType {
	return LogicalType{tag: Decimal, precision: precision, scale: scale}
}

func (t LogicalType) Tag() Tag                 { return t.tag }
func (t LogicalType) VarcharLen() *uint32       { return t.len }
func (t LogicalType) VarcharUnits() CharLengthUnits { return t.units }
func (t LogicalType) DecimalPrecision() uint8   { return t.precision }
func (t LogicalType) DecimalScale() uint8       { return t.scale }

func (t LogicalType) Equal(other LogicalType) bool {
	if t.tag != other.tag {
		return false
	}
	switch t.tag {
	case Varchar:
		return varcharLenEqual(t.len, other.len) && t.units == other.units
	case Decimal:
		return t.precision == other.precision && t.scale == other.scale
	default:
		return true
	}
}

func varcharLenEqual(a, b *uint32) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (t Tag) String() string {
	switch t {
	case Invalid:
		return "Invalid"
	case SQLNull:
		return "Null"
	case Boolean:
		return "Boolean"
	case Tinyint:
		return "Tinyint"
	case Smallint:
		return "Smallint"
	case Integer:
		return "Integer"
	case Bigint:
		return "Bigint"
	case UTinyint:
		return "UTinyint"
	case USmallint:
		return "USmallint"
	case UInteger:
		return "UInteger"
	case UBigint:
		return "UBigint"
	case Float:
		return "Float"
	case Double:
		return "Double"
	case Decimal:
		return "Decimal"
	case Date:
		return "Date"
	case Time:
		return "Time"
	case DateTime:
		return "DateTime"
	case Timestamp:
		return "Timestamp"
	case Varchar:
		return "Varchar"
	case Tuple:
		return "Tuple"
	default:
		return "Unknown"
	}
}

func (t LogicalType) String() string {
	switch t.tag {
	case Varchar:
		if t.len == nil {
			return fmt.Sprintf("Varchar(None, %s)", t.units)
		}
		return fmt.Sprintf("Varchar(%d, %s)", *t.len, t.units)
	case Decimal:
		return fmt.Sprintf("Decimal(%d, %d)", t.precision, t.scale)
	default:
		return t.tag.String()
	}
}

// IsUnsignedNumeric reports whether t is one of the four unsigned
// integer tags.
func (t LogicalType) IsUnsignedNumeric() bool {
	switch t.tag {
	case UTinyint, USmallint, UInteger, UBigint:
		return true
	default:
		return false
	}
}

// SignedCounterpart returns the signed integer type a ScalarExpression
// Unary node's binder casts an unsigned operand to. Panics via
// dberrors.ErrInternalInvariant if t is not one of the four unsigned
// integer tags; callers must check IsUnsignedNumeric first.
func (t LogicalType) SignedCounterpart() LogicalType {
	switch t.tag {
	case UTinyint:
		return New(Tinyint)
	case USmallint:
		return New(Smallint)
	case UInteger:
		return New(Integer)
	case UBigint:
		return New(Bigint)
	default:
		panic(dberrors.Wrap(dberrors.ErrInternalInvariant.New(
			fmt.Sprintf("SignedCounterpart called on non-unsigned type %s", t))))
	}
}

var numericRank = map[Tag]int{
	Tinyint:   1,
	UTinyint:  1,
	Smallint:  2,
	USmallint: 2,
	Integer:   3,
	UInteger:  3,
	Bigint:    4,
	UBigint:   4,
	Float:     5,
	Double:    6,
	Decimal:   7,
}

func isNumeric(tag Tag) bool {
	_, ok := numericRank[tag]
	return ok
}

// MaxLogicalType computes the SQL-promotion join of two types. It
// fails with dberrors.ErrTypeMismatch when a and b cannot be
// reconciled into a common type.
func MaxLogicalType(a, b LogicalType) (LogicalType, error) {
	if a.Equal(b) {
		return a, nil
	}
	if a.tag == SQLNull {
		return b, nil
	}
	if b.tag == SQLNull {
		return a, nil
	}
	if isNumeric(a.tag) && isNumeric(b.tag) {
		return maxNumeric(a, b), nil
	}
	if a.tag == Varchar && b.tag == Varchar {
		return maxVarchar(a, b)
	}
	if isTemporal(a.tag) && isTemporal(b.tag) {
		return maxTemporal(a, b)
	}
	return LogicalType{}, dberrors.ErrTypeMismatch.New(
		fmt.Sprintf("%s, %s", a, b), "incompatible logical types")
}

func maxNumeric(a, b LogicalType) LogicalType {
	rankA, rankB := numericRank[a.tag], numericRank[b.tag]
	wide := a
	if rankB > rankA {
		wide = b
	} else if rankB == rankA && a.IsUnsignedNumeric() != b.IsUnsignedNumeric() {
		// same width, mixed signedness: take the signed tag at this rank
		// rather than widening by one rank. Unsigned values above that
		// signed tag's maximum do not fit the result type.
		if a.IsUnsignedNumeric() {
			wide = signedOfRank(rankA)
		} else {
			wide = signedOfRank(rankA)
		}
	}
	if wide.tag == Decimal {
		return LogicalType{tag: Decimal, precision: maxu8(a.precision, b.precision), scale: maxu8(a.scale, b.scale)}
	}
	return wide
}

func signedOfRank(rank int) LogicalType {
	for tag, r := range numericRank {
		if r == rank && !New(tag).IsUnsignedNumeric() {
			return New(tag)
		}
	}
	return New(Bigint)
}

func maxu8(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}

func maxVarchar(a, b LogicalType) (LogicalType, error) {
	if a.units != b.units {
		return LogicalType{}, dberrors.ErrTypeMismatch.New(
			fmt.Sprintf("%s, %s", a, b), "mismatched Varchar length units")
	}
	if a.len == nil || b.len == nil {
		return NewVarchar(nil, a.units), nil
	}
	if *a.len >= *b.len {
		return a, nil
	}
	return b, nil
}

var temporalRank = map[Tag]int{
	Date:      1,
	Time:      1,
	DateTime:  2,
	Timestamp: 3,
}

func isTemporal(tag Tag) bool {
	_, ok := temporalRank[tag]
	return ok
}

func maxTemporal(a, b LogicalType) (LogicalType, error) {
	if a.tag == Time || b.tag == Time {
		if a.tag != b.tag {
			return LogicalType{}, dberrors.ErrTypeMismatch.New(
				fmt.Sprintf("%s, %s", a, b), "Time does not promote with date-bearing types")
		}
	}
	if temporalRank[a.tag] >= temporalRank[b.tag] {
		return a, nil
	}
	return b, nil
}
