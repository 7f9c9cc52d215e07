package catalog

// NoCodecMarker is printed in place of an undeclared compression codec.
const NoCodecMarker = "<none>"

// Codec is an optional compression codec. The zero value means none was
// declared.
type Codec struct {
	value string
	set   bool
}

var NoCodec = Codec{}

// CodecOf declares codec s. ClickHouse reports an undeclared codec as the
// empty string, so "" yields NoCodec.
func CodecOf(s string) Codec {
	if s == "" {
		return NoCodec
	}
	return Codec{value: s, set: true}
}

func (c Codec) Value() (string, bool) { return c.value, c.set }

func (c Codec) IsSet() bool { return c.set }

func (c Codec) String() string {
	if !c.set {
		return NoCodecMarker
	}
	return c.value
}

// Column is one column of a table snapshot.
type Column struct {
	name     string
	dataType string
	codec    Codec
}

func NewColumn(name, dataType string, codec Codec) Column {
	return Column{name: name, dataType: dataType, codec: codec}
}

func (c Column) Name() string     { return c.name }
func (c Column) DataType() string { return c.dataType }
func (c Column) Codec() Codec     { return c.codec }
