package fishtts

import (
	"github.com/tinylib/msgp/msgp"
)

// Prosody is encoded by hand: speed and volume are floats on the wire but
// integers (volume 0) must decode too.

// DecodeMsg implements msgp.Decodable
func (z *Prosody) DecodeMsg(dc *msgp.Reader) (err error) {
	var field []byte
	var zb0001 uint32
	if zb0001, err = dc.ReadMapHeader(); err != nil {
		err = msgp.WrapError(err)
		return
	}
	for zb0001 > 0 {
		zb0001--
		if field, err = dc.ReadMapKeyPtr(); err != nil {
			err = msgp.WrapError(err)
			return
		}
		var n msgp.Number
		switch msgp.UnsafeString(field) {
		case "speed":
			if err = n.DecodeMsg(dc); err != nil {
				err = msgp.WrapError(err, "Speed")
				return
			}
			z.Speed = numberAsFloat(n)
		case "volume":
			if err = n.DecodeMsg(dc); err != nil {
				err = msgp.WrapError(err, "Volume")
				return
			}
			z.Volume = numberAsFloat(n)
		default:
			if err = dc.Skip(); err != nil {
				err = msgp.WrapError(err)
				return
			}
		}
	}
	return
}

// EncodeMsg implements msgp.Encodable
func (z Prosody) EncodeMsg(en *msgp.Writer) (err error) {
	if err = en.WriteMapHeader(2); err != nil {
		return
	}
	if err = en.WriteString("speed"); err != nil {
		return
	}
	if err = en.WriteFloat64(z.Speed); err != nil {
		return msgp.WrapError(err, "Speed")
	}
	if err = en.WriteString("volume"); err != nil {
		return
	}
	if err = en.WriteFloat64(z.Volume); err != nil {
		return msgp.WrapError(err, "Volume")
	}
	return
}

// MarshalMsg implements msgp.Marshaler
func (z Prosody) MarshalMsg(b []byte) (o []byte, err error) {
	o = msgp.Require(b, z.Msgsize())
	o = msgp.AppendMapHeader(o, 2)
	o = msgp.AppendString(o, "speed")
	o = msgp.AppendFloat64(o, z.Speed)
	o = msgp.AppendString(o, "volume")
	o = msgp.AppendFloat64(o, z.Volume)
	return
}

// UnmarshalMsg implements msgp.Unmarshaler
func (z *Prosody) UnmarshalMsg(bts []byte) (o []byte, err error) {
	var field []byte
	var zb0001 uint32
	if zb0001, bts, err = msgp.ReadMapHeaderBytes(bts); err != nil {
		err = msgp.WrapError(err)
		return
	}
	for zb0001 > 0 {
		zb0001--
		if field, bts, err = msgp.ReadMapKeyZC(bts); err != nil {
			err = msgp.WrapError(err)
			return
		}
		var n msgp.Number
		switch msgp.UnsafeString(field) {
		case "speed":
			if bts, err = n.UnmarshalMsg(bts); err != nil {
				err = msgp.WrapError(err, "Speed")
				return
			}
			z.Speed = numberAsFloat(n)
		case "volume":
			if bts, err = n.UnmarshalMsg(bts); err != nil {
				err = msgp.WrapError(err, "Volume")
				return
			}
			z.Volume = numberAsFloat(n)
		default:
			if bts, err = msgp.Skip(bts); err != nil {
				err = msgp.WrapError(err)
				return
			}
		}
	}
	o = bts
	return
}

// Msgsize returns an upper bound estimate of the number of bytes occupied by the serialized message
func (z Prosody) Msgsize() int {
	return 1 + 6 + msgp.Float64Size + 7 + msgp.Float64Size
}

func numberAsFloat(n msgp.Number) float64 {
	if f, ok := n.Float(); ok {
		return f
	}
	if i, ok := n.Int(); ok {
		return float64(i)
	}
	u, _ := n.Uint()
	return float64(u)
}
