package sigdissect

import (
	"encoding/asn1"

	"github.com/pkg/errors"
)

// ROS component tags.
const (
	ROSInvoke        = 1
	ROSResult        = 2
	ROSError         = 3
	ROSReject        = 4
	ROSResultNotLast = 7
)

type ROSInfo struct {
	Type     int
	InvokeId int
	OpCode   int
}

func decodeInvoke(data []byte) (info ROSInfo, err error) {
	info.Type = ROSInvoke

	data, err = asn1.Unmarshal(data, &info.InvokeId)
	if err != nil {
		return
	}
	// Linked ID.
	var tmp asn1.RawValue
	if rest, e := asn1.Unmarshal(data, &tmp); e == nil && tmp.Class == asn1.ClassContextSpecific && tmp.Tag == 0 {
		data = rest
	}
	_, err = asn1.Unmarshal(data, &info.OpCode)
	return
}

func decodeResult(data []byte) (info ROSInfo, err error) {
	info.Type = ROSResult
	info.OpCode = -1

	data, err = asn1.Unmarshal(data, &info.InvokeId)
	if err != nil {
		return
	}
	// The result sequence names the operation it answers.
	var seq asn1.RawValue
	if _, e := asn1.Unmarshal(data, &seq); e == nil && seq.Tag == asn1.TagSequence {
		var op int
		if _, e := asn1.Unmarshal(seq.Bytes, &op); e == nil {
			info.OpCode = op
		}
	}
	return
}

// DecodeROS lists the invoke and result components of a component
// portion. Components that fail to decode are skipped.
func DecodeROS(data []byte) (infos []ROSInfo, err error) {
	for len(data) > 0 {
		var tmp asn1.RawValue

		data, err = asn1.Unmarshal(data, &tmp)
		if err != nil {
			return infos, errors.Wrap(err, "ROS component")
		}

		switch tmp.Tag {
		case ROSInvoke:
			info, err := decodeInvoke(tmp.Bytes)
			if err == nil {
				infos = append(infos, info)
			}
		case ROSResult, ROSResultNotLast:
			info, err := decodeResult(tmp.Bytes)
			if err == nil {
				infos = append(infos, info)
			}
		}
	}
	return
}
